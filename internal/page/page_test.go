package page

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_FullPage_ExtractsAllParts(t *testing.T) {
	src := "---\ntitle: Config\nactive: config\n---\n<style>.x{color:red}</style>\n<p>Hello</p>\n<script>console.log(1)</script>\n"

	p, err := Parse(src)
	require.NoError(t, err)
	require.Equal(t, "Config", p.Meta["title"])
	require.Equal(t, "config", p.Meta["active"])
	require.Equal(t, ".x{color:red}", p.CSS)
	require.Equal(t, "<p>Hello</p>", p.Body)
	require.Equal(t, "\n<script>console.log(1)</script>\n", p.JS)
}

func TestParse_MissingFrontmatter_ReturnsError(t *testing.T) {
	_, err := Parse("<p>no frontmatter here</p>\n")
	require.ErrorIs(t, err, ErrMissingFrontmatter)
}

func TestParse_UnclosedFrontmatter_ReturnsError(t *testing.T) {
	_, err := Parse("---\ntitle: Broken\n<p>body</p>\n")
	require.ErrorIs(t, err, ErrMissingFrontmatter)
}

func TestParse_NoStyleNoScript_BodyOnly(t *testing.T) {
	p, err := Parse("---\ntitle: Plain\n---\n<p>Just a body</p>\n")
	require.NoError(t, err)
	require.Empty(t, p.CSS)
	require.Empty(t, p.JS)
	require.Equal(t, "<p>Just a body</p>", p.Body)
}

func TestParse_MetadataTrimming_KeysAndValuesTrimmed(t *testing.T) {
	p, err := Parse("---\n  title :   Spaced Out  \ncustom-key: kept\n---\nbody\n")
	require.NoError(t, err)
	require.Equal(t, "Spaced Out", p.Meta["title"])
	// Unrecognized keys are preserved in the mapping.
	require.Equal(t, "kept", p.Meta["custom-key"])
}

func TestParse_ValueWithColon_SplitsOnFirstColon(t *testing.T) {
	p, err := Parse("---\nurl: https://example.com:8080/x\n---\nbody\n")
	require.NoError(t, err)
	require.Equal(t, "https://example.com:8080/x", p.Meta["url"])
}

func TestParse_StyleNotLeading_StaysInBody(t *testing.T) {
	p, err := Parse("---\ntitle: T\n---\n<p>first</p>\n<style>.y{}</style>\n<p>last</p>\n")
	require.NoError(t, err)
	require.Empty(t, p.CSS)
	require.Contains(t, p.Body, "<style>.y{}</style>")
}

func TestParse_ScriptNotTrailing_StaysInBody(t *testing.T) {
	p, err := Parse("---\ntitle: T\n---\n<script>mid()</script>\n<p>after</p>\n")
	require.NoError(t, err)
	require.Empty(t, p.JS)
	require.Contains(t, p.Body, "<script>mid()</script>")
}

func TestParse_ScriptKeepsTags(t *testing.T) {
	p, err := Parse("---\ntitle: T\n---\n<p>b</p>\n<script>go()</script>")
	require.NoError(t, err)
	require.Contains(t, p.JS, "<script>go()</script>")
	require.Equal(t, "<p>b</p>", p.Body)
}

func TestParse_StyleOnly_BodyEmpty(t *testing.T) {
	p, err := Parse("---\ntitle: T\n---\n<style>.z{margin:0}</style>\n")
	require.NoError(t, err)
	require.Equal(t, ".z{margin:0}", p.CSS)
	require.Empty(t, p.Body)
}

func TestParse_EmptyFrontmatterBlock_NoMetadata(t *testing.T) {
	p, err := Parse("---\n\n---\n<p>b</p>\n")
	require.NoError(t, err)
	require.Empty(t, p.Meta)
	require.Equal(t, "<p>b</p>", p.Body)
}

func TestParse_Deterministic(t *testing.T) {
	src := "---\ntitle: Same\n---\n<style>.a{}</style>\n<p>x</p>\n<script>y()</script>\n"
	a, err := Parse(src)
	require.NoError(t, err)
	b, err := Parse(src)
	require.NoError(t, err)
	require.Equal(t, a, b)
}
