// internal/builder/render.go
package builder

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"stitch/internal/config"
	"stitch/internal/page"
)

// activeMarker is the attribute injected into the nav placeholder of the
// section a page declares as `active`.
const activeMarker = `class="active"`

const defaultMaxWidth = "820px"

var (
	markdownRenderer = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Footnote),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithASTTransformers(
				util.Prioritized(newMDLinkTransformer(), 100),
			),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	htmlSanitizer = bluemonday.UGCPolicy()
)

// renderMarkdown converts a markdown page body to HTML, sanitizing it only
// when the caller asked for it.
func renderMarkdown(body string, opts BuildOptions) (string, error) {
	var buf bytes.Buffer
	if err := markdownRenderer.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown with goldmark: %w", err)
	}
	if opts.Sanitize {
		return string(htmlSanitizer.SanitizeBytes(buf.Bytes())), nil
	}
	return buf.String(), nil
}

// substitute fills every recognized placeholder in the layout with the page's
// values. Replacement is plain text substitution with no escaping; a token
// absent from the layout simply means that value goes nowhere, and tokens the
// builder does not recognize pass through untouched.
func substitute(layout string, p page.Page, body string, site config.SiteConfig) string {
	out := layout
	out = strings.ReplaceAll(out, "{{TITLE}}", metaOr(p.Meta, "title", site.Title))
	out = strings.ReplaceAll(out, "{{DESCRIPTION}}", p.Meta["description"])
	out = strings.ReplaceAll(out, "{{MAX_WIDTH}}", metaOr(p.Meta, "max_width", defaultMaxWidth))
	out = strings.ReplaceAll(out, "{{PAGE_CSS}}", p.CSS)
	out = strings.ReplaceAll(out, "{{BODY}}", body)
	out = strings.ReplaceAll(out, "{{PAGE_JS}}", p.JS)

	// At most one nav entry matches the page's `active` key; every other nav
	// placeholder collapses to the empty string.
	active := p.Meta["active"]
	for _, key := range site.Nav {
		marker := ""
		if key == active {
			marker = activeMarker
		}
		out = strings.ReplaceAll(out, "{{NAV_"+strings.ToUpper(key)+"}}", marker)
	}
	return out
}

// metaOr returns the metadata value for key, or fallback when the key is
// absent entirely. A key present with an empty value stays empty.
func metaOr(meta map[string]string, key, fallback string) string {
	if v, ok := meta[key]; ok {
		return v
	}
	return fallback
}
