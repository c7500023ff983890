// internal/page/page.go
package page

import (
	"errors"
	"regexp"
	"strings"
)

// ErrMissingFrontmatter is returned when a page source does not open with a
// `---` delimited metadata block.
var ErrMissingFrontmatter = errors.New("page missing --- frontmatter ---")

var (
	frontmatterRe = regexp.MustCompile(`(?s)\A---\n(.*?)\n---\n(.*)\z`)
	styleRe       = regexp.MustCompile(`(?s)\A\s*<style>(.*?)</style>\s*(.*)\z`)
	scriptRe      = regexp.MustCompile(`(?s)(\s*<script>.*</script>\s*)\z`)
)

// Page is the decomposed form of one page source.
type Page struct {
	// Meta holds the key/value pairs from the frontmatter block. Keys the
	// builder does not recognize are preserved here untouched.
	Meta map[string]string
	// CSS is the inner text of a leading <style> block, tags stripped.
	CSS string
	// Body is the page markup with frontmatter, style, and script removed,
	// trimmed of surrounding whitespace.
	Body string
	// JS is a trailing <script> region, kept verbatim including its tags so
	// it can be dropped into the layout as-is.
	JS string
}

// Parse splits one page source into frontmatter metadata, an optional leading
// style block, the body, and an optional trailing script block. It is a pure
// function of its input.
func Parse(src string) (Page, error) {
	m := frontmatterRe.FindStringSubmatch(src)
	if m == nil {
		return Page{}, ErrMissingFrontmatter
	}

	meta := make(map[string]string)
	front := strings.TrimSpace(m[1])
	if front != "" {
		for _, line := range strings.Split(front, "\n") {
			key, val, _ := strings.Cut(line, ":")
			meta[strings.TrimSpace(key)] = strings.TrimSpace(val)
		}
	}

	rest := m[2]

	// A style block is only recognized at the very start of the content.
	var css string
	if sm := styleRe.FindStringSubmatch(rest); sm != nil {
		css = sm[1]
		rest = sm[2]
	}

	// A script region is only recognized at the very end, and unlike the
	// style block it keeps its wrapping tags.
	var js string
	if loc := scriptRe.FindStringIndex(rest); loc != nil {
		js = rest[loc[0]:]
		rest = rest[:loc[0]]
	}

	return Page{
		Meta: meta,
		CSS:  css,
		Body: strings.TrimSpace(rest),
		JS:   js,
	}, nil
}
