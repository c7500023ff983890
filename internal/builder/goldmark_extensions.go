// internal/builder/goldmark_extensions.go
package builder

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// mdLinkTransformer rewrites links between markdown page sources so they
// point at the .html files the build actually produces.
type mdLinkTransformer struct {
}

func newMDLinkTransformer() parser.ASTTransformer {
	return &mdLinkTransformer{}
}

// Transform walks the document AST and swaps a ".md" suffix on any link
// destination for ".html".
func (t *mdLinkTransformer) Transform(node *ast.Document, reader text.Reader, pc parser.Context) {
	ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		link, ok := n.(*ast.Link)
		if !ok {
			return ast.WalkContinue, nil
		}

		dest := link.Destination
		if bytes.HasSuffix(dest, []byte(".md")) {
			newDest := bytes.TrimSuffix(dest, []byte(".md"))
			newDest = append(newDest, []byte(".html")...)
			link.Destination = newDest
		}
		return ast.WalkContinue, nil
	})
}
