package board

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
)

// PlainLabel renders a markdown label to the text drawn inside a shape:
// emphasis and headings are flattened, list items get a bullet and each
// block ends up on its own line.
func PlainLabel(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	doc := markdown.Parse([]byte(md), parser.NewWithExtensions(parser.CommonExtensions))

	var b strings.Builder
	newline := func() {
		s := b.String()
		if len(s) > 0 && !strings.HasSuffix(s, "\n") {
			b.WriteByte('\n')
		}
	}

	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		switch n := node.(type) {
		case *ast.Text:
			if entering {
				b.Write(n.Literal)
			}
		case *ast.Code:
			if entering {
				b.Write(n.Literal)
			}
		case *ast.CodeBlock:
			if entering {
				newline()
				b.Write(n.Literal)
				newline()
			}
		case *ast.Softbreak, *ast.Hardbreak:
			if entering {
				newline()
			}
		case *ast.ListItem:
			if entering {
				newline()
				b.WriteString("• ")
			} else {
				newline()
			}
		case *ast.Paragraph, *ast.Heading:
			if !entering {
				newline()
			}
		}
		return ast.GoToNext
	})

	return strings.TrimSpace(b.String())
}
