package xml

import (
	"strings"

	"github.com/beevik/etree"
)

// Indent pretty prints doc in place, repeating unit once per nesting level.
// The declaration is always followed by a newline and the document ends with
// one. An empty unit only adds those two newlines.
//
// Elements that already hold character data are written exactly as they are,
// together with their subtree. Whitespace between text:span elements is
// content in ODF, so etree's Document.Indent, which rewrites it, is not used.
func Indent(doc *Document, unit string) {
	root := doc.Root()
	if root == nil {
		return
	}
	if unit != "" {
		indentElement(root, 0, unit)
	}
	doc.InsertChildAt(root.Index(), etree.NewText("\n"))
	doc.AddChild(etree.NewText("\n"))
}

func indentElement(e *Element, depth int, unit string) {
	if len(e.Child) == 0 || hasCharData(e) {
		return
	}

	children := append([]etree.Token(nil), e.Child...)
	out := make([]etree.Token, 0, 2*len(children)+1)
	for _, c := range children {
		out = append(out, e.CreateText("\n"+strings.Repeat(unit, depth+1)), c)
		if el, ok := c.(*Element); ok {
			indentElement(el, depth+1, unit)
		}
	}
	out = append(out, e.CreateText("\n"+strings.Repeat(unit, depth)))
	e.Child = out
	e.ReindexChildren()
}

func hasCharData(e *Element) bool {
	for _, c := range e.Child {
		if _, ok := c.(*etree.CharData); ok {
			return true
		}
	}
	return false
}
