package xml

import (
	"strings"

	"github.com/beevik/etree"
)

// Element and Document are the etree types every part is built from
type (
	Element  = etree.Element
	Document = etree.Document
)

// declaration is the processing instruction every part starts with
const declaration = `version="1.0" encoding="UTF-8" standalone="yes"`

// Name is a resolved element name. Space holds the namespace URI, not the
// prefix.
type Name struct {
	Space string
	Local string
}

// NameOf resolves the prefix of e against the declarations in scope
func NameOf(e *Element) Name {
	return Name{Space: e.NamespaceURI(), Local: e.Tag}
}

// QName formats a name as {uri}local, the form used in log and error messages
func QName(n Name) string {
	if n.Space == "" {
		return n.Local
	}
	return "{" + n.Space + "}" + n.Local
}

// Is reports whether e has the given namespace URI and local name
func Is(e *Element, space, local string) bool {
	return e.Tag == local && e.NamespaceURI() == space
}

// FindChild returns the first child element of e with the given name
func FindChild(e *Element, space, local string) *Element {
	for _, c := range e.ChildElements() {
		if Is(c, space, local) {
			return c
		}
	}
	return nil
}

// FindAll returns every descendant of e with the given name, depth first
func FindAll(e *Element, space, local string) []*Element {
	var out []*Element
	for _, c := range e.ChildElements() {
		if Is(c, space, local) {
			out = append(out, c)
		}
		out = append(out, FindAll(c, space, local)...)
	}
	return out
}

// Text returns the concatenated character data of the subtree of e
func Text(e *Element) string {
	var sb strings.Builder
	for _, c := range e.Child {
		switch t := c.(type) {
		case *etree.CharData:
			sb.WriteString(t.Data)
		case *Element:
			sb.WriteString(Text(t))
		}
	}
	return sb.String()
}

// AttrValue returns the value of the attribute named {space}local. Prefixes
// are resolved on e, so the lookup works whatever prefix the author chose.
func AttrValue(e *Element, space, local string) (string, bool) {
	for _, a := range e.Attr {
		if a.Key != local || isDeclaration(a) {
			continue
		}
		if a.Space == "" {
			if space == "" {
				return a.Value, true
			}
			continue
		}
		if uri, ok := LookupPrefix(e, a.Space); ok && uri == space {
			return a.Value, true
		}
	}
	return "", false
}

// NewDocument creates a part around root, headed by an XML declaration with
// standalone="yes". root must be detached.
func NewDocument(root *Element) *Document {
	doc := etree.NewDocument()
	doc.WriteSettings.CanonicalAttrVal = true
	doc.CreateProcInst("xml", declaration)
	doc.SetRoot(root)
	return doc
}

// Import returns a deep copy of e ready to be attached to another tree.
//
// Declarations that e inherited from its own ancestors are copied onto the
// returned element, so prefixes chosen by the author of e keep resolving.
// The source element and its tree are left untouched.
func Import(e *Element) *Element {
	c := e.Copy()
	if parent := e.Parent(); parent != nil {
		for _, ns := range InScope(parent) {
			if !declares(c, ns.Prefix) {
				Declare(c, ns.Prefix, ns.URI)
			}
		}
	}
	return c
}

// MoveChildren detaches every child token of src and appends it to dst.
// Declarations in scope at src are copied onto moved elements so their
// prefixes survive the move.
func MoveChildren(dst, src *Element) {
	inScope := InScope(src)
	children := append([]etree.Token(nil), src.Child...)
	for _, c := range children {
		if el, ok := c.(*Element); ok {
			for _, ns := range inScope {
				if !declares(el, ns.Prefix) {
					Declare(el, ns.Prefix, ns.URI)
				}
			}
		}
		dst.AddChild(c)
	}
}

// ReplaceChild swaps old for n at the same position. It reports false,
// leaving the tree unchanged, when old is not a child of parent.
func ReplaceChild(parent, n, old *Element) bool {
	if old.Parent() != parent {
		return false
	}
	i := old.Index()
	parent.RemoveChildAt(i)
	parent.InsertChildAt(i, n)
	return true
}
