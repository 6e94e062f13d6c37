package xml

import (
	"github.com/beevik/etree"
)

// OpenDocument namespace URIs
const (
	NSOffice       = "urn:oasis:names:tc:opendocument:xmlns:office:1.0"
	NSStyle        = "urn:oasis:names:tc:opendocument:xmlns:style:1.0"
	NSText         = "urn:oasis:names:tc:opendocument:xmlns:text:1.0"
	NSTable        = "urn:oasis:names:tc:opendocument:xmlns:table:1.0"
	NSDraw         = "urn:oasis:names:tc:opendocument:xmlns:drawing:1.0"
	NSFO           = "urn:oasis:names:tc:opendocument:xmlns:xsl-fo-compatible:1.0"
	NSSVG          = "urn:oasis:names:tc:opendocument:xmlns:svg-compatible:1.0"
	NSManifest     = "urn:oasis:names:tc:opendocument:xmlns:manifest:1.0"
	NSMeta         = "urn:oasis:names:tc:opendocument:xmlns:meta:1.0"
	NSConfig       = "urn:oasis:names:tc:opendocument:xmlns:config:1.0"
	NSNumber       = "urn:oasis:names:tc:opendocument:xmlns:datastyle:1.0"
	NSPresentation = "urn:oasis:names:tc:opendocument:xmlns:presentation:1.0"
	NSChart        = "urn:oasis:names:tc:opendocument:xmlns:chart:1.0"
	NSDR3D         = "urn:oasis:names:tc:opendocument:xmlns:dr3d:1.0"
	NSForm         = "urn:oasis:names:tc:opendocument:xmlns:form:1.0"
	NSScript       = "urn:oasis:names:tc:opendocument:xmlns:script:1.0"
	NSAnimation    = "urn:oasis:names:tc:opendocument:xmlns:animation:1.0"
	NSSMIL         = "urn:oasis:names:tc:opendocument:xmlns:smil-compatible:1.0"
	NSOf           = "urn:oasis:names:tc:opendocument:xmlns:of:1.2"
	NSXLink        = "http://www.w3.org/1999/xlink"
	NSDC           = "http://purl.org/dc/elements/1.1/"
	NSMathML       = "http://www.w3.org/1998/Math/MathML"
	NSXML          = "http://www.w3.org/XML/1998/namespace"
)

var wellKnownPrefixes = map[string]string{
	NSOffice:       "office",
	NSStyle:        "style",
	NSText:         "text",
	NSTable:        "table",
	NSDraw:         "draw",
	NSFO:           "fo",
	NSSVG:          "svg",
	NSManifest:     "manifest",
	NSMeta:         "meta",
	NSConfig:       "config",
	NSNumber:       "number",
	NSPresentation: "presentation",
	NSChart:        "chart",
	NSDR3D:         "dr3d",
	NSForm:         "form",
	NSScript:       "script",
	NSAnimation:    "anim",
	NSSMIL:         "smil",
	NSOf:           "of",
	NSXLink:        "xlink",
	NSDC:           "dc",
	NSMathML:       "math",
	NSXML:          "xml",
}

var wellKnownURIs = func() map[string]string {
	m := make(map[string]string, len(wellKnownPrefixes))
	for uri, p := range wellKnownPrefixes {
		m[p] = uri
	}
	return m
}()

// PreferredPrefix returns the conventional prefix for a namespace URI
func PreferredPrefix(uri string) (string, bool) {
	p, ok := wellKnownPrefixes[uri]
	return p, ok
}

// Namespace is a prefix declaration carried by an element.
// An empty Prefix declares the default namespace.
type Namespace struct {
	Prefix string
	URI    string
}

func isDeclaration(a etree.Attr) bool {
	return a.Space == "xmlns" || (a.Space == "" && a.Key == "xmlns")
}

func declarationPrefix(a etree.Attr) string {
	if a.Space == "" {
		return ""
	}
	return a.Key
}

// Declare binds prefix to uri on e, replacing an existing declaration of the
// same prefix
func Declare(e *Element, prefix, uri string) {
	if prefix == "" {
		e.CreateAttr("xmlns", uri)
		return
	}
	e.CreateAttr("xmlns:"+prefix, uri)
}

// Declarations returns the namespace declarations carried by e itself
func Declarations(e *Element) []Namespace {
	var out []Namespace
	for _, a := range e.Attr {
		if isDeclaration(a) {
			out = append(out, Namespace{Prefix: declarationPrefix(a), URI: a.Value})
		}
	}
	return out
}

func declares(e *Element, prefix string) bool {
	for _, a := range e.Attr {
		if isDeclaration(a) && declarationPrefix(a) == prefix {
			return true
		}
	}
	return false
}

func removeDeclaration(e *Element, prefix string) {
	if prefix == "" {
		e.RemoveAttr("xmlns")
		return
	}
	e.RemoveAttr("xmlns:" + prefix)
}

// LookupPrefix returns the URI bound to prefix on e or its ancestors. The
// xml prefix is always bound.
func LookupPrefix(e *Element, prefix string) (string, bool) {
	if prefix == "xml" {
		return NSXML, true
	}
	for cur := e; cur != nil; cur = cur.Parent() {
		for _, a := range cur.Attr {
			if isDeclaration(a) && declarationPrefix(a) == prefix {
				return a.Value, true
			}
		}
	}
	return "", false
}

// InScope returns every declaration visible at e, the nearest binding
// winning for each prefix. Order is innermost first.
func InScope(e *Element) []Namespace {
	var out []Namespace
	seen := make(map[string]bool)
	for cur := e; cur != nil; cur = cur.Parent() {
		for _, ns := range Declarations(cur) {
			if seen[ns.Prefix] {
				continue
			}
			seen[ns.Prefix] = true
			out = append(out, ns)
		}
	}
	return out
}

// HoistNamespaces moves declarations from the subtree of root up to root.
//
// A declaration is moved when root does not bind its prefix yet and no
// element between root and the declaring element binds it either, so every
// name keeps resolving to the same URI. Prefixes of the well-known ODF
// namespaces that are used but not bound anywhere are declared on root.
// Declarations that end up repeating a binding of an ancestor are left for
// CleanNamespaces.
func HoistNamespaces(root *Element) {
	for _, c := range root.ChildElements() {
		hoist(root, c)
	}
}

func hoist(root, e *Element) {
	for _, ns := range Declarations(e) {
		if declares(root, ns.Prefix) {
			continue
		}
		if _, bound := LookupPrefix(e.Parent(), ns.Prefix); bound {
			continue
		}
		removeDeclaration(e, ns.Prefix)
		Declare(root, ns.Prefix, ns.URI)
	}

	bindWellKnown(root, e, e.Space)
	for _, a := range e.Attr {
		if !isDeclaration(a) {
			bindWellKnown(root, e, a.Space)
		}
	}

	for _, c := range e.ChildElements() {
		hoist(root, c)
	}
}

func bindWellKnown(root, e *Element, prefix string) {
	if prefix == "" {
		return
	}
	if _, bound := LookupPrefix(e, prefix); bound {
		return
	}
	if uri, ok := wellKnownURIs[prefix]; ok {
		Declare(root, prefix, uri)
	}
}

// CleanNamespaces removes namespace declarations from the subtree rooted at e
// that no element or attribute name depends on, and declarations that repeat
// a binding already in scope from an ancestor. Names, attribute values and
// the shape of the tree are not changed. Running it twice is a no-op.
func CleanNamespaces(e *Element) {
	pruneUnused(e)
	pruneRedundant(e)
}

// pruneUnused drops declarations of e whose prefix is not used inside its
// subtree and returns the prefixes the subtree uses without binding them.
func pruneUnused(e *Element) map[string]bool {
	used := map[string]bool{e.Space: true}
	for _, a := range e.Attr {
		if a.Space != "" && a.Space != "xml" && !isDeclaration(a) {
			used[a.Space] = true
		}
	}
	for _, c := range e.ChildElements() {
		for prefix := range pruneUnused(c) {
			used[prefix] = true
		}
	}

	for _, ns := range Declarations(e) {
		if !used[ns.Prefix] {
			removeDeclaration(e, ns.Prefix)
		}
		delete(used, ns.Prefix)
	}
	return used
}

func pruneRedundant(e *Element) {
	if parent := e.Parent(); parent != nil {
		for _, ns := range Declarations(e) {
			if uri, ok := LookupPrefix(parent, ns.Prefix); ok && uri == ns.URI {
				removeDeclaration(e, ns.Prefix)
			}
		}
	}
	for _, c := range e.ChildElements() {
		pruneRedundant(c)
	}
}
