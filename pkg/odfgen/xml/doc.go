// Package xml is the namespace layer odfgen puts on top of etree to build
// and merge OpenDocument parts.
//
// Trees are plain etree documents. Elements keep the prefixes they were
// written with, and every namespace-aware question (is this office:text?,
// which URI does this attribute belong to?) is answered by resolving the
// prefix against the xmlns declarations in scope.
//
// # Structure Organization
//
//   - tree.go: Name, matching helpers, NewDocument, Import and MoveChildren
//   - parse.go: building documents and fragment lists from XML text
//   - namespace.go: well-known ODF namespaces, declarations and the
//     HoistNamespaces / CleanNamespaces passes
//   - indent.go: pretty printing that leaves mixed content alone
//
// # Building
//
// Elements are created with their conventional prefix and the root declares
// the namespaces the part needs:
//
//	root := etree.NewElement("office:document-content")
//	xml.Declare(root, "office", xml.NSOffice)
//	root.CreateAttr("office:version", "1.2")
//	doc := xml.NewDocument(root)
//
// # Ownership
//
// Each Document owns its elements. Elements from another tree are brought in
// with Import, which returns a deep copy that carries the declarations the
// source relied on; the source tree is never mutated.
package xml
