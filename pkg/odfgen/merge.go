package odfgen

import (
	"errors"

	"github.com/benjaminschreck/go-odfgen/pkg/odfgen/xml"
)

// ErrPackageFinished is returned when merging into a package after Finish
var ErrPackageFinished = errors.New("package already finished")

// Parts a fragment can be classified for
const (
	partDocument = "document"
	partContent  = "content"
	partStyles   = "styles"
)

// Merge classifies a fragment and merges it into the package:
//
//   - office:document-content and office:document-styles are wrappers; each
//     of their child elements is merged into content.xml or styles.xml
//   - office:<content root> replaces the element inside office:body; the last
//     such fragment wins
//   - office:automatic-styles appends its children to the automatic styles
//     of content.xml
//   - office:styles, office:automatic-styles and office:master-styles inside a
//     document-styles wrapper append their children to the same section of
//     styles.xml; office:styles and office:master-styles do so at top level too
//
// Anything else is skipped with a warning. In strict mode the skip is
// returned as an *UnsupportedFragmentError. The fragment itself is never
// modified: a copy is imported into the owning part before being attached.
func (p *Package) Merge(fragment *xml.Element) error {
	if p.finished {
		return ErrPackageFinished
	}
	if fragment == nil {
		return errors.New("nil fragment")
	}

	if fragment.NamespaceURI() == xml.NSOffice {
		switch fragment.Tag {
		case "document-content":
			return p.mergeChildren(fragment, p.mergeContent)
		case "document-styles":
			return p.mergeChildren(fragment, p.mergeStyles)
		}
	}

	if p.setContentPart(fragment) || p.setStylesPart(fragment) {
		return nil
	}
	return p.unsupported(fragment, partDocument)
}

// MergeAll merges fragments in order and stops at the first error
func (p *Package) MergeAll(fragments []*xml.Element) error {
	for _, f := range fragments {
		if err := p.Merge(f); err != nil {
			return err
		}
	}
	return nil
}

func (p *Package) mergeChildren(wrapper *xml.Element, merge func(*xml.Element) error) error {
	for _, child := range wrapper.ChildElements() {
		if err := merge(child); err != nil {
			return err
		}
	}
	return nil
}

func (p *Package) mergeContent(e *xml.Element) error {
	if p.setContentPart(e) {
		return nil
	}
	return p.unsupported(e, partContent)
}

func (p *Package) mergeStyles(e *xml.Element) error {
	if p.setStylesPart(e) {
		return nil
	}
	return p.unsupported(e, partStyles)
}

// setContentPart handles the body element and content automatic styles
func (p *Package) setContentPart(e *xml.Element) bool {
	if e.NamespaceURI() != xml.NSOffice {
		return false
	}

	switch e.Tag {
	case p.Flavor.ContentRoot:
		imported := xml.Import(e)
		xml.ReplaceChild(p.body, imported, p.bodyChild)
		p.bodyChild = imported
		p.logger.Debug("replaced body content", "element", e.Tag)
		return true
	case "automatic-styles":
		xml.MoveChildren(p.contentAutomaticStyles, xml.Import(e))
		p.logger.Debug("merged content automatic styles")
		return true
	}
	return false
}

// setStylesPart appends the children of a styles section to the same section of styles.xml
func (p *Package) setStylesPart(e *xml.Element) bool {
	if e.NamespaceURI() != xml.NSOffice {
		return false
	}

	var target *xml.Element
	switch e.Tag {
	case "styles":
		target = p.stylesSection
	case "automatic-styles":
		target = p.stylesAutomaticStyles
	case "master-styles":
		target = p.masterStyles
	default:
		return false
	}

	xml.MoveChildren(target, xml.Import(e))
	p.logger.Debug("merged styles section", "section", e.Tag)
	return true
}

func (p *Package) unsupported(e *xml.Element, part string) error {
	err := &UnsupportedFragmentError{Name: xml.NameOf(e), Part: part}
	p.warnings = append(p.warnings, err)
	p.logger.Warn("skipping unsupported fragment", "element", xml.QName(err.Name), "part", part)
	if p.config.StrictMode {
		return err
	}
	return nil
}

// Finish prepares content.xml and styles.xml for writing: declarations are
// moved to the roots, unused ones are removed, and both roots declare the
// formula namespace prefix "of". Merging is not possible afterwards.
func (p *Package) Finish() {
	if p.finished {
		return
	}
	for _, root := range []*xml.Element{p.Content.Root(), p.Styles.Root()} {
		xml.HoistNamespaces(root)
		xml.CleanNamespaces(root)
		xml.Declare(root, "of", xml.NSOf)
	}
	p.finished = true
}

// Finished reports whether Finish has run
func (p *Package) Finished() bool {
	return p.finished
}
