package odfgen

import (
	"time"

	"github.com/beevik/etree"
	"github.com/charmbracelet/log"

	"github.com/benjaminschreck/go-odfgen/pkg/odfgen/xml"
)

// Package is one assembled ODF document: the five XML parts plus the
// elements fragments are merged into. A Package belongs to a single build
// and must not be reused for another flavor.
type Package struct {
	Flavor Flavor

	Content  *xml.Document
	Styles   *xml.Document
	Meta     *xml.Document
	Settings *xml.Document
	Manifest *xml.Document

	// Created is used as the modification time of every entry
	Created time.Time

	contentAutomaticStyles *xml.Element
	body                   *xml.Element
	bodyChild              *xml.Element

	stylesSection         *xml.Element
	stylesAutomaticStyles *xml.Element
	masterStyles          *xml.Element

	config   *Config
	logger   *log.Logger
	warnings []*UnsupportedFragmentError
	finished bool
}

// bodyNamespaces are declared on the content and styles roots so merged
// fragments can rely on the conventional prefixes. Finish prunes the ones a
// part does not use.
var bodyNamespaces = []string{
	xml.NSStyle, xml.NSText, xml.NSTable, xml.NSDraw,
	xml.NSFO, xml.NSSVG, xml.NSXLink, xml.NSDC, xml.NSMeta, xml.NSNumber,
	xml.NSPresentation, xml.NSChart, xml.NSConfig,
}

// newPart creates an office document root carrying office:version and the
// given namespace declarations
func newPart(local string, version Version, namespaces ...string) *xml.Document {
	root := etree.NewElement("office:" + local)
	xml.Declare(root, "office", xml.NSOffice)
	for _, uri := range namespaces {
		prefix, _ := xml.PreferredPrefix(uri)
		xml.Declare(root, prefix, uri)
	}
	root.CreateAttr("office:version", string(version))
	return xml.NewDocument(root)
}

// BuildSkeleton creates the minimal set of parts for a flavor. A nil config
// uses DefaultConfig.
func BuildSkeleton(f Flavor, config *Config) *Package {
	config = NewConfigWithDefaults(config)

	p := &Package{
		Flavor:  f,
		Created: time.Now(),
		config:  config,
		logger:  GetLogger(),
	}

	p.buildContent()
	p.buildStyles()
	p.Meta = newPart("document-meta", f.Version)
	p.Settings = newPart("document-settings", f.Version)
	p.Manifest = newManifest(f)

	return p
}

func (p *Package) buildContent() {
	p.Content = newPart("document-content", p.Flavor.Version, bodyNamespaces...)
	root := p.Content.Root()

	p.contentAutomaticStyles = root.CreateElement("office:automatic-styles")
	p.body = root.CreateElement("office:body")
	p.bodyChild = p.body.CreateElement("office:" + p.Flavor.ContentRoot)
}

func (p *Package) buildStyles() {
	cfg := p.config
	p.Styles = newPart("document-styles", p.Flavor.Version, bodyNamespaces...)
	root := p.Styles.Root()

	fontFace := root.CreateElement("office:font-face-decls").CreateElement("style:font-face")
	fontFace.CreateAttr("style:name", cfg.FontName)
	fontFace.CreateAttr("svg:font-family", "'"+cfg.FontName+"'")
	fontFace.CreateAttr("style:font-family-generic", "swiss")
	fontFace.CreateAttr("style:font-pitch", "variable")

	p.stylesSection = root.CreateElement("office:styles")
	for _, ds := range defaultStyles(cfg) {
		p.stylesSection.AddChild(ds)
	}

	p.stylesAutomaticStyles = root.CreateElement("office:automatic-styles")
	p.masterStyles = root.CreateElement("office:master-styles")

	layout := p.stylesAutomaticStyles.CreateElement("style:page-layout")
	layout.CreateAttr("style:name", "TestLayout")
	layoutProps := layout.CreateElement("style:page-layout-properties")
	layoutProps.CreateAttr("fo:margin", cfg.PageMargin)
	layoutProps.CreateAttr("fo:page-height", cfg.PageHeight)
	layoutProps.CreateAttr("fo:page-width", cfg.PageWidth)

	masterPage := p.masterStyles.CreateElement("style:master-page")
	masterPage.CreateAttr("style:name", "Standard")
	masterPage.CreateAttr("style:page-layout-name", "TestLayout")
}

// defaultStyles returns one style:default-style per family. Each is an
// independent copy of the same template; the graphic one also disables
// fill and stroke.
func defaultStyles(cfg *Config) []*xml.Element {
	template := etree.NewElement("style:default-style")
	textProps := template.CreateElement("style:text-properties")
	textProps.CreateAttr("style:font-name", cfg.FontName)
	textProps.CreateAttr("fo:font-size", cfg.FontSize)

	families := []string{"text", "paragraph", "graphic"}
	out := make([]*xml.Element, 0, len(families))
	for _, family := range families {
		ds := template.Copy()
		ds.CreateAttr("style:family", family)
		if family == "graphic" {
			graphicProps := etree.NewElement("style:graphic-properties")
			graphicProps.CreateAttr("draw:fill", "none")
			graphicProps.CreateAttr("draw:stroke", "none")
			ds.InsertChildAt(0, graphicProps)
		}
		out = append(out, ds)
	}
	return out
}

// Warnings returns the fragments that were skipped during merging
func (p *Package) Warnings() []*UnsupportedFragmentError {
	return p.warnings
}

// BodyContent returns the element currently placed inside office:body
func (p *Package) BodyContent() *xml.Element {
	return p.bodyChild
}
