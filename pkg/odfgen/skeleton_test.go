package odfgen

import (
	"testing"

	"github.com/benjaminschreck/go-odfgen/pkg/odfgen/xml"
)

func TestBuildSkeletonContent(t *testing.T) {
	tests := []struct {
		flavor   string
		bodyName string
	}{
		{"odt1.2", "text"},
		{"odg1.0", "drawing"},
		{"odp1.1", "presentation"},
		{"ods1.2ext", "spreadsheet"},
		{"odc1.2", "chart"},
		{"odi1.0xml", "image"},
		{"odf1.1", "formula"},
		{"odm1.2", "text"},
	}

	for _, tt := range tests {
		t.Run(tt.flavor, func(t *testing.T) {
			p := newTestPackage(t, tt.flavor)
			root := p.Content.Root()

			if !xml.Is(root, xml.NSOffice, "document-content") {
				t.Fatalf("content root = %s", xml.QName(xml.NameOf(root)))
			}
			if v, _ := xml.AttrValue(root, xml.NSOffice, "version"); v != string(p.Flavor.Version) {
				t.Errorf("office:version = %q, want %q", v, p.Flavor.Version)
			}

			children := root.ChildElements()
			if len(children) != 2 {
				t.Fatalf("expected 2 children of document-content, got %d", len(children))
			}
			if !xml.Is(children[0], xml.NSOffice, "automatic-styles") {
				t.Errorf("first child = %s, want office:automatic-styles", xml.QName(xml.NameOf(children[0])))
			}
			if !xml.Is(children[1], xml.NSOffice, "body") {
				t.Errorf("second child = %s, want office:body", xml.QName(xml.NameOf(children[1])))
			}

			body := children[1].ChildElements()
			if len(body) != 1 || !xml.Is(body[0], xml.NSOffice, tt.bodyName) {
				t.Fatalf("body should hold exactly office:%s", tt.bodyName)
			}
			if p.BodyContent() != body[0] {
				t.Error("BodyContent() should return the element inside office:body")
			}
		})
	}
}

func TestBuildSkeletonStyles(t *testing.T) {
	p := newTestPackage(t, "odt1.2")
	root := p.Styles.Root()

	var names []string
	for _, c := range root.ChildElements() {
		names = append(names, c.Tag)
	}
	want := []string{"font-face-decls", "styles", "automatic-styles", "master-styles"}
	if len(names) != len(want) {
		t.Fatalf("styles.xml sections = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("section %d = %s, want %s", i, names[i], want[i])
		}
	}

	fontFace := xml.FindChild(xml.FindChild(root, xml.NSOffice, "font-face-decls"), xml.NSStyle, "font-face")
	if fontFace == nil {
		t.Fatal("missing style:font-face")
	}
	attrs := map[xml.Name]string{
		{Space: xml.NSStyle, Local: "name"}:                "Helvetica",
		{Space: xml.NSSVG, Local: "font-family"}:           "'Helvetica'",
		{Space: xml.NSStyle, Local: "font-family-generic"}: "swiss",
		{Space: xml.NSStyle, Local: "font-pitch"}:          "variable",
	}
	for name, want := range attrs {
		if got, _ := xml.AttrValue(fontFace, name.Space, name.Local); got != want {
			t.Errorf("font-face %s = %q, want %q", name.Local, got, want)
		}
	}

	layout := xml.FindChild(xml.FindChild(root, xml.NSOffice, "automatic-styles"), xml.NSStyle, "page-layout")
	if layout == nil {
		t.Fatal("missing style:page-layout")
	}
	if name, _ := xml.AttrValue(layout, xml.NSStyle, "name"); name != "TestLayout" {
		t.Errorf("page layout name = %q", name)
	}
	props := xml.FindChild(layout, xml.NSStyle, "page-layout-properties")
	for local, want := range map[string]string{"margin": "1cm", "page-height": "12cm", "page-width": "10cm"} {
		if got, _ := xml.AttrValue(props, xml.NSFO, local); got != want {
			t.Errorf("fo:%s = %q, want %q", local, got, want)
		}
	}

	master := xml.FindChild(xml.FindChild(root, xml.NSOffice, "master-styles"), xml.NSStyle, "master-page")
	if master == nil {
		t.Fatal("missing style:master-page")
	}
	if name, _ := xml.AttrValue(master, xml.NSStyle, "name"); name != "Standard" {
		t.Errorf("master page name = %q", name)
	}
	if layoutName, _ := xml.AttrValue(master, xml.NSStyle, "page-layout-name"); layoutName != "TestLayout" {
		t.Errorf("master page layout = %q", layoutName)
	}
}

func TestDefaultStylesAreDistinct(t *testing.T) {
	p := newTestPackage(t, "odg1.2")
	defaults := xml.FindAll(xml.FindChild(p.Styles.Root(), xml.NSOffice, "styles"), xml.NSStyle, "default-style")
	if len(defaults) != 3 {
		t.Fatalf("expected 3 default styles, got %d", len(defaults))
	}

	families := []string{"text", "paragraph", "graphic"}
	for i, ds := range defaults {
		if family, _ := xml.AttrValue(ds, xml.NSStyle, "family"); family != families[i] {
			t.Errorf("default style %d family = %q, want %q", i, family, families[i])
		}
		textProps := xml.FindChild(ds, xml.NSStyle, "text-properties")
		if textProps == nil {
			t.Errorf("%s default style has no text-properties", families[i])
			continue
		}
		if size, _ := xml.AttrValue(textProps, xml.NSFO, "font-size"); size != "12pt" {
			t.Errorf("font-size = %q, want 12pt", size)
		}
		if font, _ := xml.AttrValue(textProps, xml.NSStyle, "font-name"); font != "Helvetica" {
			t.Errorf("font-name = %q, want Helvetica", font)
		}
	}

	graphic := defaults[2].ChildElements()
	if len(graphic) != 2 || !xml.Is(graphic[0], xml.NSStyle, "graphic-properties") {
		t.Fatal("graphic default style should start with style:graphic-properties")
	}
	for _, local := range []string{"fill", "stroke"} {
		if v, _ := xml.AttrValue(graphic[0], xml.NSDraw, local); v != "none" {
			t.Errorf("draw:%s = %q, want none", local, v)
		}
	}

	for _, ds := range defaults[:2] {
		if xml.FindChild(ds, xml.NSStyle, "graphic-properties") != nil {
			t.Error("only the graphic default style should carry graphic-properties")
		}
	}

	// mutating one default style must not affect the others
	xml.FindChild(defaults[0], xml.NSStyle, "text-properties").CreateAttr("fo:font-size", "20pt")
	if size, _ := xml.AttrValue(xml.FindChild(defaults[1], xml.NSStyle, "text-properties"), xml.NSFO, "font-size"); size != "12pt" {
		t.Errorf("default styles share children: paragraph font-size = %q", size)
	}
}

func TestBuildSkeletonUsesConfig(t *testing.T) {
	cfg := quietConfig()
	cfg.FontName = "Courier"
	cfg.PageWidth = "21cm"

	p := BuildSkeleton(MustResolveFlavor("odt1.2"), cfg)

	fontFace := xml.FindAll(p.Styles.Root(), xml.NSStyle, "font-face")[0]
	if name, _ := xml.AttrValue(fontFace, xml.NSStyle, "name"); name != "Courier" {
		t.Errorf("font face name = %q, want Courier", name)
	}
	props := xml.FindAll(p.Styles.Root(), xml.NSStyle, "page-layout-properties")[0]
	if width, _ := xml.AttrValue(props, xml.NSFO, "page-width"); width != "21cm" {
		t.Errorf("page width = %q, want 21cm", width)
	}
}

func TestBuildSkeletonOtherParts(t *testing.T) {
	p := newTestPackage(t, "ods1.1")

	if !xml.Is(p.Meta.Root(), xml.NSOffice, "document-meta") {
		t.Errorf("meta root = %s", xml.QName(xml.NameOf(p.Meta.Root())))
	}
	if !xml.Is(p.Settings.Root(), xml.NSOffice, "document-settings") {
		t.Errorf("settings root = %s", xml.QName(xml.NameOf(p.Settings.Root())))
	}
	for _, doc := range []*xml.Document{p.Meta, p.Settings, p.Styles} {
		if v, _ := xml.AttrValue(doc.Root(), xml.NSOffice, "version"); v != "1.1" {
			t.Errorf("%s office:version = %q, want 1.1", doc.Root().Tag, v)
		}
	}
	if len(p.Warnings()) != 0 {
		t.Errorf("fresh package has %d warnings", len(p.Warnings()))
	}
}

func TestNewPartDeclaresPrefixes(t *testing.T) {
	tests := []struct {
		name string
		doc  func(*Package) *xml.Document
		want []string
	}{
		{"meta", func(p *Package) *xml.Document { return p.Meta }, []string{"office"}},
		{"settings", func(p *Package) *xml.Document { return p.Settings }, []string{"office"}},
		{"manifest", func(p *Package) *xml.Document { return p.Manifest }, []string{"manifest"}},
	}

	p := newTestPackage(t, "odt1.2")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, ns := range xml.Declarations(tt.doc(p).Root()) {
				got = append(got, ns.Prefix)
			}
			if len(got) != len(tt.want) || got[0] != tt.want[0] {
				t.Errorf("declarations = %v, want %v", got, tt.want)
			}
		})
	}

	for _, doc := range []*xml.Document{p.Content, p.Styles} {
		for _, prefix := range []string{"office", "style", "text", "table", "draw", "fo", "svg"} {
			if _, ok := xml.LookupPrefix(doc.Root(), prefix); !ok {
				t.Errorf("%s does not declare %s", doc.Root().Tag, prefix)
			}
		}
	}
}
