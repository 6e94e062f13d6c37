package xml

import (
	"testing"

	"github.com/beevik/etree"
)

func mustParse(t *testing.T, s string) *Document {
	t.Helper()
	doc, err := ParseString(s)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	return doc
}

func writeString(t *testing.T, doc *Document) string {
	t.Helper()
	s, err := doc.WriteToString()
	if err != nil {
		t.Fatalf("WriteToString failed: %v", err)
	}
	return s
}

func TestAttrValueResolvesPrefix(t *testing.T) {
	doc := mustParse(t, `<o:text xmlns:o="`+NSOffice+`" xmlns:s="`+NSStyle+`" s:name="A" name="plain"/>`)
	root := doc.Root()

	tests := []struct {
		space string
		local string
		want  string
		ok    bool
	}{
		{NSStyle, "name", "A", true},
		{"", "name", "plain", true},
		{NSOffice, "name", "", false},
		{NSStyle, "family", "", false},
	}
	for _, tt := range tests {
		got, ok := AttrValue(root, tt.space, tt.local)
		if got != tt.want || ok != tt.ok {
			t.Errorf("AttrValue(%s, %s) = %q, %v; want %q, %v", tt.space, tt.local, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNewDocumentDeclaration(t *testing.T) {
	root := etree.NewElement("office:document-meta")
	Declare(root, "office", NSOffice)
	root.CreateAttr("office:version", "1.2")
	doc := NewDocument(root)

	want := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?><office:document-meta xmlns:office="` + NSOffice + `" office:version="1.2"/>`
	if got := writeString(t, doc); got != want {
		t.Errorf("output =\n%s\nwant\n%s", got, want)
	}
}

func TestNewDocumentEscapesAttributeNewlines(t *testing.T) {
	root := etree.NewElement("a")
	root.CreateAttr("v", "1\n2")
	got := writeString(t, NewDocument(root))
	doc := mustParse(t, got)
	if v, _ := AttrValue(doc.Root(), "", "v"); v != "1\n2" {
		t.Errorf("attribute value after round trip = %q", v)
	}
}

func TestImportCarriesInheritedDeclarations(t *testing.T) {
	src := mustParse(t, `<office:document-content xmlns:office="`+NSOffice+`" xmlns:t="`+NSText+`">
		<office:text><t:p>x</t:p></office:text>
	</office:document-content>`)
	text := FindChild(src.Root(), NSOffice, "text")
	before := writeString(t, src)

	c := Import(text)

	if c.Parent() != nil {
		t.Error("imported element should be detached")
	}
	if uri, ok := LookupPrefix(c, "t"); !ok || uri != NSText {
		t.Errorf("t prefix on copy = %q, %v", uri, ok)
	}
	if FindChild(c, NSText, "p") == nil {
		t.Error("t:p should resolve on the copy")
	}
	if text.Parent() != src.Root() {
		t.Error("source element was detached")
	}
	if after := writeString(t, src); after != before {
		t.Errorf("source changed:\n%s\n---\n%s", before, after)
	}
}

func TestMoveChildrenKeepsPrefixes(t *testing.T) {
	src := mustParse(t, `<office:automatic-styles xmlns:office="`+NSOffice+`" xmlns:st="`+NSStyle+`"><st:style st:name="A"/>text<st:style st:name="B"/></office:automatic-styles>`).Root()
	dst := etree.NewElement("automatic-styles")

	MoveChildren(dst, src)

	if len(src.Child) != 0 {
		t.Errorf("source still has %d children", len(src.Child))
	}
	if len(dst.Child) != 3 {
		t.Fatalf("expected 3 moved tokens, got %d", len(dst.Child))
	}
	for i, el := range dst.ChildElements() {
		if el.Parent() != dst {
			t.Errorf("child %d has wrong parent", i)
		}
		if !Is(el, NSStyle, "style") {
			t.Errorf("child %d does not resolve to style:style", i)
		}
	}
	if got := Text(dst); got != "text" {
		t.Errorf("text = %q", got)
	}
}

func TestReplaceChild(t *testing.T) {
	parent := etree.NewElement("body")
	first := parent.CreateElement("first")
	second := parent.CreateElement("second")

	replacement := etree.NewElement("text")
	if !ReplaceChild(parent, replacement, first) {
		t.Fatal("ReplaceChild returned false for an existing child")
	}
	got := parent.ChildElements()
	if len(got) != 2 || got[0] != replacement || got[1] != second {
		t.Fatalf("unexpected children after replace: %v", got)
	}
	if first.Parent() != nil {
		t.Error("replaced child should be detached")
	}
	if ReplaceChild(parent, etree.NewElement("x"), first) {
		t.Error("ReplaceChild should fail for an element that is no longer a child")
	}

	last := etree.NewElement("last")
	if !ReplaceChild(parent, last, second) || parent.ChildElements()[1] != last {
		t.Error("replacing the last child should keep its position")
	}
}

func TestFindAllAndText(t *testing.T) {
	doc := mustParse(t, `<office:text xmlns:office="`+NSOffice+`" xmlns:text="`+NSText+`">
		<text:p>a<text:span>b</text:span></text:p>
		<text:section><text:p>c</text:p></text:section>
	</office:text>`)

	ps := FindAll(doc.Root(), NSText, "p")
	if len(ps) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(ps))
	}
	if got := Text(ps[0]); got != "ab" {
		t.Errorf("Text = %q, want ab", got)
	}
	if got := Text(ps[1]); got != "c" {
		t.Errorf("Text = %q, want c", got)
	}
}
