package odfgen

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/benjaminschreck/go-odfgen/pkg/odfgen/xml"
)

const (
	nsDecls = `xmlns:office="` + xml.NSOffice + `" xmlns:style="` + xml.NSStyle + `" xmlns:text="` + xml.NSText + `" xmlns:fo="` + xml.NSFO + `"`
)

// mustFragments parses XML text into fragments
func mustFragments(t *testing.T, s string) []*xml.Element {
	t.Helper()
	elems, err := xml.ParseElements(strings.NewReader(s))
	if err != nil {
		t.Fatalf("failed to parse fragments: %v", err)
	}
	return elems
}

// mustFragment parses XML text holding exactly one fragment
func mustFragment(t *testing.T, s string) *xml.Element {
	t.Helper()
	elems := mustFragments(t, s)
	if len(elems) != 1 {
		t.Fatalf("expected one fragment, got %d", len(elems))
	}
	return elems[0]
}

// packageBytes writes p into memory
func packageBytes(t *testing.T, p *Package) []byte {
	t.Helper()
	var buf bytes.Buffer
	if _, err := p.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	return buf.Bytes()
}

func openZip(t *testing.T, data []byte) *zip.Reader {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("failed to read zip: %v", err)
	}
	return zr
}

func readEntry(t *testing.T, zr *zip.Reader, name string) []byte {
	t.Helper()
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open %s: %v", name, err)
		}
		defer rc.Close()
		content, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("failed to read %s: %v", name, err)
		}
		return content
	}
	t.Fatalf("entry %s not found", name)
	return nil
}

// parseEntry reads a written XML part back into a tree
func parseEntry(t *testing.T, zr *zip.Reader, name string) *xml.Document {
	t.Helper()
	doc, err := xml.Parse(bytes.NewReader(readEntry(t, zr, name)))
	if err != nil {
		t.Fatalf("%s is not well-formed: %v", name, err)
	}
	return doc
}

func quietConfig() *Config {
	cfg := DefaultConfig()
	cfg.LogLevel = "off"
	return cfg
}

func newTestPackage(t *testing.T, flavorID string) *Package {
	t.Helper()
	f, err := ResolveFlavor(flavorID)
	if err != nil {
		t.Fatalf("ResolveFlavor(%q) failed: %v", flavorID, err)
	}
	p := BuildSkeleton(f, quietConfig())
	p.logger = NewLogger(io.Discard, LogOff)
	return p
}
