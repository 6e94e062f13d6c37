package odfgen

import (
	"github.com/beevik/etree"

	"github.com/benjaminschreck/go-odfgen/pkg/odfgen/xml"
)

// Part names inside the package, in the order they are written
const (
	PartMimetype = "mimetype"
	PartManifest = "META-INF/manifest.xml"
	PartContent  = "content.xml"
	PartStyles   = "styles.xml"
	PartMeta     = "meta.xml"
	PartSettings = "settings.xml"
)

// xmlPartMediaType is the media type listed for every XML part
const xmlPartMediaType = "text/xml"

// ManifestEntry is one manifest:file-entry
type ManifestEntry struct {
	MediaType string
	FullPath  string
}

// newManifest lists the package root and the four XML parts. manifest:version
// only exists from ODF 1.2 on.
func newManifest(f Flavor) *xml.Document {
	root := etree.NewElement("manifest:manifest")
	xml.Declare(root, "manifest", xml.NSManifest)
	if f.Version == Version12 {
		root.CreateAttr("manifest:version", string(f.Version))
	}
	doc := xml.NewDocument(root)

	addFileEntry(root, ManifestEntry{MediaType: f.MimeType(), FullPath: "/"})
	for _, part := range []string{PartContent, PartStyles, PartMeta, PartSettings} {
		addFileEntry(root, ManifestEntry{MediaType: xmlPartMediaType, FullPath: part})
	}
	return doc
}

func fileEntries(root *xml.Element) []*xml.Element {
	var out []*xml.Element
	for _, fe := range root.ChildElements() {
		if xml.Is(fe, xml.NSManifest, "file-entry") {
			out = append(out, fe)
		}
	}
	return out
}

// addFileEntry appends an entry, or updates the media type when the path is
// already listed
func addFileEntry(root *xml.Element, entry ManifestEntry) {
	for _, fe := range fileEntries(root) {
		if path, _ := xml.AttrValue(fe, xml.NSManifest, "full-path"); path == entry.FullPath {
			fe.CreateAttr("manifest:media-type", entry.MediaType)
			return
		}
	}
	fe := root.CreateElement("manifest:file-entry")
	fe.CreateAttr("manifest:media-type", entry.MediaType)
	fe.CreateAttr("manifest:full-path", entry.FullPath)
}

// AddManifestEntry lists an additional path in the manifest. Paths are
// unique; adding an existing path replaces its media type.
func (p *Package) AddManifestEntry(entry ManifestEntry) {
	addFileEntry(p.Manifest.Root(), entry)
}

// ManifestEntries returns the manifest entries in document order
func (p *Package) ManifestEntries() []ManifestEntry {
	var entries []ManifestEntry
	for _, fe := range fileEntries(p.Manifest.Root()) {
		mediaType, _ := xml.AttrValue(fe, xml.NSManifest, "media-type")
		path, _ := xml.AttrValue(fe, xml.NSManifest, "full-path")
		entries = append(entries, ManifestEntry{MediaType: mediaType, FullPath: path})
	}
	return entries
}
