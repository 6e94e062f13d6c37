package odfgen

import (
	"archive/zip"
	"bufio"
	"hash/crc32"
	"io"
	"os"
	"time"

	"github.com/benjaminschreck/go-odfgen/pkg/odfgen/xml"
)

// part pairs an entry name with the document written into it
type part struct {
	name string
	doc  *xml.Document
}

// parts returns the XML parts in package order
func (p *Package) parts() []part {
	return []part{
		{PartManifest, p.Manifest},
		{PartContent, p.Content},
		{PartStyles, p.Styles},
		{PartMeta, p.Meta},
		{PartSettings, p.Settings},
	}
}

// indentUnit returns the string repeated per nesting level, empty when
// indentation is switched off
func (p *Package) indentUnit() string {
	if p.config.NoIndent {
		return ""
	}
	return p.config.Indent
}

// WritePackage writes p to path and syncs it to storage before returning.
//
// On error the file at path may be left truncated; it is not removed.
func WritePackage(path string, p *Package) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return NewDocumentError("create", path, err)
	}

	buffered := bufio.NewWriter(file)
	if _, err := p.WriteTo(buffered); err != nil {
		file.Close()
		return NewDocumentError("write", path, err)
	}
	if err := buffered.Flush(); err != nil {
		file.Close()
		return NewDocumentError("flush", path, err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		return NewDocumentError("sync", path, err)
	}
	if err := file.Close(); err != nil {
		return NewDocumentError("close", path, err)
	}

	p.logger.Debug("wrote package", "path", path, "flavor", p.Flavor.ID)
	return nil
}

// WriteTo writes the package as a ZIP container. The package is finished
// first if that has not happened yet.
//
// The mimetype entry comes first and is stored uncompressed with its size
// and checksum taken from the literal bytes. The XML parts follow, deflated
// and streamed straight from an indented copy of each tree, so the package
// itself is never changed by writing.
func (p *Package) WriteTo(w io.Writer) (int64, error) {
	p.Finish()

	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)

	if err := p.writeMimetype(zw); err != nil {
		return cw.n, err
	}

	unit := p.indentUnit()
	for _, pt := range p.parts() {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     pt.name,
			Method:   zip.Deflate,
			Modified: p.Created,
		})
		if err != nil {
			return cw.n, NewDocumentError("create entry", pt.name, err)
		}
		out := xml.NewDocument(pt.doc.Root().Copy())
		xml.Indent(out, unit)
		if _, err := out.WriteTo(fw); err != nil {
			return cw.n, NewDocumentError("encode", pt.name, err)
		}
		p.logger.Debug("wrote entry", "entry", pt.name)
	}

	if err := zw.Close(); err != nil {
		return cw.n, NewDocumentError("finalize", "", err)
	}
	return cw.n, nil
}

// writeMimetype writes the stored mimetype entry. CreateRaw does not derive
// the MS-DOS date fields from Modified, so they are filled in here to match
// the deflated entries.
func (p *Package) writeMimetype(zw *zip.Writer) error {
	data := []byte(p.Flavor.MimeType())
	date, clock := msDosTime(p.Created)
	fw, err := zw.CreateRaw(&zip.FileHeader{
		Name:               PartMimetype,
		Method:             zip.Store,
		Modified:           p.Created,
		ModifiedDate:       date,
		ModifiedTime:       clock,
		CRC32:              crc32.ChecksumIEEE(data),
		CompressedSize64:   uint64(len(data)),
		UncompressedSize64: uint64(len(data)),
	})
	if err != nil {
		return NewDocumentError("create entry", PartMimetype, err)
	}
	if _, err := fw.Write(data); err != nil {
		return NewDocumentError("write entry", PartMimetype, err)
	}
	return nil
}

// msDosTime encodes t the way zip.Writer.CreateHeader does
func msDosTime(t time.Time) (date, clock uint16) {
	date = uint16(t.Day() + int(t.Month())<<5 + (t.Year()-1980)<<9)
	clock = uint16(t.Second()/2 + t.Minute()<<5 + t.Hour()<<11)
	return date, clock
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}
