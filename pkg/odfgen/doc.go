// Package odfgen assembles synthetic OpenDocument (ODF) packages for use as
// test fixtures.
//
// Given a flavor such as "odt1.2" or "ods1.1xml" and a list of XML fragments,
// odfgen builds the minimal skeleton an ODF consumer expects, merges the
// fragments into the right parts and writes the result as a ZIP container
// following the ODF packaging rules.
//
// # Quick Start
//
//	fragments, err := xml.ParseElements(strings.NewReader(`
//	    <office:text xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"
//	                 xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0">
//	        <text:p>Hello</text:p>
//	    </office:text>`))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := odfgen.Generate("hello.odt", "odt1.2", fragments...); err != nil {
//	    log.Fatal(err)
//	}
//
// # Flavors
//
// A flavor identifier is a document-type tag followed by a version variant:
//
//	odt  text            odg  graphics        odp  presentation
//	ods  spreadsheet     odc  chart           odi  image
//	odf  formula         odm  text-master     oth  text-master
//
// The variant must contain "1.0", "1.1" or "1.2"; KnownFlavors lists the
// enumerated identifiers. Identifiers that cannot be resolved fail the build
// with a *FlavorError.
//
// # Skeleton
//
// Every package contains content.xml, styles.xml, meta.xml, settings.xml and
// META-INF/manifest.xml. styles.xml declares a Helvetica 12pt font face,
// default styles for the text, paragraph and graphic families, a 10cm x 12cm
// page layout named "TestLayout" and a master page "Standard" using it.
//
// # Fragments
//
// Fragments are merged in the order given:
//
//	office:document-content  children merged into content.xml
//	office:document-styles   children merged into styles.xml
//	office:<body element>    replaces the body content, last one wins
//	office:automatic-styles  children appended to content.xml automatic styles
//	office:styles            children appended to styles.xml
//	office:master-styles     children appended to styles.xml
//
// Other fragments are skipped with a warning, or fail the build when
// Config.StrictMode is set.
//
// # Packaging
//
// The first ZIP entry is "mimetype", stored uncompressed. The XML parts
// follow deflated in the order manifest, content, styles, meta, settings.
// WritePackage syncs the file before returning.
package odfgen
