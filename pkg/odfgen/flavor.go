package odfgen

import (
	"strings"
)

// Family is the ODF document family that names the package mimetype
type Family string

const (
	FamilyText         Family = "text"
	FamilyGraphics     Family = "graphics"
	FamilyPresentation Family = "presentation"
	FamilySpreadsheet  Family = "spreadsheet"
	FamilyChart        Family = "chart"
	FamilyImage        Family = "image"
	FamilyFormula      Family = "formula"
	FamilyTextMaster   Family = "text-master"
)

// Version is an ODF schema version
type Version string

const (
	Version10 Version = "1.0"
	Version11 Version = "1.1"
	Version12 Version = "1.2"
)

// MimeTypePrefix is shared by every ODF package mimetype
const MimeTypePrefix = "application/vnd.oasis.opendocument."

// Flavor is a resolved document flavor
type Flavor struct {
	// ID is the identifier the flavor was resolved from, e.g. "odt1.2ext"
	ID string
	// Tag is the document-type tag, e.g. "odt"
	Tag     string
	Family  Family
	Version Version
	// ContentRoot is the local name of the element opened inside office:body
	ContentRoot string
}

// MimeType returns the package mimetype, e.g. application/vnd.oasis.opendocument.text
func (f Flavor) MimeType() string {
	return MimeTypePrefix + string(f.Family)
}

// Extension returns the file extension used for packages of this flavor
func (f Flavor) Extension() string {
	return f.Tag
}

// documentTypes maps each document-type tag to its family, in enumeration order.
// Both the master document and the "other" type map to text-master.
var documentTypes = []struct {
	tag    string
	family Family
}{
	{"odt", FamilyText},
	{"odg", FamilyGraphics},
	{"odp", FamilyPresentation},
	{"ods", FamilySpreadsheet},
	{"odc", FamilyChart},
	{"odi", FamilyImage},
	{"odf", FamilyFormula},
	{"odm", FamilyTextMaster},
	{"oth", FamilyTextMaster},
}

// contentRootOverrides lists the families whose body element is not named after the family
var contentRootOverrides = map[Family]string{
	FamilyGraphics:   "drawing",
	FamilyTextMaster: "text",
}

// versionRules are checked in order against the identifier
var versionRules = []Version{Version10, Version11, Version12}

// flavorVariants are appended to each tag to form the enumerated identifiers
var flavorVariants = []string{"1.0", "1.1", "1.2", "1.2ext", "1.0xml", "1.1xml", "1.2xml", "1.2extxml"}

// KnownFlavors returns every enumerated flavor identifier
func KnownFlavors() []string {
	ids := make([]string, 0, len(documentTypes)*len(flavorVariants))
	for _, dt := range documentTypes {
		for _, v := range flavorVariants {
			ids = append(ids, dt.tag+v)
		}
	}
	return ids
}

// ResolveFlavor maps a flavor identifier to its family, schema version and
// content root. Identifiers without a known tag or without a version
// substring fail with a *FlavorError.
func ResolveFlavor(id string) (Flavor, error) {
	normalized := strings.ToLower(strings.TrimSpace(id))

	tag := leadingLetters(normalized)
	var family Family
	for _, dt := range documentTypes {
		if dt.tag == tag {
			family = dt.family
			break
		}
	}
	if family == "" {
		return Flavor{}, NewFlavorError(id, "unknown document type")
	}

	var version Version
	for _, v := range versionRules {
		if strings.Contains(normalized, string(v)) {
			version = v
			break
		}
	}
	if version == "" {
		return Flavor{}, NewFlavorError(id, "no schema version")
	}

	root := string(family)
	if override, ok := contentRootOverrides[family]; ok {
		root = override
	}

	return Flavor{
		ID:          normalized,
		Tag:         tag,
		Family:      family,
		Version:     version,
		ContentRoot: root,
	}, nil
}

// MustResolveFlavor is ResolveFlavor for identifiers known to be valid
func MustResolveFlavor(id string) Flavor {
	f, err := ResolveFlavor(id)
	if err != nil {
		panic(err)
	}
	return f
}

func leadingLetters(s string) string {
	for i, r := range s {
		if r < 'a' || r > 'z' {
			return s[:i]
		}
	}
	return s
}
