package xml

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
)

// ErrNoElement is returned when the input holds no element at all
var ErrNoElement = errors.New("no root element")

// Parse reads a single XML document
func Parse(r io.Reader) (*Document, error) {
	doc, err := read(r)
	if err != nil {
		return nil, err
	}
	switch n := len(doc.ChildElements()); {
	case n == 0:
		return nil, ErrNoElement
	case n > 1:
		return nil, fmt.Errorf("expected one root element, found %d", n)
	}
	return doc, nil
}

// ParseString reads a single XML document from s
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// ParseElements reads a sequence of sibling elements. Text and comments
// between the top-level elements are dropped. The elements stay attached to
// the holder document they were read into; use Import to place them
// elsewhere.
func ParseElements(r io.Reader) ([]*Element, error) {
	doc, err := read(r)
	if err != nil {
		return nil, err
	}
	return doc.ChildElements(), nil
}

func read(r io.Reader) (*etree.Document, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}
	return doc, nil
}
