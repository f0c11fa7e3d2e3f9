package dom

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	// ErrElementNotFound is returned when an id does not resolve to an element.
	ErrElementNotFound = errors.New("dom: element not found")
	// ErrInvalidID is returned for ids that cannot be used as selectors.
	ErrInvalidID = errors.New("dom: invalid element id")
)

var idPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// ValidID reports whether id can be looked up safely.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

// Document is a mutable HTML document.
type Document struct {
	doc *goquery.Document
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	if r == nil {
		return nil, errors.New("dom: reader is nil")
	}
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parse document: %w", err)
	}
	return &Document{doc: doc}, nil
}

// ParseString is Parse for in-memory markup.
func ParseString(markup string) (*Document, error) {
	return Parse(strings.NewReader(markup))
}

// Element resolves id to its element.
func (d *Document) Element(id string) (*Element, error) {
	if !ValidID(id) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	sel := d.doc.Find("#" + id).First()
	if sel.Length() == 0 {
		return nil, fmt.Errorf("%w: #%s", ErrElementNotFound, id)
	}
	return &Element{sel: sel}, nil
}

// Has reports whether an element with id exists.
func (d *Document) Has(id string) bool {
	_, err := d.Element(id)
	return err == nil
}

// Inputs returns every input element inside the form identified by formID.
func (d *Document) Inputs(formID string) ([]*Element, error) {
	form, err := d.Element(formID)
	if err != nil {
		return nil, err
	}
	var out []*Element
	form.sel.Find("input").Each(func(_ int, sel *goquery.Selection) {
		out = append(out, &Element{sel: sel})
	})
	return out, nil
}

// ResetForm empties every editable input inside the form, mirroring a form
// reset on a page that ships without default values.
func (d *Document) ResetForm(formID string) error {
	inputs, err := d.Inputs(formID)
	if err != nil {
		return err
	}
	for _, input := range inputs {
		switch strings.ToLower(input.Attr("type")) {
		case "submit", "button", "reset", "hidden":
			continue
		}
		input.SetValue("")
	}
	return nil
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	for _, node := range d.doc.Nodes {
		if err := html.Render(w, node); err != nil {
			return fmt.Errorf("dom: render: %w", err)
		}
	}
	return nil
}

// HTML serializes the document.
func (d *Document) HTML() (string, error) {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
