package dom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Element is a single node of a Document.
type Element struct {
	sel *goquery.Selection
}

// ID returns the element id attribute.
func (e *Element) ID() string {
	return e.Attr("id")
}

// Attr returns the named attribute or an empty string.
func (e *Element) Attr(name string) string {
	value, _ := e.sel.Attr(name)
	return value
}

// Value returns the current value of an input.
func (e *Element) Value() string {
	return e.Attr("value")
}

// SetValue replaces the input value. An empty value drops the attribute.
func (e *Element) SetValue(value string) {
	if value == "" {
		e.sel.RemoveAttr("value")
		return
	}
	e.sel.SetAttr("value", value)
}

// HasClass reports whether class is present.
func (e *Element) HasClass(class string) bool {
	return e.sel.HasClass(class)
}

// AddClass adds classes that are not present yet.
func (e *Element) AddClass(classes ...string) {
	e.sel.AddClass(classes...)
	e.dropEmptyClass()
}

// RemoveClass removes classes when present.
func (e *Element) RemoveClass(classes ...string) {
	e.sel.RemoveClass(classes...)
	e.dropEmptyClass()
}

// ToggleClass adds class when on is true and removes it otherwise.
func (e *Element) ToggleClass(class string, on bool) {
	if on {
		e.AddClass(class)
		return
	}
	e.RemoveClass(class)
}

func (e *Element) dropEmptyClass() {
	if value, ok := e.sel.Attr("class"); ok && strings.TrimSpace(value) == "" {
		e.sel.RemoveAttr("class")
	}
}

// Text returns the combined text content.
func (e *Element) Text() string {
	return e.sel.Text()
}

// SetText replaces the children with a text node.
func (e *Element) SetText(text string) {
	e.sel.SetText(text)
}

// Next returns the following element sibling, if any.
func (e *Element) Next() (*Element, bool) {
	next := e.sel.Next()
	if next.Length() == 0 {
		return nil, false
	}
	return &Element{sel: next}, true
}

// InsertAfter sanitizes fragment and inserts it as the next sibling.
func (e *Element) InsertAfter(fragment string) {
	e.sel.AfterHtml(SanitizeFragment(fragment))
}

// Display returns the inline display value, or "" when unset.
func (e *Element) Display() string {
	for _, decl := range splitStyle(e.Attr("style")) {
		if decl.name == "display" {
			return decl.value
		}
	}
	return ""
}

// Visible reports whether the inline style leaves the element displayed.
func (e *Element) Visible() bool {
	return e.Display() != "none"
}

// Show sets the inline display to block.
func (e *Element) Show() {
	e.setDisplay("block")
}

// Hide sets the inline display to none.
func (e *Element) Hide() {
	e.setDisplay("none")
}

func (e *Element) setDisplay(value string) {
	decls := splitStyle(e.Attr("style"))
	found := false
	for i := range decls {
		if decls[i].name == "display" {
			decls[i].value = value
			found = true
		}
	}
	if !found {
		decls = append(decls, styleDecl{name: "display", value: value})
	}
	e.sel.SetAttr("style", joinStyle(decls))
}

type styleDecl struct {
	name  string
	value string
}

func splitStyle(style string) []styleDecl {
	var out []styleDecl
	for _, part := range strings.Split(style, ";") {
		name, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		out = append(out, styleDecl{name: name, value: strings.TrimSpace(value)})
	}
	return out
}

func joinStyle(decls []styleDecl) string {
	parts := make([]string, 0, len(decls))
	for _, decl := range decls {
		parts = append(parts, decl.name+": "+decl.value)
	}
	return strings.Join(parts, "; ")
}
