package dom_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-formcheck/pkg/dom"
)

const page = `<!doctype html>
<html><body>
<form id="myForm">
  <input type="text" id="fullName" value="Ada">
  <input type="email" id="email" class="control">
  <button type="submit">Send</button>
  <input type="submit" id="go" value="Go">
</form>
<div id="outside" style="color: red"></div>
</body></html>`

func mustParse(t *testing.T) *dom.Document {
	t.Helper()
	doc, err := dom.ParseString(page)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func TestElementLookup(t *testing.T) {
	doc := mustParse(t)

	el, err := doc.Element("fullName")
	if err != nil {
		t.Fatalf("element: %v", err)
	}
	if el.Value() != "Ada" {
		t.Fatalf("expected value Ada, got %q", el.Value())
	}

	if _, err := doc.Element("missing"); !errors.Is(err, dom.ErrElementNotFound) {
		t.Fatalf("expected ErrElementNotFound, got %v", err)
	}
	if _, err := doc.Element("bad id"); !errors.Is(err, dom.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if !doc.Has("email") || doc.Has("nope") {
		t.Fatalf("Has reported unexpected result")
	}
}

func TestElementClasses(t *testing.T) {
	doc := mustParse(t)
	el, _ := doc.Element("email")

	el.AddClass("is-invalid")
	el.AddClass("is-invalid")
	if !el.HasClass("control") || !el.HasClass("is-invalid") {
		t.Fatalf("expected both classes, got %q", el.Attr("class"))
	}
	if got := strings.Count(el.Attr("class"), "is-invalid"); got != 1 {
		t.Fatalf("expected class once, got %d in %q", got, el.Attr("class"))
	}

	el.ToggleClass("is-invalid", false)
	el.RemoveClass("control")
	if got := el.Attr("class"); got != "" {
		t.Fatalf("expected class attribute removed, got %q", got)
	}
}

func TestElementDisplay(t *testing.T) {
	doc := mustParse(t)
	el, _ := doc.Element("outside")

	if !el.Visible() {
		t.Fatalf("expected element without display to be visible")
	}
	el.Hide()
	if el.Visible() || el.Display() != "none" {
		t.Fatalf("expected hidden, style=%q", el.Attr("style"))
	}
	el.Show()
	if got := el.Attr("style"); got != "color: red; display: block" {
		t.Fatalf("unexpected style %q", got)
	}
}

func TestInsertAfterSanitizes(t *testing.T) {
	doc := mustParse(t)
	el, _ := doc.Element("fullName")

	el.InsertAfter(`<div id="fullName-error" class="error-message" onclick="steal()"><script>x()</script>Oops</div>`)

	next, ok := el.Next()
	if !ok {
		t.Fatalf("expected inserted sibling")
	}
	if next.ID() != "fullName-error" || !next.HasClass("error-message") {
		t.Fatalf("unexpected sibling id=%q class=%q", next.ID(), next.Attr("class"))
	}
	if next.Attr("onclick") != "" {
		t.Fatalf("expected event handler stripped")
	}
	if strings.Contains(next.Text(), "x()") || next.Text() != "Oops" {
		t.Fatalf("unexpected text %q", next.Text())
	}
}

func TestResetFormAndRender(t *testing.T) {
	doc := mustParse(t)
	email, _ := doc.Element("email")
	email.SetValue("ada@example.com")

	if err := doc.ResetForm("myForm"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	name, _ := doc.Element("fullName")
	if name.Value() != "" || email.Value() != "" {
		t.Fatalf("expected empty values after reset")
	}
	submit, _ := doc.Element("go")
	if submit.Value() != "Go" {
		t.Fatalf("expected submit input untouched, got %q", submit.Value())
	}

	out, err := doc.HTML()
	if err != nil {
		t.Fatalf("html: %v", err)
	}
	if strings.Contains(out, `value="Ada"`) || !strings.Contains(out, `id="myForm"`) {
		t.Fatalf("unexpected rendered document:\n%s", out)
	}

	inputs, err := doc.Inputs("myForm")
	if err != nil || len(inputs) != 3 {
		t.Fatalf("expected 3 inputs, got %d (%v)", len(inputs), err)
	}
}

func TestSanitizeFragment(t *testing.T) {
	got := dom.SanitizeFragment(`<ul><li id="pw-min" class="invalid" style="color:red">Min</li></ul><img src=x>`)
	if got != `<ul><li id="pw-min" class="invalid">Min</li></ul>` {
		t.Fatalf("unexpected sanitized fragment %q", got)
	}
	if dom.SanitizeFragment("   ") != "" {
		t.Fatalf("expected empty output for blank fragment")
	}
}
