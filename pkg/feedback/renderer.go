package feedback

import (
	"fmt"
	"html"

	"github.com/goliatone/go-formcheck/pkg/dom"
)

// MessageID returns the id of the diagnostic element attached to fieldID.
func MessageID(fieldID string) string {
	return fieldID + "-error"
}

// Renderer applies field-level feedback to a document.
type Renderer struct {
	classes Classes
}

// NewRenderer builds a Renderer. Panel specific options are ignored.
func NewRenderer(options ...Option) *Renderer {
	cfg := newConfig(options)
	return &Renderer{classes: cfg.classes}
}

// Classes returns the marker classes in use.
func (r *Renderer) Classes() Classes {
	return r.classes
}

// ShowError marks the field invalid and shows message in the diagnostic
// element that follows it, creating that element on first use.
func (r *Renderer) ShowError(doc *dom.Document, fieldID, message string) error {
	field, err := doc.Element(fieldID)
	if err != nil {
		return fmt.Errorf("feedback: show error: %w", err)
	}
	field.AddClass(r.classes.FieldInvalid)
	field.RemoveClass(r.classes.FieldValid)

	msg, err := r.ensureMessage(doc, field)
	if err != nil {
		return err
	}
	msg.SetText(message)
	msg.Show()
	return nil
}

// ClearError marks the field valid and blanks and hides its diagnostic
// element when one exists.
func (r *Renderer) ClearError(doc *dom.Document, fieldID string) error {
	field, err := doc.Element(fieldID)
	if err != nil {
		return fmt.Errorf("feedback: clear error: %w", err)
	}
	field.RemoveClass(r.classes.FieldInvalid)
	field.AddClass(r.classes.FieldValid)

	if msg, err := doc.Element(MessageID(fieldID)); err == nil {
		msg.SetText("")
		msg.Hide()
	}
	return nil
}

// Strip removes both marker classes from the field.
func (r *Renderer) Strip(doc *dom.Document, fieldID string) error {
	field, err := doc.Element(fieldID)
	if err != nil {
		return fmt.Errorf("feedback: strip markers: %w", err)
	}
	field.RemoveClass(r.classes.FieldValid, r.classes.FieldInvalid)
	return nil
}

func (r *Renderer) ensureMessage(doc *dom.Document, field *dom.Element) (*dom.Element, error) {
	id := MessageID(field.ID())
	if msg, err := doc.Element(id); err == nil {
		return msg, nil
	}
	field.InsertAfter(fmt.Sprintf(`<div class="%s" id="%s"></div>`,
		html.EscapeString(r.classes.Message), html.EscapeString(id)))
	msg, err := doc.Element(id)
	if err != nil {
		return nil, fmt.Errorf("feedback: create diagnostic element: %w", err)
	}
	return msg, nil
}
