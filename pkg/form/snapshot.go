package form

import (
	"github.com/goliatone/go-formcheck/pkg/feedback"
	"github.com/goliatone/go-formcheck/pkg/rules"
)

// Marker is the validity decoration currently applied to a field.
type Marker string

const (
	MarkerNone    Marker = ""
	MarkerValid   Marker = "valid"
	MarkerInvalid Marker = "invalid"
)

// FieldState is the document state of one field.
type FieldState struct {
	Field          rules.Field `json:"field"`
	ID             string      `json:"id"`
	Value          string      `json:"value"`
	Marker         Marker      `json:"marker"`
	Message        string      `json:"message,omitempty"`
	MessageVisible bool        `json:"messageVisible"`
}

// PanelState is the document state of the password checklist.
type PanelState struct {
	Visible bool                     `json:"visible"`
	Items   map[rules.Condition]bool `json:"items"`
}

// Snapshot is a structured read of the form's document state.
type Snapshot struct {
	State  State        `json:"state"`
	Fields []FieldState `json:"fields"`
	Panel  PanelState   `json:"panel"`
}

// Field returns the state of field, or false when absent.
func (s Snapshot) Field(field rules.Field) (FieldState, bool) {
	for _, fs := range s.Fields {
		if fs.Field == field {
			return fs, true
		}
	}
	return FieldState{}, false
}

// Snapshot reads fields, diagnostics and the checklist back from the
// document.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

func (c *Controller) snapshot() Snapshot {
	classes := c.renderer.Classes()
	snap := Snapshot{
		State: c.state,
		Panel: PanelState{
			Visible: c.panel.Visible(c.doc),
			Items:   c.panel.Items(c.doc),
		},
	}
	for _, field := range rules.Fields() {
		id := c.cfg.Fields.Get(field)
		fs := FieldState{Field: field, ID: id}
		el, err := c.doc.Element(id)
		if err != nil {
			continue
		}
		fs.Value = el.Value()
		switch {
		case el.HasClass(classes.FieldInvalid):
			fs.Marker = MarkerInvalid
		case el.HasClass(classes.FieldValid):
			fs.Marker = MarkerValid
		}
		if msg, err := c.doc.Element(feedback.MessageID(id)); err == nil {
			fs.Message = msg.Text()
			fs.MessageVisible = msg.Visible() && fs.Message != ""
		}
		snap.Fields = append(snap.Fields, fs)
	}
	return snap
}

// HTML serializes the current document.
func (c *Controller) HTML() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.doc.HTML()
}
