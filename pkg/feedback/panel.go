package feedback

import (
	"fmt"
	"html"
	"strings"

	"github.com/goliatone/go-formcheck/pkg/dom"
	"github.com/goliatone/go-formcheck/pkg/rules"
)

const (
	DefaultPanelID      = "password-conditions"
	DefaultItemIDPrefix = "pw-"
)

// Panel is the password condition checklist.
type Panel struct {
	id           string
	itemIDPrefix string
	classes      Classes
	labels       map[rules.Condition]string
}

// NewPanel builds a Panel.
func NewPanel(options ...Option) *Panel {
	cfg := newConfig(options)
	return &Panel{
		id:           cfg.panelID,
		itemIDPrefix: cfg.itemIDPrefix,
		classes:      cfg.classes,
		labels:       cfg.labels,
	}
}

// ID returns the container id.
func (p *Panel) ID() string {
	return p.id
}

// ItemID returns the checklist item id for cond.
func (p *Panel) ItemID(cond rules.Condition) string {
	return p.itemIDPrefix + string(cond)
}

// Mount inserts the hidden checklist after the password field. Mounting an
// already mounted panel is a no-op.
func (p *Panel) Mount(doc *dom.Document, passwordID string) error {
	if doc.Has(p.id) {
		return nil
	}
	field, err := doc.Element(passwordID)
	if err != nil {
		return fmt.Errorf("feedback: mount panel: %w", err)
	}
	field.InsertAfter(p.markup())
	if !doc.Has(p.id) {
		return fmt.Errorf("feedback: mount panel: %w: #%s", dom.ErrElementNotFound, p.id)
	}
	return nil
}

func (p *Panel) markup() string {
	var b strings.Builder
	fmt.Fprintf(&b, `<div class="%s" id="%s" style="display: none"><ul>`,
		html.EscapeString(p.classes.Panel), html.EscapeString(p.id))
	for _, cond := range rules.Conditions() {
		fmt.Fprintf(&b, `<li id="%s" class="%s">%s</li>`,
			html.EscapeString(p.ItemID(cond)),
			html.EscapeString(p.classes.ItemInvalid),
			html.EscapeString(p.labels[cond]))
	}
	b.WriteString(`</ul></div>`)
	return b.String()
}

// Update shows the panel for a non-empty value, hides it for an empty one,
// and toggles every checklist item.
func (p *Panel) Update(doc *dom.Document, value string, conds rules.PasswordConditions) error {
	panel, err := doc.Element(p.id)
	if err != nil {
		return fmt.Errorf("feedback: update panel: %w", err)
	}
	if value != "" {
		panel.Show()
	} else {
		panel.Hide()
	}

	for _, cond := range rules.Conditions() {
		item, err := doc.Element(p.ItemID(cond))
		if err != nil {
			return fmt.Errorf("feedback: update panel: %w", err)
		}
		met := conds.Met(cond)
		item.ToggleClass(p.classes.ItemValid, met)
		item.ToggleClass(p.classes.ItemInvalid, !met)
	}
	return nil
}

// Hide hides the checklist. A panel that was never mounted is left alone.
func (p *Panel) Hide(doc *dom.Document) {
	if panel, err := doc.Element(p.id); err == nil {
		panel.Hide()
	}
}

// Visible reports whether the checklist is mounted and displayed.
func (p *Panel) Visible(doc *dom.Document) bool {
	panel, err := doc.Element(p.id)
	if err != nil {
		return false
	}
	return panel.Visible()
}

// Items returns the checklist state read back from the document.
func (p *Panel) Items(doc *dom.Document) map[rules.Condition]bool {
	out := make(map[rules.Condition]bool, len(rules.Conditions()))
	for _, cond := range rules.Conditions() {
		item, err := doc.Element(p.ItemID(cond))
		if err != nil {
			continue
		}
		out[cond] = item.HasClass(p.classes.ItemValid) && !item.HasClass(p.classes.ItemInvalid)
	}
	return out
}
