package vanilla

import (
	"github.com/goliatone/go-formcheck/pkg/form"
	"github.com/goliatone/go-formcheck/pkg/rules"
)

// DefaultStatusID is the id of the banner the success notification is
// written to.
const DefaultStatusID = "form-status"

// Page describes the host document the renderer produces.
type Page struct {
	Title       string
	SubmitLabel string
	Action      string
	Form        form.Config
	Values      rules.Values
	StatusID    string
	// StylesheetURL and ScriptURL link the bundled assets; empty omits them.
	StylesheetURL string
	ScriptURL     string
	// LiveURL is the WebSocket endpoint the runtime script streams events to.
	LiveURL string
}

// DefaultPage returns a page using the default form configuration.
func DefaultPage() Page {
	return Page{
		Title:       "Create your account",
		SubmitLabel: "Register",
		Action:      "/",
		Form:        form.DefaultConfig(),
		StatusID:    DefaultStatusID,
	}
}

type fieldView struct {
	ID           string
	Name         string
	Label        string
	Type         string
	Autocomplete string
	InputMode    string
	MaxLength    int
	Value        string
}

// templates address fields by lower-case keys.
func (v fieldView) context() map[string]any {
	return map[string]any{
		"id":           v.ID,
		"name":         v.Name,
		"label":        v.Label,
		"type":         v.Type,
		"autocomplete": v.Autocomplete,
		"inputmode":    v.InputMode,
		"maxlength":    v.MaxLength,
		"value":        v.Value,
	}
}

var fieldChrome = map[rules.Field]fieldView{
	rules.FieldName:            {Label: "Full name", Type: "text", Autocomplete: "name"},
	rules.FieldEmail:           {Label: "Email", Type: "email", Autocomplete: "email"},
	rules.FieldPhone:           {Label: "Phone number", Type: "tel", Autocomplete: "tel", InputMode: "numeric", MaxLength: rules.PhoneLength},
	rules.FieldPassword:        {Label: "Password", Type: "password", Autocomplete: "new-password"},
	rules.FieldConfirmPassword: {Label: "Confirm password", Type: "password", Autocomplete: "new-password"},
}

func (p Page) context() map[string]any {
	def := DefaultPage()
	if p.Title == "" {
		p.Title = def.Title
	}
	if p.SubmitLabel == "" {
		p.SubmitLabel = def.SubmitLabel
	}
	if p.StatusID == "" {
		p.StatusID = def.StatusID
	}
	cfg := p.Form
	if cfg.FormID == "" {
		cfg.FormID = def.Form.FormID
	}

	fields := make([]map[string]any, 0, len(rules.Fields()))
	for _, field := range rules.Fields() {
		view := fieldChrome[field]
		view.ID = cfg.Fields.Get(field)
		if view.ID == "" {
			view.ID = def.Form.Fields.Get(field)
		}
		view.Name = string(field)
		view.Value = p.Values.Get(field)
		if field == rules.FieldPassword || field == rules.FieldConfirmPassword {
			view.Value = ""
		}
		fields = append(fields, view.context())
	}

	return map[string]any{
		"title":        p.Title,
		"submit_label": p.SubmitLabel,
		"action":       p.Action,
		"form_id":      cfg.FormID,
		"status_id":    p.StatusID,
		"fields":       fields,
		"stylesheet":   p.StylesheetURL,
		"script":       p.ScriptURL,
		"live":         p.LiveURL,
		"chrome":       chromeContext(),
	}
}
