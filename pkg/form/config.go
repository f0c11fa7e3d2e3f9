package form

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formcheck/pkg/dom"
	"github.com/goliatone/go-formcheck/pkg/feedback"
	"github.com/goliatone/go-formcheck/pkg/rules"
)

// SubmitMode controls how many validators run on submit.
type SubmitMode string

const (
	// SubmitModeAll runs every validator so all failures are shown at once.
	SubmitModeAll SubmitMode = "all"
	// SubmitModeShortCircuit stops at the first failing field.
	SubmitModeShortCircuit SubmitMode = "short-circuit"
)

// ParseSubmitMode resolves a mode name; empty selects SubmitModeAll.
func ParseSubmitMode(raw string) (SubmitMode, error) {
	switch SubmitMode(strings.ToLower(strings.TrimSpace(raw))) {
	case "", SubmitModeAll:
		return SubmitModeAll, nil
	case SubmitModeShortCircuit, "short", "shortcircuit":
		return SubmitModeShortCircuit, nil
	}
	return "", fmt.Errorf("form: unknown submit mode %q", raw)
}

// FieldIDs maps every field to its element id in the host document.
type FieldIDs struct {
	Name            string `json:"name" yaml:"name"`
	Email           string `json:"email" yaml:"email"`
	Phone           string `json:"phone" yaml:"phone"`
	Password        string `json:"password" yaml:"password"`
	ConfirmPassword string `json:"confirmPassword" yaml:"confirmPassword"`
}

// Get returns the element id for field.
func (ids FieldIDs) Get(field rules.Field) string {
	switch field {
	case rules.FieldName:
		return ids.Name
	case rules.FieldEmail:
		return ids.Email
	case rules.FieldPhone:
		return ids.Phone
	case rules.FieldPassword:
		return ids.Password
	case rules.FieldConfirmPassword:
		return ids.ConfirmPassword
	}
	return ""
}

// Config is the single context object shared by the controller, the
// feedback renderer and the checklist.
type Config struct {
	FormID          string
	Fields          FieldIDs
	Classes         feedback.Classes
	PanelID         string
	ConditionLabels map[rules.Condition]string
	SubmitMode      SubmitMode
	// RecheckConfirmOnPasswordInput re-runs the confirmation validator when
	// the password changes and the confirmation already holds a value. Off
	// by default: password input only validates the password.
	RecheckConfirmOnPasswordInput bool
	SuccessMessage                string
}

// DefaultConfig returns the ids used by the bundled page template.
func DefaultConfig() Config {
	return Config{
		FormID: "myForm",
		Fields: FieldIDs{
			Name:            "fullName",
			Email:           "email",
			Phone:           "phone",
			Password:        "password",
			ConfirmPassword: "confirmPassword",
		},
		Classes:        feedback.DefaultClasses(),
		PanelID:        feedback.DefaultPanelID,
		SubmitMode:     SubmitModeAll,
		SuccessMessage: "Form validation passed.",
	}
}

// Validate checks the ids are usable and distinct.
func (c Config) Validate() error {
	if !dom.ValidID(c.FormID) {
		return fmt.Errorf("form: invalid form id %q", c.FormID)
	}
	seen := map[string]rules.Field{}
	for _, field := range rules.Fields() {
		id := c.Fields.Get(field)
		if !dom.ValidID(id) {
			return fmt.Errorf("form: invalid element id %q for field %s", id, field)
		}
		if other, exists := seen[id]; exists {
			return fmt.Errorf("form: element id %q shared by %s and %s", id, other, field)
		}
		seen[id] = field
	}
	if c.PanelID != "" && !dom.ValidID(c.PanelID) {
		return fmt.Errorf("form: invalid panel id %q", c.PanelID)
	}
	if _, err := ParseSubmitMode(string(c.SubmitMode)); err != nil {
		return err
	}
	return nil
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.FormID == "" {
		c.FormID = def.FormID
	}
	for _, field := range rules.Fields() {
		if c.Fields.Get(field) == "" {
			c.Fields = c.Fields.with(field, def.Fields.Get(field))
		}
	}
	if c.PanelID == "" {
		c.PanelID = def.PanelID
	}
	if c.SubmitMode == "" {
		c.SubmitMode = def.SubmitMode
	}
	if c.SuccessMessage == "" {
		c.SuccessMessage = def.SuccessMessage
	}
	return c
}

func (ids FieldIDs) with(field rules.Field, id string) FieldIDs {
	switch field {
	case rules.FieldName:
		ids.Name = id
	case rules.FieldEmail:
		ids.Email = id
	case rules.FieldPhone:
		ids.Phone = id
	case rules.FieldPassword:
		ids.Password = id
	case rules.FieldConfirmPassword:
		ids.ConfirmPassword = id
	}
	return ids
}
