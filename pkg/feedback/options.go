package feedback

import "github.com/goliatone/go-formcheck/pkg/rules"

// Classes names the marker classes applied by the renderer and panel.
type Classes struct {
	FieldValid   string
	FieldInvalid string
	ItemValid    string
	ItemInvalid  string
	Message      string
	Panel        string
}

// DefaultClasses returns the stock marker class names.
func DefaultClasses() Classes {
	return Classes{
		FieldValid:   "is-valid",
		FieldInvalid: "is-invalid",
		ItemValid:    "valid",
		ItemInvalid:  "invalid",
		Message:      "error-message",
		Panel:        "password-conditions",
	}
}

func (c Classes) withDefaults() Classes {
	def := DefaultClasses()
	if c.FieldValid == "" {
		c.FieldValid = def.FieldValid
	}
	if c.FieldInvalid == "" {
		c.FieldInvalid = def.FieldInvalid
	}
	if c.ItemValid == "" {
		c.ItemValid = def.ItemValid
	}
	if c.ItemInvalid == "" {
		c.ItemInvalid = def.ItemInvalid
	}
	if c.Message == "" {
		c.Message = def.Message
	}
	if c.Panel == "" {
		c.Panel = def.Panel
	}
	return c
}

// DefaultConditionLabels returns the checklist wording keyed by condition.
func DefaultConditionLabels() map[rules.Condition]string {
	return map[rules.Condition]string{
		rules.ConditionMinLength:  "Minimum 8 characters",
		rules.ConditionFirstUpper: "First letter uppercase",
		rules.ConditionHasLower:   "Contains lowercase letter",
		rules.ConditionHasDigit:   "Contains number",
		rules.ConditionHasSpecial: "Contains special character",
	}
}

// Option configures a Renderer or Panel.
type Option func(*config)

type config struct {
	classes      Classes
	panelID      string
	itemIDPrefix string
	labels       map[rules.Condition]string
}

func newConfig(options []Option) config {
	cfg := config{
		classes:      DefaultClasses(),
		panelID:      DefaultPanelID,
		itemIDPrefix: DefaultItemIDPrefix,
		labels:       DefaultConditionLabels(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	cfg.classes = cfg.classes.withDefaults()
	return cfg
}

// WithClasses overrides marker class names. Empty entries keep defaults.
func WithClasses(classes Classes) Option {
	return func(cfg *config) {
		cfg.classes = classes
	}
}

// WithPanelID overrides the checklist container id.
func WithPanelID(id string) Option {
	return func(cfg *config) {
		if id != "" {
			cfg.panelID = id
		}
	}
}

// WithItemIDPrefix overrides the prefix of checklist item ids.
func WithItemIDPrefix(prefix string) Option {
	return func(cfg *config) {
		if prefix != "" {
			cfg.itemIDPrefix = prefix
		}
	}
}

// WithConditionLabels overrides checklist wording for the given conditions.
func WithConditionLabels(labels map[rules.Condition]string) Option {
	return func(cfg *config) {
		for cond, label := range labels {
			if label == "" {
				continue
			}
			cfg.labels[cond] = label
		}
	}
}
