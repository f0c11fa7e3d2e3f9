package tui

import (
	"log/slog"

	"github.com/goliatone/go-formcheck/pkg/form"
	"github.com/goliatone/go-formcheck/pkg/rules"
)

// Theme holds the prefixes printed before notices and errors.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// DefaultTheme prefixes errors and notices with plain markers.
func DefaultTheme() Theme {
	return Theme{InfoPrefix: "✔ ", ErrorPrefix: "✘ "}
}

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithFormConfig sets the controller configuration.
func WithFormConfig(cfg form.Config) Option {
	return func(s *Session) {
		s.formConfig = cfg
	}
}

// WithLogger sets the structured logger passed to the controller.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}

// WithLabels overrides the prompt message shown for each field.
func WithLabels(labels map[rules.Field]string) Option {
	return func(s *Session) {
		for key, label := range labels {
			if label != "" {
				s.labels[key] = label
			}
		}
	}
}
