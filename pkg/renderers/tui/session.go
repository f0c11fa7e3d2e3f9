package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/goliatone/go-formcheck/pkg/form"
	"github.com/goliatone/go-formcheck/pkg/renderers/report"
	"github.com/goliatone/go-formcheck/pkg/renderers/vanilla"
	"github.com/goliatone/go-formcheck/pkg/rules"
)

// Result is what a finished prompt session collected.
type Result struct {
	Outcome       form.Outcome
	Values        rules.Values
	Snapshot      form.Snapshot
	Notifications []string
}

// Session drives one form through terminal prompts. Each answer is fed to
// the controller as an input event; an invalid answer prints the diagnostic
// and asks again.
type Session struct {
	driver     PromptDriver
	pages      *vanilla.Renderer
	formConfig form.Config
	logger     *slog.Logger
	theme      Theme
	labels     map[rules.Field]string
}

// DefaultLabels returns the prompt message for each field.
func DefaultLabels() map[rules.Field]string {
	return map[rules.Field]string{
		rules.FieldName:            "Full name:",
		rules.FieldEmail:           "Email:",
		rules.FieldPhone:           "Phone number:",
		rules.FieldPassword:        "Password:",
		rules.FieldConfirmPassword: "Confirm password:",
	}
}

// New constructs a session with defaults (survey driver, default form).
func New(options ...Option) (*Session, error) {
	pages, err := vanilla.New()
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	s := &Session{
		driver:     newSurveyDriver(),
		pages:      pages,
		formConfig: form.DefaultConfig(),
		logger:     slog.New(slog.DiscardHandler),
		theme:      DefaultTheme(),
		labels:     DefaultLabels(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s, nil
}

// Run prompts for every field in submit order, then submits. A rejected
// submit offers another round; declining returns the rejected result.
func (s *Session) Run(ctx context.Context) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	controller, notes, err := s.controller()
	if err != nil {
		return Result{}, err
	}

	for {
		values, err := s.collect(ctx, controller)
		if err != nil {
			return Result{}, err
		}

		outcome, err := controller.Submit(ctx, values)
		if err != nil {
			return Result{}, fmt.Errorf("tui: submit: %w", err)
		}
		result := Result{
			Outcome:       outcome,
			Values:        values,
			Snapshot:      controller.Snapshot(),
			Notifications: notes.Messages(),
		}
		if outcome.Accepted {
			return result, nil
		}

		for _, fr := range outcome.Results {
			if !fr.Result.Valid {
				_ = s.driver.Info(ctx, s.theme.ErrorPrefix+fr.Result.Message())
			}
		}
		retry, err := s.driver.Confirm(ctx, ConfirmConfig{Message: "Try again?", Default: true})
		if err != nil {
			return Result{}, err
		}
		if !retry {
			return result, nil
		}
	}
}

func (s *Session) controller() (*form.Controller, *form.RecordingNotifier, error) {
	doc, err := s.pages.Document(vanilla.Page{Form: s.formConfig})
	if err != nil {
		return nil, nil, fmt.Errorf("tui: %w", err)
	}

	notes := &form.RecordingNotifier{}
	notifier := form.Notifiers{notes, form.NotifierFunc(func(ctx context.Context, message string) error {
		return s.driver.Info(ctx, s.theme.InfoPrefix+message)
	})}
	controller, err := form.New(doc,
		form.WithConfig(s.formConfig),
		form.WithLogger(s.logger),
		form.WithNotifier(notifier),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("tui: %w", err)
	}
	return controller, notes, nil
}

func (s *Session) collect(ctx context.Context, controller *form.Controller) (rules.Values, error) {
	var values rules.Values
	for _, field := range rules.Fields() {
		if field == rules.FieldConfirmPassword {
			if err := controller.Focus(ctx, field); err != nil {
				return rules.Values{}, err
			}
		}
		value, err := s.ask(ctx, controller, field)
		if err != nil {
			return rules.Values{}, err
		}
		values.Set(field, value)
	}
	return values, nil
}

func (s *Session) ask(ctx context.Context, controller *form.Controller, field rules.Field) (string, error) {
	cfg := InputConfig{Message: s.labels[field]}
	secret := field == rules.FieldPassword || field == rules.FieldConfirmPassword
	if field == rules.FieldPassword {
		cfg.Help = "Minimum 8 characters, first letter uppercase, a lowercase letter, a number and a special character."
	}

	for {
		var (
			answer string
			err    error
		)
		if secret {
			answer, err = s.driver.Password(ctx, cfg)
		} else {
			answer, err = s.driver.Input(ctx, cfg)
		}
		if err != nil {
			return "", err
		}

		result, err := controller.Input(ctx, field, answer)
		if err != nil {
			return "", fmt.Errorf("tui: %s input: %w", field, err)
		}
		snap := controller.Snapshot()
		if result.Valid {
			state, _ := snap.Field(field)
			return state.Value, nil
		}

		_ = s.driver.Info(ctx, s.theme.ErrorPrefix+result.Message())
		if field == rules.FieldPassword && snap.Panel.Visible {
			_ = s.driver.Info(ctx, report.Checklist(snap.Panel.Items, s.formConfig.ConditionLabels))
		}
	}
}
