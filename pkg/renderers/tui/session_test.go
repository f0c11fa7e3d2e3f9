package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcheck/pkg/form"
	"github.com/goliatone/go-formcheck/pkg/rules"
)

type stubDriver struct {
	inputs       []string
	passwords    []string
	confirm      []bool
	infoMessages []string
	prompts      []string
	inputPos     int
	passPos      int
	confirmPos   int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	s.prompts = append(s.prompts, cfg.Message)
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Password(_ context.Context, cfg InputConfig) (string, error) {
	if s.passPos >= len(s.passwords) {
		return "", errors.New("no password scripted")
	}
	s.prompts = append(s.prompts, cfg.Message)
	val := s.passwords[s.passPos]
	s.passPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func newSession(t *testing.T, driver PromptDriver, opts ...Option) *Session {
	t.Helper()
	opts = append([]Option{WithPromptDriver(driver), WithTheme(Theme{ErrorPrefix: "! "})}, opts...)
	s, err := New(opts...)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s
}

func TestSession_AcceptsValidAnswers(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Ada Lovelace", "ada@example.com", "98765-43210"},
		passwords: []string{"Secret1!", "Secret1!"},
	}
	result, err := newSession(t, driver).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !result.Outcome.Accepted {
		t.Fatalf("expected accepted outcome, got %+v", result.Outcome)
	}

	want := rules.Values{
		Name:            "Ada Lovelace",
		Email:           "ada@example.com",
		Phone:           "9876543210",
		Password:        "Secret1!",
		ConfirmPassword: "Secret1!",
	}
	if diff := cmp.Diff(want, result.Values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Form validation passed."}, result.Notifications); diff != "" {
		t.Fatalf("notifications mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Form validation passed."}, driver.infoMessages); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}

	wantPrompts := []string{"Full name:", "Email:", "Phone number:", "Password:", "Confirm password:"}
	if diff := cmp.Diff(wantPrompts, driver.prompts); diff != "" {
		t.Fatalf("prompt order mismatch (-want +got):\n%s", diff)
	}

	name, _ := result.Snapshot.Field(rules.FieldName)
	if name.Value != "" || name.Marker != form.MarkerNone {
		t.Fatalf("expected reset form after accept, got %+v", name)
	}
}

func TestSession_RepromptsUntilValid(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"", "A", "Ada", "nope", "ada@example.com", "12345", "9876543210"},
		passwords: []string{"weak", "Secret1!", "Other1!!", "Secret1!"},
	}
	result, err := newSession(t, driver).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !result.Outcome.Accepted {
		t.Fatalf("expected accepted outcome")
	}

	var errorsShown []string
	for _, msg := range driver.infoMessages {
		if strings.HasPrefix(msg, "! ") {
			errorsShown = append(errorsShown, strings.TrimPrefix(msg, "! "))
		}
	}
	want := []string{
		"Full name is required.",
		"Name must be at least 2 characters.",
		"Please enter a valid email address.",
		"Phone must be 10 digits and start with 6, 7, 8, or 9.",
		"Password must meet all listed conditions.",
		"Passwords do not match.",
	}
	if diff := cmp.Diff(want, errorsShown); diff != "" {
		t.Fatalf("diagnostics mismatch (-want +got):\n%s", diff)
	}

	var checklist string
	for _, msg := range driver.infoMessages {
		if strings.Contains(msg, "Minimum 8 characters") {
			checklist = msg
		}
	}
	if !strings.Contains(checklist, "[ ] Minimum 8 characters") || !strings.Contains(checklist, "[x] Contains lowercase letter") {
		t.Fatalf("expected checklist for weak password, got %q", checklist)
	}
}

func TestSession_AbortPropagates(t *testing.T) {
	driver := &abortDriver{}
	_, err := newSession(t, driver).Run(context.Background())
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestSession_CustomLabels(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Ada", "ada@example.com", "9876543210"},
		passwords: []string{"Secret1!", "Secret1!"},
	}
	_, err := newSession(t, driver, WithLabels(map[rules.Field]string{rules.FieldName: "Who are you?"})).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if driver.prompts[0] != "Who are you?" || driver.prompts[1] != "Email:" {
		t.Fatalf("unexpected prompts %v", driver.prompts)
	}
}

func TestTranslateSurveyErr(t *testing.T) {
	other := errors.New("boom")
	if got := translateSurveyErr(other); got != other {
		t.Fatalf("expected passthrough, got %v", got)
	}
}

type abortDriver struct{ stubDriver }

func (a *abortDriver) Input(context.Context, InputConfig) (string, error) {
	return "", ErrAborted
}
