// Package formcheck validates a five field sign-up form (full name, email,
// phone, password and confirmation) against an HTML document and renders
// inline feedback into it.
//
// The root package is a convenience entry point. The building blocks live
// under pkg/: rules (validators), dom (document model), feedback (markers,
// diagnostics and the password checklist), form (the controller) and the
// renderers and server that expose it.
package formcheck

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formcheck/pkg/form"
	"github.com/goliatone/go-formcheck/pkg/renderers/vanilla"
	"github.com/goliatone/go-formcheck/pkg/rules"
)

// Values aliases rules.Values for callers that only need the facade.
type Values = rules.Values

// Outcome aliases form.Outcome.
type Outcome = form.Outcome

// NewController renders the bundled page for the configuration the options
// resolve to and binds a controller to it.
func NewController(options ...form.Option) (*form.Controller, error) {
	pages, err := vanilla.New()
	if err != nil {
		return nil, fmt.Errorf("formcheck: %w", err)
	}
	page := vanilla.DefaultPage()
	page.Form = form.ResolveConfig(options...)
	doc, err := pages.Document(page)
	if err != nil {
		return nil, fmt.Errorf("formcheck: %w", err)
	}
	return form.New(doc, options...)
}

// Validate submits values to a fresh controller and returns the outcome
// together with the document state it left behind.
func Validate(ctx context.Context, values Values, options ...form.Option) (Outcome, form.Snapshot, error) {
	controller, err := NewController(options...)
	if err != nil {
		return Outcome{}, form.Snapshot{}, err
	}
	outcome, err := controller.Submit(ctx, values)
	if err != nil {
		return Outcome{}, form.Snapshot{}, err
	}
	return outcome, controller.Snapshot(), nil
}
