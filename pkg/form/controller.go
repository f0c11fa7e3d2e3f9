package form

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/goliatone/go-formcheck/pkg/dom"
	"github.com/goliatone/go-formcheck/pkg/feedback"
	"github.com/goliatone/go-formcheck/pkg/rules"
)

// ErrUnknownField is returned for events targeting a field outside the set.
var ErrUnknownField = errors.New("form: unknown field")

// Observer receives validation events; the HTTP server feeds metrics from it.
type Observer interface {
	FieldValidated(field rules.Field, result rules.Result)
	Submitted(outcome Outcome)
}

// Option configures a Controller.
type Option func(*Controller)

// WithConfig replaces the default configuration. Empty ids fall back to the
// defaults.
func WithConfig(cfg Config) Option {
	return func(c *Controller) {
		c.cfg = cfg
	}
}

// WithNotifier sets the success notifier.
func WithNotifier(n Notifier) Option {
	return func(c *Controller) {
		if n != nil {
			c.notifier = n
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithObserver registers an observer.
func WithObserver(o Observer) Option {
	return func(c *Controller) {
		if o != nil {
			c.observers = append(c.observers, o)
		}
	}
}

// Controller handles input, focus and submit events for one document.
type Controller struct {
	mu sync.Mutex

	cfg       Config
	doc       *dom.Document
	renderer  *feedback.Renderer
	panel     *feedback.Panel
	notifier  Notifier
	logger    *slog.Logger
	observers []Observer
	state     State
}

// New binds a controller to doc, checks the form and its five fields exist
// and mounts the hidden password checklist.
func New(doc *dom.Document, options ...Option) (*Controller, error) {
	if doc == nil {
		return nil, errors.New("form: document is nil")
	}
	c := &Controller{
		cfg:    DefaultConfig(),
		doc:    doc,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	c.cfg = c.cfg.withDefaults()
	if err := c.cfg.Validate(); err != nil {
		return nil, err
	}
	if c.notifier == nil {
		c.notifier = LogNotifier{Logger: c.logger}
	}

	if _, err := doc.Element(c.cfg.FormID); err != nil {
		return nil, fmt.Errorf("form: locate form: %w", err)
	}
	for _, field := range rules.Fields() {
		if _, err := doc.Element(c.cfg.Fields.Get(field)); err != nil {
			return nil, fmt.Errorf("form: locate %s field: %w", field, err)
		}
	}

	c.renderer = feedback.NewRenderer(feedback.WithClasses(c.cfg.Classes))
	c.panel = feedback.NewPanel(
		feedback.WithClasses(c.cfg.Classes),
		feedback.WithPanelID(c.cfg.PanelID),
		feedback.WithConditionLabels(c.cfg.ConditionLabels),
	)
	if err := c.panel.Mount(doc, c.cfg.Fields.Password); err != nil {
		return nil, fmt.Errorf("form: %w", err)
	}
	return c, nil
}

// ResolveConfig returns the configuration a controller built with options
// would use, so callers can render a matching document first.
func ResolveConfig(options ...Option) Config {
	c := &Controller{cfg: DefaultConfig()}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	return c.cfg.withDefaults()
}

// Config returns the effective configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Input handles an input event: the value is written to the field (phone
// input is sanitized first), the field's validator runs and the feedback is
// rendered. Password input also refreshes the checklist.
func (c *Controller) Input(ctx context.Context, field rules.Field, value string) (rules.Result, error) {
	if err := ctx.Err(); err != nil {
		return rules.Result{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	el, err := c.element(field)
	if err != nil {
		return rules.Result{}, err
	}
	if field == rules.FieldPhone {
		value = rules.SanitizePhone(value)
	}
	el.SetValue(value)

	result, err := c.validate(field)
	if err != nil {
		return rules.Result{}, err
	}

	if field == rules.FieldPassword && c.cfg.RecheckConfirmOnPasswordInput {
		if confirm, err := c.element(rules.FieldConfirmPassword); err == nil && confirm.Value() != "" {
			if _, err := c.validate(rules.FieldConfirmPassword); err != nil {
				return rules.Result{}, err
			}
		}
	}
	return result, nil
}

// Focus handles a focus event. Focusing the confirmation hides the
// checklist; other fields are a no-op.
func (c *Controller) Focus(ctx context.Context, field rules.Field) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.element(field); err != nil {
		return err
	}
	if field == rules.FieldConfirmPassword {
		c.panel.Hide(c.doc)
	}
	return nil
}

// FieldResult pairs a field with its validator outcome.
type FieldResult struct {
	Field  rules.Field  `json:"field"`
	Result rules.Result `json:"result"`
}

// Outcome summarizes a submit.
type Outcome struct {
	Accepted bool          `json:"accepted"`
	State    State         `json:"state"`
	Results  []FieldResult `json:"results"`
	Skipped  []rules.Field `json:"skipped,omitempty"`
}

// Failed returns the fields whose validator failed.
func (o Outcome) Failed() []rules.Field {
	var out []rules.Field
	for _, r := range o.Results {
		if !r.Result.Valid {
			out = append(out, r.Field)
		}
	}
	return out
}

// Submit handles a submit event. Values are written to the fields and the
// validators run in the fixed order name, email, phone, password,
// confirmation. When everything passes the notifier fires, the form is
// reset, every marker is stripped and the checklist is hidden.
func (c *Controller) Submit(ctx context.Context, values rules.Values) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.transition(ctx, StateSubmitting)
	defer c.transition(ctx, StateIdle)

	values.Phone = rules.SanitizePhone(values.Phone)
	for _, field := range rules.Fields() {
		el, err := c.element(field)
		if err != nil {
			return Outcome{}, err
		}
		el.SetValue(values.Get(field))
	}

	outcome := Outcome{Accepted: true}
	fields := rules.Fields()
	for i, field := range fields {
		result, err := c.validate(field)
		if err != nil {
			return Outcome{}, err
		}
		outcome.Results = append(outcome.Results, FieldResult{Field: field, Result: result})
		if result.Valid {
			continue
		}
		outcome.Accepted = false
		if c.cfg.SubmitMode == SubmitModeShortCircuit {
			outcome.Skipped = append(outcome.Skipped, fields[i+1:]...)
			break
		}
	}

	if !outcome.Accepted {
		outcome.State = StateRejected
		c.transition(ctx, StateRejected)
		c.notifySubmitted(outcome)
		return outcome, nil
	}

	if err := c.notifier.Notify(ctx, c.cfg.SuccessMessage); err != nil {
		return Outcome{}, fmt.Errorf("form: notify: %w", err)
	}
	if err := c.reset(); err != nil {
		return Outcome{}, err
	}
	outcome.State = StateAccepted
	c.transition(ctx, StateAccepted)
	c.notifySubmitted(outcome)
	return outcome, nil
}

func (c *Controller) reset() error {
	if err := c.doc.ResetForm(c.cfg.FormID); err != nil {
		return fmt.Errorf("form: reset: %w", err)
	}
	inputs, err := c.doc.Inputs(c.cfg.FormID)
	if err != nil {
		return fmt.Errorf("form: reset: %w", err)
	}
	for _, input := range inputs {
		classes := c.renderer.Classes()
		input.RemoveClass(classes.FieldValid, classes.FieldInvalid)
	}
	c.panel.Hide(c.doc)
	return nil
}

func (c *Controller) validate(field rules.Field) (rules.Result, error) {
	values, err := c.values()
	if err != nil {
		return rules.Result{}, err
	}
	result := rules.Validate(field, values)
	id := c.cfg.Fields.Get(field)

	if field == rules.FieldPassword {
		if err := c.panel.Update(c.doc, values.Password, rules.EvaluatePassword(values.Password)); err != nil {
			return rules.Result{}, fmt.Errorf("form: %w", err)
		}
	}

	if result.Valid {
		err = c.renderer.ClearError(c.doc, id)
	} else {
		err = c.renderer.ShowError(c.doc, id, result.Message())
	}
	if err != nil {
		return rules.Result{}, fmt.Errorf("form: %w", err)
	}

	c.logger.Debug("field validated", "field", field, "valid", result.Valid, "code", result.Code)
	for _, o := range c.observers {
		o.FieldValidated(field, result)
	}
	return result, nil
}

func (c *Controller) values() (rules.Values, error) {
	var values rules.Values
	for _, field := range rules.Fields() {
		el, err := c.element(field)
		if err != nil {
			return rules.Values{}, err
		}
		values.Set(field, el.Value())
	}
	return values, nil
}

func (c *Controller) element(field rules.Field) (*dom.Element, error) {
	id := c.cfg.Fields.Get(field)
	if id == "" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	el, err := c.doc.Element(id)
	if err != nil {
		return nil, fmt.Errorf("form: %s field: %w", field, err)
	}
	return el, nil
}

func (c *Controller) transition(ctx context.Context, next State) {
	if c.state == next {
		return
	}
	c.logger.DebugContext(ctx, "form state", "from", c.state, "to", next)
	c.state = next
}

func (c *Controller) notifySubmitted(outcome Outcome) {
	for _, o := range c.observers {
		o.Submitted(outcome)
	}
}
