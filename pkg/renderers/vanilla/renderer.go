package vanilla

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-formcheck/pkg/dom"
	"github.com/goliatone/go-formcheck/pkg/render"
	rendertemplate "github.com/goliatone/go-formcheck/pkg/render/template"
	"github.com/goliatone/go-formcheck/pkg/render/template/gotemplate"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateDir      string
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk. Templates read
// from disk can be reloaded through Reset.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		if _, err := os.Stat(path); err != nil {
			return
		}
		cfg.templateDir = path
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer produces the host page and serializes decorated documents.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engineOpts := []gotemplate.Option{gotemplate.WithExtension(".tmpl")}
		if cfg.templateDir != "" {
			engineOpts = append(engineOpts, gotemplate.WithBaseDir(cfg.templateDir))
		} else {
			engineOpts = append(engineOpts, gotemplate.WithFS(cfg.templateFS))
		}
		engine, err := gotemplate.New(engineOpts...)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Page renders the host document.
func (r *Renderer) Page(page Page) ([]byte, error) {
	if r.templates == nil {
		return nil, errors.New("vanilla renderer: template renderer is nil")
	}
	out, err := r.templates.RenderTemplate("page", page.context())
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render page: %w", err)
	}
	return []byte(out), nil
}

// Render returns the serialized document carried by the report.
func (r *Renderer) Render(_ context.Context, report render.Report) ([]byte, error) {
	if report.Document == "" {
		return nil, errors.New("vanilla renderer: report has no document")
	}
	return []byte(report.Document), nil
}

// Reset drops cached templates when the underlying engine supports it.
func (r *Renderer) Reset() {
	if reloader, ok := r.templates.(rendertemplate.Reloader); ok {
		reloader.Reset()
	}
}

// Document renders page and parses it into a document a controller can
// bind to.
func (r *Renderer) Document(page Page) (*dom.Document, error) {
	markup, err := r.Page(page)
	if err != nil {
		return nil, err
	}
	doc, err := dom.Parse(bytes.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: %w", err)
	}
	return doc, nil
}
