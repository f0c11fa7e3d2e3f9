package render

import (
	"context"

	"github.com/goliatone/go-formcheck/pkg/form"
)

// Report is everything a renderer may present after a form run.
type Report struct {
	Outcome       *form.Outcome `json:"outcome,omitempty"`
	Snapshot      form.Snapshot `json:"snapshot"`
	Document      string        `json:"-"`
	Notifications []string      `json:"notifications,omitempty"`
}

// Renderer converts a Report into a byte representation (HTML, JSON, text).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, report Report) ([]byte, error)
}
