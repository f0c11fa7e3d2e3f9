package report

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-formcheck/pkg/form"
	"github.com/goliatone/go-formcheck/pkg/render"
)

// JSONRenderer encodes a report together with its error mapping.
type JSONRenderer struct {
	Indent string
}

var _ render.Renderer = JSONRenderer{}

// Payload is the wire shape produced by JSONRenderer.
type Payload struct {
	Outcome       *form.Outcome        `json:"outcome,omitempty"`
	Snapshot      form.Snapshot        `json:"snapshot"`
	Errors        *render.ErrorMapping `json:"errors,omitempty"`
	Notifications []string             `json:"notifications,omitempty"`
}

// NewPayload builds the wire shape for report.
func NewPayload(report render.Report) Payload {
	payload := Payload{
		Outcome:       report.Outcome,
		Snapshot:      report.Snapshot,
		Notifications: report.Notifications,
	}
	if mapping := render.MapSnapshotErrors(report.Snapshot, report.Outcome); !mapping.Empty() {
		payload.Errors = &mapping
	}
	return payload
}

func (JSONRenderer) Name() string {
	return "json"
}

func (JSONRenderer) ContentType() string {
	return "application/json"
}

func (r JSONRenderer) Render(ctx context.Context, report render.Report) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	payload := NewPayload(report)
	var (
		out []byte
		err error
	)
	if r.Indent != "" {
		out, err = json.MarshalIndent(payload, "", r.Indent)
	} else {
		out, err = json.Marshal(payload)
	}
	if err != nil {
		return nil, fmt.Errorf("report: encode json: %w", err)
	}
	return append(out, '\n'), nil
}
