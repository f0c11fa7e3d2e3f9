package report

import (
	"bytes"
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/goliatone/go-formcheck/pkg/feedback"
	"github.com/goliatone/go-formcheck/pkg/form"
	"github.com/goliatone/go-formcheck/pkg/render"
	"github.com/goliatone/go-formcheck/pkg/rules"
)

// TextRenderer prints a human readable summary of a report.
type TextRenderer struct {
	// Labels overrides the checklist labels; nil uses the defaults.
	Labels map[rules.Condition]string
}

var _ render.Renderer = TextRenderer{}

func (TextRenderer) Name() string {
	return "text"
}

func (TextRenderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (r TextRenderer) Render(ctx context.Context, report render.Report) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if report.Outcome != nil {
		if report.Outcome.Accepted {
			buf.WriteString("Accepted\n")
		} else {
			fmt.Fprintf(&buf, "Rejected (%d of %d checks failed)\n", len(report.Outcome.Failed()), len(report.Outcome.Results))
		}
	}
	for _, note := range report.Notifications {
		fmt.Fprintf(&buf, "%s\n", note)
	}

	tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	for _, fs := range report.Snapshot.Fields {
		status := "-"
		switch fs.Marker {
		case form.MarkerValid:
			status = "ok"
		case form.MarkerInvalid:
			status = "error"
		}
		message := ""
		if fs.MessageVisible {
			message = fs.Message
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", fs.Field, status, message)
	}
	if report.Outcome != nil {
		for _, field := range report.Outcome.Skipped {
			fmt.Fprintf(tw, "%s\tskipped\t\n", field)
		}
	}
	if err := tw.Flush(); err != nil {
		return nil, fmt.Errorf("report: write table: %w", err)
	}

	if report.Snapshot.Panel.Visible {
		buf.WriteString("Password:\n")
		buf.WriteString(Checklist(report.Snapshot.Panel.Items, r.Labels))
	}
	return buf.Bytes(), nil
}

// Checklist formats the password conditions one per line in display order.
func Checklist(items map[rules.Condition]bool, labels map[rules.Condition]string) string {
	if labels == nil {
		labels = feedback.DefaultConditionLabels()
	}
	var buf bytes.Buffer
	for _, cond := range rules.Conditions() {
		mark := "[ ]"
		if items[cond] {
			mark = "[x]"
		}
		label := labels[cond]
		if label == "" {
			label = string(cond)
		}
		fmt.Fprintf(&buf, "  %s %s\n", mark, label)
	}
	return buf.String()
}
