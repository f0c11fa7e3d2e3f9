package render

import (
	"strings"

	"github.com/goliatone/go-formcheck/pkg/form"
)

// ErrorMapping splits feedback into field-level messages keyed by field name
// and form-level messages, in the shape API clients expect for validation
// errors: {"fields": {"email": ["..."]}, "form": ["..."]}.
type ErrorMapping struct {
	Fields map[string][]string `json:"fields,omitempty"`
	Form   []string            `json:"form,omitempty"`
}

// Empty reports whether the mapping carries no messages.
func (m ErrorMapping) Empty() bool {
	return len(m.Fields) == 0 && len(m.Form) == 0
}

// MapSnapshotErrors collects the visible diagnostics of a snapshot. A
// rejected outcome with no visible field messages still yields a form-level
// message so callers never see a silent rejection.
func MapSnapshotErrors(snap form.Snapshot, outcome *form.Outcome) ErrorMapping {
	mapping := ErrorMapping{Fields: make(map[string][]string)}
	for _, fs := range snap.Fields {
		if fs.Marker != form.MarkerInvalid || !fs.MessageVisible {
			continue
		}
		if msgs := normalizeMessages([]string{fs.Message}); len(msgs) > 0 {
			mapping.Fields[string(fs.Field)] = msgs
		}
	}
	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
		if outcome != nil && !outcome.Accepted {
			mapping.Form = []string{"Form validation failed."}
		}
	}
	return mapping
}

// MergeFormErrors concatenates form-level messages, trimming whitespace and
// removing duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
