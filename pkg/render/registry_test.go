package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcheck/pkg/render"
)

type stubRenderer struct{ name string }

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(context.Context, render.Report) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistry(t *testing.T) {
	reg, err := render.NewRegistry(stubRenderer{name: "text"}, stubRenderer{name: "json"})
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	if diff := cmp.Diff([]string{"json", "text"}, reg.List()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if err := reg.Register(stubRenderer{name: "json"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := reg.Register(stubRenderer{}); err == nil {
		t.Fatalf("expected error for unnamed renderer")
	}
	if err := reg.Register(nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}

	r, err := reg.Get("text")
	if err != nil || r.Name() != "text" {
		t.Fatalf("get: %v", err)
	}
	if _, err := reg.Get("yaml"); err == nil || !strings.Contains(err.Error(), "available") {
		t.Fatalf("expected not-found error listing names, got %v", err)
	}
}
