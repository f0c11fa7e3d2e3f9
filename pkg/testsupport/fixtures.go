// Package testsupport holds helpers shared by package tests: documents bound
// to controllers and golden file handling.
package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcheck/pkg/dom"
	"github.com/goliatone/go-formcheck/pkg/form"
)

// MinimalPage is the smallest document the default controller binds to.
const MinimalPage = `<form id="myForm">
<input id="fullName" name="name">
<input id="email" name="email">
<input id="phone" name="phone">
<input id="password" name="password" type="password">
<input id="confirmPassword" name="confirmPassword" type="password">
</form>`

// Document parses markup, failing the test on error.
func Document(t *testing.T, markup string) *dom.Document {
	t.Helper()
	doc, err := dom.ParseString(markup)
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	return doc
}

// Controller binds a controller to MinimalPage.
func Controller(t *testing.T, options ...form.Option) (*form.Controller, *dom.Document) {
	t.Helper()
	doc := Document(t, MinimalPage)
	controller, err := form.New(doc, options...)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	return controller, doc
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CompareGolden returns a cmp diff between want and got.
func CompareGolden(want, got any, opts ...cmp.Option) string {
	return cmp.Diff(want, got, opts...)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}
