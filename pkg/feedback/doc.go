// Package feedback reconciles validation outcomes with document state. The
// Renderer decorates fields with valid/invalid marker classes and manages a
// lazily created diagnostic element after each field; Panel maintains the
// live password condition checklist.
package feedback
