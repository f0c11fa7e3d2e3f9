// Package rules holds the per-field validation rule set for the sign-up
// form. Every validator is a pure function from the field's current value to
// a Result; rendering the outcome into a document is left to the feedback
// package so the rules can be exercised without any markup.
package rules
