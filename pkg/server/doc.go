// Package server exposes the form over HTTP.
//
// Every request (or WebSocket connection) renders a fresh host page and
// binds its own controller to it, so sessions never share document state.
//
//	GET  /                    host page
//	POST /                    plain form submission, re-rendered with feedback
//	POST /api/fields/{field}  input event, JSON field feedback
//	POST /api/submit          submit event, JSON or text report
//	GET  /ws                  live channel for input, focus and submit events
//	GET  /assets/*            stylesheet and browser runtime
//	GET  /metrics             Prometheus metrics
package server
