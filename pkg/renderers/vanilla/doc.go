// Package vanilla renders the host page for the form from embedded pongo2
// templates and ships the stylesheet and the browser runtime that streams
// events to the live endpoint.
package vanilla
