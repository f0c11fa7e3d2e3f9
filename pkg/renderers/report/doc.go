// Package report renders form run reports for API clients and terminals.
package report
