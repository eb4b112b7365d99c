// Package cli implements the command-line interface for leekduck-calendar.
//
// The cli package provides the Cobra-based CLI that wires configuration,
// the HTTP fetcher, the scraper, and the calendar exporter together, and
// reports the run result as text or JSON.
package cli
