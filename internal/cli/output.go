package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/soniCaH/pokemon-go-leekduck/internal/event"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains data to be output
type OutputResult struct {
	GeneratedAt time.Time      `json:"generated_at"`
	OutputPath  string         `json:"output_path"`
	EventCount  int            `json:"event_count"`
	Events      []*event.Event `json:"events"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult) error {
	if result.EventCount == 0 {
		fmt.Fprintln(w, "No events found.")
		return nil
	}

	for _, evt := range result.Events {
		fmt.Fprintf(w, "  %s\n", evt.Title)
		fmt.Fprintf(w, "    %s -> %s (%s)\n",
			evt.Start.Format("2006-01-02 15:04 MST"),
			evt.End.Format("2006-01-02 15:04 MST"),
			formatDuration(evt.Duration()))
	}

	fmt.Fprintf(w, "\nTotal: %d events\n", result.EventCount)
	fmt.Fprintf(w, "Calendar saved to %s\n", result.OutputPath)

	return nil
}

// formatDuration renders a window length as "Nd Nh" for multi-day events
// and "Nh Nm" otherwise. Inverted windows keep a single leading sign.
func formatDuration(d time.Duration) string {
	if d < 0 {
		return "-" + formatDuration(-d)
	}

	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh", days, hours)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
