package event

import (
	"crypto/sha1"
	"fmt"
	"time"
)

// Event represents a normalized Pokémon GO event scraped from LeekDuck.
type Event struct {
	Title       string    `json:"title"` // prefixed with the category glyph
	Category    Category  `json:"category"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Description string    `json:"description"`
	SourceURL   string    `json:"source_url"` // canonical detail-page URL, unique per batch
	ImageURL    string    `json:"image_url,omitempty"`
}

// TitleHash creates a deterministic short identifier from an event title.
func TitleHash(title string) string {
	h := sha1.New()
	h.Write([]byte(title))
	return fmt.Sprintf("%x", h.Sum(nil))[:12]
}

// UID returns the calendar identifier for the event: the start instant's
// canonical textual form combined with a hash of the title.
func (e *Event) UID() string {
	return fmt.Sprintf("%s-%s@leekduck-calendar", e.Start.Format(time.RFC3339), TitleHash(e.Title))
}

// Duration returns the event's length. Negative values are possible when
// the source page reports an end before the start; callers decide how to
// present that.
func (e *Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}
