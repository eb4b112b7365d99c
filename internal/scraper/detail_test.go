package scraper

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func loadFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "testdata", "fixtures", name))
	if err != nil {
		t.Fatalf("failed to load test fixture %s: %v", name, err)
	}
	return data
}

func docFromString(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parsing test HTML: %v", err)
	}
	return doc
}

func TestExtractDetailsLabeledDates(t *testing.T) {
	doc := docFromString(t, string(loadFixture(t, "detail_raid_hour.html")))

	d := extractDetails(doc)

	if d.title != "Articuno Raid Hour" {
		t.Errorf("expected title 'Articuno Raid Hour', got %q", d.title)
	}
	if d.start != "Wednesday, October 8, 2025, at 6:00 PM Local Time" {
		t.Errorf("unexpected start: %q", d.start)
	}
	if d.end != "Wednesday, October 8, 2025, at 7:00 PM Local Time" {
		t.Errorf("unexpected end: %q", d.end)
	}
}

func TestExtractDetailsFallbackScan(t *testing.T) {
	doc := docFromString(t, string(loadFixture(t, "detail_community_day.html")))

	d := extractDetails(doc)

	// No h1 on this page: the document title is used, minus the site
	// branding suffix.
	if d.title != "Mudkip Community Day Classic" {
		t.Errorf("expected stripped document title, got %q", d.title)
	}

	// No labels either: the first scanned full-form date becomes the
	// start and the last becomes the end.
	if d.start != "Saturday, October 11, 2025, at 2:00 PM" {
		t.Errorf("unexpected start: %q", d.start)
	}
	if d.end != "Saturday, October 11, 2025, at 5:00 PM" {
		t.Errorf("unexpected end: %q", d.end)
	}
}

func TestExtractDetailsNoEnd(t *testing.T) {
	doc := docFromString(t, string(loadFixture(t, "detail_spotlight_hour.html")))

	d := extractDetails(doc)

	if d.start == "" {
		t.Fatal("expected start to be extracted")
	}
	if d.end != "" {
		t.Errorf("expected end to stay unresolved, got %q", d.end)
	}
}

func TestExtractDetailsNoDates(t *testing.T) {
	doc := docFromString(t, string(loadFixture(t, "detail_no_dates.html")))

	d := extractDetails(doc)

	if d.start != "" || d.end != "" {
		t.Errorf("expected empty dates, got start=%q end=%q", d.start, d.end)
	}
	if d.title != "Mystery Teaser" {
		t.Errorf("unexpected title: %q", d.title)
	}
}

func TestExtractEndRangeWithTime(t *testing.T) {
	doc := docFromString(t, `<html><body><h1>Wild Area: Global</h1>
<p>Starts: Friday, November 21, 2025, at 10:00 AM Local Time</p>
<p>The event runs from Friday, November 21, 2025 to Sunday, November 23, 2025, at 8:00 PM.</p>
</body></html>`)

	d := extractDetails(doc)

	if d.end != "Sunday, November 23, 2025, at 8:00 PM Local Time" {
		t.Errorf("unexpected end from dated range: %q", d.end)
	}
}

func TestExtractEndRangeWithoutTime(t *testing.T) {
	doc := docFromString(t, `<html><body><h1>Festival of Lights</h1>
<p>Starts: Monday, December 1, 2025, at 10:00 AM Local Time</p>
<p>Celebrate from December 1, 2025 to December 8, 2025 with friends.</p>
</body></html>`)

	d := extractDetails(doc)

	// The time-less range reuses the start's time of day.
	if d.end != "Monday, December 8, 2025, at 10:00 AM Local Time" {
		t.Errorf("unexpected end from time-less range: %q", d.end)
	}
}

func TestExtractTitleSuffixes(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{
			name:     "Leek Duck suffix",
			html:     "<html><body><h1>Raid Hour - Leek Duck | Pokémon GO News</h1></body></html>",
			expected: "Raid Hour",
		},
		{
			name:     "pipe suffix",
			html:     "<html><body><h1>Spotlight Hour | Pokémon GO Events</h1></body></html>",
			expected: "Spotlight Hour",
		},
		{
			name:     "no suffix",
			html:     "<html><body><h1>Community Day</h1></body></html>",
			expected: "Community Day",
		},
		{
			name:     "no heading at all",
			html:     "<html><body><p>nothing</p></body></html>",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := extractDetails(docFromString(t, tt.html))
			if d.title != tt.expected {
				t.Errorf("expected title %q, got %q", tt.expected, d.title)
			}
		})
	}
}

func TestExtractDescriptionFilters(t *testing.T) {
	doc := docFromString(t, string(loadFixture(t, "detail_raid_hour.html")))

	d := extractDetails(doc)

	if strings.Contains(strings.ToLower(d.description), "cookie") {
		t.Error("description must not contain cookie-notice paragraphs")
	}
	if strings.Contains(d.description, "Raid Hour!") {
		t.Error("description must not contain paragraphs of 20 characters or fewer")
	}
	// 18 characters but 23 bytes: the length filter counts characters.
	if strings.Contains(d.description, "Fêtes à Pokémon éé") {
		t.Error("multibyte paragraphs under 20 characters must be filtered")
	}
	if !strings.Contains(d.description, "appearing in 5-Star Raids") {
		t.Errorf("expected qualifying paragraph in description, got %q", d.description)
	}
	if !strings.Contains(d.description, "\n\n") {
		t.Error("expected paragraphs joined with a blank line")
	}
}

func TestExtractDescriptionParagraphLimit(t *testing.T) {
	var b strings.Builder
	b.WriteString("<html><body><div class='entry-content'>")
	for i := 0; i < 7; i++ {
		b.WriteString("<p>This qualifying paragraph is comfortably longer than twenty characters.</p>")
	}
	b.WriteString("</div></body></html>")

	d := extractDetails(docFromString(t, b.String()))

	if got := strings.Count(d.description, "\n\n"); got != 4 {
		t.Errorf("expected 5 paragraphs (4 separators), got %d separators", got)
	}
}

func TestExtractDescriptionFirstSelectorWins(t *testing.T) {
	// The first structurally matching selector wins even when all of its
	// paragraphs are filtered out; later selectors are not consulted.
	doc := docFromString(t, `<html><body>
<div class="entry-content"><p>too short</p></div>
<article><p>This long qualifying paragraph must not be used as a fallback source.</p></article>
</body></html>`)

	d := extractDetails(doc)

	if d.description != "" {
		t.Errorf("expected empty description, got %q", d.description)
	}
}

func TestExtractDescriptionSkipsSelectorWithoutParagraphs(t *testing.T) {
	// A matching container with no <p> children does not claim the
	// description; the next selector is tried.
	doc := docFromString(t, `<html><body>
<div class="entry-content"><span>not a paragraph</span></div>
<article><p>Paragraph text that is long enough to survive the length filter.</p></article>
</body></html>`)

	d := extractDetails(doc)

	if !strings.Contains(d.description, "survive the length filter") {
		t.Errorf("expected fallback to the article selector, got %q", d.description)
	}
}
