package scraper

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// Detail-page extraction grammar. Dates on LeekDuck always appear in the
// full form ("Tuesday, October 7, 2025, at 10:00 AM Local Time"); the
// patterns below capture that string in its several framings.
var (
	// Site branding appended to page titles.
	leekDuckSuffix  = regexp.MustCompile(`\s*-\s*Leek Duck.*$`)
	pokemonGoSuffix = regexp.MustCompile(`\s*\|\s*Pokémon GO.*$`)

	// startLabelPattern captures the dated string after a "Starts:" label.
	startLabelPattern = regexp.MustCompile(`(?i)Starts?:\s+([A-Za-z]+,\s+[A-Za-z]+\s+\d+,\s+\d{4},\s+at\s+\d+:\d+\s+[AP]M\s+Local\s+Time)`)

	// endLabelPattern captures the dated string after an "Ends:" label.
	endLabelPattern = regexp.MustCompile(`(?i)Ends?:\s+([A-Za-z]+,\s+[A-Za-z]+\s+\d+,\s+\d{4},\s+at\s+\d+:\d+\s+[AP]M\s+Local\s+Time)`)

	// fullDatePattern finds every full-form date in the page text. The
	// first hit doubles as a start fallback, the last as an end fallback.
	fullDatePattern = regexp.MustCompile(`([A-Za-z]+,\s+[A-Za-z]+\s+\d+,\s+\d{4},\s+at\s+\d+:\d+\s+[AP]M)\s+Local\s+Time`)

	// rangeWithTimePattern captures the end date and shared time from
	// "from <full date> to <full date>, at <time>".
	rangeWithTimePattern = regexp.MustCompile(`(?i)from\s+[A-Za-z]+,\s+[A-Za-z]+\s+\d+,\s+\d{4}\s+to\s+([A-Za-z]+,\s+[A-Za-z]+\s+\d+,\s+\d{4}),?\s+at\s+(\d+:\d+\s+[AP]M)`)

	// rangeNoTimePattern captures both dates of a time-less range
	// "from <Month Day, Year> to <Month Day, Year>"; the end reuses the
	// start's time of day.
	rangeNoTimePattern = regexp.MustCompile(`(?i)from\s+([A-Za-z]+\s+\d+,\s+\d{4})\s+to\s+([A-Za-z]+\s+\d+,\s+\d{4})`)

	timeOfDayPattern = regexp.MustCompile(`\d+:\d+\s+[AP]M`)
)

// descriptionSelectors are tried in order; the first one whose node
// contains paragraph elements wins, even if every paragraph is then
// filtered out.
var descriptionSelectors = []string{
	"div.entry-content",
	"div.event-description",
	"div.content",
	"article",
	"main",
}

const (
	minParagraphLen = 20
	maxParagraphs   = 5
)

// details holds the raw fields extracted from one event detail page.
// start and end are raw date text, not yet resolved to instants.
type details struct {
	title       string
	start       string
	end         string
	description string
}

// extractDetails pulls title, start/end date text, and description out of
// a detail-page document. It never fails: fields that cannot be located
// stay empty and the caller decides what to do about it.
func extractDetails(doc *goquery.Document) details {
	var d details
	d.title = extractTitle(doc)

	text := doc.Text()

	// Start: prefer the labeled form, else the first full-form date
	// anywhere on the page.
	var scanned []string
	if m := startLabelPattern.FindStringSubmatch(text); m != nil {
		d.start = m[1]
	} else {
		scanned = scanFullDates(text)
		if len(scanned) > 0 {
			d.start = scanned[0]
		}
	}

	d.end = extractEnd(text, d.start, scanned)
	d.description = extractDescription(doc)

	return d
}

func extractTitle(doc *goquery.Document) string {
	sel := doc.Find("h1").First()
	if sel.Length() == 0 {
		sel = doc.Find("title").First()
	}
	if sel.Length() == 0 {
		return ""
	}

	title := strings.TrimSpace(sel.Text())
	title = leekDuckSuffix.ReplaceAllString(title, "")
	title = pokemonGoSuffix.ReplaceAllString(title, "")
	return title
}

// extractEnd tries the end-date strategies in priority order: explicit
// label, dated range with shared time, time-less range reusing the
// start's time of day, and finally the last full-form date found during
// the start fallback scan (when it found at least two).
func extractEnd(text, start string, scanned []string) string {
	if m := endLabelPattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}

	if m := rangeWithTimePattern.FindStringSubmatch(text); m != nil {
		return fmt.Sprintf("%s, at %s Local Time", m[1], m[2])
	}

	if m := rangeNoTimePattern.FindStringSubmatch(text); m != nil && start != "" {
		if tod := timeOfDayPattern.FindString(start); tod != "" {
			// The weekday is ignored downstream, any name will do.
			return fmt.Sprintf("Monday, %s, at %s Local Time", m[2], tod)
		}
	}

	if len(scanned) >= 2 {
		return scanned[len(scanned)-1]
	}

	return ""
}

func scanFullDates(text string) []string {
	matches := fullDatePattern.FindAllStringSubmatch(text, -1)
	dates := make([]string, 0, len(matches))
	for _, m := range matches {
		dates = append(dates, m[1])
	}
	return dates
}

func extractDescription(doc *goquery.Document) string {
	for _, selector := range descriptionSelectors {
		container := doc.Find(selector).First()
		if container.Length() == 0 {
			continue
		}
		paragraphs := container.Find("p")
		if paragraphs.Length() == 0 {
			continue
		}

		parts := make([]string, 0, maxParagraphs)
		paragraphs.EachWithBreak(func(_ int, p *goquery.Selection) bool {
			text := strings.TrimSpace(p.Text())
			// Character count, not bytes: accented text must not slip
			// under the minimum.
			if utf8.RuneCountInString(text) <= minParagraphLen {
				return true
			}
			if strings.Contains(strings.ToLower(text), "cookie") {
				return true
			}
			parts = append(parts, text)
			return len(parts) < maxParagraphs
		})

		return strings.Join(parts, "\n\n")
	}
	return ""
}
