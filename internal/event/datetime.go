package event

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ErrNotParseable indicates date text that matches neither known format.
var ErrNotParseable = errors.New("date text does not match any known format")

// LeekDuck date text comes in two shapes, both suffixed with "Local Time":
//
//	full form:  "Monday, October 13, 2025, at 6:00 PM"  (full month name)
//	short form: "Mon, Oct 13, at 7:00 PM"               (3-letter month)
//
// Captures: weekday, month, day, [year,] hour, minute, AM/PM.
var (
	fullFormPattern  = regexp.MustCompile(`(\w+),\s+(\w+)\s+(\d+),\s+(\d{4}),\s+at\s+(\d+):(\d+)\s+(AM|PM)`)
	shortFormPattern = regexp.MustCompile(`(\w+),\s+(\w+)\s+(\d+),\s+at\s+(\d+):(\d+)\s+(AM|PM)`)
)

const (
	fullFormLayout  = "January 2 2006 3:04 PM"
	shortFormLayout = "Jan 2 2006 3:04 PM"
)

// Parser resolves LeekDuck date text into instants anchored to a fixed
// reference timezone. The zero value is not usable; use NewParser.
type Parser struct {
	loc *time.Location
	now func() time.Time
}

// NewParser creates a Parser that interprets all date text in loc.
func NewParser(loc *time.Location) *Parser {
	return &Parser{
		loc: loc,
		now: time.Now,
	}
}

// Parse resolves date text into an instant in the reference timezone.
//
// The full form carries an explicit year, so preferFuture is ignored for
// it. The short form assumes the current year; if preferFuture is set and
// the resolved instant is already in the past, the next year is used
// instead. Listing pages describe upcoming occurrences and want
// preferFuture; detail pages repeat actual start dates of events that may
// already be underway and do not.
func (p *Parser) Parse(text string, preferFuture bool) (time.Time, error) {
	text = strings.TrimSpace(strings.ReplaceAll(text, "Local Time", ""))
	if text == "" {
		return time.Time{}, ErrNotParseable
	}

	if m := fullFormPattern.FindStringSubmatch(text); m != nil {
		composed := fmt.Sprintf("%s %s %s %s:%s %s", m[2], m[3], m[4], m[5], m[6], m[7])
		t, err := time.ParseInLocation(fullFormLayout, composed, p.loc)
		if err != nil {
			return time.Time{}, ErrNotParseable
		}
		return t, nil
	}

	m := shortFormPattern.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, ErrNotParseable
	}

	year := p.now().In(p.loc).Year()
	t, err := p.resolveShortForm(m, year)
	if err != nil {
		return time.Time{}, ErrNotParseable
	}

	// A year-less date already behind us usually means next year's
	// occurrence.
	if preferFuture && t.Before(p.now().In(p.loc)) {
		next, err := p.resolveShortForm(m, year+1)
		if err != nil {
			return time.Time{}, ErrNotParseable
		}
		t = next
	}

	return t, nil
}

func (p *Parser) resolveShortForm(m []string, year int) (time.Time, error) {
	composed := fmt.Sprintf("%s %s %d %s:%s %s", m[2], m[3], year, m[4], m[5], m[6])
	return time.ParseInLocation(shortFormLayout, composed, p.loc)
}
