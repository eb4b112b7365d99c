package scraper

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/soniCaH/pokemon-go-leekduck/internal/event"
	"github.com/soniCaH/pokemon-go-leekduck/internal/logger"
)

const (
	EventsURL  = "https://leekduck.com/events/"
	BaseURL    = "https://leekduck.com"
	FetchDelay = 500 * time.Millisecond

	// DefaultDescription is used when a detail page yields no usable
	// description paragraphs.
	DefaultDescription = "Event details from LeekDuck"

	eventPathPrefix = "/events/"

	// Listing pages carry short placeholder hrefs (the index itself,
	// pagination); real detail paths are longer.
	minCandidateHrefLen = 10
)

// Fetcher retrieves raw page markup.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Scraper discovers event links on the LeekDuck listing page and
// assembles a normalized event per unique detail URL.
type Scraper struct {
	fetcher Fetcher
	parser  *event.Parser
	baseURL string
	listURL string
	delay   time.Duration
}

// New creates a Scraper against the production LeekDuck URLs.
func New(fetcher Fetcher, parser *event.Parser) *Scraper {
	return &Scraper{
		fetcher: fetcher,
		parser:  parser,
		baseURL: BaseURL,
		listURL: EventsURL,
		delay:   FetchDelay,
	}
}

// SetDelay overrides the courtesy delay applied before each detail-page
// fetch.
func (s *Scraper) SetDelay(d time.Duration) {
	s.delay = d
}

// SetListingURL points the scraper at a different listing page. Detail
// links are resolved against the listing page's scheme and host.
func (s *Scraper) SetListingURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid listing URL: %q", raw)
	}
	s.listURL = raw
	s.baseURL = u.Scheme + "://" + u.Host
	return nil
}

// linkCandidate is a listing-page href believed to reference an event
// detail page, plus the link's visible text for title fallback.
type linkCandidate struct {
	href string
	text string
}

// FetchEvents fetches the listing page and assembles all events. A
// listing-page failure aborts the run; per-candidate failures only skip
// that candidate.
func (s *Scraper) FetchEvents(ctx context.Context) ([]*event.Event, error) {
	body, err := s.fetcher.Fetch(ctx, s.listURL)
	if err != nil {
		return nil, fmt.Errorf("fetching listing page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing listing page: %w", err)
	}

	return s.assemble(ctx, doc), nil
}

// findCandidates collects detail-page links in listing order.
func (s *Scraper) findCandidates(doc *goquery.Document) []linkCandidate {
	var candidates []linkCandidate
	doc.Find("a[href]").Each(func(i int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if !strings.HasPrefix(href, eventPathPrefix) || href == eventPathPrefix || len(href) <= minCandidateHrefLen {
			return
		}
		candidates = append(candidates, linkCandidate{
			href: href,
			text: strings.TrimSpace(sel.Text()),
		})
	})
	return candidates
}

// assemble processes candidates sequentially: dedup by canonical URL,
// extract, resolve dates, classify, and apply the defaulting policy.
// Output order follows the listing page.
func (s *Scraper) assemble(ctx context.Context, doc *goquery.Document) []*event.Event {
	candidates := s.findCandidates(doc)
	logger.Info("Discovered event links", logger.Fields{"count": len(candidates)})

	seen := make(map[string]bool)
	events := make([]*event.Event, 0, len(candidates))

	for _, cand := range candidates {
		detailURL := s.baseURL + cand.href
		if seen[detailURL] {
			continue
		}
		seen[detailURL] = true

		d, err := s.fetchDetails(ctx, detailURL)
		if err != nil {
			logger.Error("Skipping candidate after failed detail fetch", logger.Fields{"url": detailURL}, err)
			logger.IncrCounter("events.skipped_fetch_error")
			continue
		}

		title := d.title
		if title == "" {
			title = firstLine(cand.text)
		}

		start, err := s.parser.Parse(d.start, false)
		if err != nil {
			logger.Info("Skipping candidate without start date", logger.Fields{
				"url":   detailURL,
				"title": title,
			})
			logger.IncrCounter("events.dropped_no_start")
			continue
		}

		end, err := s.parser.Parse(d.end, false)
		if err != nil {
			end = start.Add(time.Hour)
			logger.IncrCounter("events.defaulted_end")
		}
		if end.Before(start) {
			// Malformed source page; passed through as-is.
			logger.Warn("Event ends before it starts", logger.Fields{
				"url":   detailURL,
				"start": start.Format(time.RFC3339),
				"end":   end.Format(time.RFC3339),
			})
		}

		description := d.description
		if description == "" {
			description = DefaultDescription
		}

		category := event.Classify(title)

		events = append(events, &event.Event{
			Title:       category.Glyph() + " " + title,
			Category:    category,
			Start:       start,
			End:         end,
			Description: description,
			SourceURL:   detailURL,
		})
	}

	return events
}

// fetchDetails fetches and parses one detail page, waiting the courtesy
// delay first.
func (s *Scraper) fetchDetails(ctx context.Context, url string) (details, error) {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	logger.Debug("Fetching event detail page", logger.Fields{"url": url})

	body, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return details{}, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return details{}, fmt.Errorf("parsing detail page: %w", err)
	}

	return extractDetails(doc), nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
