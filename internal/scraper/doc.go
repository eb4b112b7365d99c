// Package scraper turns LeekDuck's event pages into normalized events.
//
// The scraper package discovers candidate detail links on the events
// listing page, fetches each detail page sequentially with a courtesy
// delay, and extracts title, start, end, and description through layered
// strategies with graceful degradation. Candidates without a resolvable
// start date are dropped; a missing end date defaults to one hour after
// the start. Duplicate links are collapsed by canonical URL and output
// preserves listing order.
package scraper
