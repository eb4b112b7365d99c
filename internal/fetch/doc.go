// Package fetch provides the HTTP client used to retrieve LeekDuck pages.
//
// The fetch package owns everything network-related: the user agent
// header, per-request timeout, and retry policy with exponential backoff.
// Callers receive raw markup bytes or an error; retrying is handled here
// so the scraping pipeline never has to.
package fetch
