package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/soniCaH/pokemon-go-leekduck/internal/logger"
)

const (
	// UserAgent mirrors a desktop browser; LeekDuck serves a reduced page
	// to unknown agents.
	UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"

	Timeout    = 30 * time.Second
	MaxRetries = 3
)

// Client fetches raw page markup over HTTP. Transient failures (network
// errors, 5xx responses) are retried with exponential backoff; client
// errors are not.
type Client struct {
	httpClient *http.Client
	userAgent  string
	maxRetries uint64
}

// New creates a Client with the default user agent, timeout and retry
// policy.
func New() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: Timeout,
		},
		userAgent:  UserAgent,
		maxRetries: MaxRetries,
	}
}

// Fetch retrieves the page at url and returns its body.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	var body []byte

	attempt := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("User-Agent", c.userAgent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("fetching page: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			err = fmt.Errorf("unexpected status code: %d", resp.StatusCode)
			if resp.StatusCode >= 500 {
				return err
			}
			return backoff.Permanent(err)
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading response body: %w", err)
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(newBackOff(), c.maxRetries), ctx)

	start := time.Now()
	err := backoff.Retry(attempt, policy)
	logger.RecordTiming("fetch.page", time.Since(start))

	if err != nil {
		return nil, err
	}
	return body, nil
}

func newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	return b
}
