package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"

	"github.com/confab-dev/confab/internal/conference"
)

const (
	// DefaultUserAgent identifies the aggregator to the sources it polls.
	DefaultUserAgent = "confab/1.0 (github.com/confab-dev/confab)"

	defaultTimeout = 30 * time.Second
	defaultRetries = 2
)

// Source is one external provider of conference listings.
type Source interface {
	// Name is the provenance tag written into every record.
	Name() string
	// Fetch returns the source's current listings. An error means zero
	// records; callers log and continue.
	Fetch(ctx context.Context) ([]*conference.Conference, error)
}

// Client wraps http.Client with the retry and decoding behavior every live
// fetcher shares.
type Client struct {
	http       *http.Client
	userAgent  string
	maxRetries uint64
}

// ClientConfig controls the shared fetch client.
type ClientConfig struct {
	Timeout    time.Duration
	UserAgent  string
	MaxRetries int
}

// NewClient builds a fetch client, filling zero config values with defaults.
func NewClient(cfg ClientConfig) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = defaultRetries
	}
	return &Client{
		http:       &http.Client{Timeout: cfg.Timeout},
		userAgent:  cfg.UserAgent,
		maxRetries: uint64(cfg.MaxRetries),
	}
}

// get performs a GET with retries. Transport errors and 5xx responses retry
// with exponential backoff; any other non-2xx status fails permanently.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	var body []byte

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("User-Agent", c.userAgent)

		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("fetching %s: %w", url, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("server error from %s: status %d", url, resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("unexpected status from %s: %d", url, resp.StatusCode))
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading response from %s: %w", url, err)
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return body, nil
}

// GetJSON fetches a URL and decodes the body into v.
func (c *Client) GetJSON(ctx context.Context, url string, v interface{}) error {
	body, err := c.get(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("parsing JSON from %s: %w", url, err)
	}
	return nil
}

// GetDocument fetches a URL and parses the body as HTML.
func (c *Client) GetDocument(ctx context.Context, url string) (*goquery.Document, error) {
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML from %s: %w", url, err)
	}
	return doc, nil
}

// validated filters out records that fail boundary validation so downstream
// stages can assume a fixed shape. Invalid records are dropped, not fatal.
func validated(records []*conference.Conference) []*conference.Conference {
	out := records[:0]
	for _, rec := range records {
		if rec.Validate() == nil {
			out = append(out, rec)
		}
	}
	return out
}
