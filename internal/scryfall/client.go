package scryfall

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the root of the Scryfall API.
	DefaultBaseURL = "https://api.scryfall.com"

	// rateLimitDelay is the recommended delay between API requests (50-100ms).
	rateLimitDelay = 100 * time.Millisecond

	requestTimeout = 30 * time.Second
)

// Client represents a Scryfall API client with rate limiting.
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	baseURL     string
	userAgent   string
}

// Options configures a Client.
type Options struct {
	BaseURL   string        // API root (defaults to DefaultBaseURL)
	UserAgent string        // User-Agent header
	Timeout   time.Duration // HTTP request timeout
	RateLimit time.Duration // Minimum delay between requests
}

// DefaultOptions returns sensible default client options.
func DefaultOptions() Options {
	return Options{
		BaseURL:   DefaultBaseURL,
		UserAgent: "mtg-card-seer/1.0",
		Timeout:   requestTimeout,
		RateLimit: rateLimitDelay,
	}
}

// NewClient creates a new Scryfall API client with default options.
func NewClient() *Client {
	return NewClientWithOptions(DefaultOptions())
}

// NewClientWithOptions creates a new Scryfall API client.
// Zero-valued fields fall back to defaults.
func NewClientWithOptions(opts Options) *Client {
	defaults := DefaultOptions()
	if opts.BaseURL == "" {
		opts.BaseURL = defaults.BaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaults.UserAgent
	}
	if opts.Timeout == 0 {
		opts.Timeout = defaults.Timeout
	}
	if opts.RateLimit == 0 {
		opts.RateLimit = defaults.RateLimit
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		rateLimiter: rate.NewLimiter(rate.Every(opts.RateLimit), 1),
		baseURL:     opts.BaseURL,
		userAgent:   opts.UserAgent,
	}
}

// BaseURL returns the API root this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetCardNamed retrieves a card by fuzzy name search.
// The set filter is appended as a query parameter when present.
func (c *Client) GetCardNamed(ctx context.Context, fuzzy, set string) (*Card, error) {
	params := url.Values{}
	params.Set("fuzzy", fuzzy)
	if set != "" {
		params.Set("set", set)
	}

	reqURL := fmt.Sprintf("%s/cards/named?%s", c.baseURL, params.Encode())

	var card Card
	if err := c.doRequest(ctx, reqURL, &card); err != nil {
		return nil, err
	}

	return &card, nil
}

// GetCardBySetAndNumber retrieves an exact printing by set code and collector number.
func (c *Client) GetCardBySetAndNumber(ctx context.Context, set, collectorNumber string) (*Card, error) {
	reqURL := fmt.Sprintf("%s/cards/%s/%s", c.baseURL, url.PathEscape(set), url.PathEscape(collectorNumber))

	var card Card
	if err := c.doRequest(ctx, reqURL, &card); err != nil {
		return nil, err
	}

	return &card, nil
}

// doRequest performs a rate-limited GET request and decodes the JSON response.
func (c *Client) doRequest(ctx context.Context, reqURL string, result interface{}) error {
	// Wait for rate limiter
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	return c.handleResponse(resp, reqURL, result)
}

// handleResponse decodes a Scryfall response, translating 404s to NotFoundError
// and other non-200 statuses to APIError where the body permits.
func (c *Client) handleResponse(resp *http.Response, reqURL string, result interface{}) error {
	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response body: %w", err)
		}

		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("failed to parse JSON response: %w", err)
		}

		return nil

	case http.StatusNotFound:
		return &NotFoundError{URL: reqURL}

	default:
		body, _ := io.ReadAll(resp.Body)

		var apiErr APIError
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Details != "" {
			return &apiErr
		}

		return fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}
}
