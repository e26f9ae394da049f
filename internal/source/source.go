// Package source fetches decklist text from an external URL. Plain-text
// responses are used as-is; HTML pages have their decklist extracted from
// the first pre/code block that parses as a list.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const defaultTimeout = 30 * time.Second

// Client fetches external decklist sources.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a source client with the given request timeout.
// A zero timeout falls back to 30 seconds.
func NewClient(timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchList retrieves decklist text from src.
func (c *Client) FetchList(ctx context.Context, src string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch decklist source: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("decklist source returned status %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if strings.Contains(contentType, "text/html") {
		return extractFromHTML(resp.Body)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read decklist source: %w", err)
	}

	return string(body), nil
}

// extractFromHTML pulls decklist text out of an HTML page. The first
// pre or code block containing a recognizable decklist line wins.
func extractFromHTML(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML source: %w", err)
	}

	var found string
	doc.Find("pre, code").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if looksLikeDecklist(text) {
			found = text
			return false
		}
		return true
	})

	if found == "" {
		return "", fmt.Errorf("no decklist found in HTML source")
	}

	return found, nil
}

// looksLikeDecklist reports whether any line starts with an amount followed
// by a card name.
func looksLikeDecklist(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		amount := strings.TrimSuffix(fields[0], "x")
		if amount == "" {
			continue
		}
		digits := true
		for _, r := range amount {
			if r < '0' || r > '9' {
				digits = false
				break
			}
		}
		if digits {
			return true
		}
	}
	return false
}
