package scryfall

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// MaxBatchSize is the maximum number of identifiers per /cards/collection request
// (Scryfall's documented limit is 75).
const MaxBatchSize = 75

// GetCollection fetches up to MaxBatchSize cards in a single batch request to
// /cards/collection. Identifiers beyond the limit are rejected before any request
// is issued; callers partition larger lists themselves.
//
// Identifiers that match no card are returned in the second value; they do not
// fail the request. A request-level rejection (e.g. a malformed identifier list)
// surfaces as an *APIError.
func (c *Client) GetCollection(ctx context.Context, identifiers []CardIdentifier) ([]Card, []CardIdentifier, error) {
	if len(identifiers) == 0 {
		return []Card{}, nil, nil
	}
	if len(identifiers) > MaxBatchSize {
		return nil, nil, fmt.Errorf("collection request exceeds %d identifiers: %d", MaxBatchSize, len(identifiers))
	}

	// Wait for rate limiter
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, nil, fmt.Errorf("rate limiter error: %w", err)
	}

	reqBody := CollectionRequest{Identifiers: identifiers}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	reqURL := c.baseURL + "/cards/collection"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch cards from Scryfall: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var collectionResp CollectionResponse
	if err := c.handleResponse(resp, reqURL, &collectionResp); err != nil {
		return nil, nil, err
	}

	return collectionResp.Data, collectionResp.NotFound, nil
}
