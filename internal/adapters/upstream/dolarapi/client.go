// Package dolarapi implements the upstream rate source against the public
// DolarAPI (https://dolarapi.com) dollar quotes endpoint.
package dolarapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/wallbit/exchange-rates-api/internal/core/domain"
	portssvc "github.com/wallbit/exchange-rates-api/internal/core/ports/services"
)

// DefaultBaseURL is the public DolarAPI dollar quotes endpoint.
const DefaultBaseURL = "https://dolarapi.com/v1/dolares"

// Client fetches dollar quotes from DolarAPI. The endpoint requires no auth
// and answers with a JSON array of quote objects.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ portssvc.UpstreamRateSource = (*Client)(nil)

// NewClient builds a client for the given endpoint; an empty baseURL selects
// the public DolarAPI endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// FetchRates performs one GET against the quotes endpoint and decodes the
// response array. The caller bounds the call through ctx; there is no retry.
func (c *Client) FetchRates(ctx context.Context) ([]domain.UpstreamRate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build upstream request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to request upstream rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("unexpected status %d from upstream", resp.StatusCode)
	}

	var rates []domain.UpstreamRate
	if err := json.NewDecoder(resp.Body).Decode(&rates); err != nil {
		return nil, fmt.Errorf("failed to decode upstream response: %w", err)
	}
	return rates, nil
}
