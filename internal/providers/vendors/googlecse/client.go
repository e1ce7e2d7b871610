package googlecse

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/francuello10/tec-ecommerce-suite/internal/adapter"
)

const PROVIDER_NAME = "google"

var ErrNoCredentials = errors.New("no Google Custom Search key or engine id provided")

// Item is one Custom Search result
type Item struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
	Mime    string `json:"mime"`
}

// SearchResponse represents the response of the Custom Search endpoint
type SearchResponse struct {
	Items []Item `json:"items"`
}

// SearchOptions narrows a query
type SearchOptions struct {
	// Images switches to image search with large pictures
	Images bool
	// Num is the number of results, 1 to 10
	Num int
}

// Client defines the interface for Google Custom Search operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../../mocks/googlecse_client.go -package=mocks -mock_names=Client=MockGoogleCSEClient
type Client interface {
	// Search runs a query and returns its items in rank order
	Search(ctx context.Context, query string, opts SearchOptions) ([]Item, error)
}

// CSEClient implements the Google Custom Search client
type CSEClient struct {
	httpClient adapter.HTTPClient
	apiURL     string
	apiKey     string
	cx         string
	json       adapter.JSON
}

// NewClient creates a new Google Custom Search client
func NewClient(httpClient adapter.HTTPClient, apiURL, apiKey, cx string, json adapter.JSON) Client {
	return &CSEClient{
		httpClient: httpClient,
		apiURL:     strings.TrimRight(apiURL, "/"),
		apiKey:     apiKey,
		cx:         cx,
		json:       json,
	}
}

// Search runs a query and returns its items in rank order
func (c *CSEClient) Search(ctx context.Context, query string, opts SearchOptions) ([]Item, error) {
	if c.apiKey == "" || c.cx == "" {
		return nil, ErrNoCredentials
	}

	num := opts.Num
	if num <= 0 || num > 10 {
		num = 1
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("cx", c.cx)
	params.Set("key", c.apiKey)
	params.Set("num", strconv.Itoa(num))
	if opts.Images {
		params.Set("searchType", "image")
		params.Set("imgSize", "large")
	}
	endpoint := fmt.Sprintf("%s/customsearch/v1?%s", c.apiURL, params.Encode())

	resp, err := c.httpClient.GetBytes(ctx, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call Google Custom Search: %w", err)
	}

	var response SearchResponse
	if err := c.json.Unmarshal(resp.Body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Google Custom Search response: %w", err)
	}

	return response.Items, nil
}
