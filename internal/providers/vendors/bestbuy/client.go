package bestbuy

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/francuello10/tec-ecommerce-suite/internal/adapter"
)

const PROVIDER_NAME = "bestbuy"

// MAX_ALTERNATE_VIEWS caps the extra gallery images taken from one product
const MAX_ALTERNATE_VIEWS = 5

const showFields = "sku,name,longDescription,features.feature,details.name,details.value,image,alternateViews.image"

var ErrNoAPIKey = errors.New("no API key provided")

// Product is the subset of a Best Buy product the enricher reads
type Product struct {
	SKU             int64           `json:"sku"`
	Name            string          `json:"name"`
	LongDescription string          `json:"longDescription"`
	Features        []Feature       `json:"features"`
	Details         []Detail        `json:"details"`
	Image           string          `json:"image"`
	AlternateViews  []AlternateView `json:"alternateViews"`
}

type Feature struct {
	Feature string `json:"feature"`
}

type Detail struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type AlternateView struct {
	Image string `json:"image"`
}

// ProductsResponse represents the response of the products endpoint
type ProductsResponse struct {
	Total    int       `json:"total"`
	Products []Product `json:"products"`
}

// Client defines the interface for Best Buy client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../../mocks/bestbuy_client.go -package=mocks -mock_names=Client=MockBestBuyClient
type Client interface {
	// FindProduct returns the first product matching model number and manufacturer; nil when none
	FindProduct(ctx context.Context, modelNumber, manufacturer string) (*Product, error)
}

// BestBuyClient implements the Best Buy products API client
type BestBuyClient struct {
	httpClient adapter.HTTPClient
	apiURL     string
	apiKey     string
	json       adapter.JSON
}

// NewClient creates a new Best Buy client
func NewClient(httpClient adapter.HTTPClient, apiURL string, apiKey string, json adapter.JSON) Client {
	return &BestBuyClient{
		httpClient: httpClient,
		apiURL:     strings.TrimRight(apiURL, "/"),
		apiKey:     apiKey,
		json:       json,
	}
}

// FindProduct returns the first product matching model number and manufacturer
func (c *BestBuyClient) FindProduct(ctx context.Context, modelNumber, manufacturer string) (*Product, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	filter := fmt.Sprintf("(modelNumber=%s&manufacturer=%s)",
		url.PathEscape(modelNumber),
		url.PathEscape(manufacturer),
	)
	query := url.Values{}
	query.Set("format", "json")
	query.Set("show", showFields)
	query.Set("apiKey", c.apiKey)
	endpoint := fmt.Sprintf("%s/products%s?%s", c.apiURL, filter, query.Encode())

	resp, err := c.httpClient.GetBytes(ctx, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call Best Buy API: %w", err)
	}

	var response ProductsResponse
	if err := c.json.Unmarshal(resp.Body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Best Buy response: %w", err)
	}

	if response.Total == 0 || len(response.Products) == 0 {
		return nil, nil
	}

	return &response.Products[0], nil
}

// FeatureList returns the non-empty marketing bullet points
func (p *Product) FeatureList() []string {
	var features []string
	for _, f := range p.Features {
		if s := strings.TrimSpace(f.Feature); s != "" {
			features = append(features, s)
		}
	}
	return features
}

// ImageURLs lists the main image followed by at most MAX_ALTERNATE_VIEWS alternate views
func (p *Product) ImageURLs() []string {
	var urls []string
	if u := strings.TrimSpace(p.Image); u != "" {
		urls = append(urls, u)
	}

	views := 0
	for _, view := range p.AlternateViews {
		if views == MAX_ALTERNATE_VIEWS {
			break
		}
		if u := strings.TrimSpace(view.Image); u != "" {
			urls = append(urls, u)
			views++
		}
	}
	return urls
}
