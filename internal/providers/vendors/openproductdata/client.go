package openproductdata

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/francuello10/tec-ecommerce-suite/internal/adapter"
)

const PROVIDER_NAME = "open_product_data"

// STATUS_FOUND is the status the database reports for a known barcode
const STATUS_FOUND = 1

// Product is the community record of a barcode
type Product struct {
	ProductName   string `json:"product_name"`
	GenericName   string `json:"generic_name"`
	GenericNameEN string `json:"generic_name_en"`
	ImageURL      string `json:"image_url"`
}

// ProductResponse represents the response of the product endpoint
type ProductResponse struct {
	Status  int      `json:"status"`
	Product *Product `json:"product"`
}

// Client defines the interface for Open Product Data operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../../mocks/openproductdata_client.go -package=mocks -mock_names=Client=MockOpenProductDataClient
type Client interface {
	// GetProduct looks a barcode up; nil when the database does not know it
	GetProduct(ctx context.Context, barcode string) (*Product, error)
}

// OpenProductDataClient implements the Open Product Data client
type OpenProductDataClient struct {
	httpClient adapter.HTTPClient
	apiURL     string
	json       adapter.JSON
}

// NewClient creates a new Open Product Data client
func NewClient(httpClient adapter.HTTPClient, apiURL string, json adapter.JSON) Client {
	return &OpenProductDataClient{
		httpClient: httpClient,
		apiURL:     strings.TrimRight(apiURL, "/"),
		json:       json,
	}
}

// GetProduct looks a barcode up
func (c *OpenProductDataClient) GetProduct(ctx context.Context, barcode string) (*Product, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return nil, nil
	}

	endpoint := fmt.Sprintf("%s/api/v0/product/%s.json", c.apiURL, url.PathEscape(barcode))

	resp, err := c.httpClient.GetBytes(ctx, endpoint, nil)
	if err != nil {
		if adapter.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to call Open Product Data API: %w", err)
	}

	var response ProductResponse
	if err := c.json.Unmarshal(resp.Body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Open Product Data response: %w", err)
	}

	if response.Status != STATUS_FOUND || response.Product == nil {
		return nil, nil
	}

	return response.Product, nil
}

// Description returns the generic name, falling back to its English variant
func (p *Product) Description() string {
	if s := strings.TrimSpace(p.GenericName); s != "" {
		return s
	}
	return strings.TrimSpace(p.GenericNameEN)
}
