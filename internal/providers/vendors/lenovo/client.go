package lenovo

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/francuello10/tec-ecommerce-suite/internal/adapter"
	"github.com/francuello10/tec-ecommerce-suite/internal/ratelimit"
)

const PROVIDER_NAME = "lenovo_psref"

// SearchItem is one hit of the PSREF search endpoint
type SearchItem struct {
	Name string `json:"Name"`
	URL  string `json:"Url"`
}

// Spec is one row of the PSREF specifications table
type Spec struct {
	Name  string
	Value string
}

// Detail is the scraped PSREF product page
type Detail struct {
	PageURL  string
	Title    string
	ImageURL string
	Specs    []Spec
}

// Client defines the interface for Lenovo PSREF operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../../mocks/lenovo_client.go -package=mocks -mock_names=Client=MockLenovoClient
type Client interface {
	// Search returns the first PSREF model matching the part number, nil when there is none
	Search(ctx context.Context, partNumber string) (*SearchItem, error)
	// GetDetail fetches and scrapes the product page of a search hit
	GetDetail(ctx context.Context, item *SearchItem) (*Detail, error)
}

// PSREFClient implements the Lenovo PSREF client
type PSREFClient struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	baseURL        string
	json           adapter.JSON
}

// NewClient creates a new Lenovo PSREF client
func NewClient(httpClient adapter.HTTPClient, rateLimitProxy ratelimit.Proxy, baseURL string, json adapter.JSON) Client {
	return &PSREFClient{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		baseURL:        strings.TrimRight(baseURL, "/"),
		json:           json,
	}
}

// Search returns the first PSREF model matching the part number
func (c *PSREFClient) Search(ctx context.Context, partNumber string) (*SearchItem, error) {
	endpoint := fmt.Sprintf("%s/syspool/Sys/GetSearchItems?search=%s", c.baseURL, url.QueryEscape(partNumber))

	resp, err := c.get(ctx, endpoint)
	if err != nil {
		if adapter.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to call PSREF search: %w", err)
	}

	var items []SearchItem
	if err := c.json.Unmarshal(resp.Body, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal PSREF search response: %w", err)
	}

	for i := range items {
		if strings.TrimSpace(items[i].URL) != "" {
			return &items[i], nil
		}
	}

	return nil, nil
}

// GetDetail fetches and scrapes the product page of a search hit
func (c *PSREFClient) GetDetail(ctx context.Context, item *SearchItem) (*Detail, error) {
	if item == nil || item.URL == "" {
		return nil, nil
	}

	pageURL := fmt.Sprintf("%s/Detail/%s", c.baseURL, strings.TrimLeft(item.URL, "/"))

	resp, err := c.get(ctx, pageURL)
	if err != nil {
		if adapter.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch PSREF detail page: %w", err)
	}

	detail, err := c.parseDetail(resp.Body)
	if err != nil {
		return nil, err
	}
	detail.PageURL = pageURL
	if detail.Title == "" {
		detail.Title = item.Name
	}

	return detail, nil
}

func (c *PSREFClient) get(ctx context.Context, endpoint string) (*adapter.Response, error) {
	return ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) (*adapter.Response, error) {
		return c.httpClient.GetBytes(ctx, endpoint, nil)
	})
}

func (c *PSREFClient) parseDetail(page []byte) (*Detail, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("failed to parse PSREF detail page: %w", err)
	}

	detail := &Detail{
		Title: collapse(doc.Find("h1").First().Text()),
	}

	if src, ok := doc.Find("img#myimage").Attr("src"); ok && strings.TrimSpace(src) != "" {
		detail.ImageURL = c.absolute(strings.TrimSpace(src))
	}

	seen := make(map[string]bool)
	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td, th")
		if cells.Length() < 2 {
			return
		}
		name := collapse(cells.Eq(0).Text())
		value := collapse(cells.Eq(1).Text())
		if name == "" || value == "" || seen[strings.ToLower(name)] {
			return
		}
		seen[strings.ToLower(name)] = true
		detail.Specs = append(detail.Specs, Spec{Name: name, Value: value})
	})

	return detail, nil
}

func (c *PSREFClient) absolute(src string) string {
	switch {
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		return src
	case strings.HasPrefix(src, "//"):
		return "https:" + src
	case strings.HasPrefix(src, "/"):
		return c.baseURL + src
	default:
		return c.baseURL + "/" + src
	}
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
