package icecat

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/francuello10/tec-ecommerce-suite/internal/adapter"
)

const PROVIDER_NAME = "icecat"

// DEFAULT_LANGUAGE is the content language requested from the catalog
const DEFAULT_LANGUAGE = "es"

var ErrNoCredentials = errors.New("no Icecat credentials provided")

// Product is the subset of the Icecat product record the enricher reads
type Product struct {
	GeneralInfo    GeneralInfo    `json:"GeneralInfo"`
	Image          Image          `json:"Image"`
	Gallery        []GalleryImage `json:"Gallery"`
	FeaturesGroups []FeatureGroup `json:"FeaturesGroups"`
	Multimedia     []Multimedia   `json:"Multimedia"`
}

type GeneralInfo struct {
	Title              string             `json:"Title"`
	Description        Description        `json:"Description"`
	SummaryDescription SummaryDescription `json:"SummaryDescription"`
}

type Description struct {
	LongDesc string `json:"LongDesc"`
}

type SummaryDescription struct {
	LongSummaryDescription string `json:"LongSummaryDescription"`
}

type Image struct {
	HighPic string `json:"HighPic"`
}

type GalleryImage struct {
	Pic string `json:"Pic"`
}

type FeatureGroup struct {
	FeatureGroup struct {
		Name LocalizedValue `json:"Name"`
	} `json:"FeatureGroup"`
	Features []Feature `json:"Features"`
}

type Feature struct {
	Feature struct {
		Name LocalizedValue `json:"Name"`
	} `json:"Feature"`
	PresentationValue string `json:"PresentationValue"`
}

type LocalizedValue struct {
	Value string `json:"Value"`
}

type Multimedia struct {
	URL         string `json:"URL"`
	ContentType string `json:"ContentType"`
	Type        string `json:"Type"`
}

// Response is the envelope of the Icecat live API
type Response struct {
	Msg          string   `json:"msg"`
	Data         *Product `json:"data"`
	StatusCode   int      `json:"StatusCode"`
	ErrorMessage string   `json:"Message"`
}

// Client defines the interface for Icecat client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../../mocks/icecat_client.go -package=mocks -mock_names=Client=MockIcecatClient
type Client interface {
	// GetProduct looks a product up by brand and manufacturer part number; nil when unknown
	GetProduct(ctx context.Context, brand, partNumber string) (*Product, error)
}

// IcecatClient implements the Icecat client
type IcecatClient struct {
	httpClient adapter.HTTPClient
	apiURL     string
	username   string
	password   string
	json       adapter.JSON
}

// NewClient creates a new Icecat client
func NewClient(httpClient adapter.HTTPClient, apiURL, username, password string, json adapter.JSON) Client {
	return &IcecatClient{
		httpClient: httpClient,
		apiURL:     strings.TrimRight(apiURL, "/"),
		username:   username,
		password:   password,
		json:       json,
	}
}

// GetProduct looks a product up by brand and manufacturer part number
func (c *IcecatClient) GetProduct(ctx context.Context, brand, partNumber string) (*Product, error) {
	if c.username == "" || c.password == "" {
		return nil, ErrNoCredentials
	}

	query := url.Values{}
	query.Set("UserName", c.username)
	query.Set("Language", DEFAULT_LANGUAGE)
	query.Set("Brand", brand)
	query.Set("ProductCode", partNumber)
	endpoint := fmt.Sprintf("%s/api?%s", c.apiURL, query.Encode())

	credentials := base64.StdEncoding.EncodeToString([]byte(c.username + ":" + c.password))
	headers := map[string]string{
		"Authorization": "Basic " + credentials,
	}

	resp, err := c.httpClient.GetBytes(ctx, endpoint, headers)
	if err != nil {
		if adapter.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to call Icecat API: %w", err)
	}

	var response Response
	if err := c.json.Unmarshal(resp.Body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Icecat response: %w", err)
	}

	if response.Data == nil {
		return nil, nil
	}

	return response.Data, nil
}

// Specs flattens the feature groups into name/value pairs, skipping blanks
func (p *Product) Specs() [][2]string {
	var specs [][2]string
	for _, group := range p.FeaturesGroups {
		for _, feature := range group.Features {
			name := strings.TrimSpace(feature.Feature.Name.Value)
			value := strings.TrimSpace(feature.PresentationValue)
			if name == "" || value == "" {
				continue
			}
			specs = append(specs, [2]string{name, value})
		}
	}
	return specs
}

// ImageURLs lists the main picture followed by the gallery, without repeats
func (p *Product) ImageURLs() []string {
	seen := make(map[string]bool)
	var urls []string
	add := func(u string) {
		u = strings.TrimSpace(u)
		if u == "" || seen[u] {
			return
		}
		seen[u] = true
		urls = append(urls, u)
	}

	add(p.Image.HighPic)
	for _, pic := range p.Gallery {
		add(pic.Pic)
	}
	return urls
}

// DatasheetURL returns the first PDF in the multimedia list
func (p *Product) DatasheetURL() string {
	for _, m := range p.Multimedia {
		if strings.EqualFold(m.ContentType, "application/pdf") && m.URL != "" {
			return m.URL
		}
	}
	return ""
}

// Description prefers the long marketing text over the summary
func (p *Product) Description() string {
	if desc := strings.TrimSpace(p.GeneralInfo.Description.LongDesc); desc != "" {
		return desc
	}
	return strings.TrimSpace(p.GeneralInfo.SummaryDescription.LongSummaryDescription)
}
