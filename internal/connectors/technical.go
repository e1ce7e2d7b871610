package connectors

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/francuello10/tec-ecommerce-suite/internal/domain"
	"github.com/francuello10/tec-ecommerce-suite/internal/enrichment"
	"github.com/francuello10/tec-ecommerce-suite/internal/media"
	"github.com/francuello10/tec-ecommerce-suite/internal/providers/vendors/bestbuy"
	"github.com/francuello10/tec-ecommerce-suite/internal/providers/vendors/googlecse"
	"github.com/francuello10/tec-ecommerce-suite/internal/providers/vendors/icecat"
	"github.com/francuello10/tec-ecommerce-suite/internal/providers/vendors/lenovo"
	"github.com/francuello10/tec-ecommerce-suite/internal/providers/vendors/openproductdata"
	"github.com/francuello10/tec-ecommerce-suite/internal/richtext"
)

type lenovoConnector struct {
	client lenovo.Client
}

func (c *lenovoConnector) Source() domain.Source { return domain.SourceLenovoPSREF }

// Applies limits PSREF lookups to Lenovo products
func (c *lenovoConnector) Applies(id enrichment.Identity) bool {
	return id.IsBrand("lenovo")
}

func (c *lenovoConnector) FetchTechnical(ctx context.Context, id enrichment.Identity) (*enrichment.TechnicalResult, error) {
	item, err := c.client.Search(ctx, id.PartNumber)
	if err != nil || item == nil {
		return nil, err
	}

	detail, err := c.client.GetDetail(ctx, item)
	if err != nil || detail == nil {
		return nil, err
	}

	result := &enrichment.TechnicalResult{
		Text:       detail.Title,
		ProductURL: detail.PageURL,
	}
	for _, spec := range detail.Specs {
		result.Specs = append(result.Specs, richtext.SpecRow{Name: spec.Name, Value: spec.Value})
	}
	if detail.ImageURL != "" {
		result.Images = append(result.Images, media.Candidate{URL: detail.ImageURL, Caption: "Lenovo PSREF"})
	}
	if len(result.Specs) == 0 && len(result.Images) == 0 {
		return nil, nil
	}

	return result, nil
}

type icecatConnector struct {
	client icecat.Client
}

func (c *icecatConnector) Source() domain.Source { return domain.SourceIcecat }

func (c *icecatConnector) FetchTechnical(ctx context.Context, id enrichment.Identity) (*enrichment.TechnicalResult, error) {
	product, err := c.client.GetProduct(ctx, id.Brand, id.PartNumber)
	if err != nil || product == nil {
		return nil, err
	}

	result := &enrichment.TechnicalResult{
		HTML:         product.Description(),
		DatasheetURL: product.DatasheetURL(),
	}
	for _, spec := range product.Specs() {
		result.Specs = append(result.Specs, richtext.SpecRow{Name: spec[0], Value: spec[1]})
	}
	for i, url := range product.ImageURLs() {
		result.Images = append(result.Images, media.Candidate{URL: url, Caption: fmt.Sprintf("Icecat %d", i+1)})
	}

	return result, nil
}

type bestBuyConnector struct {
	client bestbuy.Client
}

func (c *bestBuyConnector) Source() domain.Source { return domain.SourceBestBuy }

// Applies requires a brand, which the products API filters on
func (c *bestBuyConnector) Applies(id enrichment.Identity) bool {
	return strings.TrimSpace(id.Brand) != ""
}

func (c *bestBuyConnector) FetchTechnical(ctx context.Context, id enrichment.Identity) (*enrichment.TechnicalResult, error) {
	product, err := c.client.FindProduct(ctx, id.PartNumber, id.Brand)
	if err != nil || product == nil {
		return nil, err
	}

	result := &enrichment.TechnicalResult{
		Text: product.LongDescription,
		HTML: bulletList(product.FeatureList()),
	}
	for _, detail := range product.Details {
		result.Specs = append(result.Specs, richtext.SpecRow{Name: detail.Name, Value: detail.Value})
	}
	for i, url := range product.ImageURLs() {
		caption := "BestBuy Main View"
		if i > 0 {
			caption = fmt.Sprintf("BestBuy View %d", i)
		}
		result.Images = append(result.Images, media.Candidate{URL: url, Caption: caption})
	}

	return result, nil
}

type openProductDataConnector struct {
	client openproductdata.Client
}

func (c *openProductDataConnector) Source() domain.Source { return domain.SourceOpenProductData }

// Applies requires a barcode, the only key the database is indexed by
func (c *openProductDataConnector) Applies(id enrichment.Identity) bool {
	return strings.TrimSpace(id.Barcode) != ""
}

func (c *openProductDataConnector) FetchTechnical(ctx context.Context, id enrichment.Identity) (*enrichment.TechnicalResult, error) {
	product, err := c.client.GetProduct(ctx, id.Barcode)
	if err != nil || product == nil {
		return nil, err
	}

	result := &enrichment.TechnicalResult{
		Text: product.Description(),
	}
	if url := strings.TrimSpace(product.ImageURL); url != "" {
		result.Images = append(result.Images, media.Candidate{URL: url, Caption: "Open Product Data"})
	}

	return result, nil
}

type googleConnector struct {
	client googlecse.Client
}

func (c *googleConnector) Source() domain.Source { return domain.SourceGoogle }

// FetchTechnical runs the image, datasheet and, for products without text, snippet searches.
// A failing search only fails the call when no other search contributed.
func (c *googleConnector) FetchTechnical(ctx context.Context, id enrichment.Identity) (*enrichment.TechnicalResult, error) {
	subject := strings.TrimSpace(id.Brand + " " + id.PartNumber)
	result := &enrichment.TechnicalResult{}
	var errs []error

	images, err := c.client.Search(ctx, subject+" official product image", googlecse.SearchOptions{Images: true, Num: 1})
	if err != nil {
		errs = append(errs, fmt.Errorf("image search: %w", err))
	}
	for _, item := range images {
		if item.Link != "" {
			result.Images = append(result.Images, media.Candidate{URL: item.Link, Caption: "Google"})
		}
	}

	pdfs, err := c.client.Search(ctx, subject+" specifications filetype:pdf", googlecse.SearchOptions{Num: 1})
	if err != nil {
		errs = append(errs, fmt.Errorf("datasheet search: %w", err))
	}
	for _, item := range pdfs {
		if item.Link != "" {
			result.DatasheetURL = item.Link
			break
		}
	}

	if !id.HasDescription {
		snippets, err := c.client.Search(ctx, subject+" specifications features", googlecse.SearchOptions{Num: 3})
		if err != nil {
			errs = append(errs, fmt.Errorf("snippet search: %w", err))
		}
		result.HTML = snippetList(snippets)
	}

	if result.Empty() && len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return result, nil
}

func bulletList(items []string) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<ul>")
	for _, item := range items {
		b.WriteString("<li>")
		b.WriteString(html.EscapeString(item))
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
	return b.String()
}

func snippetList(items []googlecse.Item) string {
	var b strings.Builder
	for _, item := range items {
		snippet := strings.TrimSpace(item.Snippet)
		if snippet == "" {
			continue
		}
		b.WriteString("<li><b>")
		b.WriteString(html.EscapeString(strings.TrimSpace(item.Title)))
		b.WriteString("</b>: ")
		b.WriteString(html.EscapeString(snippet))
		b.WriteString("</li>")
	}
	if b.Len() == 0 {
		return ""
	}
	return "<ul>" + b.String() + "</ul>"
}
