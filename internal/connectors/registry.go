package connectors

import (
	"context"
	"fmt"

	"github.com/francuello10/tec-ecommerce-suite/internal/adapter"
	"github.com/francuello10/tec-ecommerce-suite/internal/config"
	"github.com/francuello10/tec-ecommerce-suite/internal/domain"
	"github.com/francuello10/tec-ecommerce-suite/internal/enrichment"
	"github.com/francuello10/tec-ecommerce-suite/internal/providers/ai/gemini"
	"github.com/francuello10/tec-ecommerce-suite/internal/providers/ai/openai"
	"github.com/francuello10/tec-ecommerce-suite/internal/providers/vendors/bestbuy"
	"github.com/francuello10/tec-ecommerce-suite/internal/providers/vendors/googlecse"
	"github.com/francuello10/tec-ecommerce-suite/internal/providers/vendors/icecat"
	"github.com/francuello10/tec-ecommerce-suite/internal/providers/vendors/lenovo"
	"github.com/francuello10/tec-ecommerce-suite/internal/providers/vendors/openproductdata"
	"github.com/francuello10/tec-ecommerce-suite/internal/providers/vendors/youtube"
	"github.com/francuello10/tec-ecommerce-suite/internal/ratelimit"
)

// Registry builds the connectors enabled by a pass's settings.
// Credentials are read from the settings on every build so admin changes apply to the next pass.
type Registry struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	vendors        config.VendorsConfig
	json           adapter.JSON
	policy         enrichment.Policy
}

// NewRegistry creates a connector registry over the default tier table
func NewRegistry(httpClient adapter.HTTPClient, rateLimitProxy ratelimit.Proxy, vendors config.VendorsConfig, json adapter.JSON) *Registry {
	return &Registry{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		vendors:        vendors,
		json:           json,
		policy:         enrichment.DefaultPolicy,
	}
}

// Build implements enrichment.ConnectorFactory
func (r *Registry) Build(settings enrichment.Settings) enrichment.ConnectorSet {
	var set enrichment.ConnectorSet

	for _, row := range r.policy {
		tier := enrichment.TierConnectors{Tier: row.Tier, Mode: row.Mode}
		for _, source := range row.Sources {
			if !settings.IsEnabled(source) {
				continue
			}
			if connector := r.technical(source, settings.Credentials); connector != nil {
				tier.Connectors = append(tier.Connectors, connector)
			}
		}
		if len(tier.Connectors) > 0 {
			set.Tiers = append(set.Tiers, tier)
		}
	}

	if settings.IsEnabled(domain.SourceYouTube) {
		set.Video = r.video(settings.Credentials)
	}
	if settings.IsEnabled(domain.SourceAI) {
		set.Content = r.content(settings)
	}

	return set
}

func (r *Registry) technical(source domain.Source, creds enrichment.Credentials) enrichment.TechnicalConnector {
	switch source {
	case domain.SourceLenovoPSREF:
		return &lenovoConnector{
			client: lenovo.NewClient(r.httpClient, r.rateLimitProxy, r.vendors.LenovoPSREFURL, r.json),
		}
	case domain.SourceIcecat:
		if creds.IcecatUsername == "" || creds.IcecatPassword == "" {
			return &unconfigured{source: source}
		}
		return &icecatConnector{
			client: icecat.NewClient(r.httpClient, r.vendors.IcecatURL, creds.IcecatUsername, creds.IcecatPassword, r.json),
		}
	case domain.SourceBestBuy:
		if creds.BestBuyAPIKey == "" {
			return &unconfigured{source: source}
		}
		return &bestBuyConnector{
			client: bestbuy.NewClient(r.httpClient, r.vendors.BestBuyURL, creds.BestBuyAPIKey, r.json),
		}
	case domain.SourceOpenProductData:
		return &openProductDataConnector{
			client: openproductdata.NewClient(r.httpClient, r.vendors.OpenProductDataURL, r.json),
		}
	case domain.SourceGoogle:
		if creds.GoogleCSEKey == "" || creds.GoogleCSECX == "" {
			return &unconfigured{source: source}
		}
		return &googleConnector{
			client: googlecse.NewClient(r.httpClient, r.vendors.GoogleCSEURL, creds.GoogleCSEKey, creds.GoogleCSECX, r.json),
		}
	}
	return nil
}

func (r *Registry) video(creds enrichment.Credentials) enrichment.VideoConnector {
	if creds.YouTubeAPIKey == "" {
		return &unconfigured{source: domain.SourceYouTube}
	}
	return &youTubeConnector{
		client: youtube.NewClient(r.httpClient, r.vendors.YouTubeURL, creds.YouTubeAPIKey, r.json),
	}
}

func (r *Registry) content(settings enrichment.Settings) enrichment.ContentConnector {
	creds := settings.Credentials
	switch settings.AIProvider {
	case enrichment.AIProviderOpenAI:
		if creds.OpenAIAPIKey == "" {
			return &unconfigured{source: domain.SourceAI}
		}
		return &contentConnector{
			model:    settings.OpenAIModel,
			generate: openai.NewClient(r.httpClient, r.vendors.OpenAIURL, creds.OpenAIAPIKey).Complete,
		}
	default:
		if creds.GeminiAPIKey == "" {
			return &unconfigured{source: domain.SourceAI}
		}
		return &contentConnector{
			model:    settings.GeminiModel,
			generate: gemini.NewClient(r.httpClient, r.vendors.GeminiURL, creds.GeminiAPIKey).GenerateContent,
		}
	}
}

// unconfigured stands in for an enabled source whose credentials are missing,
// so the pass records the gap instead of silently skipping it
type unconfigured struct {
	source domain.Source
}

func (u *unconfigured) Source() domain.Source { return u.source }

func (u *unconfigured) err() error {
	return fmt.Errorf("%w: %s credentials missing", domain.ErrNotConfigured, u.source.Label())
}

func (u *unconfigured) FetchTechnical(context.Context, enrichment.Identity) (*enrichment.TechnicalResult, error) {
	return nil, u.err()
}

func (u *unconfigured) FindVideo(context.Context, enrichment.Identity) (string, error) {
	return "", u.err()
}

func (u *unconfigured) GenerateContent(context.Context, enrichment.ContentRequest) (string, error) {
	return "", u.err()
}
