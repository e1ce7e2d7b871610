package connectors

import (
	"context"
	"fmt"
	"strings"

	"github.com/francuello10/tec-ecommerce-suite/internal/domain"
	"github.com/francuello10/tec-ecommerce-suite/internal/enrichment"
	"github.com/francuello10/tec-ecommerce-suite/internal/providers/ai"
	"github.com/francuello10/tec-ecommerce-suite/internal/providers/vendors/youtube"
)

type youTubeConnector struct {
	client youtube.Client
}

func (c *youTubeConnector) Source() domain.Source { return domain.SourceYouTube }

func (c *youTubeConnector) FindVideo(ctx context.Context, id enrichment.Identity) (string, error) {
	subject := strings.TrimSpace(id.Brand + " " + id.Name)
	if subject == "" {
		return "", nil
	}
	return c.client.SearchVideo(ctx, fmt.Sprintf("%s review español", subject))
}

// contentConnector renders the prompt and delegates to a model backend
type contentConnector struct {
	model    string
	generate func(ctx context.Context, model string, prompt string) (string, error)
}

func (c *contentConnector) Source() domain.Source { return domain.SourceAI }

func (c *contentConnector) GenerateContent(ctx context.Context, req enrichment.ContentRequest) (string, error) {
	return c.generate(ctx, c.model, ai.BuildPrompt(req))
}
