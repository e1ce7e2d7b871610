package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/francuello10/tec-ecommerce-suite/internal/adapter"
)

const PROVIDER_NAME = "gemini"

var ErrNoAPIKey = errors.New("no API key provided")

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

// GenerateRequest is the body of a generateContent call
type GenerateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

// GenerateResponse is the reply of a generateContent call
type GenerateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback,omitempty"`
}

// Client defines the interface for Gemini operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../../mocks/gemini_client.go -package=mocks -mock_names=Client=MockGeminiClient
type Client interface {
	// GenerateContent sends a single-turn prompt and returns the model's text
	GenerateContent(ctx context.Context, model string, prompt string) (string, error)
}

// GeminiClient implements the Gemini generateContent client
type GeminiClient struct {
	httpClient adapter.HTTPClient
	apiURL     string
	apiKey     string
}

// NewClient creates a new Gemini client
func NewClient(httpClient adapter.HTTPClient, apiURL string, apiKey string) Client {
	return &GeminiClient{
		httpClient: httpClient,
		apiURL:     strings.TrimRight(apiURL, "/"),
		apiKey:     apiKey,
	}
}

// GenerateContent sends a single-turn prompt and returns the model's text
func (c *GeminiClient) GenerateContent(ctx context.Context, model string, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoAPIKey
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.apiURL, url.PathEscape(model))
	headers := map[string]string{
		"x-goog-api-key": c.apiKey,
	}
	body := GenerateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
		},
	}

	var response GenerateResponse
	if err := c.httpClient.PostJSON(ctx, endpoint, headers, body, &response); err != nil {
		return "", fmt.Errorf("failed to call Gemini API: %w", err)
	}

	if response.PromptFeedback != nil && response.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("gemini blocked the prompt: %s", response.PromptFeedback.BlockReason)
	}
	if len(response.Candidates) == 0 {
		return "", nil
	}

	var text strings.Builder
	for _, p := range response.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}

	return strings.TrimSpace(text.String()), nil
}
