package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/francuello10/tec-ecommerce-suite/internal/adapter"
)

const PROVIDER_NAME = "openai"

var ErrNoAPIKey = errors.New("no API key provided")

// Message is one chat message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

// ChatRequest is the body of a chat completions call
type ChatRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

// ChatResponse is the reply of a chat completions call
type ChatResponse struct {
	Choices []struct {
		Message      Message `json:"message"`
		FinishReason string  `json:"finish_reason"`
	} `json:"choices"`
}

// Client defines the interface for OpenAI operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../../mocks/openai_client.go -package=mocks -mock_names=Client=MockOpenAIClient
type Client interface {
	// Complete sends a single user message and returns the assistant's reply
	Complete(ctx context.Context, model string, prompt string) (string, error)
}

// OpenAIClient implements the chat completions client
type OpenAIClient struct {
	httpClient adapter.HTTPClient
	apiURL     string
	apiKey     string
}

// NewClient creates a new OpenAI client
func NewClient(httpClient adapter.HTTPClient, apiURL string, apiKey string) Client {
	return &OpenAIClient{
		httpClient: httpClient,
		apiURL:     strings.TrimRight(apiURL, "/"),
		apiKey:     apiKey,
	}
}

// Complete sends a single user message and returns the assistant's reply
func (c *OpenAIClient) Complete(ctx context.Context, model string, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoAPIKey
	}

	headers := map[string]string{
		"Authorization": "Bearer " + c.apiKey,
	}
	body := ChatRequest{
		Model:          model,
		Messages:       []Message{{Role: "user", Content: prompt}},
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	var response ChatResponse
	if err := c.httpClient.PostJSON(ctx, c.apiURL+"/chat/completions", headers, body, &response); err != nil {
		return "", fmt.Errorf("failed to call OpenAI API: %w", err)
	}

	if len(response.Choices) == 0 {
		return "", nil
	}

	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}
