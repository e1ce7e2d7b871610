package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/francuello10/tec-ecommerce-suite/internal/adapter"
)

const PROVIDER_NAME = "youtube"

// WATCH_URL_FORMAT renders a video id as a public watch URL
const WATCH_URL_FORMAT = "https://www.youtube.com/watch?v=%s"

var ErrNoAPIKey = errors.New("no API key provided")

// SearchResponse represents the response of the search endpoint
type SearchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
	} `json:"items"`
}

// Client defines the interface for YouTube Data API operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../../mocks/youtube_client.go -package=mocks -mock_names=Client=MockYouTubeClient
type Client interface {
	// SearchVideo returns the watch URL of the best match, empty when there is none
	SearchVideo(ctx context.Context, query string) (string, error)
}

// YouTubeClient implements the YouTube Data API client
type YouTubeClient struct {
	httpClient adapter.HTTPClient
	apiURL     string
	apiKey     string
	json       adapter.JSON
}

// NewClient creates a new YouTube client
func NewClient(httpClient adapter.HTTPClient, apiURL string, apiKey string, json adapter.JSON) Client {
	return &YouTubeClient{
		httpClient: httpClient,
		apiURL:     strings.TrimRight(apiURL, "/"),
		apiKey:     apiKey,
		json:       json,
	}
}

// SearchVideo returns the watch URL of the best match
func (c *YouTubeClient) SearchVideo(ctx context.Context, query string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoAPIKey
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("key", c.apiKey)
	params.Set("type", "video")
	params.Set("maxResults", "1")
	endpoint := fmt.Sprintf("%s/youtube/v3/search?%s", c.apiURL, params.Encode())

	resp, err := c.httpClient.GetBytes(ctx, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to call YouTube API: %w", err)
	}

	var response SearchResponse
	if err := c.json.Unmarshal(resp.Body, &response); err != nil {
		return "", fmt.Errorf("failed to unmarshal YouTube response: %w", err)
	}

	for _, item := range response.Items {
		if id := strings.TrimSpace(item.ID.VideoID); id != "" {
			return fmt.Sprintf(WATCH_URL_FORMAT, id), nil
		}
	}

	return "", nil
}
