package youtube_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/francuello10/tec-ecommerce-suite/internal/adapter"
	"github.com/francuello10/tec-ecommerce-suite/internal/mocks"
	"github.com/francuello10/tec-ecommerce-suite/internal/providers/vendors/youtube"
)

const apiURL = "https://www.googleapis.com"

func TestYouTubeClient_SearchVideo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	client := youtube.NewClient(mockHTTPClient, apiURL, "yt-key", adapter.NewJSON())

	ctx := context.Background()
	expectedURL := apiURL + "/youtube/v3/search?key=yt-key&maxResults=1&part=snippet&q=Logitech+MX+Master+3S+review+espa%C3%B1ol&type=video"
	mockHTTPClient.EXPECT().
		GetBytes(ctx, expectedURL, nil).
		Return(&adapter.Response{Body: []byte(`{"items":[{"id":{"kind":"youtube#video","videoId":"abc123"}}]}`)}, nil)

	watchURL, err := client.SearchVideo(ctx, "Logitech MX Master 3S review español")

	assert.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", watchURL)
}

func TestYouTubeClient_SearchVideo_NoItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	client := youtube.NewClient(mockHTTPClient, apiURL, "yt-key", adapter.NewJSON())

	mockHTTPClient.EXPECT().
		GetBytes(gomock.Any(), gomock.Any(), nil).
		Return(&adapter.Response{Body: []byte(`{"items":[]}`)}, nil)

	watchURL, err := client.SearchVideo(context.Background(), "unknown")

	assert.NoError(t, err)
	assert.Empty(t, watchURL)
}

func TestYouTubeClient_SearchVideo_NoAPIKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := youtube.NewClient(mocks.NewMockHTTPClient(ctrl), apiURL, "", adapter.NewJSON())

	_, err := client.SearchVideo(context.Background(), "x")

	assert.ErrorIs(t, err, youtube.ErrNoAPIKey)
}

func TestYouTubeClient_SearchVideo_QuotaExceeded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	client := youtube.NewClient(mockHTTPClient, apiURL, "yt-key", adapter.NewJSON())

	mockHTTPClient.EXPECT().
		GetBytes(gomock.Any(), gomock.Any(), nil).
		Return(nil, &adapter.StatusError{StatusCode: 403, Body: "quotaExceeded"})

	_, err := client.SearchVideo(context.Background(), "x")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "quotaExceeded")
}
