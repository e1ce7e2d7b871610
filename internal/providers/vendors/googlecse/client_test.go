package googlecse_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/francuello10/tec-ecommerce-suite/internal/adapter"
	"github.com/francuello10/tec-ecommerce-suite/internal/mocks"
	"github.com/francuello10/tec-ecommerce-suite/internal/providers/vendors/googlecse"
)

const apiURL = "https://www.googleapis.com"

func TestCSEClient_Search_Images(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	client := googlecse.NewClient(mockHTTPClient, apiURL, "key", "engine", adapter.NewJSON())

	ctx := context.Background()
	expectedURL := apiURL + "/customsearch/v1?cx=engine&imgSize=large&key=key&num=1&q=Dell+P2422H+official+product+image&searchType=image"
	mockHTTPClient.EXPECT().
		GetBytes(ctx, expectedURL, nil).
		Return(&adapter.Response{Body: []byte(`{"items":[{"title":"P2422H","link":"https://dell.com/p2422h.webp","mime":"image/webp"}]}`)}, nil)

	items, err := client.Search(ctx, "Dell P2422H official product image", googlecse.SearchOptions{Images: true, Num: 1})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "https://dell.com/p2422h.webp", items[0].Link)
	assert.Equal(t, "image/webp", items[0].Mime)
}

func TestCSEClient_Search_WebDefaultsToOneResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	client := googlecse.NewClient(mockHTTPClient, apiURL, "key", "engine", adapter.NewJSON())

	mockHTTPClient.EXPECT().
		GetBytes(gomock.Any(), apiURL+"/customsearch/v1?cx=engine&key=key&num=1&q=x", nil).
		Return(&adapter.Response{Body: []byte(`{}`)}, nil)

	items, err := client.Search(context.Background(), "x", googlecse.SearchOptions{Num: 50})

	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestCSEClient_Search_NoCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := googlecse.NewClient(mocks.NewMockHTTPClient(ctrl), apiURL, "key", "", adapter.NewJSON())

	_, err := client.Search(context.Background(), "x", googlecse.SearchOptions{})

	assert.ErrorIs(t, err, googlecse.ErrNoCredentials)
}
