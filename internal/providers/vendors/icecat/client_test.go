package icecat_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/francuello10/tec-ecommerce-suite/internal/adapter"
	"github.com/francuello10/tec-ecommerce-suite/internal/mocks"
	"github.com/francuello10/tec-ecommerce-suite/internal/providers/vendors/icecat"
)

const productJSON = `{
	"msg": "OK",
	"data": {
		"GeneralInfo": {
			"Title": "HP ProBook 450 G10",
			"Description": {"LongDesc": "<b>Potente</b> y liviana"},
			"SummaryDescription": {"LongSummaryDescription": "Resumen"}
		},
		"Image": {"HighPic": "https://images.icecat.biz/img/high.jpg"},
		"Gallery": [
			{"Pic": "https://images.icecat.biz/img/high.jpg"},
			{"Pic": "https://images.icecat.biz/img/side.jpg"}
		],
		"FeaturesGroups": [
			{
				"FeatureGroup": {"Name": {"Value": "Procesador"}},
				"Features": [
					{"Feature": {"Name": {"Value": "Familia de procesador"}}, "PresentationValue": "Intel Core i7"},
					{"Feature": {"Name": {"Value": "Vacío"}}, "PresentationValue": ""}
				]
			}
		],
		"Multimedia": [
			{"URL": "https://objects.icecat.biz/video.mp4", "ContentType": "video/mp4"},
			{"URL": "https://objects.icecat.biz/leaflet.pdf", "ContentType": "application/pdf", "Type": "Leaflet"}
		]
	}
}`

func TestIcecatClient_GetProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	client := icecat.NewClient(mockHTTPClient, "https://live.icecat.biz", "user", "secret", adapter.NewJSON())

	ctx := context.Background()
	expectedURL := "https://live.icecat.biz/api?Brand=HP&Language=es&ProductCode=7L6Z5LA%23ABM&UserName=user"
	expectedHeaders := map[string]string{"Authorization": "Basic dXNlcjpzZWNyZXQ="}

	mockHTTPClient.EXPECT().
		GetBytes(ctx, expectedURL, expectedHeaders).
		Return(&adapter.Response{Body: []byte(productJSON)}, nil)

	product, err := client.GetProduct(ctx, "HP", "7L6Z5LA#ABM")

	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "HP ProBook 450 G10", product.GeneralInfo.Title)
	assert.Equal(t, "<b>Potente</b> y liviana", product.Description())
	assert.Equal(t, [][2]string{{"Familia de procesador", "Intel Core i7"}}, product.Specs())
	assert.Equal(t, []string{
		"https://images.icecat.biz/img/high.jpg",
		"https://images.icecat.biz/img/side.jpg",
	}, product.ImageURLs())
	assert.Equal(t, "https://objects.icecat.biz/leaflet.pdf", product.DatasheetURL())
}

func TestIcecatClient_GetProduct_NoCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := icecat.NewClient(mocks.NewMockHTTPClient(ctrl), "https://live.icecat.biz", "", "", adapter.NewJSON())

	product, err := client.GetProduct(context.Background(), "HP", "X")

	assert.ErrorIs(t, err, icecat.ErrNoCredentials)
	assert.Nil(t, product)
}

func TestIcecatClient_GetProduct_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	client := icecat.NewClient(mockHTTPClient, "https://live.icecat.biz", "user", "secret", adapter.NewJSON())

	mockHTTPClient.EXPECT().
		GetBytes(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &adapter.StatusError{StatusCode: 404, Body: `{"msg":"not found"}`})

	product, err := client.GetProduct(context.Background(), "HP", "X")

	assert.NoError(t, err)
	assert.Nil(t, product)
}

func TestIcecatClient_GetProduct_UnmarshalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	mockJSON := mocks.NewMockJSON(ctrl)
	client := icecat.NewClient(mockHTTPClient, "https://live.icecat.biz", "user", "secret", mockJSON)

	body := []byte(`{`)
	mockHTTPClient.EXPECT().
		GetBytes(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&adapter.Response{Body: body}, nil)
	mockJSON.EXPECT().
		Unmarshal(body, gomock.Any()).
		Return(assert.AnError)

	_, err := client.GetProduct(context.Background(), "HP", "X")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal Icecat response")
}

func TestProduct_DescriptionFallsBackToSummary(t *testing.T) {
	p := &icecat.Product{}
	p.GeneralInfo.SummaryDescription.LongSummaryDescription = " Resumen "
	assert.Equal(t, "Resumen", p.Description())
	assert.Empty(t, p.DatasheetURL())
}
