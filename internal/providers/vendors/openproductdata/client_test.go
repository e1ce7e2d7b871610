package openproductdata_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/francuello10/tec-ecommerce-suite/internal/adapter"
	"github.com/francuello10/tec-ecommerce-suite/internal/mocks"
	"github.com/francuello10/tec-ecommerce-suite/internal/providers/vendors/openproductdata"
)

const apiURL = "https://world.openproductsfacts.org"

func TestOpenProductDataClient_GetProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	client := openproductdata.NewClient(mockHTTPClient, apiURL+"/", adapter.NewJSON())

	ctx := context.Background()
	mockHTTPClient.EXPECT().
		GetBytes(ctx, apiURL+"/api/v0/product/0195908483366.json", nil).
		Return(&adapter.Response{Body: []byte(`{
			"status": 1,
			"product": {
				"product_name": "Mouse inalámbrico",
				"generic_name": "",
				"generic_name_en": "Wireless mouse",
				"image_url": "https://images.openproductsfacts.org/front.jpg"
			}
		}`)}, nil)

	product, err := client.GetProduct(ctx, " 0195908483366 ")

	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "Wireless mouse", product.Description())
	assert.Equal(t, "https://images.openproductsfacts.org/front.jpg", product.ImageURL)
}

func TestOpenProductDataClient_GetProduct_StatusNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	client := openproductdata.NewClient(mockHTTPClient, apiURL, adapter.NewJSON())

	mockHTTPClient.EXPECT().
		GetBytes(gomock.Any(), gomock.Any(), nil).
		Return(&adapter.Response{Body: []byte(`{"status":0,"status_verbose":"product not found"}`)}, nil)

	product, err := client.GetProduct(context.Background(), "123")

	assert.NoError(t, err)
	assert.Nil(t, product)
}

func TestOpenProductDataClient_GetProduct_EmptyBarcode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := openproductdata.NewClient(mocks.NewMockHTTPClient(ctrl), apiURL, adapter.NewJSON())

	product, err := client.GetProduct(context.Background(), "  ")

	assert.NoError(t, err)
	assert.Nil(t, product)
}

func TestOpenProductDataClient_GetProduct_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	client := openproductdata.NewClient(mockHTTPClient, apiURL, adapter.NewJSON())

	mockHTTPClient.EXPECT().
		GetBytes(gomock.Any(), gomock.Any(), nil).
		Return(nil, &adapter.StatusError{StatusCode: 500})

	_, err := client.GetProduct(context.Background(), "123")

	assert.Error(t, err)
}
