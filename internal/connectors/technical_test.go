package connectors

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/francuello10/tec-ecommerce-suite/internal/enrichment"
	"github.com/francuello10/tec-ecommerce-suite/internal/media"
	"github.com/francuello10/tec-ecommerce-suite/internal/mocks"
	"github.com/francuello10/tec-ecommerce-suite/internal/providers/vendors/bestbuy"
	"github.com/francuello10/tec-ecommerce-suite/internal/providers/vendors/googlecse"
	"github.com/francuello10/tec-ecommerce-suite/internal/providers/vendors/icecat"
	"github.com/francuello10/tec-ecommerce-suite/internal/providers/vendors/lenovo"
	"github.com/francuello10/tec-ecommerce-suite/internal/providers/vendors/openproductdata"
	"github.com/francuello10/tec-ecommerce-suite/internal/richtext"
)

func TestLenovoConnector(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockLenovoClient(ctrl)
	connector := &lenovoConnector{client: client}
	ctx := context.Background()

	assert.True(t, connector.Applies(enrichment.Identity{Brand: "LENOVO"}))
	assert.False(t, connector.Applies(enrichment.Identity{Brand: "HP"}))

	item := &lenovo.SearchItem{URL: "Product/ThinkPad/E14"}
	client.EXPECT().Search(ctx, "21JK0082US").Return(item, nil)
	client.EXPECT().GetDetail(ctx, item).Return(&lenovo.Detail{
		Title:    "ThinkPad E14",
		PageURL:  "https://psref.lenovo.com/Detail/Product/ThinkPad/E14",
		ImageURL: "https://psref.lenovo.com/img.png",
		Specs:    []lenovo.Spec{{Name: "Processor", Value: "i5"}},
	}, nil)

	result, err := connector.FetchTechnical(ctx, enrichment.Identity{PartNumber: "21JK0082US", Brand: "Lenovo"})

	require.NoError(t, err)
	assert.Equal(t, "ThinkPad E14", result.Text)
	assert.Equal(t, "https://psref.lenovo.com/Detail/Product/ThinkPad/E14", result.ProductURL)
	assert.Equal(t, []richtext.SpecRow{{Name: "Processor", Value: "i5"}}, result.Specs)
	assert.Equal(t, []media.Candidate{{URL: "https://psref.lenovo.com/img.png", Caption: "Lenovo PSREF"}}, result.Images)
}

func TestLenovoConnector_NoSearchHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockLenovoClient(ctrl)
	client.EXPECT().Search(gomock.Any(), "X").Return(nil, nil)

	result, err := (&lenovoConnector{client: client}).FetchTechnical(context.Background(), enrichment.Identity{PartNumber: "X"})

	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestIcecatConnector(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	product := &icecat.Product{
		Image:      icecat.Image{HighPic: "https://images.icecat.biz/a.jpg"},
		Multimedia: []icecat.Multimedia{{URL: "https://objects.icecat.biz/ds.pdf", ContentType: "application/pdf"}},
	}
	product.GeneralInfo.Description.LongDesc = "<p>Desc</p>"

	client := mocks.NewMockIcecatClient(ctrl)
	client.EXPECT().GetProduct(gomock.Any(), "HP", "7L6Z5LA").Return(product, nil)

	result, err := (&icecatConnector{client: client}).FetchTechnical(context.Background(), enrichment.Identity{Brand: "HP", PartNumber: "7L6Z5LA"})

	require.NoError(t, err)
	assert.Equal(t, "<p>Desc</p>", result.HTML)
	assert.Equal(t, "https://objects.icecat.biz/ds.pdf", result.DatasheetURL)
	assert.Equal(t, []media.Candidate{{URL: "https://images.icecat.biz/a.jpg", Caption: "Icecat 1"}}, result.Images)
}

func TestBestBuyConnector(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockBestBuyClient(ctrl)
	connector := &bestBuyConnector{client: client}
	assert.False(t, connector.Applies(enrichment.Identity{PartNumber: "X"}))

	client.EXPECT().FindProduct(gomock.Any(), "G614JV", "ASUS").Return(&bestbuy.Product{
		LongDescription: "Gaming laptop",
		Features:        []bestbuy.Feature{{Feature: "RTX <4060>"}},
		Details:         []bestbuy.Detail{{Name: "Screen Size", Value: "16 inches"}},
		Image:           "main.jpg",
		AlternateViews:  []bestbuy.AlternateView{{Image: "alt.jpg"}},
	}, nil)

	result, err := connector.FetchTechnical(context.Background(), enrichment.Identity{Brand: "ASUS", PartNumber: "G614JV"})

	require.NoError(t, err)
	assert.Equal(t, "Gaming laptop", result.Text)
	assert.Equal(t, "<ul><li>RTX &lt;4060&gt;</li></ul>", result.HTML)
	assert.Equal(t, []richtext.SpecRow{{Name: "Screen Size", Value: "16 inches"}}, result.Specs)
	assert.Equal(t, []media.Candidate{
		{URL: "main.jpg", Caption: "BestBuy Main View"},
		{URL: "alt.jpg", Caption: "BestBuy View 1"},
	}, result.Images)
}

func TestOpenProductDataConnector(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockOpenProductDataClient(ctrl)
	connector := &openProductDataConnector{client: client}
	assert.False(t, connector.Applies(enrichment.Identity{}))
	assert.True(t, connector.Applies(enrichment.Identity{Barcode: "0195908483366"}))

	client.EXPECT().GetProduct(gomock.Any(), "0195908483366").Return(&openproductdata.Product{
		GenericName: "Mouse",
		ImageURL:    "front.jpg",
	}, nil)

	result, err := connector.FetchTechnical(context.Background(), enrichment.Identity{Barcode: "0195908483366"})

	require.NoError(t, err)
	assert.Equal(t, "Mouse", result.Text)
	assert.Equal(t, []media.Candidate{{URL: "front.jpg", Caption: "Open Product Data"}}, result.Images)
}

func TestGoogleConnector_SnippetsOnlyWithoutDescription(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockGoogleCSEClient(ctrl)
	connector := &googleConnector{client: client}
	ctx := context.Background()

	client.EXPECT().
		Search(ctx, "Dell P2422H official product image", googlecse.SearchOptions{Images: true, Num: 1}).
		Return([]googlecse.Item{{Link: "https://dell.com/p.webp"}}, nil)
	client.EXPECT().
		Search(ctx, "Dell P2422H specifications filetype:pdf", googlecse.SearchOptions{Num: 1}).
		Return([]googlecse.Item{{Link: "https://dell.com/p.pdf"}}, nil)

	result, err := connector.FetchTechnical(ctx, enrichment.Identity{Brand: "Dell", PartNumber: "P2422H", HasDescription: true})

	require.NoError(t, err)
	assert.Equal(t, "https://dell.com/p.pdf", result.DatasheetURL)
	assert.Empty(t, result.HTML)
	assert.Len(t, result.Images, 1)
}

func TestGoogleConnector_Snippets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockGoogleCSEClient(ctrl)
	connector := &googleConnector{client: client}
	ctx := context.Background()

	client.EXPECT().Search(ctx, gomock.Any(), googlecse.SearchOptions{Images: true, Num: 1}).Return(nil, nil)
	client.EXPECT().Search(ctx, gomock.Any(), googlecse.SearchOptions{Num: 1}).Return(nil, nil)
	client.EXPECT().
		Search(ctx, "Dell P2422H specifications features", googlecse.SearchOptions{Num: 3}).
		Return([]googlecse.Item{
			{Title: "Dell 24 Monitor", Snippet: "IPS & 60Hz"},
			{Title: "No snippet"},
		}, nil)

	result, err := connector.FetchTechnical(ctx, enrichment.Identity{Brand: "Dell", PartNumber: "P2422H"})

	require.NoError(t, err)
	assert.Equal(t, "<ul><li><b>Dell 24 Monitor</b>: IPS &amp; 60Hz</li></ul>", result.HTML)
}

func TestGoogleConnector_AllSearchesFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockGoogleCSEClient(ctrl)
	boom := errors.New("quota exceeded")
	client.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, boom).Times(3)

	result, err := (&googleConnector{client: client}).FetchTechnical(context.Background(), enrichment.Identity{Brand: "Dell", PartNumber: "X"})

	assert.ErrorIs(t, err, boom)
	assert.Nil(t, result)
}

func TestGoogleConnector_PartialFailureStillContributes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockGoogleCSEClient(ctrl)
	client.EXPECT().Search(gomock.Any(), gomock.Any(), googlecse.SearchOptions{Images: true, Num: 1}).Return(nil, errors.New("boom"))
	client.EXPECT().Search(gomock.Any(), gomock.Any(), googlecse.SearchOptions{Num: 1}).Return([]googlecse.Item{{Link: "ds.pdf"}}, nil)

	result, err := (&googleConnector{client: client}).FetchTechnical(context.Background(), enrichment.Identity{Brand: "Dell", PartNumber: "X", HasDescription: true})

	require.NoError(t, err)
	assert.Equal(t, "ds.pdf", result.DatasheetURL)
}

func TestYouTubeConnector(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockYouTubeClient(ctrl)
	client.EXPECT().
		SearchVideo(gomock.Any(), "Logitech MX Master 3S review español").
		Return("https://www.youtube.com/watch?v=abc", nil)

	url, err := (&youTubeConnector{client: client}).FindVideo(context.Background(), enrichment.Identity{Brand: "Logitech", Name: "MX Master 3S"})

	assert.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc", url)
}
