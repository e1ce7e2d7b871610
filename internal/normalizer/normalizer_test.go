package normalizer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/francuello10/tec-ecommerce-suite/internal/mocks"
	"github.com/francuello10/tec-ecommerce-suite/internal/normalizer"
	"github.com/francuello10/tec-ecommerce-suite/internal/store"
)

func TestResolveBrand_Sentinels(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	n := normalizer.NewNormalizer(st)

	for _, raw := range []string{"", "  ", "nan", "None", "NULL", "0", "false"} {
		brand, err := n.ResolveBrand(context.Background(), raw, true)
		require.NoError(t, err, raw)
		assert.Nil(t, brand, raw)
	}
}

func TestResolveBrand_ExactName(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	n := normalizer.NewNormalizer(st)

	dell := &store.Label{ID: 3, Kind: store.LabelKindBrand, Name: "Dell", IsCanonical: true}
	st.EXPECT().FindLabelByName(gomock.Any(), store.LabelKindBrand, "dell").Return(dell, nil)

	brand, err := n.ResolveBrand(context.Background(), "  dell ", false)
	require.NoError(t, err)
	assert.Equal(t, dell, brand)
}

func TestResolveBrand_KnownAlias(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	n := normalizer.NewNormalizer(st)

	hp := &store.Label{ID: 5, Kind: store.LabelKindBrand, Name: "HP"}
	st.EXPECT().FindLabelByName(gomock.Any(), store.LabelKindBrand, "HP Latam").Return(nil, nil)
	st.EXPECT().FindLabelByAlias(gomock.Any(), store.LabelKindBrand, "HP Latam").Return(hp, nil)

	brand, err := n.ResolveBrand(context.Background(), "HP   Latam", true)
	require.NoError(t, err)
	assert.Equal(t, hp, brand)
}

func TestResolveBrand_StaticAliasIsLearnedOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	n := normalizer.NewNormalizer(st)
	ctx := context.Background()

	raw := "HEWLET PACKARD ENTERPRISE"
	hpe := &store.Label{ID: 9, Kind: store.LabelKindBrand, Name: "HPE", IsCanonical: true}

	gomock.InOrder(
		// first call: falls through to the static table and learns the alias
		st.EXPECT().FindLabelByName(ctx, store.LabelKindBrand, raw).Return(nil, nil),
		st.EXPECT().FindLabelByAlias(ctx, store.LabelKindBrand, raw).Return(nil, nil),
		st.EXPECT().FindLabelByName(ctx, store.LabelKindBrand, "HPE").Return(hpe, nil),
		st.EXPECT().CreateLabelAlias(ctx, store.LabelKindBrand, raw, int64(9)).Return(nil),
		// second call: the learned alias short-circuits the static table
		st.EXPECT().FindLabelByName(ctx, store.LabelKindBrand, raw).Return(nil, nil),
		st.EXPECT().FindLabelByAlias(ctx, store.LabelKindBrand, raw).Return(hpe, nil),
	)

	first, err := n.ResolveBrand(ctx, raw, false)
	require.NoError(t, err)
	second, err := n.ResolveBrand(ctx, raw, false)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(9), second.ID)
}

func TestResolveBrand_AutoCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	n := normalizer.NewNormalizer(st)
	ctx := context.Background()

	st.EXPECT().FindLabelByName(ctx, store.LabelKindBrand, "Noname Tech").Return(nil, nil).Times(2)
	st.EXPECT().FindLabelByAlias(ctx, store.LabelKindBrand, "Noname Tech").Return(nil, nil).Times(2)

	brand, err := n.ResolveBrand(ctx, "Noname Tech", false)
	require.NoError(t, err)
	assert.Nil(t, brand)

	created := &store.Label{ID: 12, Kind: store.LabelKindBrand, Name: "Noname Tech"}
	st.EXPECT().CreateLabel(ctx, store.LabelKindBrand, "Noname Tech", false).Return(created, nil)

	brand, err = n.ResolveBrand(ctx, "Noname Tech", true)
	require.NoError(t, err)
	assert.Equal(t, created, brand)
}

func TestResolveBrand_StaticAliasWithoutCanonical(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	n := normalizer.NewNormalizer(st)
	ctx := context.Background()

	st.EXPECT().FindLabelByName(ctx, store.LabelKindBrand, "Dell EMC").Return(nil, nil)
	st.EXPECT().FindLabelByAlias(ctx, store.LabelKindBrand, "Dell EMC").Return(nil, nil)
	st.EXPECT().FindLabelByName(ctx, store.LabelKindBrand, "Dell").Return(nil, nil)

	brand, err := n.ResolveBrand(ctx, "Dell EMC", false)
	require.NoError(t, err)
	assert.Nil(t, brand)
}

func TestResolveCategory_StaticAliasIgnoresAccents(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	n := normalizer.NewNormalizer(st)
	ctx := context.Background()

	notebooks := &store.Label{ID: 1, Kind: store.LabelKindCategory, Name: "Notebooks"}
	st.EXPECT().FindLabelByName(ctx, store.LabelKindCategory, "Portátiles").Return(nil, nil)
	st.EXPECT().FindLabelByAlias(ctx, store.LabelKindCategory, "Portátiles").Return(nil, nil)
	st.EXPECT().FindLabelByName(ctx, store.LabelKindCategory, "Notebooks").Return(notebooks, nil)
	st.EXPECT().CreateLabelAlias(ctx, store.LabelKindCategory, "Portátiles", int64(1)).Return(nil)

	category, err := n.ResolveCategory(ctx, "Portátiles", false)
	require.NoError(t, err)
	assert.Equal(t, notebooks, category)
}

func TestResolveBrand_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	n := normalizer.NewNormalizer(st)

	st.EXPECT().FindLabelByName(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := n.ResolveBrand(context.Background(), "Dell", true)
	assert.ErrorContains(t, err, "db down")
}

func TestStaticAlias(t *testing.T) {
	canonical, ok := normalizer.StaticAlias(store.LabelKindBrand, "hewlett   packard")
	assert.True(t, ok)
	assert.Equal(t, "HP", canonical)

	_, ok = normalizer.StaticAlias(store.LabelKindCategory, "hewlett packard")
	assert.False(t, ok)
}
