package storefront_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-api/internal/application/storefront"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/pkg/logger"
)

func newFeed(builder *fakeFeedBuilder, products ...*entity.Product) *storefront.FeedUseCase {
	return storefront.NewFeedUseCase(
		&fakeProductRepo{products: products},
		&fakeRegionRepo{regions: []*entity.Region{usRegion(), jpRegion()}},
		builder,
		storefront.Config{IncludeTaxes: true},
		logger.Nop(),
	)
}

func TestBuildFeed_UnaEntradaPorVariante(t *testing.T) {
	b := &fakeFeedBuilder{}
	uc := newFeed(b, giftCard())

	out, err := uc.BuildFeed(context.Background(), "us", "https://tienda.example/")
	require.NoError(t, err)
	assert.Equal(t, "<rss/>", string(out))

	require.Len(t, b.items, 2)
	assert.Equal(t, "var_25", b.items[0].ID)
	assert.Equal(t, "prod_1", b.items[0].GroupID)
	assert.Equal(t, "Gift Card - 25", b.items[0].Title)
	assert.Equal(t, "27.50 USD", b.items[0].Price)
	assert.Equal(t, storefront.AvailabilityInStock, b.items[0].Availability)
	assert.Equal(t, "https://tienda.example/us/products/gift-card?variant=var_25", b.items[0].Link)
	assert.Equal(t, storefront.AvailabilityOutOfStock, b.items[1].Availability)
	assert.Equal(t, "Estados Unidos", b.channel.Title)
}

func TestBuildFeed_OmiteVariantesSinPrecio(t *testing.T) {
	b := &fakeFeedBuilder{}
	uc := newFeed(b, giftCard())

	_, err := uc.BuildFeed(context.Background(), "jp", "https://tienda.example")
	require.NoError(t, err)
	assert.Empty(t, b.items)
}

func TestBuildFeed_ErrorDelBuilder(t *testing.T) {
	uc := newFeed(&fakeFeedBuilder{fail: true}, giftCard())

	_, err := uc.BuildFeed(context.Background(), "us", "https://tienda.example")
	assert.Error(t, err)
}

func TestFeedPrice_MonedaSinDecimales(t *testing.T) {
	v := &entity.ProductVariant{Prices: []entity.MoneyAmount{{Amount: 1050, CurrencyCode: "jpy"}}}
	assert.Equal(t, "1050 JPY", storefront.FeedPrice(v, jpRegion(), true))
}
