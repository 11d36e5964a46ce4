package feed_test

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-api/internal/application/storefront"
	"github.com/jhoicas/storefront-api/internal/infrastructure/feed"
)

func TestBuild_RSSConAtributosGoogle(t *testing.T) {
	out, err := feed.NewXMLBuilder(2).Build(
		storefront.FeedChannel{Title: "US", Link: "https://tienda.example/us/store", Description: "Catálogo US"},
		[]storefront.FeedItem{{
			ID:           "var_25",
			GroupID:      "prod_1",
			Title:        "Gift Card - 25 & más",
			Link:         "https://tienda.example/us/products/gift-card?variant=var_25",
			Price:        "27.50 USD",
			Availability: storefront.AvailabilityInStock,
		}},
	)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	rss := doc.SelectElement("rss")
	require.NotNil(t, rss)
	assert.Equal(t, "2.0", rss.SelectAttrValue("version", ""))
	assert.Equal(t, feed.NsGoogle, rss.SelectAttrValue("xmlns:g", ""))

	items := doc.FindElements("//channel/item")
	require.Len(t, items, 1)
	assert.Equal(t, "var_25", items[0].SelectElement("g:id").Text())
	assert.Equal(t, "27.50 USD", items[0].SelectElement("g:price").Text())
	assert.Equal(t, "in stock", items[0].SelectElement("g:availability").Text())
	assert.Equal(t, "Gift Card - 25 & más", items[0].SelectElement("title").Text(), "el texto se escapa y se recupera")
	assert.Nil(t, items[0].SelectElement("g:image_link"), "sin imagen no se emite el elemento")
}

func TestBuild_SinItems(t *testing.T) {
	out, err := feed.NewXMLBuilder(0).Build(storefront.FeedChannel{Title: "JP"}, nil)
	require.NoError(t, err)
	assert.Contains(t, string(out), "<channel><title>JP</title>")
}
