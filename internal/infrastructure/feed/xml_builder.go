// Package feed serializa el catálogo de una región como RSS 2.0 con el namespace g: de Google Merchant.
package feed

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/jhoicas/storefront-api/internal/application/storefront"
)

// NsGoogle namespace de los atributos de producto de Google Merchant.
const NsGoogle = "http://base.google.com/ns/1.0"

var _ storefront.FeedBuilder = (*XMLBuilder)(nil)

// XMLBuilder construye el documento con etree.
type XMLBuilder struct {
	indent int
}

// NewXMLBuilder crea el builder; indent 0 produce XML compacto.
func NewXMLBuilder(indent int) *XMLBuilder {
	return &XMLBuilder{indent: indent}
}

// Build genera el []byte del feed.
func (b *XMLBuilder) Build(channel storefront.FeedChannel, items []storefront.FeedItem) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	rss := doc.CreateElement("rss")
	rss.CreateAttr("version", "2.0")
	rss.CreateAttr("xmlns:g", NsGoogle)

	ch := rss.CreateElement("channel")
	ch.CreateElement("title").SetText(channel.Title)
	ch.CreateElement("link").SetText(channel.Link)
	ch.CreateElement("description").SetText(channel.Description)

	for _, it := range items {
		el := ch.CreateElement("item")
		el.CreateElement("g:id").SetText(it.ID)
		if it.GroupID != "" {
			el.CreateElement("g:item_group_id").SetText(it.GroupID)
		}
		el.CreateElement("title").SetText(it.Title)
		if it.Description != "" {
			el.CreateElement("description").SetText(it.Description)
		}
		el.CreateElement("link").SetText(it.Link)
		if it.ImageLink != "" {
			el.CreateElement("g:image_link").SetText(it.ImageLink)
		}
		el.CreateElement("g:price").SetText(it.Price)
		el.CreateElement("g:availability").SetText(it.Availability)
	}

	if b.indent > 0 {
		doc.Indent(b.indent)
	}
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("feed: serializar XML: %w", err)
	}
	return out, nil
}
