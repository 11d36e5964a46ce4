package storefront

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/pricing"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
	"github.com/jhoicas/storefront-api/internal/domain/variants"
	"github.com/jhoicas/storefront-api/pkg/logger"
)

// Valores de g:availability.
const (
	AvailabilityInStock    = "in stock"
	AvailabilityOutOfStock = "out of stock"
)

// feedPageSize tamaño de página al recorrer el catálogo.
const feedPageSize = 100

// FeedChannel cabecera del feed.
type FeedChannel struct {
	Title       string
	Link        string
	Description string
}

// FeedItem una entrada del feed por variante comprable.
type FeedItem struct {
	ID           string
	GroupID      string
	Title        string
	Description  string
	Link         string
	ImageLink    string
	Price        string // "10.50 USD"
	Availability string
}

// FeedBuilder puerto para serializar el feed (XML en infraestructura).
type FeedBuilder interface {
	Build(channel FeedChannel, items []FeedItem) ([]byte, error)
}

// FeedUseCase genera el feed de productos de una región para catálogos externos.
type FeedUseCase struct {
	productRepo repository.ProductRepository
	regionRepo  repository.RegionRepository
	builder     FeedBuilder
	cfg         Config
	log         *logger.Logger
}

// NewFeedUseCase construye el caso de uso.
func NewFeedUseCase(
	productRepo repository.ProductRepository,
	regionRepo repository.RegionRepository,
	builder FeedBuilder,
	cfg Config,
	log *logger.Logger,
) *FeedUseCase {
	return &FeedUseCase{
		productRepo: productRepo,
		regionRepo:  regionRepo,
		builder:     builder,
		cfg:         cfg,
		log:         log.For("feed"),
	}
}

// BuildFeed recorre todo el catálogo y arma una entrada por variante con precio en la región.
// Las variantes sin precio para la región se omiten.
func (uc *FeedUseCase) BuildFeed(ctx context.Context, countryCode, baseURL string) ([]byte, error) {
	region, err := ResolveRegion(ctx, uc.regionRepo, countryCode)
	if err != nil {
		return nil, err
	}
	cc := strings.ToLower(strings.TrimSpace(countryCode))
	base := strings.TrimRight(baseURL, "/")

	var items []FeedItem
	skipped := 0
	for offset := 0; ; offset += feedPageSize {
		page, err := uc.productRepo.List(ctx, feedPageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("listar productos: %w", err)
		}
		for _, p := range page {
			for i := range p.Variants {
				item, ok := uc.feedItem(p, &p.Variants[i], region, base, cc)
				if !ok {
					skipped++
					continue
				}
				items = append(items, item)
			}
		}
		if len(page) < feedPageSize {
			break
		}
	}
	if skipped > 0 {
		uc.log.Debug().Int("skipped", skipped).Str("region", region.ID).Msg("variantes sin precio omitidas del feed")
	}

	channel := FeedChannel{
		Title:       region.Name,
		Link:        fmt.Sprintf("%s/%s/store", base, cc),
		Description: fmt.Sprintf("Catálogo %s", region.Name),
	}
	out, err := uc.builder.Build(channel, items)
	if err != nil {
		return nil, fmt.Errorf("generar feed: %w", err)
	}
	return out, nil
}

func (uc *FeedUseCase) feedItem(p *entity.Product, v *entity.ProductVariant, region *entity.Region, base, cc string) (FeedItem, bool) {
	if pricing.GetVariantPrice(v, region) == 0 {
		return FeedItem{}, false
	}
	title := p.Title
	if v.Title != "" && v.Title != p.Title {
		title = p.Title + " - " + v.Title
	}
	availability := AvailabilityOutOfStock
	if variants.InStock(v) {
		availability = AvailabilityInStock
	}
	return FeedItem{
		ID:           v.ID,
		GroupID:      p.ID,
		Title:        title,
		Description:  p.Description,
		Link:         fmt.Sprintf("%s/%s/products/%s?variant=%s", base, cc, p.Handle, v.ID),
		ImageLink:    p.Thumbnail,
		Price:        FeedPrice(v, region, uc.cfg.IncludeTaxes),
		Availability: availability,
	}, true
}

// FeedPrice precio en el formato "<monto> <ISO>" con los decimales de la moneda.
func FeedPrice(v *entity.ProductVariant, region *entity.Region, includeTaxes bool) string {
	amount := pricing.ComputeVariantPrice(v, region, includeTaxes)
	places := int32(2)
	if pricing.IsZeroDecimal(region.CurrencyCode) {
		places = 0
	}
	return amount.StringFixed(places) + " " + strings.ToUpper(region.CurrencyCode)
}
