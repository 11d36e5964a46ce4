package storefront_test

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/storefront-api/internal/application/storefront"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products []*entity.Product
	err      error
}

func (f *fakeProductRepo) GetByHandle(_ context.Context, handle string) (*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.products {
		if p.Handle == handle {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) GetVariantByID(_ context.Context, id string) (*entity.ProductVariant, error) {
	for _, p := range f.products {
		if v := p.VariantByID(id); v != nil {
			return v, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	if offset >= len(f.products) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.products) {
		end = len(f.products)
	}
	return f.products[offset:end], nil
}

type fakeRegionRepo struct {
	regions []*entity.Region
}

func (f *fakeRegionRepo) GetByID(_ context.Context, id string) (*entity.Region, error) {
	for _, r := range f.regions {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRegionRepo) GetByCountryCode(_ context.Context, cc string) (*entity.Region, error) {
	for _, r := range f.regions {
		for _, c := range r.Countries {
			if c == cc {
				return r, nil
			}
		}
	}
	return nil, nil
}

func (f *fakeRegionRepo) List(context.Context) ([]*entity.Region, error) {
	return f.regions, nil
}

type fakeFeedBuilder struct {
	channel storefront.FeedChannel
	items   []storefront.FeedItem
	fail    bool
}

func (f *fakeFeedBuilder) Build(channel storefront.FeedChannel, items []storefront.FeedItem) ([]byte, error) {
	if f.fail {
		return nil, errors.New("builder caído")
	}
	f.channel = channel
	f.items = items
	return []byte("<rss/>"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Datos de prueba
// ──────────────────────────────────────────────────────────────────────────────

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func usRegion() *entity.Region {
	return &entity.Region{ID: "reg_us", Name: "Estados Unidos", CurrencyCode: "usd", TaxRate: decimal.NewFromInt(10), Countries: []string{"us"}}
}

func jpRegion() *entity.Region {
	return &entity.Region{ID: "reg_jp", Name: "Japón", CurrencyCode: "jpy", TaxRate: decimal.Zero, Countries: []string{"jp"}}
}

// giftCard producto con dos montos (25 y 50 USD); la de 50 está agotada.
func giftCard() *entity.Product {
	return &entity.Product{
		ID:     "prod_1",
		Handle: "gift-card",
		Title:  "Gift Card",
		Options: []entity.ProductOption{
			{ID: "opt_amount", Title: "Monto", Values: []string{"25", "50"}},
		},
		Variants: []entity.ProductVariant{
			{
				ID: "var_25", ProductID: "prod_1", Title: "25",
				Options:         []entity.VariantOption{{OptionID: "opt_amount", Value: "25"}},
				Prices:          []entity.MoneyAmount{{ID: "p1", Amount: 2500, CurrencyCode: "usd", RegionID: strPtr("reg_us")}},
				ManageInventory: true, InventoryQuantity: intPtr(10),
				ProcessingFee: 150,
			},
			{
				ID: "var_50", ProductID: "prod_1", Title: "50",
				Options:         []entity.VariantOption{{OptionID: "opt_amount", Value: "50"}},
				Prices:          []entity.MoneyAmount{{ID: "p2", Amount: 5000, CurrencyCode: "usd", RegionID: strPtr("reg_us")}},
				ManageInventory: true, InventoryQuantity: intPtr(0),
			},
		},
	}
}

func singleVariantProduct() *entity.Product {
	return &entity.Product{
		ID:     "prod_2",
		Handle: "ebook",
		Title:  "Ebook",
		Options: []entity.ProductOption{
			{ID: "opt_format", Title: "Formato", Values: []string{"pdf"}},
		},
		Variants: []entity.ProductVariant{
			{
				ID: "var_pdf", ProductID: "prod_2", Title: "Ebook",
				Options: []entity.VariantOption{{OptionID: "opt_format", Value: "pdf"}},
				Prices:  []entity.MoneyAmount{{ID: "p3", Amount: 1050, CurrencyCode: "usd"}},
			},
		},
	}
}
