package storefront

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/delivery"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/lineitem"
	"github.com/jhoicas/storefront-api/internal/domain/pricing"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
	"github.com/jhoicas/storefront-api/internal/domain/variants"
	"github.com/jhoicas/storefront-api/pkg/logger"
)

// Textos del botón de compra.
const (
	LabelSelectVariant = "Select variant"
	LabelOutOfStock    = "Out of stock"
	LabelAddToCart     = "Add to cart"
)

// Config opciones de presentación de precios.
type Config struct {
	Locale       string // locale BCP 47 para formatear montos (por defecto en-US)
	IncludeTaxes bool
}

// ProductActionsUseCase arma la vista de producto y recalcula el bloque de compra
// (variante, existencias, precio, cantidad, entrega) a partir de lo que el cliente eligió.
type ProductActionsUseCase struct {
	productRepo repository.ProductRepository
	regionRepo  repository.RegionRepository
	cfg         Config
	log         *logger.Logger
}

// NewProductActionsUseCase construye el caso de uso.
func NewProductActionsUseCase(
	productRepo repository.ProductRepository,
	regionRepo repository.RegionRepository,
	cfg Config,
	log *logger.Logger,
) *ProductActionsUseCase {
	return &ProductActionsUseCase{
		productRepo: productRepo,
		regionRepo:  regionRepo,
		cfg:         cfg,
		log:         log.For("product_actions"),
	}
}

// GetProduct devuelve el producto con precios de la región del país y el estado inicial del bloque de compra.
func (uc *ProductActionsUseCase) GetProduct(ctx context.Context, countryCode, handle string) (*dto.ProductResponse, error) {
	region, product, err := uc.load(ctx, countryCode, handle)
	if err != nil {
		return nil, err
	}

	out := &dto.ProductResponse{
		ID:            product.ID,
		Handle:        product.Handle,
		Title:         product.Title,
		Description:   product.Description,
		Thumbnail:     product.Thumbnail,
		CheapestPrice: uc.cheapestPrice(product.Variants, region),
		Options:       make([]dto.ProductOptionResponse, 0, len(product.Options)),
		Variants:      make([]dto.VariantResponse, 0, len(product.Variants)),
		Region:        ToRegionResponse(region),
	}
	if out.CheapestPrice == pricing.NotAvailableInRegion {
		uc.log.Debug().Str("product", product.Handle).Str("region", region.ID).Msg("producto sin precio para la región")
	}
	for _, o := range product.Options {
		out.Options = append(out.Options, dto.ProductOptionResponse{ID: o.ID, Title: o.Title, Values: o.Values})
	}
	for i := range product.Variants {
		out.Variants = append(out.Variants, uc.toVariantResponse(&product.Variants[i], region))
	}

	initial := entity.DeliveryInfo{DeliveryMethod: entity.DeliveryMethodEmail}
	out.Actions = uc.actionsState(product, region, variants.InitialSelection(product.Variants), lineitem.MinQuantity, initial)
	return out, nil
}

// ResolveActions recalcula el bloque de compra para la selección, cantidad y entrega enviadas.
func (uc *ProductActionsUseCase) ResolveActions(ctx context.Context, countryCode, handle string, in dto.ActionsRequest) (*dto.ProductActionsState, error) {
	region, product, err := uc.load(ctx, countryCode, handle)
	if err != nil {
		return nil, err
	}

	sel := variants.Selection{}
	for k, v := range in.Options {
		if v != "" {
			sel[k] = v
		}
	}
	if len(sel) == 0 {
		sel = variants.InitialSelection(product.Variants)
	}

	qty := NextQuantity(in.Quantity, in.QuantityInput, in.QuantityStep)
	state := uc.actionsState(product, region, sel, qty, ToDeliveryInfo(in.Delivery))
	return &state, nil
}

// ListProducts lista productos con su precio "desde" en la región del país.
func (uc *ProductActionsUseCase) ListProducts(ctx context.Context, countryCode string, limit, offset int) (*dto.ProductListResponse, error) {
	region, err := ResolveRegion(ctx, uc.regionRepo, countryCode)
	if err != nil {
		return nil, err
	}
	list, err := uc.productRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	items := make([]dto.ProductSummaryResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.ProductSummaryResponse{
			ID:            p.ID,
			Handle:        p.Handle,
			Title:         p.Title,
			Thumbnail:     p.Thumbnail,
			CheapestPrice: uc.cheapestPrice(p.Variants, region),
		})
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListRegions lista las regiones configuradas.
func (uc *ProductActionsUseCase) ListRegions(ctx context.Context) ([]dto.RegionResponse, error) {
	list, err := uc.regionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar regiones: %w", err)
	}
	out := make([]dto.RegionResponse, 0, len(list))
	for _, r := range list {
		out = append(out, ToRegionResponse(r))
	}
	return out, nil
}

func (uc *ProductActionsUseCase) load(ctx context.Context, countryCode, handle string) (*entity.Region, *entity.Product, error) {
	if strings.TrimSpace(handle) == "" {
		return nil, nil, domain.ErrInvalidInput
	}
	region, err := ResolveRegion(ctx, uc.regionRepo, countryCode)
	if err != nil {
		return nil, nil, err
	}
	product, err := uc.productRepo.GetByHandle(ctx, handle)
	if err != nil {
		return nil, nil, fmt.Errorf("obtener producto: %w", err)
	}
	if product == nil {
		return nil, nil, domain.ErrProductNotFound
	}
	return region, product, nil
}

func (uc *ProductActionsUseCase) actionsState(
	product *entity.Product,
	region *entity.Region,
	sel variants.Selection,
	qty int,
	info entity.DeliveryInfo,
) dto.ProductActionsState {
	var selected *entity.ProductVariant
	if id, ok := variants.BuildIndex(product.Variants).Resolve(sel); ok {
		selected = product.VariantByID(id)
	}
	inStock := variants.InStock(selected)
	deliveryDisabled := delivery.IsDisabled(info)

	state := dto.ProductActionsState{
		SelectedOptions:   map[string]string(sel),
		ShowOptions:       product.HasMultipleVariants(),
		InStock:           inStock,
		Quantity:          qty,
		CanDecrement:      qty > lineitem.MinQuantity,
		DeliveryDisabled:  deliveryDisabled,
		AddToCartDisabled: !inStock || selected == nil || deliveryDisabled,
		ActionLabel:       ActionLabel(selected, inStock),
	}
	if selected != nil {
		id := selected.ID
		state.VariantID = &id
		state.Price = pricing.FormatVariantPrice(pricing.VariantPriceParams{
			Variant:       selected,
			Region:        region,
			ExcludeTaxes:  !uc.cfg.IncludeTaxes,
			LocaleOptions: uc.localeOptions(),
		})
	} else {
		state.Price = uc.cheapestPrice(product.Variants, region)
	}
	return state
}

func (uc *ProductActionsUseCase) toVariantResponse(v *entity.ProductVariant, region *entity.Region) dto.VariantResponse {
	opts := make(map[string]string, len(v.Options))
	for _, o := range v.Options {
		opts[o.OptionID] = o.Value
	}
	out := dto.VariantResponse{
		ID:                v.ID,
		Title:             v.Title,
		SKU:               v.SKU,
		Options:           opts,
		InStock:           variants.InStock(v),
		PriceAmount:       pricing.ComputeVariantPrice(v, region, uc.cfg.IncludeTaxes),
		InventoryQuantity: v.InventoryQuantity,
	}
	out.Price = pricing.ConvertToLocale(out.PriceAmount, region.CurrencyCode, uc.localeOptions())
	if v.ProcessingFee > 0 {
		out.ProcessingFee = pricing.FormatAmount(pricing.AmountParams{
			Amount:        decimal.NewFromInt(v.ProcessingFee),
			Region:        region,
			ExcludeTaxes:  true,
			LocaleOptions: uc.localeOptions(),
		})
	}
	return out
}

// cheapestPrice precio "desde" con o sin impuestos según la configuración de la tienda.
func (uc *ProductActionsUseCase) cheapestPrice(vs []entity.ProductVariant, region *entity.Region) string {
	return pricing.FormatCheapestProductPrice(pricing.CheapestPriceParams{
		Variants:      vs,
		Region:        region,
		ExcludeTaxes:  !uc.cfg.IncludeTaxes,
		LocaleOptions: uc.localeOptions(),
	})
}

func (uc *ProductActionsUseCase) localeOptions() pricing.LocaleOptions {
	return pricing.LocaleOptions{Locale: uc.cfg.Locale}
}

// ActionLabel texto del botón: sin variante pide elegir, sin existencias avisa agotado.
func ActionLabel(v *entity.ProductVariant, inStock bool) string {
	switch {
	case v == nil:
		return LabelSelectVariant
	case !inStock:
		return LabelOutOfStock
	default:
		return LabelAddToCart
	}
}

// NextQuantity aplica al valor actual lo que escribió el cliente y luego el botón +/- pulsado.
func NextQuantity(current int, input *string, step string) int {
	qty := current
	if qty < lineitem.MinQuantity {
		qty = lineitem.MinQuantity
	}
	if input != nil {
		qty = lineitem.ParseQuantity(qty, *input)
	}
	switch step {
	case "increment":
		qty = lineitem.Increment(qty)
	case "decrement":
		qty = lineitem.Decrement(qty)
	}
	return qty
}
