package cart

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/application/storefront"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/delivery"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/lineitem"
	"github.com/jhoicas/storefront-api/internal/domain/pricing"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
	"github.com/jhoicas/storefront-api/internal/domain/variants"
	"github.com/jhoicas/storefront-api/pkg/jwt"
	"github.com/jhoicas/storefront-api/pkg/logger"
)

// TokenConfig configuración del token de sesión del carrito.
type TokenConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// CartUseCase agrega variantes al carrito anónimo y lo consulta.
type CartUseCase struct {
	txRunner    TxRunner
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	regionRepo  repository.RegionRepository
	tokenCfg    TokenConfig
	storeCfg    storefront.Config
	log         *logger.Logger
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(
	txRunner TxRunner,
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	regionRepo repository.RegionRepository,
	tokenCfg TokenConfig,
	storeCfg storefront.Config,
	log *logger.Logger,
) *CartUseCase {
	return &CartUseCase{
		txRunner:    txRunner,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		regionRepo:  regionRepo,
		tokenCfg:    tokenCfg,
		storeCfg:    storeCfg,
		log:         log.For("cart"),
	}
}

// AddToCart agrega la variante al carrito cartID; si cartID es vacío crea un carrito nuevo
// en la región del país y devuelve su token. El precio se congela al momento de agregar.
//
// Retorna:
//   - domain.ErrInvalidInput        si la cantidad es menor a 1 o el método de entrega no existe.
//   - domain.ErrDeliveryIncomplete  si el formulario de entrega no está completo.
//   - domain.ErrVariantNotSelected  si no llega variante.
//   - domain.ErrNotFound            si la variante no existe.
//   - domain.ErrOutOfStock          si no hay existencias suficientes, contando lo que ya está en el carrito.
//   - domain.ErrCartNotFound        si el carrito del token ya no existe.
//   - domain.ErrNotAvailable        si la variante no tiene precio en la moneda de la región.
func (uc *CartUseCase) AddToCart(ctx context.Context, countryCode, cartID string, in dto.AddToCartRequest) (*dto.AddToCartResponse, error) {
	// ── 1. Validaciones del formulario ────────────────────────────────────────
	if !lineitem.IsValid(in.Quantity) {
		return nil, fmt.Errorf("%w: cantidad %d", domain.ErrInvalidInput, in.Quantity)
	}
	if !delivery.IsValidMethod(in.DeliveryMethod) {
		return nil, fmt.Errorf("%w: método de entrega %q", domain.ErrInvalidInput, in.DeliveryMethod)
	}
	info := storefront.ToDeliveryInfo(in.DeliveryRequest)
	if delivery.IsDisabled(info) {
		return nil, domain.ErrDeliveryIncomplete
	}
	if strings.TrimSpace(in.VariantID) == "" {
		return nil, domain.ErrVariantNotSelected
	}

	// ── 2. Variante y existencias ─────────────────────────────────────────────
	variant, err := uc.productRepo.GetVariantByID(ctx, in.VariantID)
	if err != nil {
		return nil, fmt.Errorf("obtener variante: %w", err)
	}
	if variant == nil {
		return nil, domain.ErrNotFound
	}
	if !variants.InStock(variant) {
		return nil, domain.ErrOutOfStock
	}

	// ── 3. Carrito existente o región del país ────────────────────────────────
	var (
		cart   *entity.Cart
		region *entity.Region
	)
	if cartID != "" {
		cart, err = uc.cartRepo.GetByID(ctx, cartID)
		if err != nil {
			return nil, fmt.Errorf("obtener carrito: %w", err)
		}
		if cart == nil {
			return nil, domain.ErrCartNotFound
		}
		region, err = uc.regionRepo.GetByID(ctx, cart.RegionID)
		if err != nil {
			return nil, fmt.Errorf("obtener región: %w", err)
		}
		if region == nil {
			return nil, domain.ErrRegionNotFound
		}
	} else {
		region, err = storefront.ResolveRegion(ctx, uc.regionRepo, countryCode)
		if err != nil {
			return nil, err
		}
	}

	inCart := 0
	if cart != nil {
		inCart = cart.QuantityOf(variant.ID)
	}
	if !hasInventoryFor(variant, inCart+in.Quantity) {
		return nil, domain.ErrOutOfStock
	}

	// ── 4. Precio en la moneda de la región ───────────────────────────────────
	unitPrice := pricing.GetVariantPrice(variant, region)
	if unitPrice == 0 {
		return nil, domain.ErrNotAvailable
	}

	// ── 5. Persistir en una transacción ───────────────────────────────────────
	now := time.Now()
	created := cart == nil
	if created {
		cart = &entity.Cart{
			ID:          uuid.New().String(),
			RegionID:    region.ID,
			CountryCode: strings.ToLower(strings.TrimSpace(countryCode)),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}
	item := &entity.LineItem{
		ID:            uuid.New().String(),
		CartID:        cart.ID,
		VariantID:     variant.ID,
		Title:         uc.lineTitle(ctx, variant),
		Quantity:      in.Quantity,
		UnitPrice:     unitPrice,
		ProcessingFee: variant.ProcessingFee,
		Delivery:      info,
		CreatedAt:     now,
	}
	err = uc.txRunner.RunCart(ctx, func(cartRepo repository.CartRepository, itemRepo repository.LineItemRepository) error {
		if created {
			if err := cartRepo.Create(ctx, cart); err != nil {
				return fmt.Errorf("crear carrito: %w", err)
			}
		} else if err := cartRepo.Touch(ctx, cart.ID); err != nil {
			return fmt.Errorf("actualizar carrito: %w", err)
		}
		if err := itemRepo.Create(ctx, item); err != nil {
			return fmt.Errorf("crear línea: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// ── 6. Respuesta con el carrito recargado ─────────────────────────────────
	saved, err := uc.cartRepo.GetByID(ctx, cart.ID)
	if err != nil {
		return nil, fmt.Errorf("recargar carrito: %w", err)
	}
	if saved == nil {
		return nil, domain.ErrCartNotFound
	}
	out := &dto.AddToCartResponse{Cart: uc.toCartResponse(saved, region)}
	if created {
		token, err := jwt.Generate(uc.tokenCfg.Secret, cart.ID, cart.CountryCode, uc.tokenCfg.Issuer, uc.tokenCfg.ExpMinutes)
		if err != nil {
			return nil, fmt.Errorf("firmar token de carrito: %w", err)
		}
		out.CartToken = token
		uc.log.Info().Str("cart_id", cart.ID).Str("region", region.ID).Msg("carrito creado")
	}
	return out, nil
}

// GetCart devuelve el carrito con sus líneas y totales.
func (uc *CartUseCase) GetCart(ctx context.Context, cartID string) (*dto.CartResponse, error) {
	if cartID == "" {
		return nil, domain.ErrUnauthorized
	}
	cart, err := uc.cartRepo.GetByID(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("obtener carrito: %w", err)
	}
	if cart == nil {
		return nil, domain.ErrCartNotFound
	}
	region, err := uc.regionRepo.GetByID(ctx, cart.RegionID)
	if err != nil {
		return nil, fmt.Errorf("obtener región: %w", err)
	}
	out := uc.toCartResponse(cart, region)
	return &out, nil
}

func (uc *CartUseCase) lineTitle(ctx context.Context, v *entity.ProductVariant) string {
	product, err := uc.productRepo.GetByID(ctx, v.ProductID)
	if err != nil || product == nil {
		return v.Title
	}
	if v.Title == "" || v.Title == product.Title {
		return product.Title
	}
	return product.Title + " - " + v.Title
}

func (uc *CartUseCase) toCartResponse(c *entity.Cart, region *entity.Region) dto.CartResponse {
	opts := pricing.LocaleOptions{Locale: uc.storeCfg.Locale}
	withTaxes := uc.storeCfg.IncludeTaxes
	currency := ""
	if region != nil {
		currency = region.CurrencyCode
	}
	format := func(minor int64, includeTaxes bool) (decimal.Decimal, string) {
		amount := pricing.ComputeAmount(decimal.NewFromInt(minor), region, includeTaxes)
		return amount, pricing.ConvertToLocale(amount, currency, opts)
	}

	items := make([]dto.LineItemResponse, 0, len(c.Items))
	for _, it := range c.Items {
		_, unit := format(it.UnitPrice, withTaxes)
		_, total := format(it.UnitPrice*int64(it.Quantity), withTaxes)
		items = append(items, dto.LineItemResponse{
			ID:             it.ID,
			VariantID:      it.VariantID,
			Title:          it.Title,
			Quantity:       it.Quantity,
			UnitPrice:      unit,
			Total:          total,
			DeliveryMethod: it.Delivery.DeliveryMethod,
			SenderName:     it.Delivery.SenderName,
			SenderEmail:    it.Delivery.SenderEmail,
			ReceiverName:   it.Delivery.ReceiverName,
			ReceiverEmail:  it.Delivery.ReceiverEmail,
		})
	}
	subtotal, subtotalStr := format(c.Subtotal(), withTaxes)
	fees, feesStr := format(c.ProcessingFeeTotal(), false)
	return dto.CartResponse{
		ID:                 c.ID,
		RegionID:           c.RegionID,
		CountryCode:        c.CountryCode,
		Items:              items,
		Subtotal:           subtotalStr,
		ProcessingFeeTotal: feesStr,
		Total:              pricing.ConvertToLocale(subtotal.Add(fees), currency, opts),
	}
}

// hasInventoryFor verifica que la cantidad total de la variante en el carrito no supere
// el inventario cuando se controla.
func hasInventoryFor(v *entity.ProductVariant, qty int) bool {
	if !v.ManageInventory || v.AllowBackorder {
		return true
	}
	return v.InventoryQuantity != nil && *v.InventoryQuantity >= qty
}
