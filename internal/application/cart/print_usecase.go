package cart

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/storefront-api/internal/application/storefront"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/pricing"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// PrintUseCase genera el PDF imprimible de una gift card con entrega impresa.
type PrintUseCase struct {
	itemRepo   repository.LineItemRepository
	cartRepo   repository.CartRepository
	regionRepo repository.RegionRepository
	generator  GiftCardPDFGenerator
	storeName  string
	storeCfg   storefront.Config
}

// NewPrintUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPrintUseCase(
	itemRepo repository.LineItemRepository,
	cartRepo repository.CartRepository,
	regionRepo repository.RegionRepository,
	generator GiftCardPDFGenerator,
	storeName string,
	storeCfg storefront.Config,
) *PrintUseCase {
	return &PrintUseCase{
		itemRepo:   itemRepo,
		cartRepo:   cartRepo,
		regionRepo: regionRepo,
		generator:  generator,
		storeName:  storeName,
		storeCfg:   storeCfg,
	}
}

// PrintGiftCard genera el PDF de la línea lineItemID del carrito cartID.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la línea no existe.
//   - domain.ErrForbidden        si la línea no pertenece al carrito del token.
//   - domain.ErrNotPrintable     si la línea se entrega por email.
func (uc *PrintUseCase) PrintGiftCard(ctx context.Context, cartID, lineItemID string) (pdfBytes []byte, filename string, err error) {
	// ── 1. Cargar línea y verificar dueño ─────────────────────────────────────
	item, err := uc.itemRepo.GetByID(ctx, lineItemID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener línea: %w", err)
	}
	if item == nil {
		return nil, "", domain.ErrNotFound
	}
	if item.CartID != cartID {
		return nil, "", domain.ErrForbidden
	}
	if item.Delivery.DeliveryMethod != entity.DeliveryMethodPrint {
		return nil, "", domain.ErrNotPrintable
	}

	// ── 2. Región del carrito para formatear el monto ─────────────────────────
	cart, err := uc.cartRepo.GetByID(ctx, item.CartID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener carrito: %w", err)
	}
	if cart == nil {
		return nil, "", domain.ErrCartNotFound
	}
	region, err := uc.regionRepo.GetByID(ctx, cart.RegionID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener región: %w", err)
	}

	// ── 3. Generar PDF ────────────────────────────────────────────────────────
	card := GiftCardForPDF{
		Code:      item.ID,
		StoreName: uc.storeName,
		Title:     item.Title,
		Amount: pricing.FormatAmount(pricing.AmountParams{
			Amount:        decimal.NewFromInt(item.UnitPrice),
			Region:        region,
			ExcludeTaxes:  !uc.storeCfg.IncludeTaxes,
			LocaleOptions: pricing.LocaleOptions{Locale: uc.storeCfg.Locale},
		}),
		Quantity:     item.Quantity,
		SenderName:   item.Delivery.SenderName,
		SenderEmail:  item.Delivery.SenderEmail,
		ReceiverName: item.Delivery.ReceiverName,
		IssuedAt:     item.CreatedAt,
	}
	pdfBytes, err = uc.generator.GenerateGiftCardPDF(ctx, card)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("gift-card-%s.pdf", item.ID), nil
}
