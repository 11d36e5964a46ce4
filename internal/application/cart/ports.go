package cart

import (
	"context"
	"time"

	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción que incluye los repos de carrito y líneas.
type TxRunner interface {
	RunCart(ctx context.Context, fn func(
		cartRepo repository.CartRepository,
		itemRepo repository.LineItemRepository,
	) error) error
}

// GiftCardForPDF datos ya resueltos que se imprimen en la gift card.
type GiftCardForPDF struct {
	Code         string // ID de la línea del carrito
	StoreName    string
	Title        string
	Amount       string // monto formateado en la moneda de la región
	Quantity     int
	SenderName   string
	SenderEmail  string
	ReceiverName string
	IssuedAt     time.Time
}

// GiftCardPDFGenerator genera la representación imprimible de una gift card.
type GiftCardPDFGenerator interface {
	GenerateGiftCardPDF(ctx context.Context, card GiftCardForPDF) ([]byte, error)
}
