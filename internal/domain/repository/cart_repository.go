package repository

import (
	"context"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

// CartRepository define el puerto de persistencia para Cart. GetByID carga también las líneas.
type CartRepository interface {
	Create(ctx context.Context, cart *entity.Cart) error
	GetByID(ctx context.Context, id string) (*entity.Cart, error)
	Touch(ctx context.Context, id string) error
}

// LineItemRepository define el puerto de persistencia para LineItem.
type LineItemRepository interface {
	Create(ctx context.Context, item *entity.LineItem) error
	GetByID(ctx context.Context, id string) (*entity.LineItem, error)
	ListByCart(ctx context.Context, cartID string) ([]entity.LineItem, error)
}
