package repository

import (
	"context"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

// ProductRepository define el puerto de lectura del catálogo (DIP).
// Los métodos Get devuelven (nil, nil) cuando el recurso no existe.
type ProductRepository interface {
	GetByHandle(ctx context.Context, handle string) (*entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetVariantByID(ctx context.Context, variantID string) (*entity.ProductVariant, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
}
