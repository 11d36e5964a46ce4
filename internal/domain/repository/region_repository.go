package repository

import (
	"context"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

// RegionRepository define el puerto de persistencia para Region.
type RegionRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Region, error)
	GetByCountryCode(ctx context.Context, countryCode string) (*entity.Region, error)
	List(ctx context.Context) ([]*entity.Region, error)
}
