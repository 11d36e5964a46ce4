package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación del puerto CartRepository sobre PostgreSQL.
type CartRepo struct {
	q Querier
}

// NewCartRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

// Create persiste un carrito nuevo (sin líneas).
func (r *CartRepo) Create(ctx context.Context, c *entity.Cart) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO carts (id, region_id, country_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.RegionID, c.CountryCode, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) || isForeignKeyViolation(err) {
			return fmt.Errorf("%w: carrito %s", domain.ErrInvalidInput, c.ID)
		}
		return fmt.Errorf("insert cart: %w", err)
	}
	return nil
}

// GetByID obtiene el carrito con sus líneas en orden de creación.
func (r *CartRepo) GetByID(ctx context.Context, id string) (*entity.Cart, error) {
	var c entity.Cart
	err := r.q.QueryRow(ctx, `
		SELECT id, region_id, country_code, created_at, updated_at
		FROM carts WHERE id = $1`, id,
	).Scan(&c.ID, &c.RegionID, &c.CountryCode, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}
	items, err := NewLineItemRepository(r.q).ListByCart(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Items = items
	return &c, nil
}

// Touch actualiza updated_at del carrito.
func (r *CartRepo) Touch(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE carts SET updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("touch cart: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrCartNotFound
	}
	return nil
}
