package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

var _ repository.RegionRepository = (*RegionRepo)(nil)

// RegionRepo implementación del puerto RegionRepository sobre PostgreSQL.
type RegionRepo struct {
	q Querier
}

// NewRegionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRegionRepository(q Querier) *RegionRepo {
	return &RegionRepo{q: q}
}

const regionColumns = `
	r.id, r.name, r.currency_code, r.tax_rate,
	COALESCE(ARRAY(SELECT c.iso_2 FROM region_countries c WHERE c.region_id = r.id ORDER BY c.iso_2), '{}')`

// GetByID obtiene una región por ID.
func (r *RegionRepo) GetByID(ctx context.Context, id string) (*entity.Region, error) {
	query := `SELECT ` + regionColumns + ` FROM regions r WHERE r.id = $1`
	return r.scanOne(ctx, query, id)
}

// GetByCountryCode obtiene la región a la que pertenece un país (ISO 3166-1 alpha-2, minúsculas).
func (r *RegionRepo) GetByCountryCode(ctx context.Context, countryCode string) (*entity.Region, error) {
	query := `SELECT ` + regionColumns + `
		FROM regions r JOIN region_countries rc ON rc.region_id = r.id
		WHERE rc.iso_2 = $1`
	return r.scanOne(ctx, query, countryCode)
}

// List lista todas las regiones ordenadas por nombre.
func (r *RegionRepo) List(ctx context.Context) ([]*entity.Region, error) {
	rows, err := r.q.Query(ctx, `SELECT `+regionColumns+` FROM regions r ORDER BY r.name`)
	if err != nil {
		return nil, fmt.Errorf("list regions: %w", err)
	}
	defer rows.Close()
	var out []*entity.Region
	for rows.Next() {
		var reg entity.Region
		if err := rows.Scan(&reg.ID, &reg.Name, &reg.CurrencyCode, &reg.TaxRate, &reg.Countries); err != nil {
			return nil, fmt.Errorf("scan region: %w", err)
		}
		out = append(out, &reg)
	}
	return out, rows.Err()
}

func (r *RegionRepo) scanOne(ctx context.Context, query string, arg string) (*entity.Region, error) {
	var reg entity.Region
	err := r.q.QueryRow(ctx, query, arg).Scan(&reg.ID, &reg.Name, &reg.CurrencyCode, &reg.TaxRate, &reg.Countries)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get region: %w", err)
	}
	return &reg, nil
}
