package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
// Carga el agregado completo: opciones, variantes, valores de opción y precios.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, handle, title, COALESCE(description, ''), COALESCE(thumbnail, ''), created_at, updated_at`

// GetByHandle obtiene un producto por su handle.
func (r *ProductRepo) GetByHandle(ctx context.Context, handle string) (*entity.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE handle = $1`, handle)
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetVariantByID obtiene una variante con sus opciones y precios.
func (r *ProductRepo) GetVariantByID(ctx context.Context, variantID string) (*entity.ProductVariant, error) {
	var productID string
	err := r.q.QueryRow(ctx, `SELECT product_id FROM product_variants WHERE id = $1`, variantID).Scan(&productID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get variant: %w", err)
	}
	product, err := r.GetByID(ctx, productID)
	if err != nil || product == nil {
		return nil, err
	}
	return product.VariantByID(variantID), nil
}

// List lista productos con paginación, más recientes primero.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Handle, &p.Title, &p.Description, &p.Thumbnail, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadChildren(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ProductRepo) getOne(ctx context.Context, query, arg string) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(ctx, query, arg).Scan(&p.ID, &p.Handle, &p.Title, &p.Description, &p.Thumbnail, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	if err := r.loadChildren(ctx, []*entity.Product{&p}); err != nil {
		return nil, err
	}
	return &p, nil
}

// loadChildren completa opciones, variantes y precios de los productos en cuatro consultas.
func (r *ProductRepo) loadChildren(ctx context.Context, products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}
	ids := make([]string, 0, len(products))
	byID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
		byID[p.ID] = p
	}

	// ── Opciones ──────────────────────────────────────────────────────────────
	rows, err := r.q.Query(ctx, `
		SELECT id, product_id, title, values
		FROM product_options WHERE product_id = ANY($1) ORDER BY product_id, rank, id`, ids)
	if err != nil {
		return fmt.Errorf("list product options: %w", err)
	}
	for rows.Next() {
		var o entity.ProductOption
		var productID string
		if err := rows.Scan(&o.ID, &productID, &o.Title, &o.Values); err != nil {
			rows.Close()
			return fmt.Errorf("scan product option: %w", err)
		}
		byID[productID].Options = append(byID[productID].Options, o)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	// ── Variantes ─────────────────────────────────────────────────────────────
	rows, err = r.q.Query(ctx, `
		SELECT id, product_id, COALESCE(title, ''), COALESCE(sku, ''), manage_inventory, allow_backorder,
		       inventory_quantity, processing_fee
		FROM product_variants WHERE product_id = ANY($1) ORDER BY product_id, rank, id`, ids)
	if err != nil {
		return fmt.Errorf("list variants: %w", err)
	}
	var variantIDs []string
	for rows.Next() {
		var v entity.ProductVariant
		if err := rows.Scan(&v.ID, &v.ProductID, &v.Title, &v.SKU, &v.ManageInventory, &v.AllowBackorder,
			&v.InventoryQuantity, &v.ProcessingFee); err != nil {
			rows.Close()
			return fmt.Errorf("scan variant: %w", err)
		}
		byID[v.ProductID].Variants = append(byID[v.ProductID].Variants, v)
		variantIDs = append(variantIDs, v.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}
	if len(variantIDs) == 0 {
		return nil
	}

	variantIndex := make(map[string]*entity.ProductVariant, len(variantIDs))
	for _, p := range products {
		for i := range p.Variants {
			variantIndex[p.Variants[i].ID] = &p.Variants[i]
		}
	}

	// ── Valores de opción por variante ────────────────────────────────────────
	rows, err = r.q.Query(ctx, `
		SELECT variant_id, option_id, value
		FROM product_variant_options WHERE variant_id = ANY($1) ORDER BY variant_id, option_id`, variantIDs)
	if err != nil {
		return fmt.Errorf("list variant options: %w", err)
	}
	for rows.Next() {
		var variantID string
		var o entity.VariantOption
		if err := rows.Scan(&variantID, &o.OptionID, &o.Value); err != nil {
			rows.Close()
			return fmt.Errorf("scan variant option: %w", err)
		}
		if v := variantIndex[variantID]; v != nil {
			v.Options = append(v.Options, o)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	// ── Precios (el orden por rank define cuál es el "primero" de cada variante) ──
	rows, err = r.q.Query(ctx, `
		SELECT id, variant_id, amount, currency_code, region_id
		FROM money_amounts WHERE variant_id = ANY($1) ORDER BY variant_id, rank, id`, variantIDs)
	if err != nil {
		return fmt.Errorf("list prices: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var m entity.MoneyAmount
		if err := rows.Scan(&m.ID, &m.VariantID, &m.Amount, &m.CurrencyCode, &m.RegionID); err != nil {
			return fmt.Errorf("scan price: %w", err)
		}
		if v := variantIndex[m.VariantID]; v != nil {
			v.Prices = append(v.Prices, m)
		}
	}
	return rows.Err()
}
