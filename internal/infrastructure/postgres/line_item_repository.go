package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

var _ repository.LineItemRepository = (*LineItemRepo)(nil)

// LineItemRepo implementación del puerto LineItemRepository sobre PostgreSQL.
type LineItemRepo struct {
	q Querier
}

// NewLineItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLineItemRepository(q Querier) *LineItemRepo {
	return &LineItemRepo{q: q}
}

const lineItemColumns = `
	id, cart_id, variant_id, title, quantity, unit_price, processing_fee,
	sender_name, sender_email, receiver_name, receiver_email, delivery_method, created_at`

// Create persiste una línea del carrito.
func (r *LineItemRepo) Create(ctx context.Context, it *entity.LineItem) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO line_items (`+lineItemColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		it.ID, it.CartID, it.VariantID, it.Title, it.Quantity, it.UnitPrice, it.ProcessingFee,
		it.Delivery.SenderName, nullIfEmpty(it.Delivery.SenderEmail),
		nullIfEmpty(it.Delivery.ReceiverName), nullIfEmpty(it.Delivery.ReceiverEmail),
		it.Delivery.DeliveryMethod, it.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert line item: %w", err)
	}
	return nil
}

// GetByID obtiene una línea por ID.
func (r *LineItemRepo) GetByID(ctx context.Context, id string) (*entity.LineItem, error) {
	row := r.q.QueryRow(ctx, `SELECT `+lineItemColumns+` FROM line_items WHERE id = $1`, id)
	it, err := scanLineItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get line item: %w", err)
	}
	return it, nil
}

// ListByCart lista las líneas de un carrito en orden de creación.
func (r *LineItemRepo) ListByCart(ctx context.Context, cartID string) ([]entity.LineItem, error) {
	rows, err := r.q.Query(ctx, `SELECT `+lineItemColumns+` FROM line_items WHERE cart_id = $1 ORDER BY created_at, id`, cartID)
	if err != nil {
		return nil, fmt.Errorf("list line items: %w", err)
	}
	defer rows.Close()
	var out []entity.LineItem
	for rows.Next() {
		it, err := scanLineItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan line item: %w", err)
		}
		out = append(out, *it)
	}
	return out, rows.Err()
}

func scanLineItem(row pgx.Row) (*entity.LineItem, error) {
	var it entity.LineItem
	var senderEmail, receiverName, receiverEmail *string
	err := row.Scan(&it.ID, &it.CartID, &it.VariantID, &it.Title, &it.Quantity, &it.UnitPrice, &it.ProcessingFee,
		&it.Delivery.SenderName, &senderEmail, &receiverName, &receiverEmail, &it.Delivery.DeliveryMethod, &it.CreatedAt)
	if err != nil {
		return nil, err
	}
	it.Delivery.SenderEmail = derefString(senderEmail)
	it.Delivery.ReceiverName = derefString(receiverName)
	it.Delivery.ReceiverEmail = derefString(receiverEmail)
	return &it, nil
}
