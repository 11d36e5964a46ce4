package entity

import "time"

// Cart carrito anónimo de la tienda, atado a una región por el código de país con el que se creó.
type Cart struct {
	ID          string
	RegionID    string
	CountryCode string
	Items       []LineItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProcessingFeeTotal suma de cargos de procesamiento de todas las líneas.
func (c *Cart) ProcessingFeeTotal() int64 {
	if c == nil {
		return 0
	}
	var total int64
	for _, it := range c.Items {
		total += it.ProcessingFee * int64(it.Quantity)
	}
	return total
}

// Subtotal suma de precio unitario por cantidad, en unidades menores.
func (c *Cart) Subtotal() int64 {
	if c == nil {
		return 0
	}
	var total int64
	for _, it := range c.Items {
		total += it.UnitPrice * int64(it.Quantity)
	}
	return total
}

// QuantityOf unidades de la variante sumando todas las líneas del carrito.
func (c *Cart) QuantityOf(variantID string) int {
	if c == nil {
		return 0
	}
	n := 0
	for _, it := range c.Items {
		if it.VariantID == variantID {
			n += it.Quantity
		}
	}
	return n
}
