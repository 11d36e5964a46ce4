package entity

import "time"

// LineItem línea del carrito: variante, cantidad, precio congelado al agregar y datos de entrega.
type LineItem struct {
	ID            string
	CartID        string
	VariantID     string
	Title         string
	Quantity      int
	UnitPrice     int64 // unidades menores, sin impuestos
	ProcessingFee int64
	Delivery      DeliveryInfo
	CreatedAt     time.Time
}
