package entity

// ProductVariant configuración comprable de un producto (combinación concreta de valores de opción).
// InventoryQuantity es nil cuando el catálogo no reporta existencias.
type ProductVariant struct {
	ID                string
	ProductID         string
	Title             string
	SKU               string
	Options           []VariantOption
	Prices            []MoneyAmount
	ManageInventory   bool
	AllowBackorder    bool
	InventoryQuantity *int
	ProcessingFee     int64 // cargo adicional por unidad, en unidades menores
}

// VariantOption par (opción, valor) de una variante.
type VariantOption struct {
	OptionID string
	Value    string
}
