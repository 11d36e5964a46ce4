package dto

import "github.com/shopspring/decimal"

// ProductOptionResponse opción seleccionable de un producto.
type ProductOptionResponse struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Values []string `json:"values"`
}

// VariantResponse variante con su precio ya resuelto para la región.
type VariantResponse struct {
	ID                string            `json:"id"`
	Title             string            `json:"title"`
	SKU               string            `json:"sku,omitempty"`
	Options           map[string]string `json:"options"`
	InStock           bool              `json:"in_stock"`
	Price             string            `json:"price"`
	PriceAmount       decimal.Decimal   `json:"price_amount"`
	InventoryQuantity *int              `json:"inventory_quantity,omitempty"`
	ProcessingFee     string            `json:"processing_fee,omitempty"`
}

// ProductResponse detalle de producto para la página del storefront.
type ProductResponse struct {
	ID            string                  `json:"id"`
	Handle        string                  `json:"handle"`
	Title         string                  `json:"title"`
	Description   string                  `json:"description"`
	Thumbnail     string                  `json:"thumbnail,omitempty"`
	CheapestPrice string                  `json:"cheapest_price"`
	Options       []ProductOptionResponse `json:"options"`
	Variants      []VariantResponse       `json:"variants"`
	Region        RegionResponse          `json:"region"`
	Actions       ProductActionsState     `json:"actions"`
}

// ProductSummaryResponse ítem de listado de productos.
type ProductSummaryResponse struct {
	ID            string `json:"id"`
	Handle        string `json:"handle"`
	Title         string `json:"title"`
	Thumbnail     string `json:"thumbnail,omitempty"`
	CheapestPrice string `json:"cheapest_price"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductSummaryResponse `json:"items"`
	Page  PageResponse             `json:"page"`
}

// DeliveryRequest datos del formulario de entrega.
type DeliveryRequest struct {
	SenderName     string `json:"sender_name" validate:"max=120"`
	SenderEmail    string `json:"sender_email" validate:"omitempty,storefront_email"`
	ReceiverName   string `json:"receiver_name" validate:"max=120"`
	ReceiverEmail  string `json:"receiver_email" validate:"omitempty,storefront_email"`
	DeliveryMethod string `json:"delivery_method" validate:"required,oneof=email print"`
}

// ActionsRequest estado actual del formulario de compra enviado por el cliente.
// QuantityInput es el texto del campo de cantidad; QuantityStep aplica los botones +/-.
type ActionsRequest struct {
	Options       map[string]string `json:"options"`
	Quantity      int               `json:"quantity"`
	QuantityInput *string           `json:"quantity_input,omitempty"`
	QuantityStep  string            `json:"quantity_step,omitempty" validate:"omitempty,oneof=increment decrement"`
	Delivery      DeliveryRequest   `json:"delivery"`
}

// ProductActionsState lo que la vista necesita para pintar el bloque de compra.
type ProductActionsState struct {
	SelectedOptions   map[string]string `json:"selected_options"`
	ShowOptions       bool              `json:"show_options"`
	VariantID         *string           `json:"variant_id"`
	InStock           bool              `json:"in_stock"`
	Price             string            `json:"price"`
	Quantity          int               `json:"quantity"`
	CanDecrement      bool              `json:"can_decrement"`
	DeliveryDisabled  bool              `json:"delivery_disabled"`
	AddToCartDisabled bool              `json:"add_to_cart_disabled"`
	ActionLabel       string            `json:"action_label"`
}
