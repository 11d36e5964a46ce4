package dto

// AddToCartRequest entrada para agregar una variante al carrito.
type AddToCartRequest struct {
	VariantID string `json:"variant_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1,max=999"`
	DeliveryRequest
}

// LineItemResponse línea del carrito con montos formateados.
type LineItemResponse struct {
	ID             string `json:"id"`
	VariantID      string `json:"variant_id"`
	Title          string `json:"title"`
	Quantity       int    `json:"quantity"`
	UnitPrice      string `json:"unit_price"`
	Total          string `json:"total"`
	DeliveryMethod string `json:"delivery_method"`
	SenderName     string `json:"sender_name"`
	SenderEmail    string `json:"sender_email,omitempty"`
	ReceiverName   string `json:"receiver_name,omitempty"`
	ReceiverEmail  string `json:"receiver_email,omitempty"`
}

// CartResponse carrito con totales formateados en la moneda de su región (impuestos incluidos).
type CartResponse struct {
	ID                 string             `json:"id"`
	RegionID           string             `json:"region_id"`
	CountryCode        string             `json:"country_code"`
	Items              []LineItemResponse `json:"items"`
	Subtotal           string             `json:"subtotal"`
	ProcessingFeeTotal string             `json:"processing_fee_total"`
	Total              string             `json:"total"`
}

// AddToCartResponse carrito actualizado y, si se creó uno nuevo, su token de sesión.
type AddToCartResponse struct {
	Cart      CartResponse `json:"cart"`
	CartToken string       `json:"cart_token,omitempty"`
}
