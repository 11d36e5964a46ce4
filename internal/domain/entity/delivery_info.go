package entity

// Métodos de entrega de una gift card.
const (
	DeliveryMethodEmail = "email"
	DeliveryMethodPrint = "print"
)

// DeliveryInfo datos de entrega capturados en el formulario del producto.
type DeliveryInfo struct {
	SenderName     string
	SenderEmail    string
	ReceiverName   string
	ReceiverEmail  string
	DeliveryMethod string
}
