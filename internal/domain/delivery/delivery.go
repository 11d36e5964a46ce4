// Package delivery valida el formulario de entrega de una gift card (por email o impresa).
package delivery

import (
	"regexp"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

// emailPattern chequeo sintáctico mínimo: algo@algo.algo sin espacios ni @ extra.
var emailPattern = regexp.MustCompile(`^[^\s\p{Z}\x{FEFF}@]+@[^\s\p{Z}\x{FEFF}@]+\.[^\s\p{Z}\x{FEFF}@]+$`)

// IsValidEmail valida la forma del email. No pretende cubrir RFC 5322.
func IsValidEmail(email string) bool {
	if email == "" {
		return false
	}
	return emailPattern.MatchString(email)
}

// IsDisabled indica si el botón de envío debe quedar deshabilitado.
//   - email: requiere remitente, destinatario y email de destinatario válido.
//   - print: requiere remitente y email de remitente válido.
//   - cualquier otro método es inválido.
func IsDisabled(d entity.DeliveryInfo) bool {
	switch d.DeliveryMethod {
	case entity.DeliveryMethodEmail:
		return !(d.SenderName != "" && d.ReceiverName != "" && IsValidEmail(d.ReceiverEmail))
	case entity.DeliveryMethodPrint:
		return !(d.SenderName != "" && IsValidEmail(d.SenderEmail))
	default:
		return true
	}
}

// IsValidMethod indica si el método de entrega es uno de los soportados.
func IsValidMethod(method string) bool {
	return method == entity.DeliveryMethodEmail || method == entity.DeliveryMethodPrint
}
