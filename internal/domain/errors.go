package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrProductNotFound    = errors.New("producto no encontrado")
	ErrRegionNotFound     = errors.New("no hay región configurada para el país")
	ErrCartNotFound       = errors.New("carrito no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrVariantNotSelected = errors.New("seleccione una variante")
	ErrOutOfStock         = errors.New("variante sin existencias")
	ErrNotAvailable       = errors.New("producto no disponible en su región")
	ErrDeliveryIncomplete = errors.New("datos de entrega incompletos o inválidos")
	ErrNotPrintable       = errors.New("la línea no usa entrega impresa")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)
