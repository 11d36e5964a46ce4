package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/pkg/jwt"
)

// CartTokenHeader header con el token de sesión del carrito.
const CartTokenHeader = "X-Cart-Token"

// Locals keys para CartID y CountryCode en Fiber.
const (
	LocalCartID      = "cart_id"
	LocalCountryCode = "cart_country_code"
)

// CartTokenMiddleware valida el token del carrito y carga CartID y CountryCode en c.Locals.
// Con required=false la ausencia del header no es error (se creará un carrito nuevo),
// pero un token presente e inválido sí lo es.
func CartTokenMiddleware(secret string, required bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := strings.TrimSpace(c.Get(CartTokenHeader))
		if tokenString == "" {
			if required {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: CartTokenHeader + " requerido"})
			}
			return c.Next()
		}
		cartID, countryCode, err := jwt.Parse(secret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token de carrito inválido o expirado"})
		}
		c.Locals(LocalCartID, cartID)
		c.Locals(LocalCountryCode, countryCode)
		return c.Next()
	}
}

// GetCartID devuelve el CartID del contexto (después del middleware de carrito).
func GetCartID(c *fiber.Ctx) string {
	v := c.Locals(LocalCartID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetCartCountryCode devuelve el país con el que se creó el carrito.
func GetCartCountryCode(c *fiber.Ctx) string {
	v := c.Locals(LocalCountryCode)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
