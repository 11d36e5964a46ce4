package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain"
)

// errorMapping traduce errores de dominio a status HTTP y código de la respuesta.
var errorMapping = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrProductNotFound, fiber.StatusNotFound, "PRODUCT_NOT_FOUND"},
	{domain.ErrRegionNotFound, fiber.StatusNotFound, "REGION_NOT_FOUND"},
	{domain.ErrCartNotFound, fiber.StatusNotFound, "CART_NOT_FOUND"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrVariantNotSelected, fiber.StatusUnprocessableEntity, "VARIANT_NOT_SELECTED"},
	{domain.ErrOutOfStock, fiber.StatusConflict, "OUT_OF_STOCK"},
	{domain.ErrNotAvailable, fiber.StatusUnprocessableEntity, "NOT_AVAILABLE"},
	{domain.ErrDeliveryIncomplete, fiber.StatusUnprocessableEntity, "DELIVERY_INCOMPLETE"},
	{domain.ErrNotPrintable, fiber.StatusConflict, "NOT_PRINTABLE"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "INVALID_INPUT"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
}

// writeError responde con dto.ErrorResponse según el error de dominio; lo desconocido es 500.
func writeError(c *fiber.Ctx, err error) error {
	for _, m := range errorMapping {
		if errors.Is(err, m.err) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

func validationError(c *fiber.Ctx, fields FieldErrors) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Fields: fields})
}
