package http

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storefront-api/internal/application/cart"
	"github.com/jhoicas/storefront-api/internal/application/dto"
)

// CartHandler maneja el carrito anónimo (identificado por X-Cart-Token).
type CartHandler struct {
	cartUC   *cart.CartUseCase
	printUC  *cart.PrintUseCase
	validate *validator.Validate
}

// NewCartHandler construye el handler.
func NewCartHandler(cartUC *cart.CartUseCase, printUC *cart.PrintUseCase, validate *validator.Validate) *CartHandler {
	return &CartHandler{cartUC: cartUC, printUC: printUC, validate: validate}
}

// AddLineItem godoc
// @Summary      Agregar variante al carrito
// @Description  Sin X-Cart-Token crea un carrito nuevo y devuelve cart_token.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        countryCode   path    string                true   "País (ISO 3166-1 alpha-2)"
// @Param        X-Cart-Token  header  string                false  "Token del carrito"
// @Param        body          body    dto.AddToCartRequest  true   "Variante, cantidad y entrega"
// @Success      201           {object}  dto.AddToCartResponse
// @Failure      400           {object}  dto.ErrorResponse
// @Failure      409           {object}  dto.ErrorResponse
// @Failure      422           {object}  dto.ErrorResponse
// @Router       /api/store/{countryCode}/cart/line-items [post]
func (h *CartHandler) AddLineItem(c *fiber.Ctx) error {
	var in dto.AddToCartRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if fields := validateStruct(h.validate, in); fields != nil {
		return validationError(c, fields)
	}
	countryCode := c.Params("countryCode")
	if cc := GetCartCountryCode(c); cc != "" {
		countryCode = cc
	}
	out, err := h.cartUC.AddToCart(c.UserContext(), countryCode, GetCartID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	if out.CartToken != "" {
		c.Set(CartTokenHeader, out.CartToken)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Obtener el carrito
// @Tags         cart
// @Produce      json
// @Param        X-Cart-Token  header  string  true  "Token del carrito"
// @Success      200           {object}  dto.CartResponse
// @Failure      401           {object}  dto.ErrorResponse
// @Failure      404           {object}  dto.ErrorResponse
// @Router       /api/store/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	out, err := h.cartUC.GetCart(c.UserContext(), GetCartID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Print godoc
// @Summary      Descargar gift card imprimible
// @Description  Sólo para líneas con delivery_method=print.
// @Tags         cart
// @Produce      application/pdf
// @Param        X-Cart-Token  header  string  true  "Token del carrito"
// @Param        id            path    string  true  "ID de la línea"
// @Success      200           {file}  binary
// @Failure      403           {object}  dto.ErrorResponse
// @Failure      404           {object}  dto.ErrorResponse
// @Failure      409           {object}  dto.ErrorResponse
// @Router       /api/store/cart/line-items/{id}/print [get]
func (h *CartHandler) Print(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.printUC.PrintGiftCard(c.UserContext(), GetCartID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}
