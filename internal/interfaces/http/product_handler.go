package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/application/storefront"
)

// ProductHandler maneja las peticiones HTTP del catálogo (público).
type ProductHandler struct {
	uc       *storefront.ProductActionsUseCase
	validate *validator.Validate
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *storefront.ProductActionsUseCase, validate *validator.Validate) *ProductHandler {
	return &ProductHandler{uc: uc, validate: validate}
}

// List godoc
// @Summary      Listar productos con su precio "desde"
// @Tags         products
// @Produce      json
// @Param        countryCode  path   string  true   "País (ISO 3166-1 alpha-2)"
// @Param        limit        query  int     false  "Límite"   default(20)
// @Param        offset       query  int     false  "Offset"   default(0)
// @Success      200          {object}  dto.ProductListResponse
// @Failure      404          {object}  dto.ErrorResponse
// @Router       /api/store/{countryCode}/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.ListProducts(c.UserContext(), c.Params("countryCode"), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByHandle godoc
// @Summary      Obtener producto por handle
// @Description  Incluye precios en la región del país y el estado inicial del bloque de compra.
// @Tags         products
// @Produce      json
// @Param        countryCode  path  string  true  "País (ISO 3166-1 alpha-2)"
// @Param        handle       path  string  true  "Handle del producto"
// @Success      200          {object}  dto.ProductResponse
// @Failure      404          {object}  dto.ErrorResponse
// @Router       /api/store/{countryCode}/products/{handle} [get]
func (h *ProductHandler) GetByHandle(c *fiber.Ctx) error {
	out, err := h.uc.GetProduct(c.UserContext(), c.Params("countryCode"), c.Params("handle"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ResolveActions godoc
// @Summary      Recalcular el bloque de compra
// @Description  Resuelve la variante elegida, existencias, precio, cantidad y validez del formulario de entrega.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        countryCode  path  string              true  "País (ISO 3166-1 alpha-2)"
// @Param        handle       path  string              true  "Handle del producto"
// @Param        body         body  dto.ActionsRequest  true  "Estado del formulario"
// @Success      200          {object}  dto.ProductActionsState
// @Failure      400          {object}  dto.ErrorResponse
// @Failure      404          {object}  dto.ErrorResponse
// @Router       /api/store/{countryCode}/products/{handle}/actions [post]
func (h *ProductHandler) ResolveActions(c *fiber.Ctx) error {
	var in dto.ActionsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	// el formulario de entrega se evalúa (no se rechaza) para habilitar o no el botón
	if err := h.validate.Var(in.QuantityStep, "omitempty,oneof=increment decrement"); err != nil {
		return validationError(c, FieldErrors{"quantity_step": messageForTag("oneof", "increment decrement")})
	}
	out, err := h.uc.ResolveActions(c.UserContext(), c.Params("countryCode"), c.Params("handle"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListRegions godoc
// @Summary      Listar regiones
// @Tags         regions
// @Produce      json
// @Success      200  {array}  dto.RegionResponse
// @Router       /api/store/regions [get]
func (h *ProductHandler) ListRegions(c *fiber.Ctx) error {
	out, err := h.uc.ListRegions(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
