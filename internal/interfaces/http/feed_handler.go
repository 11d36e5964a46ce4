package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storefront-api/internal/application/storefront"
)

// FeedHandler expone el feed de productos para catálogos externos.
type FeedHandler struct {
	uc      *storefront.FeedUseCase
	baseURL string
}

// NewFeedHandler construye el handler; baseURL es la URL pública del storefront.
func NewFeedHandler(uc *storefront.FeedUseCase, baseURL string) *FeedHandler {
	return &FeedHandler{uc: uc, baseURL: baseURL}
}

// Feed godoc
// @Summary      Feed RSS de productos (Google Merchant)
// @Tags         feed
// @Produce      xml
// @Param        countryCode  path  string  true  "País (ISO 3166-1 alpha-2)"
// @Success      200          {string}  string
// @Failure      404          {object}  dto.ErrorResponse
// @Router       /api/store/{countryCode}/feed.xml [get]
func (h *FeedHandler) Feed(c *fiber.Ctx) error {
	out, err := h.uc.BuildFeed(c.UserContext(), c.Params("countryCode"), h.baseURL)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(out)
}
