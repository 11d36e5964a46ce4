package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storefront-api/internal/application/cart"
	"github.com/jhoicas/storefront-api/internal/application/storefront"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductActions  *storefront.ProductActionsUseCase
	Feed            *storefront.FeedUseCase
	Cart            *cart.CartUseCase
	Print           *cart.PrintUseCase
	Validate        *validator.Validate
	CartTokenSecret string
	StoreBaseURL    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	validate := deps.Validate
	if validate == nil {
		validate = NewValidator()
	}
	store := app.Group("/api/store")

	productHandler := NewProductHandler(deps.ProductActions, validate)
	cartHandler := NewCartHandler(deps.Cart, deps.Print, validate)
	feedHandler := NewFeedHandler(deps.Feed, deps.StoreBaseURL)

	store.Get("/regions", productHandler.ListRegions)

	// Carrito existente (requiere X-Cart-Token). Se registra antes de /:countryCode
	// para que "cart" no se interprete como código de país.
	cartGroup := store.Group("/cart", CartTokenMiddleware(deps.CartTokenSecret, true))
	cartGroup.Get("/", cartHandler.Get)
	cartGroup.Get("/line-items/:id/print", cartHandler.Print)

	// Rutas por país
	country := store.Group("/:countryCode")
	country.Get("/products", productHandler.List)
	country.Get("/products/:handle", productHandler.GetByHandle)
	country.Post("/products/:handle/actions", productHandler.ResolveActions)
	country.Get("/feed.xml", feedHandler.Feed)
	country.Post("/cart/line-items", CartTokenMiddleware(deps.CartTokenSecret, false), cartHandler.AddLineItem)
}
