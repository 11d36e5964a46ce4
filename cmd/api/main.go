package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/storefront-api/internal/application/cart"
	"github.com/jhoicas/storefront-api/internal/application/storefront"
	infrafeed "github.com/jhoicas/storefront-api/internal/infrastructure/feed"
	infrapdf "github.com/jhoicas/storefront-api/internal/infrastructure/pdf"
	"github.com/jhoicas/storefront-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/storefront-api/internal/interfaces/http"
	"github.com/jhoicas/storefront-api/pkg/config"
	"github.com/jhoicas/storefront-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("locale", cfg.Store.DefaultLocale).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	regionRepo := postgres.NewRegionRepository(pool)
	cartRepo := postgres.NewCartRepository(pool)
	itemRepo := postgres.NewLineItemRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	storeCfg := storefront.Config{
		Locale:       cfg.Store.DefaultLocale,
		IncludeTaxes: cfg.Store.IncludeTaxes,
	}
	productActionsUC := storefront.NewProductActionsUseCase(productRepo, regionRepo, storeCfg, log)
	feedUC := storefront.NewFeedUseCase(productRepo, regionRepo, infrafeed.NewXMLBuilder(2), storeCfg, log)

	cartUC := cart.NewCartUseCase(txRunner, cartRepo, productRepo, regionRepo, cart.TokenConfig{
		Secret:     cfg.CartToken.Secret,
		ExpMinutes: cfg.CartToken.Expiration,
		Issuer:     cfg.CartToken.Issuer,
	}, storeCfg, log)

	// PDF: gift card imprimible
	printUC := cart.NewPrintUseCase(itemRepo, cartRepo, regionRepo, infrapdf.NewGiftCardGenerator(),
		cfg.App.Name, storeCfg)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Storefront API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductActions:  productActionsUC,
		Feed:            feedUC,
		Cart:            cartUC,
		Print:           printUC,
		Validate:        httpRouter.NewValidator(),
		CartTokenSecret: cfg.CartToken.Secret,
		StoreBaseURL:    cfg.Store.BaseURL,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
