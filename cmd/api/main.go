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
	goredis "github.com/redis/go-redis/v9"

	"github.com/ecolosur/catalogo-api/internal/application/auth"
	"github.com/ecolosur/catalogo-api/internal/application/inventory"
	"github.com/ecolosur/catalogo-api/internal/application/usecase"
	"github.com/ecolosur/catalogo-api/internal/infrastructure/postgres"
	infraredis "github.com/ecolosur/catalogo-api/internal/infrastructure/redis"
	httpRouter "github.com/ecolosur/catalogo-api/internal/interfaces/http"
	"github.com/ecolosur/catalogo-api/pkg/config"
	"github.com/ecolosur/catalogo-api/pkg/logger"
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	imageRepo := postgres.NewProductImageRepository(pool)
	bannerRepo := postgres.NewBannerRepository(pool)
	movRepo := postgres.NewInventoryMovementRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Caché del catálogo público: opcional, REDIS_ADDR vacío lo desactiva.
	var cache usecase.CatalogCache
	if cfg.Redis.Addr != "" {
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer client.Close()
		cache = infraredis.NewCatalogCache(client, time.Duration(cfg.Redis.TTLSecs)*time.Second)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("caché de catálogo habilitado")
	} else {
		log.Warn().Msg("REDIS_ADDR vacío: catálogo sin caché")
	}

	ledger := inventory.NewStockLedger(txRunner, productRepo, cache)
	history := inventory.NewHistory(movRepo, saleRepo)
	catalogUC := usecase.NewCatalogUseCase(productRepo, categoryRepo, unitRepo, imageRepo, bannerRepo, cache)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, unitRepo, cache)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, cache)
	unitUC := usecase.NewUnitUseCase(unitRepo)
	imageUC := usecase.NewImageUseCase(imageRepo, productRepo, cache)
	bannerUC := usecase.NewBannerUseCase(bannerRepo, cache)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	authUC := auth.NewUseCase(userRepo, auth.TokenConfig{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		ExpMinutes: cfg.JWT.Expiration,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Catálogo Sur API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:  catalogUC,
		ProductUC:  productUC,
		CategoryUC: categoryUC,
		UnitUC:     unitUC,
		ImageUC:    imageUC,
		BannerUC:   bannerUC,
		SettingsUC: settingsUC,
		Ledger:     ledger,
		History:    history,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
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
