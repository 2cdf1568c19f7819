package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecolosur/catalogo-api/internal/application/auth"
	"github.com/ecolosur/catalogo-api/internal/application/inventory"
	"github.com/ecolosur/catalogo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC  *usecase.CatalogUseCase
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	UnitUC     *usecase.UnitUseCase
	ImageUC    *usecase.ImageUseCase
	BannerUC   *usecase.BannerUseCase
	SettingsUC *usecase.SettingsUseCase
	Ledger     *inventory.StockLedger
	History    *inventory.History
	AuthUC     *auth.UseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo público (sin autenticación): lo que ve la tienda.
	catalog := api.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalog.Get("/categories", catalogHandler.Categories)
	catalog.Get("/products", catalogHandler.Products)
	catalog.Get("/products/:slug", catalogHandler.ProductBySlug)
	catalog.Get("/banners", catalogHandler.Banners)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	// Products (protegido, vista admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.ImageUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/images", productHandler.AddImage)
	products.Get("/:id/images", productHandler.ListImages)
	protected.Delete("/images/:imageID", productHandler.DeleteImage)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Units (protegido)
	units := protected.Group("/units")
	unitHandler := NewUnitHandler(deps.UnitUC)
	units.Post("/", unitHandler.Create)
	units.Get("/", unitHandler.List)
	units.Delete("/:id", unitHandler.Delete)

	// Banners (protegido)
	banners := protected.Group("/banners")
	bannerHandler := NewBannerHandler(deps.BannerUC)
	banners.Post("/", bannerHandler.Create)
	banners.Get("/", bannerHandler.List)
	banners.Put("/:id", bannerHandler.Update)
	banners.Delete("/:id", bannerHandler.Delete)

	// Motor de stock (protegido): ventas, movimientos y consulta de stock
	inventoryHandler := NewInventoryHandler(deps.Ledger, deps.History)
	protected.Get("/products/:id/stock", inventoryHandler.CurrentStock)

	sales := protected.Group("/sales")
	sales.Post("/", inventoryHandler.RecordSale)
	sales.Get("/", inventoryHandler.ListSales)
	sales.Get("/:id", inventoryHandler.GetSale)

	invGroup := protected.Group("/inventory")
	invGroup.Post("/movements", inventoryHandler.RecordMovement)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	invGroup.Get("/movements/:sku", inventoryHandler.GetMovementBySKU)

	// Settings (protegido, solo admin)
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	protected.Get("/settings", settingsHandler.Get)
	protected.Put("/settings", RequireAdmin(), settingsHandler.Upsert)
}
