// seed puebla el catálogo de Ecolo Sur: categorías, unidades y productos
// reales de la finca, con su stock inicial cargado vía movimientos de
// inventario (así cada carga queda registrada con su SKU P000, P001, ...).
//
// Uso: go run ./cmd/seed
// Es idempotente: los registros existentes (por slug o nombre) se conservan
// y solo se carga stock a los productos recién creados.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ecolosur/catalogo-api/internal/application/inventory"
	"github.com/ecolosur/catalogo-api/internal/domain/entity"
	"github.com/ecolosur/catalogo-api/internal/infrastructure/postgres"
	"github.com/ecolosur/catalogo-api/pkg/config"
	"github.com/ecolosur/catalogo-api/pkg/logger"
	"github.com/ecolosur/catalogo-api/pkg/slug"
)

type seedProduct struct {
	name     string
	unit     string
	stock    int64
	price    int64
	category string
}

var seedCategories = []string{
	"Hierbas",
	"Frutas",
	"Tubérculos y raíces",
	"Procesados",
	"Plantas y otros",
}

var seedProducts = []seedProduct{
	{"Albahaca", "4 onz", 8, 35, "Hierbas"},
	{"Aguacate", "peq", 12, 15, "Frutas"},
	{"Aloe vera (gel)", "8 onz", 20, 50, "Plantas y otros"},
	{"Aloe vera (Planta)", "en bolsa", 10, 45, "Plantas y otros"},
	{"Calala", "Docena", 10, 35, "Frutas"},
	{"Cebollin", "Docena", 10, 30, "Hierbas"},
	{"Chilotes", "Docena", 2, 40, "Tubérculos y raíces"},
	{"Chutney de mango", "8 onz", 3, 135, "Procesados"},
	{"Culantro", "4 onz", 4, 30, "Hierbas"},
	{"Curcuma", "4 onz", 2, 40, "Hierbas"},
	{"Espinaca hoja gd", "4 onz", 4, 55, "Hierbas"},
	{"Espinaca hoja pq", "8 onz", 1, 60, "Hierbas"},
	{"Estragon", "4 onz", 8, 55, "Hierbas"},
	{"Frijol Camague", "lb", 10, 40, "Tubérculos y raíces"},
	{"Granadilla", "Unidad", 2, 75, "Frutas"},
	{"Guineo cuadrado", "Docena", 6, 25, "Frutas"},
	{"Insulina", "4 onz", 10, 40, "Hierbas"},
	{"Jengibre", "8 onz", 10, 35, "Tubérculos y raíces"},
	{"Limon Criollo", "Docena", 3, 30, "Frutas"},
	{"Limon Tahiti", "Docena", 2, 60, "Frutas"},
	{"Mermelada de mora", "8 onz", 2, 125, "Procesados"},
	{"Mermelada de limon", "8 onz", 2, 125, "Procesados"},
	{"Mora Fresca", "12 onz", 5, 125, "Frutas"},
	{"Mostaza roja", "8 onz", 5, 40, "Hierbas"},
	{"Nonni", "Docena", 5, 45, "Frutas"},
	{"Nopal", "Docena", 5, 30, "Tubérculos y raíces"},
	{"Oregano hoja Gd", "lb", 5, 100, "Hierbas"},
	{"Perejil Italiano", "4 onz", 8, 40, "Hierbas"},
	{"Pitaya pequeña/grande", "Unidad", 2, 30, "Frutas"},
	{"Platano verde", "Docena", 2, 85, "Frutas"},
	{"Platano maduro", "Docena", 2, 85, "Frutas"},
	{"Zacate limon", "4 onz", 5, 30, "Hierbas"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "catalogo-sur-seed"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	ledger := inventory.NewStockLedger(postgres.NewTxRunner(pool), productRepo, nil)

	now := time.Now().UTC()

	// Categorías (get-or-create por slug)
	categoryIDs := make(map[string]string, len(seedCategories))
	for _, name := range seedCategories {
		s := slug.Make(name)
		existing, err := categoryRepo.GetBySlug(s)
		if err != nil {
			log.Fatal().Err(err).Str("categoria", name).Msg("consultar categoría")
		}
		if existing != nil {
			categoryIDs[name] = existing.ID
			continue
		}
		cat := &entity.Category{
			ID:          uuid.New().String(),
			Name:        name,
			Slug:        s,
			Description: "Productos de la categoría " + name,
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := categoryRepo.Create(cat); err != nil {
			log.Fatal().Err(err).Str("categoria", name).Msg("crear categoría")
		}
		categoryIDs[name] = cat.ID
		log.Info().Str("categoria", name).Msg("categoría creada")
	}

	// Unidades (get-or-create por nombre)
	unitIDs := make(map[string]string)
	unitID := func(name string) string {
		if id, ok := unitIDs[name]; ok {
			return id
		}
		existing, err := unitRepo.GetByName(name)
		if err != nil {
			log.Fatal().Err(err).Str("unidad", name).Msg("consultar unidad")
		}
		if existing != nil {
			unitIDs[name] = existing.ID
			return existing.ID
		}
		u := &entity.Unit{ID: uuid.New().String(), Name: name, CreatedAt: now, UpdatedAt: now}
		if err := unitRepo.Create(u); err != nil {
			log.Fatal().Err(err).Str("unidad", name).Msg("crear unidad")
		}
		unitIDs[name] = u.ID
		return u.ID
	}

	// Productos: se crean con stock cero y el stock inicial entra como
	// movimiento de inventario, igual que una reposición real.
	created := 0
	for _, p := range seedProducts {
		s := slug.Make(p.name)
		existing, err := productRepo.GetBySlug(s)
		if err != nil {
			log.Fatal().Err(err).Str("producto", p.name).Msg("consultar producto")
		}
		if existing != nil {
			continue
		}
		product := &entity.Product{
			ID:          uuid.New().String(),
			Name:        p.name,
			Slug:        s,
			Description: p.name + " orgánico (" + p.unit + ")",
			Price:       decimal.NewFromInt(p.price),
			Quantity:    0,
			IsActive:    true,
			CategoryID:  categoryIDs[p.category],
			UnitID:      unitID(p.unit),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := productRepo.Create(product); err != nil {
			log.Fatal().Err(err).Str("producto", p.name).Msg("crear producto")
		}
		result, err := ledger.RecordMovement(ctx, product.ID, p.stock)
		if err != nil {
			log.Fatal().Err(err).Str("producto", p.name).Msg("cargar stock inicial")
		}
		log.Info().
			Str("producto", p.name).
			Str("sku", result.SKU).
			Int64("stock", result.NewQuantity).
			Msg("producto creado")
		created++
	}

	log.Info().Int("creados", created).Int("total", len(seedProducts)).Msg("seed completado")
}
