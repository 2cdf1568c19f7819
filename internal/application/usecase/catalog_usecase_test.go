package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecolosur/catalogo-api/internal/application/dto"
	"github.com/ecolosur/catalogo-api/internal/application/usecase"
	"github.com/ecolosur/catalogo-api/internal/domain"
	"github.com/ecolosur/catalogo-api/internal/domain/entity"
	"github.com/ecolosur/catalogo-api/internal/domain/repository"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fakes en memoria del catálogo. El caché fake serializa como JSON igual que
// el real, para verificar el ciclo miss -> populate -> hit.
// ─────────────────────────────────────────────────────────────────────────────

type fakeCache struct {
	entries     map[string][]byte
	gets, sets  int
	invalidated int
}

func newFakeCache() *fakeCache { return &fakeCache{entries: map[string][]byte{}} }

func (c *fakeCache) Get(_ context.Context, key string, dest any) (bool, error) {
	c.gets++
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *fakeCache) Set(_ context.Context, key string, value any) error {
	c.sets++
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func (c *fakeCache) Invalidate(context.Context) error {
	c.invalidated++
	c.entries = map[string][]byte{}
	return nil
}

type catalogFixture struct {
	categories []*entity.Category
	units      []*entity.Unit
	products   []*entity.Product
	images     map[string][]*entity.ProductImage
	banners    []*entity.CarouselBanner
}

type fxCategoryRepo struct{ fx *catalogFixture }

func (r *fxCategoryRepo) Create(*entity.Category) error              { return nil }
func (r *fxCategoryRepo) GetByID(string) (*entity.Category, error)   { return nil, nil }
func (r *fxCategoryRepo) GetBySlug(string) (*entity.Category, error) { return nil, nil }
func (r *fxCategoryRepo) Update(*entity.Category) error              { return nil }
func (r *fxCategoryRepo) List(activeOnly bool) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.fx.categories {
		if activeOnly && !c.IsActive {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}
func (r *fxCategoryRepo) Delete(string) error { return nil }

type fxUnitRepo struct{ fx *catalogFixture }

func (r *fxUnitRepo) Create(*entity.Unit) error                { return nil }
func (r *fxUnitRepo) GetByID(string) (*entity.Unit, error)     { return nil, nil }
func (r *fxUnitRepo) GetByName(string) (*entity.Unit, error)   { return nil, nil }
func (r *fxUnitRepo) Update(*entity.Unit) error                { return nil }
func (r *fxUnitRepo) List() ([]*entity.Unit, error)            { return r.fx.units, nil }
func (r *fxUnitRepo) Delete(string) error                      { return nil }

type fxProductRepo struct{ fx *catalogFixture }

func (r *fxProductRepo) Create(*entity.Product) error { return nil }
func (r *fxProductRepo) GetByID(string) (*entity.Product, error) { return nil, nil }
func (r *fxProductRepo) GetBySlug(slug string) (*entity.Product, error) {
	for _, p := range r.fx.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fxProductRepo) GetForUpdate(string) (*entity.Product, error) { return nil, nil }
func (r *fxProductRepo) Update(*entity.Product) error                 { return nil }
func (r *fxProductRepo) UpdateQuantity(string, int64) error           { return nil }
func (r *fxProductRepo) List(filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.fx.products {
		if filter.ActiveOnly && !p.IsActive {
			continue
		}
		if filter.InStockOnly && p.Quantity <= 0 {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
func (r *fxProductRepo) Delete(string) error { return nil }

type fxImageRepo struct{ fx *catalogFixture }

func (r *fxImageRepo) Create(*entity.ProductImage) error            { return nil }
func (r *fxImageRepo) GetByID(string) (*entity.ProductImage, error) { return nil, nil }
func (r *fxImageRepo) ListByProduct(productID string) ([]*entity.ProductImage, error) {
	return r.fx.images[productID], nil
}
func (r *fxImageRepo) Delete(string) error { return nil }

type fxBannerRepo struct{ fx *catalogFixture }

func (r *fxBannerRepo) Create(*entity.CarouselBanner) error            { return nil }
func (r *fxBannerRepo) GetByID(string) (*entity.CarouselBanner, error) { return nil, nil }
func (r *fxBannerRepo) Update(*entity.CarouselBanner) error            { return nil }
func (r *fxBannerRepo) List(activeOnly bool) ([]*entity.CarouselBanner, error) {
	var out []*entity.CarouselBanner
	for _, b := range r.fx.banners {
		if activeOnly && !b.IsActive {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}
func (r *fxBannerRepo) Delete(string) error { return nil }

func newFixture() *catalogFixture {
	now := time.Now().UTC()
	return &catalogFixture{
		categories: []*entity.Category{
			{ID: "c1", Name: "Frutas", Slug: "frutas", IsActive: true, CreatedAt: now},
			{ID: "c2", Name: "Descontinuada", Slug: "descontinuada", IsActive: false, CreatedAt: now},
		},
		units: []*entity.Unit{
			{ID: "u1", Name: "Docena", CreatedAt: now},
		},
		products: []*entity.Product{
			{ID: "p1", Name: "Calala", Slug: "calala", Price: decimal.RequireFromString("35.00"),
				Quantity: 10, IsActive: true, CategoryID: "c1", UnitID: "u1"},
			{ID: "p2", Name: "Nonni", Slug: "nonni", Price: decimal.RequireFromString("45.00"),
				Quantity: 0, IsActive: true, CategoryID: "c1", UnitID: "u1"},
			{ID: "p3", Name: "Oculto", Slug: "oculto", Price: decimal.RequireFromString("10.00"),
				Quantity: 5, IsActive: false, CategoryID: "c1", UnitID: "u1"},
		},
		images: map[string][]*entity.ProductImage{
			"p1": {
				{ID: "i1", ProductID: "p1", ImageURL: "https://cdn.example.net/calala-front.jpg", Tag: "front", IsPrimary: true},
				{ID: "i2", ProductID: "p1", ImageURL: "https://cdn.example.net/calala-side.jpg", Tag: "side"},
			},
		},
		banners: []*entity.CarouselBanner{
			{ID: "b1", Title: "Cosecha fresca", ImageURL: "https://cdn.example.net/b1.jpg", Position: 1, IsActive: true},
			{ID: "b2", Title: "Viejo", ImageURL: "https://cdn.example.net/b2.jpg", Position: 2, IsActive: false},
		},
	}
}

func newCatalogUC(fx *catalogFixture, cache usecase.CatalogCache) *usecase.CatalogUseCase {
	return usecase.NewCatalogUseCase(
		&fxProductRepo{fx}, &fxCategoryRepo{fx}, &fxUnitRepo{fx},
		&fxImageRepo{fx}, &fxBannerRepo{fx}, cache,
	)
}

// ─────────────────────────────────────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────────────────────────────────────

func TestCatalogProducts_SoloActivosConDatosAnidados(t *testing.T) {
	uc := newCatalogUC(newFixture(), nil)

	resp, err := uc.Products(context.Background(), usecase.CatalogQuery{}, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Items, 2, "el producto inactivo no debe aparecer")

	first := resp.Items[0]
	assert.Equal(t, "calala", first.Slug)
	assert.True(t, first.InStock)
	assert.Equal(t, int64(10), first.Availability)
	require.NotNil(t, first.Category)
	assert.Equal(t, "frutas", first.Category.Slug)
	require.NotNil(t, first.Unit)
	assert.Equal(t, "Docena", first.Unit.Name)
	require.NotNil(t, first.PrimaryImage)
	assert.Equal(t, "front", first.PrimaryImage.Tag)

	second := resp.Items[1]
	assert.False(t, second.InStock, "quantity 0 debe reportarse sin stock")
	assert.Nil(t, second.PrimaryImage)
}

func TestCatalogProducts_FiltroSoloConStock(t *testing.T) {
	uc := newCatalogUC(newFixture(), nil)

	resp, err := uc.Products(context.Background(), usecase.CatalogQuery{InStockOnly: true}, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "calala", resp.Items[0].Slug)
}

func TestCatalogProductBySlug_DetalleConImagenes(t *testing.T) {
	uc := newCatalogUC(newFixture(), nil)

	resp, err := uc.ProductBySlug(context.Background(), "calala")
	require.NoError(t, err)
	assert.Equal(t, "Calala", resp.Name)
	assert.Len(t, resp.Images, 2)
}

func TestCatalogProductBySlug_InactivoEsNotFound(t *testing.T) {
	uc := newCatalogUC(newFixture(), nil)

	_, err := uc.ProductBySlug(context.Background(), "oculto")
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"un producto inactivo no debe ser visible en el catálogo público")
}

func TestCatalogCategories_SoloActivas(t *testing.T) {
	uc := newCatalogUC(newFixture(), nil)

	items, err := uc.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "frutas", items[0].Slug)
}

func TestCatalogBanners_SoloActivos(t *testing.T) {
	uc := newCatalogUC(newFixture(), nil)

	items, err := uc.Banners(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Cosecha fresca", items[0].Title)
}

func TestCatalog_CacheAside(t *testing.T) {
	fx := newFixture()
	cache := newFakeCache()
	uc := newCatalogUC(fx, cache)

	// Primer acceso: miss, se consulta el repo y se puebla el caché.
	resp, err := uc.Products(context.Background(), usecase.CatalogQuery{}, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, 1, cache.sets)

	// Segundo acceso: hit. Aunque el fixture cambie, se sirve lo cacheado.
	fx.products = fx.products[:1]
	resp, err = uc.Products(context.Background(), usecase.CatalogQuery{}, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 2, "el hit de caché debe servir la respuesta guardada")
	assert.Equal(t, 1, cache.sets, "un hit no debe reescribir el caché")
}

func TestCatalog_InvalidacionTrasEscrituraAdmin(t *testing.T) {
	fx := newFixture()
	cache := newFakeCache()
	uc := newCatalogUC(fx, cache)

	_, err := uc.Products(context.Background(), usecase.CatalogQuery{}, dto.PageRequest{})
	require.NoError(t, err)
	require.NotEmpty(t, cache.entries)

	// Una escritura admin (banner nuevo) invalida todo el prefijo del catálogo.
	bannerUC := usecase.NewBannerUseCase(&fxBannerRepo{fx}, cache)
	_, err = bannerUC.Create(context.Background(), dto.CreateBannerRequest{
		Title: "Promo", ImageURL: "https://cdn.example.net/promo.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.invalidated)
	assert.Empty(t, cache.entries)
}
