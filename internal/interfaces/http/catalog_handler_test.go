package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecolosur/catalogo-api/internal/application/usecase"
	"github.com/ecolosur/catalogo-api/internal/domain"
	"github.com/ecolosur/catalogo-api/internal/domain/entity"
	"github.com/ecolosur/catalogo-api/internal/domain/repository"
	apphttp "github.com/ecolosur/catalogo-api/internal/interfaces/http"
)

// stubProductRepo captura el filtro del último List y permite forzar el
// resultado de Delete.
type stubProductRepo struct {
	lastFilter repository.ProductFilter
	deleteErr  error
}

func (r *stubProductRepo) Create(*entity.Product) error                 { return nil }
func (r *stubProductRepo) GetByID(string) (*entity.Product, error)      { return nil, nil }
func (r *stubProductRepo) GetBySlug(string) (*entity.Product, error)    { return nil, nil }
func (r *stubProductRepo) GetForUpdate(string) (*entity.Product, error) { return nil, nil }
func (r *stubProductRepo) Update(*entity.Product) error                 { return nil }
func (r *stubProductRepo) UpdateQuantity(string, int64) error           { return nil }
func (r *stubProductRepo) List(filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	r.lastFilter = filter
	return nil, nil
}
func (r *stubProductRepo) Delete(string) error { return r.deleteErr }

type stubCategoryRepo struct{}

func (stubCategoryRepo) Create(*entity.Category) error                { return nil }
func (stubCategoryRepo) GetByID(string) (*entity.Category, error)     { return nil, nil }
func (stubCategoryRepo) GetBySlug(string) (*entity.Category, error)   { return nil, nil }
func (stubCategoryRepo) Update(*entity.Category) error                { return nil }
func (stubCategoryRepo) List(bool) ([]*entity.Category, error)        { return nil, nil }
func (stubCategoryRepo) Delete(string) error                          { return nil }

type stubUnitRepo struct{}

func (stubUnitRepo) Create(*entity.Unit) error              { return nil }
func (stubUnitRepo) GetByID(string) (*entity.Unit, error)   { return nil, nil }
func (stubUnitRepo) GetByName(string) (*entity.Unit, error) { return nil, nil }
func (stubUnitRepo) Update(*entity.Unit) error              { return nil }
func (stubUnitRepo) List() ([]*entity.Unit, error)          { return nil, nil }
func (stubUnitRepo) Delete(string) error                    { return nil }

func buildCatalogApp(productRepo *stubProductRepo) *fiber.App {
	uc := usecase.NewCatalogUseCase(productRepo, stubCategoryRepo{}, stubUnitRepo{}, nil, nil, nil)
	handler := apphttp.NewCatalogHandler(uc)

	app := fiber.New()
	app.Get("/api/catalog/products", handler.Products)
	return app
}

func getPath(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestCatalogProducts_ParametroSearch(t *testing.T) {
	repo := &stubProductRepo{}
	app := buildCatalogApp(repo)

	resp := getPath(t, app, "/api/catalog/products?search=mora")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "mora", repo.lastFilter.Search)
}

func TestCatalogProducts_AliasQ(t *testing.T) {
	repo := &stubProductRepo{}
	app := buildCatalogApp(repo)

	resp := getPath(t, app, "/api/catalog/products?q=mora")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "mora", repo.lastFilter.Search)
}

func TestCatalogProducts_SearchTienePrioridadSobreQ(t *testing.T) {
	repo := &stubProductRepo{}
	app := buildCatalogApp(repo)

	getPath(t, app, "/api/catalog/products?search=calala&q=mora")
	assert.Equal(t, "calala", repo.lastFilter.Search)
}

func buildProductAdminApp(productRepo *stubProductRepo) *fiber.App {
	uc := usecase.NewProductUseCase(productRepo, stubCategoryRepo{}, stubUnitRepo{}, nil)
	handler := apphttp.NewProductHandler(uc, nil)

	app := fiber.New()
	app.Delete("/api/products/:id", handler.Delete)
	return app
}

func TestDeleteProduct_ReferenciadoRetorna409(t *testing.T) {
	repo := &stubProductRepo{deleteErr: domain.ErrInUse}
	app := buildProductAdminApp(repo)

	req := httptest.NewRequest(http.MethodDelete, "/api/products/p1", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "IN_USE", body["code"])
}

func TestDeleteProduct_SinReferenciasRetorna204(t *testing.T) {
	app := buildProductAdminApp(&stubProductRepo{})

	req := httptest.NewRequest(http.MethodDelete, "/api/products/p1", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
