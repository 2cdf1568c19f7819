package usecase

import (
	"context"
	"fmt"

	"github.com/ecolosur/catalogo-api/internal/application/dto"
	"github.com/ecolosur/catalogo-api/internal/domain"
	"github.com/ecolosur/catalogo-api/internal/domain/entity"
	"github.com/ecolosur/catalogo-api/internal/domain/repository"
)

// CatalogQuery filtros del listado público de productos.
type CatalogQuery struct {
	CategorySlug string
	Search       string
	InStockOnly  bool
}

// CatalogUseCase consultas de solo lectura del catálogo público (storefront).
// Cache-aside: lee del caché primero y lo puebla en el miss; las escrituras
// admin invalidan todo el catálogo.
type CatalogUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	unitRepo     repository.UnitRepository
	imageRepo    repository.ProductImageRepository
	bannerRepo   repository.BannerRepository
	cache        CatalogCache
}

// NewCatalogUseCase construye el caso de uso. cache puede ser nil.
func NewCatalogUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	unitRepo repository.UnitRepository,
	imageRepo repository.ProductImageRepository,
	bannerRepo repository.BannerRepository,
	cache CatalogCache,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		unitRepo:     unitRepo,
		imageRepo:    imageRepo,
		bannerRepo:   bannerRepo,
		cache:        cache,
	}
}

// Categories lista las categorías activas ordenadas por nombre.
func (uc *CatalogUseCase) Categories(ctx context.Context) ([]dto.CatalogCategoryResponse, error) {
	const key = "catalog:categories"
	var cached []dto.CatalogCategoryResponse
	if uc.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	list, err := uc.categoryRepo.List(true)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CatalogCategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CatalogCategoryResponse{
			ID:          c.ID,
			Name:        c.Name,
			Slug:        c.Slug,
			Description: c.Description,
		})
	}
	uc.cacheSet(ctx, key, items)
	return items, nil
}

// Products lista productos activos con filtros de búsqueda, categoría y stock,
// ordenados por última actualización.
func (uc *CatalogUseCase) Products(ctx context.Context, q CatalogQuery, page dto.PageRequest) (*dto.CatalogProductListResponse, error) {
	page.DefaultPage()
	key := fmt.Sprintf("catalog:products:%s:%s:%t:%d:%d", q.CategorySlug, q.Search, q.InStockOnly, page.Limit, page.Offset)
	var cached dto.CatalogProductListResponse
	if uc.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	filter := repository.ProductFilter{
		CategorySlug: q.CategorySlug,
		Search:       q.Search,
		InStockOnly:  q.InStockOnly,
		ActiveOnly:   true,
	}
	products, err := uc.productRepo.List(filter, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}

	categories, units, err := uc.loadLookups()
	if err != nil {
		return nil, err
	}

	items := make([]dto.CatalogProductResponse, 0, len(products))
	for _, p := range products {
		item, err := uc.toCatalogProduct(p, categories, units)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	resp := &dto.CatalogProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	uc.cacheSet(ctx, key, resp)
	return resp, nil
}

// ProductBySlug devuelve el detalle público de un producto activo.
func (uc *CatalogUseCase) ProductBySlug(ctx context.Context, productSlug string) (*dto.CatalogProductDetailResponse, error) {
	key := "catalog:product:" + productSlug
	var cached dto.CatalogProductDetailResponse
	if uc.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	product, err := uc.productRepo.GetBySlug(productSlug)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, domain.ErrNotFound
	}

	categories, units, err := uc.loadLookups()
	if err != nil {
		return nil, err
	}
	item, err := uc.toCatalogProduct(product, categories, units)
	if err != nil {
		return nil, err
	}

	images, err := uc.imageRepo.ListByProduct(product.ID)
	if err != nil {
		return nil, err
	}
	imageItems := make([]dto.CatalogImageResponse, 0, len(images))
	for _, img := range images {
		imageItems = append(imageItems, toCatalogImage(img))
	}

	resp := &dto.CatalogProductDetailResponse{
		CatalogProductResponse: *item,
		Description:            product.Description,
		Images:                 imageItems,
	}
	uc.cacheSet(ctx, key, resp)
	return resp, nil
}

// Banners lista los banners activos del carrusel, ordenados por posición.
func (uc *CatalogUseCase) Banners(ctx context.Context) ([]dto.CatalogBannerResponse, error) {
	const key = "catalog:banners"
	var cached []dto.CatalogBannerResponse
	if uc.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	list, err := uc.bannerRepo.List(true)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CatalogBannerResponse, 0, len(list))
	for _, b := range list {
		items = append(items, dto.CatalogBannerResponse{
			ID:          b.ID,
			Title:       b.Title,
			Description: b.Description,
			ImageURL:    b.ImageURL,
			Link:        b.Link,
			Position:    b.Position,
		})
	}
	uc.cacheSet(ctx, key, items)
	return items, nil
}

// loadLookups carga categorías y unidades en mapas por ID.
// El catálogo es pequeño (decenas de filas); cargarlo completo evita un
// query por producto en el listado.
func (uc *CatalogUseCase) loadLookups() (map[string]*entity.Category, map[string]*entity.Unit, error) {
	categoryList, err := uc.categoryRepo.List(false)
	if err != nil {
		return nil, nil, err
	}
	unitList, err := uc.unitRepo.List()
	if err != nil {
		return nil, nil, err
	}
	categories := make(map[string]*entity.Category, len(categoryList))
	for _, c := range categoryList {
		categories[c.ID] = c
	}
	units := make(map[string]*entity.Unit, len(unitList))
	for _, u := range unitList {
		units[u.ID] = u
	}
	return categories, units, nil
}

func (uc *CatalogUseCase) toCatalogProduct(
	p *entity.Product,
	categories map[string]*entity.Category,
	units map[string]*entity.Unit,
) (*dto.CatalogProductResponse, error) {
	item := &dto.CatalogProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Slug:         p.Slug,
		Price:        p.Price,
		InStock:      p.InStock(),
		Availability: p.Quantity,
	}
	if c, ok := categories[p.CategoryID]; ok {
		item.Category = &dto.CatalogCategoryResponse{ID: c.ID, Name: c.Name, Slug: c.Slug, Description: c.Description}
	}
	if u, ok := units[p.UnitID]; ok {
		item.Unit = &dto.CatalogUnitResponse{ID: u.ID, Name: u.Name}
	}

	images, err := uc.imageRepo.ListByProduct(p.ID)
	if err != nil {
		return nil, err
	}
	if len(images) > 0 {
		img := toCatalogImage(images[0]) // la primaria viene primera
		item.PrimaryImage = &img
	}
	return item, nil
}

func toCatalogImage(img *entity.ProductImage) dto.CatalogImageResponse {
	return dto.CatalogImageResponse{
		ID:        img.ID,
		Tag:       img.Tag,
		IsPrimary: img.IsPrimary,
		AltText:   img.AltText,
		ImageURL:  img.ImageURL,
	}
}

func (uc *CatalogUseCase) cacheGet(ctx context.Context, key string, dest any) bool {
	if uc.cache == nil {
		return false
	}
	ok, err := uc.cache.Get(ctx, key, dest)
	return err == nil && ok
}

func (uc *CatalogUseCase) cacheSet(ctx context.Context, key string, value any) {
	if uc.cache != nil {
		_ = uc.cache.Set(ctx, key, value)
	}
}
