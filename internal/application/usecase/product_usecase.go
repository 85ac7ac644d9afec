package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/analytics-api/internal/application/dto"
	"github.com/jhoicas/analytics-api/internal/application/ports"
	"github.com/jhoicas/analytics-api/internal/domain"
	"github.com/jhoicas/analytics-api/internal/domain/entity"
	"github.com/jhoicas/analytics-api/internal/domain/repository"
)

// Límite máximo de productos en el ranking de más vendidos.
const maxTopSellingLimit = 100

// ProductUseCase vistas de analítica sobre el catálogo: listado, ranking por
// ingreso, stock bajo y búsqueda. Solo lectura.
//
// Las claves de caché se derivan de todos los parámetros de la llamada, de modo
// que peticiones distintas nunca comparten entrada de caché.
type ProductUseCase struct {
	repo  repository.ProductRepository
	cache ports.CacheStore
}

// NewProductUseCase construye el caso de uso. cache puede ser nil (sin caché).
func NewProductUseCase(repo repository.ProductRepository, cache ports.CacheStore) *ProductUseCase {
	return &ProductUseCase{repo: repo, cache: cache}
}

// List lista productos activos, paginados y ordenados por id ascendente.
func (uc *ProductUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ProductListResponse, error) {
	if !page.Valid() {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()

	key := fmt.Sprintf("all-products:page=%d:size=%d", page.Page, page.Size)
	if cached, ok := uc.cacheGet(ports.CacheProductMetrics, key); ok {
		if resp, ok := cached.(*dto.ProductListResponse); ok {
			return resp, nil
		}
	}

	products, total, err := uc.repo.ListActive(ctx, page.Size, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("productos: listar: %w", err)
	}

	resp := &dto.ProductListResponse{
		Items: toProductDTOs(products),
		Page:  dto.PageResponse{Page: page.Page, Size: page.Size, Total: total},
	}
	uc.cachePut(ports.CacheProductMetrics, key, resp)
	return resp, nil
}

// TopSelling devuelve hasta `limit` productos activos ordenados por ingreso
// (SUM(quantity * unit_price)) descendente, con empates resueltos por id.
// limit debe ser >= 1; valores mayores a 100 se rechazan.
func (uc *ProductUseCase) TopSelling(ctx context.Context, limit int) ([]dto.ProductDTO, error) {
	if limit < 1 || limit > maxTopSellingLimit {
		return nil, domain.ErrInvalidInput
	}

	key := fmt.Sprintf("top-selling:limit=%d", limit)
	if cached, ok := uc.cacheGet(ports.CacheProductMetrics, key); ok {
		if items, ok := cached.([]dto.ProductDTO); ok {
			return items, nil
		}
	}

	results, err := uc.repo.TopSelling(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("productos: top selling: %w", err)
	}

	items := make([]dto.ProductDTO, 0, len(results))
	for _, r := range results {
		item := toProductDTO(r.Product)
		item.UnitsSold = r.UnitsSold
		item.TotalRevenue = r.Revenue
		items = append(items, item)
	}

	uc.cachePut(ports.CacheProductMetrics, key, items)
	return items, nil
}

// LowStock devuelve los productos activos con inventario menor al umbral.
// Los inactivos quedan fuera sin importar su inventario.
func (uc *ProductUseCase) LowStock(ctx context.Context, threshold int) ([]dto.ProductDTO, error) {
	if threshold < 0 {
		return nil, domain.ErrInvalidInput
	}

	products, err := uc.repo.LowStock(ctx, threshold)
	if err != nil {
		return nil, fmt.Errorf("productos: stock bajo: %w", err)
	}
	return toProductDTOs(products), nil
}

// Search busca productos activos por subcadena de nombre (case-insensitive),
// paginado y ordenado por id ascendente para que las páginas sean estables.
func (uc *ProductUseCase) Search(ctx context.Context, query string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	if strings.TrimSpace(query) == "" || !page.Valid() {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()

	products, total, err := uc.repo.SearchByName(ctx, query, page.Size, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("productos: búsqueda: %w", err)
	}

	return &dto.ProductListResponse{
		Items: toProductDTOs(products),
		Page:  dto.PageResponse{Page: page.Page, Size: page.Size, Total: total},
	}, nil
}

func (uc *ProductUseCase) cacheGet(namespace, key string) (any, bool) {
	if uc.cache == nil {
		return nil, false
	}
	return uc.cache.Get(namespace, key)
}

func (uc *ProductUseCase) cachePut(namespace, key string, value any) {
	if uc.cache != nil {
		uc.cache.Put(namespace, key, value)
	}
}

func toProductDTO(p entity.Product) dto.ProductDTO {
	return dto.ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		SKU:         p.SKU,
		Price:       p.Price,
		Inventory:   p.Inventory,
		Rating:      p.Rating,
		ReviewCount: p.ReviewCount,
	}
}

func toProductDTOs(products []entity.Product) []dto.ProductDTO {
	items := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		items = append(items, toProductDTO(p))
	}
	return items
}
