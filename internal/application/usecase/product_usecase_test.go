package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/analytics-api/internal/application/dto"
	"github.com/jhoicas/analytics-api/internal/application/usecase"
	"github.com/jhoicas/analytics-api/internal/domain"
	"github.com/jhoicas/analytics-api/internal/domain/entity"
	"github.com/jhoicas/analytics-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de ProductRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products      []entity.Product
	top           []repository.TopProductResult
	lastThreshold int
	lastLimit     int
	topCalls      int
}

func (f *fakeProductRepo) ListActive(_ context.Context, limit, offset int) ([]entity.Product, int64, error) {
	end := offset + limit
	if end > len(f.products) {
		end = len(f.products)
	}
	if offset > len(f.products) {
		offset = len(f.products)
	}
	return f.products[offset:end], int64(len(f.products)), nil
}

func (f *fakeProductRepo) TopSelling(_ context.Context, limit int) ([]repository.TopProductResult, error) {
	f.topCalls++
	f.lastLimit = limit
	if limit > len(f.top) {
		limit = len(f.top)
	}
	return f.top[:limit], nil
}

func (f *fakeProductRepo) LowStock(_ context.Context, threshold int) ([]entity.Product, error) {
	f.lastThreshold = threshold
	var out []entity.Product
	for _, p := range f.products {
		if p.Inventory < threshold && p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) SearchByName(_ context.Context, _ string, _, _ int) ([]entity.Product, int64, error) {
	return f.products, int64(len(f.products)), nil
}

func demoProducts() []entity.Product {
	return []entity.Product{
		{ID: 1, Name: "Teclado", SKU: "SKU-1", Inventory: 50, IsActive: true},
		{ID: 2, Name: "Mouse", SKU: "SKU-2", Inventory: 4, IsActive: true},
		{ID: 3, Name: "Monitor", SKU: "SKU-3", Inventory: 2, IsActive: true},
	}
}

func demoTop() []repository.TopProductResult {
	return []repository.TopProductResult{
		{Product: entity.Product{ID: 2, Name: "Mouse"}, UnitsSold: 30, Revenue: decimal.NewFromInt(900)},
		{Product: entity.Product{ID: 1, Name: "Teclado"}, UnitsSold: 10, Revenue: decimal.NewFromInt(500)},
		{Product: entity.Product{ID: 3, Name: "Monitor"}, UnitsSold: 1, Revenue: decimal.NewFromInt(249)},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// TopSelling
// ──────────────────────────────────────────────────────────────────────────────

// El ranking devuelve como máximo `limit` elementos, ya ordenados por ingreso.
func TestTopSelling_RespetaLimite(t *testing.T) {
	repo := &fakeProductRepo{top: demoTop()}
	uc := usecase.NewProductUseCase(repo, nil)

	items, err := uc.TopSelling(context.Background(), 2)
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, int64(2), items[0].ID, "el de mayor ingreso primero")
	assert.Equal(t, int64(30), items[0].UnitsSold)
	assert.True(t, items[0].TotalRevenue.Equal(decimal.NewFromInt(900)))
}

// Límites fuera de rango se rechazan como entrada inválida.
func TestTopSelling_LimiteInvalido(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{top: demoTop()}, nil)

	for _, limit := range []int{0, -1, 101} {
		_, err := uc.TopSelling(context.Background(), limit)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "limit=%d debe rechazarse", limit)
	}
}

// Límites distintos usan claves de caché distintas: no hay colisión.
func TestTopSelling_ClavesDeCachePorLimite(t *testing.T) {
	repo := &fakeProductRepo{top: demoTop()}
	uc := usecase.NewProductUseCase(repo, newFakeCache())

	two, err := uc.TopSelling(context.Background(), 2)
	require.NoError(t, err)
	three, err := uc.TopSelling(context.Background(), 3)
	require.NoError(t, err)

	assert.Len(t, two, 2)
	assert.Len(t, three, 3, "limit=3 no debe reusar la entrada cacheada de limit=2")
	assert.Equal(t, 2, repo.topCalls, "cada límite consulta la DB una vez")

	// Repetir limit=2 sí sale de caché.
	_, err = uc.TopSelling(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.topCalls)
}

// ──────────────────────────────────────────────────────────────────────────────
// LowStock
// ──────────────────────────────────────────────────────────────────────────────

// Solo productos activos con inventario estrictamente menor al umbral.
func TestLowStock_FiltraPorUmbral(t *testing.T) {
	repo := &fakeProductRepo{products: demoProducts()}
	uc := usecase.NewProductUseCase(repo, nil)

	items, err := uc.LowStock(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, 5, repo.lastThreshold, "el umbral llega tal cual al repositorio")
	require.Len(t, items, 2)
	for _, it := range items {
		assert.Less(t, it.Inventory, 5, "todo resultado debe estar bajo el umbral")
	}
}

func TestLowStock_UmbralNegativo(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{}, nil)
	_, err := uc.LowStock(context.Background(), -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// List / Search
// ──────────────────────────────────────────────────────────────────────────────

func TestList_PaginacionInvalida(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{}, nil)

	_, err := uc.List(context.Background(), dto.PageRequest{Page: -1, Size: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.List(context.Background(), dto.PageRequest{Page: 0, Size: 101})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestList_SizePorDefecto(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{products: demoProducts()}, nil)

	out, err := uc.List(context.Background(), dto.PageRequest{})
	require.NoError(t, err)

	assert.Equal(t, 10, out.Page.Size, "size omitido debe ser 10")
	assert.Equal(t, int64(3), out.Page.Total)
}

func TestSearch_QueryVacio(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{}, nil)
	_, err := uc.Search(context.Background(), "   ", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
