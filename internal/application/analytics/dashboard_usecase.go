// Package analytics contiene los casos de uso del Dashboard de analítica:
// KPIs del mes en curso y la gráfica de ventas de los últimos 7 días.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/analytics-api/internal/application/dto"
	"github.com/jhoicas/analytics-api/internal/application/ports"
	"github.com/jhoicas/analytics-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// Claves de caché del dashboard. No dependen de parámetros de la petición:
// la ventana temporal se calcula en el servidor y el TTL acota su desfase.
const (
	keyDashboardOverview = "dashboard-overview"
	keySalesChart7Days   = "sales-chart-7days"
)

const salesChartDays = 7

// DashboardUseCase calcula los KPIs del dashboard y la gráfica de ventas.
//
// Fuente de datos: repositorios read-only de órdenes, clientes, alertas y
// rollups. Aplica caché read-through; un miss concurrente puede recalcular por
// duplicado, lo cual es aceptable porque el cálculo es idempotente.
type DashboardUseCase struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	alertRepo    repository.AlertRepository
	metricRepo   repository.SalesMetricRepository
	cache        ports.CacheStore
}

// NewDashboardUseCase construye el caso de uso. cache puede ser nil (sin caché).
func NewDashboardUseCase(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	alertRepo repository.AlertRepository,
	metricRepo repository.SalesMetricRepository,
	cache ports.CacheStore,
) *DashboardUseCase {
	return &DashboardUseCase{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		alertRepo:    alertRepo,
		metricRepo:   metricRepo,
		cache:        cache,
	}
}

// GetDashboardMetrics construye el DashboardMetricsDTO del mes en curso.
//
// Ventana: [día 1 del mes a las 00:00:00, ahora].
// Cuatro llamadas en paralelo:
//  1. GetStatsBetween(mes)   → TotalSales + TotalOrders + AverageOrderValue
//  2. Count()                → TotalCustomers
//  3. CountNewBetween(mes)   → NewCustomers
//  4. CountUnread()          → UnreadAlerts
//
// La tasa de conversión es clientes/órdenes*100: es un placeholder heredado
// del modelo de negocio, no una tasa de conversión real (visitas → compras).
// Se mantiene tal cual; corregirla requiere datos de tráfico que esta API no tiene.
func (uc *DashboardUseCase) GetDashboardMetrics(ctx context.Context) (*dto.DashboardMetricsDTO, error) {
	if cached, ok := uc.cacheGet(ports.CacheDashboardMetrics, keyDashboardOverview); ok {
		if m, ok := cached.(*dto.DashboardMetricsDTO); ok {
			return m, nil
		}
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	// ── Goroutines para paralelizar las 4 consultas DB ────────────────────────
	type statsResult struct {
		stats repository.OrderStats
		err   error
	}
	type countResult struct {
		n   int64
		err error
	}

	statsCh := make(chan statsResult, 1)
	customersCh := make(chan countResult, 1)
	newCustomersCh := make(chan countResult, 1)
	unreadCh := make(chan countResult, 1)

	go func() {
		stats, err := uc.orderRepo.GetStatsBetween(ctx, monthStart, now)
		statsCh <- statsResult{stats, err}
	}()
	go func() {
		n, err := uc.customerRepo.Count(ctx)
		customersCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.customerRepo.CountNewBetween(ctx, monthStart, now)
		newCustomersCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.alertRepo.CountUnread(ctx)
		unreadCh <- countResult{n, err}
	}()

	stats := <-statsCh
	customers := <-customersCh
	newCustomers := <-newCustomersCh
	unread := <-unreadCh

	if stats.err != nil {
		return nil, fmt.Errorf("dashboard: métricas de órdenes: %w", stats.err)
	}
	if customers.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de clientes: %w", customers.err)
	}
	if newCustomers.err != nil {
		return nil, fmt.Errorf("dashboard: clientes nuevos del mes: %w", newCustomers.err)
	}
	if unread.err != nil {
		return nil, fmt.Errorf("dashboard: alertas no leídas: %w", unread.err)
	}

	conversionRate := decimal.Zero
	if stats.stats.TotalOrders > 0 {
		conversionRate = decimal.NewFromInt(customers.n).
			Div(decimal.NewFromInt(stats.stats.TotalOrders)).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	metrics := &dto.DashboardMetricsDTO{
		TotalSales:        stats.stats.TotalSales.Round(2),
		TotalOrders:       stats.stats.TotalOrders,
		TotalCustomers:    customers.n,
		NewCustomers:      newCustomers.n,
		AverageOrderValue: stats.stats.AverageOrderValue.Round(2),
		ConversionRate:    conversionRate,
		UnreadAlerts:      unread.n,
	}

	uc.cachePut(ports.CacheDashboardMetrics, keyDashboardOverview, metrics)
	return metrics, nil
}

// GetSalesChartData devuelve un punto por rollup diario persistido en la
// ventana [ahora − 7 días, ahora], ascendente por fecha. Proyección pura:
// no calcula nada, solo reexpone lo que escribió el proceso de consolidación.
func (uc *DashboardUseCase) GetSalesChartData(ctx context.Context) ([]dto.SalesChartPointDTO, error) {
	if cached, ok := uc.cacheGet(ports.CacheSalesData, keySalesChart7Days); ok {
		if points, ok := cached.([]dto.SalesChartPointDTO); ok {
			return points, nil
		}
	}

	end := time.Now()
	start := end.AddDate(0, 0, -salesChartDays)

	metrics, err := uc.metricRepo.FindBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("dashboard: rollups de ventas: %w", err)
	}

	points := make([]dto.SalesChartPointDTO, 0, len(metrics))
	for _, m := range metrics {
		points = append(points, dto.SalesChartPointDTO{
			Date:              m.Date,
			Sales:             m.TotalSales,
			Orders:            m.TotalOrders,
			AverageOrderValue: m.AverageOrderValue,
		})
	}

	uc.cachePut(ports.CacheSalesData, keySalesChart7Days, points)
	return points, nil
}

// cacheGet consulta la caché tolerando su ausencia (nil = siempre miss).
func (uc *DashboardUseCase) cacheGet(namespace, key string) (any, bool) {
	if uc.cache == nil {
		return nil, false
	}
	return uc.cache.Get(namespace, key)
}

// cachePut guarda en caché tolerando su ausencia.
func (uc *DashboardUseCase) cachePut(namespace, key string, value any) {
	if uc.cache != nil {
		uc.cache.Put(namespace, key, value)
	}
}
