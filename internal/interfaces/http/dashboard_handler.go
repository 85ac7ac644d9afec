package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/analytics-api/internal/application/analytics"
	"github.com/jhoicas/analytics-api/internal/application/dto"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// dashboardMetricsResponse agrega la representación formateada del total de
// ventas. El formato es presentación, por eso vive en esta capa.
type dashboardMetricsResponse struct {
	dto.DashboardMetricsDTO
	TotalSalesFormatted string `json:"total_sales_formatted"`
}

// GetMetrics devuelve los KPIs del mes en curso.
// GET /api/dashboard/metrics
//
// Respuesta: total_sales, total_orders, total_customers, average_order_value,
// conversion_rate, unread_alerts y total_sales_formatted.
// No requiere parámetros; la ventana temporal se calcula en el servidor.
func (h *DashboardHandler) GetMetrics(c *fiber.Ctx) error {
	metrics, err := h.uc.GetDashboardMetrics(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	return c.JSON(dashboardMetricsResponse{
		DashboardMetricsDTO: *metrics,
		TotalSalesFormatted: "$" + metrics.TotalSales.StringFixed(2),
	})
}

// GetSalesChart devuelve los rollups diarios de los últimos 7 días, ascendente
// por fecha. Los días sin rollup no aparecen en la serie.
// GET /api/dashboard/sales-chart
func (h *DashboardHandler) GetSalesChart(c *fiber.Ctx) error {
	points, err := h.uc.GetSalesChartData(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(points)
}
