package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/analytics-api/internal/application/analytics"
	"github.com/jhoicas/analytics-api/internal/application/auth"
	"github.com/jhoicas/analytics-api/internal/application/usecase"
	"github.com/jhoicas/analytics-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DashboardUC *appanalytics.DashboardUseCase
	ProductUC   *usecase.ProductUseCase
	AlertUC     *usecase.AlertUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/metrics", dashboardHandler.GetMetrics)
	dashboard.Get("/sales-chart", dashboardHandler.GetSalesChart)

	// Products (protegido; low-stock solo admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/top-selling", productHandler.TopSelling)
	products.Get("/low-stock", RequireRole(entity.RoleAdmin), productHandler.LowStock)
	products.Get("/search", productHandler.Search)

	// Alerts (protegido)
	alerts := protected.Group("/alerts")
	alertHandler := NewAlertHandler(deps.AlertUC)
	alerts.Get("/", alertHandler.List)
	alerts.Post("/", alertHandler.Create)
	alerts.Get("/unread", alertHandler.ListUnread)
	alerts.Get("/count/unread", alertHandler.CountUnread)
	alerts.Get("/severity/:severity", alertHandler.ListBySeverity)
	alerts.Get("/type/:type", alertHandler.ListByType)
	alerts.Post("/:id/mark-read", alertHandler.MarkAsRead)
}
