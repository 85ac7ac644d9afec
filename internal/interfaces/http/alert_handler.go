package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/analytics-api/internal/application/dto"
	"github.com/jhoicas/analytics-api/internal/application/usecase"
	"github.com/jhoicas/analytics-api/internal/domain"
)

// AlertHandler maneja el ciclo de vida de alertas (protegido).
type AlertHandler struct {
	uc *usecase.AlertUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *usecase.AlertUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// List godoc
// @Summary      Listar alertas (más recientes primero)
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        page  query  int  false  "Página (base 0)"   default(0)
// @Param        size  query  int  false  "Tamaño de página"  default(10)
// @Success      200   {object}  dto.AlertListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Page: c.QueryInt("page", 0),
		Size: c.QueryInt("size", 0),
	}
	out, err := h.uc.ListAll(c.Context(), page)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "page y size deben ser >= 0 y size <= 100"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListUnread godoc
// @Summary      Alertas no leídas
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AlertDTO
// @Router       /api/alerts/unread [get]
func (h *AlertHandler) ListUnread(c *fiber.Ctx) error {
	out, err := h.uc.ListUnread(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListBySeverity godoc
// @Summary      Alertas por severidad
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        severity  path  string  true  "LOW, MEDIUM, HIGH o CRITICAL"
// @Success      200  {array}   dto.AlertDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/alerts/severity/{severity} [get]
func (h *AlertHandler) ListBySeverity(c *fiber.Ctx) error {
	out, err := h.uc.ListBySeverity(c.Context(), c.Params("severity"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "severidad desconocida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListByType godoc
// @Summary      Alertas por tipo
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        type  path  string  true  "INVENTORY, SALES, CUSTOMER o SYSTEM"
// @Success      200  {array}   dto.AlertDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/alerts/type/{type} [get]
func (h *AlertHandler) ListByType(c *fiber.Ctx) error {
	out, err := h.uc.ListByType(c.Context(), c.Params("type"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo de alerta desconocido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CountUnread godoc
// @Summary      Conteo de alertas no leídas
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UnreadCountResponse
// @Router       /api/alerts/count/unread [get]
func (h *AlertHandler) CountUnread(c *fiber.Ctx) error {
	n, err := h.uc.CountUnread(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.UnreadCountResponse{Count: n})
}

// Create godoc
// @Summary      Crear alerta
// @Tags         alerts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAlertRequest  true  "type, title, message, severity"
// @Success      201   {object}  dto.AlertDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/alerts [post]
func (h *AlertHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAlertRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type, title, message y severity son requeridos y deben ser valores conocidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// MarkAsRead godoc
// @Summary      Marcar alerta como leída (idempotente)
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la alerta"
// @Success      200  {object}  dto.AlertDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/alerts/{id}/mark-read [post]
func (h *AlertHandler) MarkAsRead(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id debe ser un entero positivo"})
	}
	out, err := h.uc.MarkAsRead(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "alerta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
