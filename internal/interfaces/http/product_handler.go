package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/analytics-api/internal/application/dto"
	"github.com/jhoicas/analytics-api/internal/application/usecase"
	"github.com/jhoicas/analytics-api/internal/domain"
)

// ProductHandler maneja las vistas de analítica de productos (protegido).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos activos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        page  query  int  false  "Página (base 0)"      default(0)
// @Param        size  query  int  false  "Tamaño de página"     default(10)
// @Success      200   {object}  dto.ProductListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Page: c.QueryInt("page", 0),
		Size: c.QueryInt("size", 0),
	}
	out, err := h.uc.List(c.Context(), page)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "page y size deben ser >= 0 y size <= 100"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// TopSelling godoc
// @Summary      Ranking de productos por ingreso
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Cantidad de productos (1..100)"  default(10)
// @Success      200    {array}   dto.ProductDTO
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/products/top-selling [get]
func (h *ProductHandler) TopSelling(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	out, err := h.uc.TopSelling(c.Context(), limit)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "limit debe estar entre 1 y 100"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Productos activos con inventario bajo el umbral
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        threshold  query  int  false  "Umbral de inventario"  default(10)
// @Success      200        {array}   dto.ProductDTO
// @Failure      400        {object}  dto.ErrorResponse
// @Failure      403        {object}  dto.ErrorResponse
// @Router       /api/products/low-stock [get]
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	threshold := c.QueryInt("threshold", 10)
	out, err := h.uc.LowStock(c.Context(), threshold)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "threshold debe ser >= 0"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar productos por nombre
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        q     query  string  true   "Subcadena del nombre"
// @Param        page  query  int     false  "Página (base 0)"   default(0)
// @Param        size  query  int     false  "Tamaño de página"  default(10)
// @Success      200   {object}  dto.ProductListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/search [get]
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	query := c.Query("q")
	page := dto.PageRequest{
		Page: c.QueryInt("page", 0),
		Size: c.QueryInt("size", 0),
	}
	out, err := h.uc.Search(c.Context(), query, page)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "q es requerido y la paginación debe ser válida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
