package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/inventario-dashboard/internal/application/usecase"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

// StockLevelHandler maneja los niveles de stock.
type StockLevelHandler struct {
	uc *usecase.StockLevelUseCase
}

func NewStockLevelHandler(uc *usecase.StockLevelUseCase) *StockLevelHandler {
	return &StockLevelHandler{uc: uc}
}

// List godoc
// @Summary      Listar niveles de stock
// @Description  Con productId devuelve como máximo el nivel de ese producto.
// @Tags         stock-levels
// @Security     Bearer
// @Produce      json
// @Param        productId  query  string  false  "ID del producto"
// @Success      200  {array}  entity.StockLevel
// @Router       /api/stock-levels [get]
func (h *StockLevelHandler) List(c *fiber.Ctx) error {
	if productID := c.Query("productId"); productID != "" {
		level, err := h.uc.GetByProductID(c.Context(), productID)
		if err != nil {
			return respondError(c, err)
		}
		out := make([]*entity.StockLevel, 0, 1)
		if level != nil {
			out = append(out, level)
		}
		return c.JSON(out)
	}
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener nivel de stock
// @Tags         stock-levels
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del nivel"
// @Success      200  {object}  entity.StockLevel
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-levels/{id} [get]
func (h *StockLevelHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear nivel de stock
// @Tags         stock-levels
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockLevelRequest  true  "Nivel"
// @Success      201   {object}  entity.StockLevel
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock-levels [post]
func (h *StockLevelHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockLevelRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar nivel de stock
// @Tags         stock-levels
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del nivel"
// @Param        body  body  dto.UpdateStockLevelRequest  true  "Campos a actualizar"
// @Success      200   {object}  entity.StockLevel
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock-levels/{id} [put]
func (h *StockLevelHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStockLevelRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar nivel de stock
// @Tags         stock-levels
// @Security     Bearer
// @Param        id   path  string  true  "ID del nivel"
// @Success      204
// @Router       /api/stock-levels/{id} [delete]
func (h *StockLevelHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
