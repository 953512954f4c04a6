package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empaque-api/internal/application/dto"
	"github.com/jhoicas/Empaque-api/internal/application/usecase"
)

// ChamberHandler maneja las peticiones HTTP de cámaras.
type ChamberHandler struct {
	uc *usecase.ChamberUseCase
	errorHandler
}

// NewChamberHandler construye el handler.
func NewChamberHandler(uc *usecase.ChamberUseCase, eh errorHandler) *ChamberHandler {
	return &ChamberHandler{uc: uc, errorHandler: eh}
}

// Create godoc
// @Summary      Crear cámara
// @Tags         chambers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateChamberRequest  true  "name, capacity (kg), tag (dry|frozen)"
// @Success      201   {object}  dto.ChamberResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/chambers [post]
func (h *ChamberHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateChamberRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener cámara por ID
// @Tags         chambers
// @Produce      json
// @Param        id   path  string  true  "ID de la cámara"
// @Success      200  {object}  dto.ChamberResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/chambers/{id} [get]
func (h *ChamberHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.respond(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cámara no encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cámara
// @Tags         chambers
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la cámara"
// @Param        body  body  dto.UpdateChamberRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.ChamberResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/chambers/{id} [put]
func (h *ChamberHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateChamberRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return h.respond(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cámara no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar cámaras
// @Tags         chambers
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.ChamberListResponse
// @Router       /api/chambers [get]
func (h *ChamberHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageFrom(c))
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cámara
// @Tags         chambers
// @Param        id   path  string  true  "ID de la cámara"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "la cámara tiene stock o movimientos"
// @Router       /api/chambers/{id} [delete]
func (h *ChamberHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.respond(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
