package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empaque-api/internal/application/dto"
	"github.com/jhoicas/Empaque-api/internal/application/packing"
)

// PackingHandler borradores de empaque: vista previa, registro y consulta de eventos.
type PackingHandler struct {
	uc *packing.UseCase
	errorHandler
}

// NewPackingHandler construye el handler.
func NewPackingHandler(uc *packing.UseCase, eh errorHandler) *PackingHandler {
	return &PackingHandler{uc: uc, errorHandler: eh}
}

// Preview godoc
// @Summary      Vista previa del plan de empaque
// @Description  Arma el plan por SKU y lo concilia contra las asignaciones a cámaras. No persiste nada.
// @Tags         packing
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PackingDraftRequest  true  "Borrador de empaque"
// @Success      200   {object}  dto.PackingPreviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/packing/preview [post]
func (h *PackingHandler) Preview(c *fiber.Ctx) error {
	var in dto.PackingDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Preview(c.UserContext(), in)
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(out)
}

// Submit godoc
// @Summary      Registrar lote de empaque
// @Description  Registra un evento por SKU si todos concilian. Descuenta materia prima y guarda las bolsas en cámaras.
// @Tags         packing
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PackingDraftRequest  true  "Borrador de empaque"
// @Success      201   {object}  dto.PackingSubmitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "stock insuficiente"
// @Failure      422   {object}  dto.PlanRejectedResponse
// @Router       /api/packing/events [post]
func (h *PackingHandler) Submit(c *fiber.Ctx) error {
	var in dto.PackingDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Submit(c.UserContext(), in)
	if err != nil {
		return h.respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar eventos de empaque
// @Tags         packing
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        limit       query  int     false  "Límite"  default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200         {object}  dto.PackingEventListResponse
// @Router       /api/packing/events [get]
func (h *PackingHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListEvents(c.UserContext(), c.Query("product_id"), pageFrom(c))
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener evento de empaque
// @Tags         packing
// @Produce      json
// @Param        id   path  string  true  "ID del evento"
// @Success      200  {object}  dto.PackingEventResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/packing/events/{id} [get]
func (h *PackingHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetEvent(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(out)
}
