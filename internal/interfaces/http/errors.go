package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empaque-api/internal/application/dto"
	"github.com/jhoicas/Empaque-api/internal/application/packing"
	"github.com/jhoicas/Empaque-api/internal/domain"
	"github.com/jhoicas/Empaque-api/pkg/logger"
)

// errorMapping sentinel de dominio -> status y código HTTP. El orden importa: se usa el primero
// que coincide con errors.Is.
var errorMapping = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrUnknownUnit, fiber.StatusBadRequest, "UNKNOWN_UNIT"},
	{domain.ErrUnknownPackage, fiber.StatusBadRequest, "UNKNOWN_PACKAGE_TYPE"},
	{domain.ErrInvalidChamberTag, fiber.StatusBadRequest, "INVALID_CHAMBER_TAG"},
	{domain.ErrDraftIncomplete, fiber.StatusBadRequest, "DRAFT_INCOMPLETE"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrChamberNotFound, fiber.StatusNotFound, "CHAMBER_NOT_FOUND"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrInsufficientStock, fiber.StatusConflict, "INSUFFICIENT_STOCK"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
}

// errorHandler traduce errores de casos de uso a respuestas JSON.
type errorHandler struct {
	log *logger.Logger
}

func (h errorHandler) respond(c *fiber.Ctx, err error) error {
	var rejected *packing.PlanRejectedError
	if errors.As(err, &rejected) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.PlanRejectedResponse{
			Code:       "PLAN_INVALID",
			Message:    domain.ErrPlanInvalid.Error(),
			Details:    rejected.Summary.Errors(),
			Validation: rejected.Summary,
		})
	}
	for _, m := range errorMapping {
		if errors.Is(err, m.err) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: err.Error()})
		}
	}
	h.log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

func pageFrom(c *fiber.Ctx) dto.PageRequest {
	p := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	p.Normalize()
	return p
}
