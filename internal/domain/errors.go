package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")

	// Errores del flujo de empaque.
	ErrUnknownUnit       = errors.New("unidad desconocida")
	ErrUnknownPackage    = errors.New("tipo de empaque desconocido")
	ErrChamberNotFound   = errors.New("cámara no encontrada")
	ErrDraftIncomplete   = errors.New("borrador de empaque incompleto")
	ErrPlanInvalid       = errors.New("plan de empaque inválido")
	ErrInvalidChamberTag = errors.New("etiqueta de cámara inválida")
)
