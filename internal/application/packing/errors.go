package packing

import (
	"strings"

	"github.com/jhoicas/Empaque-api/internal/domain"
	"github.com/jhoicas/Empaque-api/internal/domain/packaging"
)

// PlanRejectedError se devuelve cuando algún SKU no concilia bolsas producidas con
// bolsas asignadas. Lleva la validación completa para que el caller la muestre.
type PlanRejectedError struct {
	Summary packaging.Summary
}

func (e *PlanRejectedError) Error() string {
	return domain.ErrPlanInvalid.Error() + ": " + strings.Join(e.Summary.Errors(), "; ")
}

// Unwrap permite errors.Is(err, domain.ErrPlanInvalid).
func (e *PlanRejectedError) Unwrap() error { return domain.ErrPlanInvalid }
