package packaging

import "fmt"

// PlanValidation resultado de conciliar un SKU: bolsas producidas contra asignadas.
type PlanValidation struct {
	SKUID        string `json:"sku_id"`
	SKULabel     string `json:"sku_label"`
	BagsProduced int    `json:"bags_produced"`
	BagsAssigned int    `json:"bags_assigned"`
	IsValid      bool   `json:"is_valid"`
	Error        string `json:"error,omitempty"`
}

// Summary agrega las validaciones de un plan completo.
type Summary struct {
	Valid        bool             `json:"valid"`
	Items        []PlanValidation `json:"items"`
	TotalBags    int              `json:"total_bags"`
	TotalPackets int              `json:"total_packets"`
}

// ValidatePlan evalúa cada SKU de forma independiente (sin cortar en el primer error).
// Es válido solo si las bolsas asignadas a cámaras igualan exactamente las producidas.
func ValidatePlan(plan []PlanItem) []PlanValidation {
	out := make([]PlanValidation, 0, len(plan))
	for _, item := range plan {
		assigned := item.BagsAssigned()
		v := PlanValidation{
			SKUID:        item.SKUID,
			SKULabel:     item.SKULabel,
			BagsProduced: item.BagsProduced,
			BagsAssigned: assigned,
			IsValid:      assigned == item.BagsProduced,
		}
		switch {
		case assigned < item.BagsProduced:
			v.Error = fmt.Sprintf("%s: %d de %d bolsas asignadas a cámaras, faltan %d",
				item.SKULabel, assigned, item.BagsProduced, item.BagsProduced-assigned)
		case assigned > item.BagsProduced:
			v.Error = fmt.Sprintf("%s: %d bolsas asignadas a cámaras pero solo se produjeron %d, sobran %d",
				item.SKULabel, assigned, item.BagsProduced, assigned-item.BagsProduced)
		}
		out = append(out, v)
	}
	return out
}

// Summarize valida el plan y calcula totales. Un plan vacío no es válido.
func Summarize(plan []PlanItem) Summary {
	s := Summary{Items: ValidatePlan(plan), Valid: len(plan) > 0}
	for i, item := range plan {
		s.TotalBags += item.BagsProduced
		s.TotalPackets += item.TotalPackets
		if !s.Items[i].IsValid {
			s.Valid = false
		}
	}
	return s
}

// Errors devuelve los mensajes de los SKUs inválidos.
func (s Summary) Errors() []string {
	var msgs []string
	for _, v := range s.Items {
		if !v.IsValid {
			msgs = append(msgs, v.Error)
		}
	}
	return msgs
}
