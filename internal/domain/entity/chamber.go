package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Etiquetas de cámara.
const (
	ChamberTagDry    = "dry"    // seco
	ChamberTagFrozen = "frozen" // congelado
)

// Chamber representa una cámara física de almacenamiento (seca o congelada).
// La referencian compras de materia prima y eventos de empaque, pero no le pertenecen.
type Chamber struct {
	ID        string
	Name      string
	Capacity  decimal.Decimal // capacidad nominal en kg
	Tag       string          // dry, frozen
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidChamberTag indica si tag es una etiqueta admitida.
func ValidChamberTag(tag string) bool {
	return tag == ChamberTagDry || tag == ChamberTagFrozen
}
