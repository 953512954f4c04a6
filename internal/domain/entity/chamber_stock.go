package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChamberStock es el stock actual de un ítem en una cámara (tabla materializada).
// Para materia prima Quantity está en kg; para producto empacado, en bolsas.
type ChamberStock struct {
	ChamberID string
	Item      string
	Quantity  decimal.Decimal
	UpdatedAt time.Time
}
