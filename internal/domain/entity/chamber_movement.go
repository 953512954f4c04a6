package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de cámara.
const (
	MovementTypeRMIn   = "RM_IN"   // compra de materia prima (kg)
	MovementTypeRMOut  = "RM_OUT"  // consumo de materia prima en producción (kg)
	MovementTypePackIn = "PACK_IN" // bolsas empacadas guardadas en la cámara
)

// ChamberMovement registra una entrada o salida de stock en una cámara.
type ChamberMovement struct {
	ID            string
	TransactionID string // compra o lote de empaque que originó el movimiento
	ChamberID     string
	Item          string
	Type          string
	Quantity      decimal.Decimal // positivo entrada, negativo salida
	Reference     string
	CreatedAt     time.Time
}
