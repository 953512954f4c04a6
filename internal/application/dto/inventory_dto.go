package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterPurchaseRequest body para POST /api/inventory/purchases.
type RegisterPurchaseRequest struct {
	Vendor         string          `json:"vendor"`
	Item           string          `json:"item"`
	ChamberID      string          `json:"chamber_id"`
	ContainerCount int             `json:"container_count"`
	ContainerSize  decimal.Decimal `json:"container_size"`
	ContainerUnit  string          `json:"container_unit"` // gm, kg
}

// PurchaseResponse salida de una compra registrada.
type PurchaseResponse struct {
	ID        string          `json:"id"`
	ChamberID string          `json:"chamber_id"`
	Item      string          `json:"item"`
	Kilograms decimal.Decimal `json:"kilograms"`
	StockKg   decimal.Decimal `json:"stock_kg"` // stock del ítem en la cámara tras la compra
	CreatedAt time.Time       `json:"created_at"`
}

// ChamberStockDTO stock de un ítem en una cámara.
type ChamberStockDTO struct {
	Item      string          `json:"item"`
	Quantity  decimal.Decimal `json:"quantity"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ChamberStockResponse stock completo de una cámara.
type ChamberStockResponse struct {
	ChamberID string            `json:"chamber_id"`
	Items     []ChamberStockDTO `json:"items"`
}

// MaxPacketsResponse estimación de paquetes máximos a partir del stock guardado.
type MaxPacketsResponse struct {
	ChamberID   string          `json:"chamber_id"`
	Item        string          `json:"item"`
	StoredKg    decimal.Decimal `json:"stored_kg"`
	PackageType string          `json:"package_type"`
	Size        decimal.Decimal `json:"size"`
	Unit        string          `json:"unit"`
	TareGrams   decimal.Decimal `json:"tare_grams"`
	MaxPackets  int64           `json:"max_packets"`
}

// ChamberMovementDTO movimiento de stock de una cámara.
type ChamberMovementDTO struct {
	ID            string          `json:"id"`
	TransactionID string          `json:"transaction_id"`
	Item          string          `json:"item"`
	Type          string          `json:"type"` // RM_IN, RM_OUT, PACK_IN
	Quantity      decimal.Decimal `json:"quantity"`
	Reference     string          `json:"reference"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ChamberMovementListResponse movimientos paginados de una cámara.
type ChamberMovementListResponse struct {
	ChamberID string               `json:"chamber_id"`
	Items     []ChamberMovementDTO `json:"items"`
	Page      PageResponse         `json:"page"`
}
