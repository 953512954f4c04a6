package dto

import (
	"time"

	"github.com/jhoicas/Empaque-api/internal/domain/entity"
	"github.com/jhoicas/Empaque-api/internal/domain/packaging"
	"github.com/shopspring/decimal"
)

// RMSourceRequest aporte de materia prima de una cámara.
type RMSourceRequest struct {
	ChamberID      string          `json:"chamber_id"`
	ContainerCount int             `json:"container_count"`
	ContainerSize  decimal.Decimal `json:"container_size"`
	ContainerUnit  string          `json:"container_unit"`
}

// PackingDraftRequest body de POST /api/packing/preview y /api/packing/events.
// Packages se indexa por SKU ("500gm").
type PackingDraftRequest struct {
	ProductID     string                            `json:"product_id"`
	RMConsumption []RMSourceRequest                 `json:"rm_consumption"`
	Packages      map[string]packaging.PackageInput `json:"packages"`
}

// PackingPreviewResponse plan construido y su validación, sin persistir.
type PackingPreviewResponse struct {
	ProductID   string                   `json:"product_id"`
	ProductName string                   `json:"product_name"`
	Plan        []packaging.PlanItem     `json:"plan"`
	Validation  packaging.Summary        `json:"validation"`
	Consumption []entity.RMChamberSource `json:"rm_consumption"`
	TotalKgUsed decimal.Decimal          `json:"total_kg_used"`
}

// PackingEventResponse salida de un evento de empaque.
type PackingEventResponse struct {
	ID               string                     `json:"id"`
	BatchID          string                     `json:"batch_id"`
	ProductID        string                     `json:"product_id"`
	ProductName      string                     `json:"product_name"`
	SKUID            string                     `json:"sku_id"`
	SKULabel         string                     `json:"sku_label"`
	PacketDescriptor string                     `json:"packet_descriptor"`
	BagsProduced     int                        `json:"bags_produced"`
	PacketsPerBag    int                        `json:"packets_per_bag"`
	TotalPackets     int                        `json:"total_packets"`
	Storage          []entity.StorageAllocation `json:"storage"`
	RMConsumption    []entity.RMChamberSource   `json:"rm_consumption"`
	CreatedAt        time.Time                  `json:"created_at"`
}

// PackingSubmitResponse resultado de enviar un borrador.
type PackingSubmitResponse struct {
	BatchID string                 `json:"batch_id"`
	Events  []PackingEventResponse `json:"events"`
}

// PackingEventListResponse lista paginada de eventos.
type PackingEventListResponse struct {
	Items []PackingEventResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}

// PlanRejectedResponse cuerpo 422 cuando algún SKU no concilia.
type PlanRejectedResponse struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Details    []string          `json:"details"`
	Validation packaging.Summary `json:"validation"`
}
