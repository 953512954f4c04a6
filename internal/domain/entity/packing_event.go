package entity

import "time"

// StorageAllocation bolsas de un SKU guardadas en una cámara.
type StorageAllocation struct {
	ChamberID  string `json:"chamber_id"`
	BagsStored int    `json:"bags_stored"`
}

// PackingEvent es el registro persistido de un SKU empacado. Un envío de borrador
// genera un evento por SKU, todos con el mismo BatchID.
type PackingEvent struct {
	ID               string
	BatchID          string
	ProductID        string
	ProductName      string
	SKUID            string
	SKULabel         string
	PacketDescriptor string // ej. "20 x 500 gm"
	BagsProduced     int
	PacketsPerBag    int
	TotalPackets     int
	Storage          []StorageAllocation
	RMConsumption    []RMChamberSource
	CreatedAt        time.Time
}
