package packaging

import (
	"fmt"
	"sort"

	"github.com/jhoicas/Empaque-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// PackageInput datos capturados por SKU: bolsas producidas, paquetes por bolsa y
// bolsas asignadas a cada cámara (chamberID -> bolsas).
type PackageInput struct {
	BagCount      int            `json:"bag_count"`
	PacketsPerBag int            `json:"packets_per_bag"`
	Chambers      map[string]int `json:"chambers"`
}

// PlanItem salida de un SKU dentro del plan de empaque.
type PlanItem struct {
	SKUID         string                     `json:"sku_id"`
	SKULabel      string                     `json:"sku_label"`
	Size          decimal.Decimal            `json:"size"`
	Unit          string                     `json:"unit"`
	BagsProduced  int                        `json:"bags_produced"`
	PacketsPerBag int                        `json:"packets_per_bag"`
	TotalPackets  int                        `json:"total_packets"`
	Storage       []entity.StorageAllocation `json:"storage"`
}

// BagsAssigned suma las bolsas guardadas en todas las cámaras.
func (p PlanItem) BagsAssigned() int {
	total := 0
	for _, s := range p.Storage {
		total += s.BagsStored
	}
	return total
}

// PacketDescriptor describe el contenido de una bolsa, ej. "20 x 500 gm".
func (p PlanItem) PacketDescriptor() string {
	return fmt.Sprintf("%d x %s", p.PacketsPerBag, p.SKULabel)
}

// SKUID identificador de un SKU: tamaño y unidad sin separador ("500gm").
func SKUID(size decimal.Decimal, unit string) string {
	return size.String() + unit
}

// SKULabel etiqueta legible de un SKU ("500 gm").
func SKULabel(size decimal.Decimal, unit string) string {
	return size.String() + " " + unit
}

// BuildPlan combina las presentaciones disponibles con lo capturado por SKU. Solo se
// emiten los SKUs con bolsas y paquetes por bolsa positivos; el resto se omite sin
// reportarse. El orden sigue al de sizes y el almacenamiento se ordena por cámara.
func BuildPlan(sizes []entity.PackageSize, inputs map[string]PackageInput) []PlanItem {
	plan := make([]PlanItem, 0, len(sizes))
	for _, ps := range sizes {
		id := SKUID(ps.Size, ps.Unit)
		in, ok := inputs[id]
		if !ok || in.BagCount <= 0 || in.PacketsPerBag <= 0 {
			continue
		}
		plan = append(plan, PlanItem{
			SKUID:         id,
			SKULabel:      SKULabel(ps.Size, ps.Unit),
			Size:          ps.Size,
			Unit:          ps.Unit,
			BagsProduced:  in.BagCount,
			PacketsPerBag: in.PacketsPerBag,
			TotalPackets:  in.BagCount * in.PacketsPerBag,
			Storage:       storageFrom(in.Chambers),
		})
	}
	return plan
}

func storageFrom(chambers map[string]int) []entity.StorageAllocation {
	storage := make([]entity.StorageAllocation, 0, len(chambers))
	for chamberID, bags := range chambers {
		if bags <= 0 {
			continue
		}
		storage = append(storage, entity.StorageAllocation{ChamberID: chamberID, BagsStored: bags})
	}
	sort.Slice(storage, func(i, j int) bool { return storage[i].ChamberID < storage[j].ChamberID })
	return storage
}
