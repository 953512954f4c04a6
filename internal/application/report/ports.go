package report

import (
	"context"
	"time"

	"github.com/jhoicas/Empaque-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// PackingReport datos listos para renderizar el reporte de un lote de empaque.
type PackingReport struct {
	BatchID      string
	ProductName  string
	CreatedAt    time.Time
	Events       []*entity.PackingEvent
	Consumption  []entity.RMChamberSource
	ChamberNames map[string]string // chamberID -> nombre; faltantes se muestran por ID
	TotalBags    int
	TotalPackets int
	TotalKgUsed  decimal.Decimal
}

// ChamberName nombre de la cámara o su ID si no está en el roster.
func (r PackingReport) ChamberName(id string) string {
	if name, ok := r.ChamberNames[id]; ok && name != "" {
		return name
	}
	return id
}

// PackingReportGenerator genera el PDF de un lote. Lo implementa infrastructure/pdf.
type PackingReportGenerator interface {
	GeneratePackingReport(ctx context.Context, r PackingReport) ([]byte, error)
}
