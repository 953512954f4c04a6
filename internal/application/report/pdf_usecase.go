package report

import (
	"context"
	"fmt"

	"github.com/jhoicas/Empaque-api/internal/domain"
	"github.com/jhoicas/Empaque-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// PDFUseCase genera el reporte PDF de un lote de empaque.
type PDFUseCase struct {
	eventRepo   repository.PackingEventRepository
	chamberRepo repository.ChamberRepository
	generator   PackingReportGenerator
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(
	eventRepo repository.PackingEventRepository,
	chamberRepo repository.ChamberRepository,
	generator PackingReportGenerator,
) *PDFUseCase {
	return &PDFUseCase{eventRepo: eventRepo, chamberRepo: chamberRepo, generator: generator}
}

// BuildReport reúne los eventos del lote y los nombres de cámara.
// Retorna domain.ErrNotFound si el lote no tiene eventos.
func (uc *PDFUseCase) BuildReport(ctx context.Context, batchID string) (*PackingReport, error) {
	events, err := uc.eventRepo.ListByBatch(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("reporte: obtener eventos: %w", err)
	}
	if len(events) == 0 {
		return nil, domain.ErrNotFound
	}
	chambers, err := uc.chamberRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte: obtener cámaras: %w", err)
	}
	names := make(map[string]string, len(chambers))
	for _, c := range chambers {
		names[c.ID] = c.Name
	}

	first := events[0]
	r := &PackingReport{
		BatchID:      batchID,
		ProductName:  first.ProductName,
		CreatedAt:    first.CreatedAt,
		Events:       events,
		Consumption:  first.RMConsumption,
		ChamberNames: names,
		TotalKgUsed:  decimal.Zero,
	}
	for _, ev := range events {
		r.TotalBags += ev.BagsProduced
		r.TotalPackets += ev.TotalPackets
	}
	for _, src := range r.Consumption {
		r.TotalKgUsed = r.TotalKgUsed.Add(src.KgUsed)
	}
	return r, nil
}

// DownloadBatchPDF genera el PDF del lote y el nombre de archivo sugerido.
func (uc *PDFUseCase) DownloadBatchPDF(ctx context.Context, batchID string) ([]byte, string, error) {
	r, err := uc.BuildReport(ctx, batchID)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.generator.GeneratePackingReport(ctx, *r)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar PDF: %w", err)
	}
	return pdf, fmt.Sprintf("empaque-%s.pdf", batchID), nil
}
