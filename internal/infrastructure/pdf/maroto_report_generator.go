// Package pdf genera el reporte PDF de un lote de empaque.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Producto + Lote          │  Fecha                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA SKUs: SKU | Contenido | Bolsas | Paquetes | Cámaras  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA MP: Cámara | Contenedores | Tamaño | Kg              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: bolsas / paquetes / kg consumidos                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/Empaque-api/internal/application/report"
	"github.com/jhoicas/Empaque-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 70}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.PackingReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	printer *message.Printer
}

// NewMarotoReportGenerator construye el generador; los números se formatean según lang
// (separador de miles y decimales).
func NewMarotoReportGenerator(lang language.Tag) *MarotoReportGenerator {
	return &MarotoReportGenerator{printer: message.NewPrinter(lang)}
}

// GeneratePackingReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GeneratePackingReport(_ context.Context, r report.PackingReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de empaque "+r.BatchID, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionRow("PRODUCCIÓN POR SKU"))
	m.AddRows(skuHeaderRow())
	m.AddRows(g.skuRows(r)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionRow("CONSUMO DE MATERIA PRIMA"))
	m.AddRows(rmHeaderRow())
	m.AddRows(g.rmRows(r)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(r))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: producto y lote (izq), fecha (der).
func headerRow(r report.PackingReport) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(r.ProductName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Lote: "+r.BatchID, props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("REPORTE DE EMPAQUE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(r.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 8,
			}),
		),
	)
}

func sectionRow(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Color: colorWhite, Top: 2, Left: 1, Right: 1,
	}))
}

func cell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
}

func skuHeaderRow() core.Row {
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		headerCell("SKU", 2, align.Left),
		headerCell("Contenido", 2, align.Left),
		headerCell("Bolsas", 2, align.Right),
		headerCell("Paquetes", 2, align.Right),
		headerCell("Cámaras", 4, align.Left),
	)
}

// skuRows: una fila por evento del lote.
func (g *MarotoReportGenerator) skuRows(r report.PackingReport) []core.Row {
	rows := make([]core.Row, 0, len(r.Events))
	for _, ev := range r.Events {
		rows = append(rows, row.New(7).Add(
			cell(ev.SKULabel, 2, align.Left),
			cell(ev.PacketDescriptor, 2, align.Left),
			cell(g.printer.Sprintf("%d", ev.BagsProduced), 2, align.Right),
			cell(g.printer.Sprintf("%d", ev.TotalPackets), 2, align.Right),
			cell(storageText(r, ev.Storage), 4, align.Left),
		))
	}
	return rows
}

func rmHeaderRow() core.Row {
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		headerCell("Cámara", 4, align.Left),
		headerCell("Contenedores", 2, align.Right),
		headerCell("Tamaño", 3, align.Right),
		headerCell("Kg", 3, align.Right),
	)
}

func (g *MarotoReportGenerator) rmRows(r report.PackingReport) []core.Row {
	rows := make([]core.Row, 0, len(r.Consumption))
	for _, src := range r.Consumption {
		rows = append(rows, row.New(7).Add(
			cell(r.ChamberName(src.ChamberID), 4, align.Left),
			cell(g.printer.Sprintf("%d", src.ContainerCount), 2, align.Right),
			cell(src.ContainerSize.String()+" "+src.ContainerUnit, 3, align.Right),
			cell(g.kg(src.KgUsed), 3, align.Right),
		))
	}
	return rows
}

// totalsRow: bloque de totales alineado a la derecha.
func (g *MarotoReportGenerator) totalsRow(r report.PackingReport) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Bolsas:"),
			label("Paquetes:"),
			label("Kg consumidos:"),
		),
		col.New(3).Add(
			value(g.printer.Sprintf("%d", r.TotalBags)),
			value(g.printer.Sprintf("%d", r.TotalPackets)),
			value(g.kg(r.TotalKgUsed)),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func (g *MarotoReportGenerator) kg(d decimal.Decimal) string {
	return g.printer.Sprintf("%.2f", d.InexactFloat64())
}

// storageText resume la asignación: "Seca 1: 6, Fría 1: 4".
func storageText(r report.PackingReport, storage []entity.StorageAllocation) string {
	if len(storage) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(storage))
	for _, s := range storage {
		parts = append(parts, fmt.Sprintf("%s: %d", r.ChamberName(s.ChamberID), s.BagsStored))
	}
	return strings.Join(parts, ", ")
}
