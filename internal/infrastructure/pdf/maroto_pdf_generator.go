// Package pdf implementa la generación del reporte de inventario en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Company + código     │  REPORTE DE INVENTARIO      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Ítems | Unidades | Stock bajo | Agotados          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Ítem | Código de barras | Cant. | Umbral | Estado   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: generado el <fecha UTC>                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

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

	"github.com/stocktrackhq/stocktrack-api/internal/application/reports"
	"github.com/stocktrackhq/stocktrack-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 105, Blue: 92}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAmber   = &props.Color{Red: 230, Green: 126, Blue: 34}
	colorRed     = &props.Color{Red: 192, Green: 57, Blue: 43}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// Ensure MarotoPDFGenerator implements the reports port.
var _ reports.InventoryPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa reports.InventoryPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInventoryPDF genera el PDF del inventario y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInventoryPDF(
	_ context.Context,
	company *entity.Company,
	items []*entity.Item,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	// Header principal
	m.AddRows(headerRow(company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(company, items))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de ítems
	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(company, items) {
		m.AddRows(r)
	}
	if len(items) == 0 {
		m.AddRows(emptyRow())
	}

	// Footer
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre + código de la company (izq) y título + fecha (der).
func headerRow(company *entity.Company) core.Row {
	fecha := time.Now().UTC().Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Código: "+company.Code, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// summaryRow: totales del inventario con las mismas reglas excluyentes del
// estado derivado (un ítem en cero no cuenta como stock bajo).
func summaryRow(company *entity.Company, items []*entity.Item) core.Row {
	var units, low, out int
	for _, it := range items {
		units += it.Quantity
		switch it.Status(company.DefaultLowStockThreshold) {
		case entity.ItemStatusLowStock:
			low++
		case entity.ItemStatusOutOfStock:
			out++
		}
	}
	cell := func(label, value string, c *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Color: c, Top: 5}),
		)
	}
	return row.New(12).Add(
		cell("Ítems", strconv.Itoa(len(items)), colorPrimary),
		cell("Unidades", strconv.Itoa(units), colorPrimary),
		cell("Stock bajo", strconv.Itoa(low), colorAmber),
		cell("Agotados", strconv.Itoa(out), colorRed),
	)
}

// tableHeaderRow: cabecera de la tabla de ítems.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Ítem", 5, align.Left),
		h("Código de barras", 3, align.Left),
		h("Cant.", 1, align.Right),
		h("Umbral", 1, align.Right),
		h("Estado", 2, align.Right),
	)
}

// tableItemRows: una fila por ítem, con el estado coloreado.
func tableItemRows(company *entity.Company, items []*entity.Item) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		status := it.Status(company.DefaultLowStockThreshold)
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(
				it.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				barcodeOrDash(it.Barcode),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1, Color: colorGray},
			)),
			col.New(1).Add(text.New(
				strconv.Itoa(it.Quantity),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				thresholdOrDash(it.EffectiveThreshold(company.DefaultLowStockThreshold)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: colorGray},
			)),
			col.New(2).Add(text.New(
				statusLabel(status),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: statusColor(status)},
			)),
		))
	}
	return result
}

// emptyRow: placeholder cuando la company no tiene ítems.
func emptyRow() core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("Sin ítems registrados", props.Text{
			Size: 9, Align: align.Center, Color: colorGray, Top: 3,
		}),
	))
}

// footerRow: sello de generación.
func footerRow() core.Row {
	ts := time.Now().UTC().Format("2006-01-02 15:04 UTC")
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Reporte generado por StockTrack el "+ts+". Las cantidades reflejan el inventario al momento de la generación.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func barcodeOrDash(b *string) string {
	if b == nil || *b == "" {
		return "—"
	}
	return *b
}

func thresholdOrDash(t *int) string {
	if t == nil {
		return "—"
	}
	return strconv.Itoa(*t)
}

func statusLabel(status string) string {
	switch status {
	case entity.ItemStatusLowStock:
		return "Stock bajo"
	case entity.ItemStatusOutOfStock:
		return "Agotado"
	default:
		return "En stock"
	}
}

func statusColor(status string) *props.Color {
	switch status {
	case entity.ItemStatusLowStock:
		return colorAmber
	case entity.ItemStatusOutOfStock:
		return colorRed
	default:
		return colorPrimary
	}
}
