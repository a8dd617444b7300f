package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/labtrack/labstock-api/internal/domain/repository"
	"github.com/labtrack/labstock-api/internal/domain/stock"
)

// ReportRow fila de un reporte de salud de inventario.
type ReportRow struct {
	PartNumber    string          `json:"part_number"`
	ComponentName string          `json:"component_name"`
	Category      string          `json:"category"`
	LocationBin   string          `json:"location_bin"`
	Quantity      int64           `json:"quantity"`
	Threshold     int64           `json:"critical_low_threshold"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	LastOutwardAt time.Time       `json:"last_outward_at"`
}

// Report reporte exportable con sus filas.
type Report struct {
	Title       string      `json:"title"`
	GeneratedAt time.Time   `json:"generated_at"`
	Rows        []ReportRow `json:"rows"`
}

// PDFGenerator puerto para renderizar un reporte como PDF.
type PDFGenerator interface {
	GenerateStockReportPDF(r *Report) ([]byte, error)
}

// ExportUseCase genera los reportes de stock bajo y estancado en CSV, JSON
// (el handler serializa las filas) y PDF.
type ExportUseCase struct {
	componentRepo repository.ComponentRepository
	pdf           PDFGenerator
	staleWindow   time.Duration
	now           func() time.Time
}

// NewExportUseCase construye el caso de uso de exportación.
func NewExportUseCase(componentRepo repository.ComponentRepository, pdf PDFGenerator, staleWindow time.Duration) *ExportUseCase {
	return &ExportUseCase{
		componentRepo: componentRepo,
		pdf:           pdf,
		staleWindow:   staleWindow,
		now:           time.Now,
	}
}

// WithClock fija el reloj del caso de uso (tests).
func (uc *ExportUseCase) WithClock(now func() time.Time) *ExportUseCase {
	uc.now = now
	return uc
}

// LowStockReport filas de componentes en o bajo su umbral crítico.
func (uc *ExportUseCase) LowStockReport(ctx context.Context) (*Report, error) {
	return uc.build("Reporte de stock bajo", uc.staleWindow, func(f stock.Flags) bool { return f.IsLowStock })
}

// StaleStockReport filas de componentes sin salidas en la ventana indicada.
// days <= 0 usa la ventana configurada.
func (uc *ExportUseCase) StaleStockReport(ctx context.Context, days int) (*Report, error) {
	window := uc.staleWindow
	if days > 0 {
		window = time.Duration(days) * 24 * time.Hour
	}
	return uc.build("Reporte de stock estancado", window, func(f stock.Flags) bool { return f.IsStale })
}

func (uc *ExportUseCase) build(title string, window time.Duration, match func(stock.Flags) bool) (*Report, error) {
	components, err := uc.componentRepo.ListActive()
	if err != nil {
		return nil, err
	}
	now := uc.now()
	rows := make([]ReportRow, 0, len(components))
	for _, c := range components {
		if !match(stock.ComputeFlags(c.Quantity, c.CriticalLowThreshold, c.LastOutwardAt, now, window)) {
			continue
		}
		rows = append(rows, ReportRow{
			PartNumber:    c.PartNumber,
			ComponentName: c.ComponentName,
			Category:      c.Category,
			LocationBin:   c.LocationBin,
			Quantity:      c.Quantity,
			Threshold:     c.CriticalLowThreshold,
			UnitPrice:     c.UnitPrice,
			LastOutwardAt: c.LastOutwardAt,
		})
	}
	return &Report{Title: title, GeneratedAt: now, Rows: rows}, nil
}

// RenderCSV serializa el reporte como CSV con cabecera.
func (uc *ExportUseCase) RenderCSV(r *Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := []string{"part_number", "component_name", "category", "location_bin", "quantity", "critical_low_threshold", "unit_price", "last_outward_at"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("csv header: %w", err)
	}
	for _, row := range r.Rows {
		record := []string{
			row.PartNumber,
			row.ComponentName,
			row.Category,
			row.LocationBin,
			fmt.Sprintf("%d", row.Quantity),
			fmt.Sprintf("%d", row.Threshold),
			row.UnitPrice.StringFixed(2),
			row.LastOutwardAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderPDF delega en el generador PDF configurado.
func (uc *ExportUseCase) RenderPDF(r *Report) ([]byte, error) {
	return uc.pdf.GenerateStockReportPDF(r)
}
