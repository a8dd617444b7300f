package reports_test

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labtrack/labstock-api/internal/application/reports"
	"github.com/labtrack/labstock-api/internal/domain/entity"
	"github.com/labtrack/labstock-api/internal/domain/repository"
)

var testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type stubComponentRepo struct {
	components []*entity.Component
}

func (r *stubComponentRepo) ListActive() ([]*entity.Component, error) { return r.components, nil }

func (r *stubComponentRepo) Create(*entity.Component) error            { panic("no usado") }
func (r *stubComponentRepo) GetByID(string) (*entity.Component, error) { panic("no usado") }
func (r *stubComponentRepo) GetForUpdate(string) (*entity.Component, error) {
	panic("no usado")
}
func (r *stubComponentRepo) UpdateStock(*entity.Component) error   { panic("no usado") }
func (r *stubComponentRepo) UpdateDetails(*entity.Component) error { panic("no usado") }
func (r *stubComponentRepo) UpdateFlags(string, bool, bool) error  { panic("no usado") }
func (r *stubComponentRepo) SoftDelete(string) error               { panic("no usado") }
func (r *stubComponentRepo) List(repository.ComponentFilters) ([]*entity.Component, int, error) {
	panic("no usado")
}
func (r *stubComponentRepo) Categories() ([]string, error) { panic("no usado") }
func (r *stubComponentRepo) Locations() ([]string, error)  { panic("no usado") }

type stubPDF struct{ got *reports.Report }

func (p *stubPDF) GenerateStockReportPDF(r *reports.Report) ([]byte, error) {
	p.got = r
	return []byte("%PDF-1.7 stub"), nil
}

func inventory() []*entity.Component {
	return []*entity.Component{
		{
			ID: "1", ComponentName: "Resistencia 10k", PartNumber: "RES-10K",
			Category: "Resistencias", LocationBin: "A1",
			Quantity: 3, CriticalLowThreshold: 5,
			UnitPrice:     decimal.RequireFromString("0.05"),
			LastOutwardAt: testTime.Add(-24 * time.Hour),
		},
		{
			ID: "2", ComponentName: "ATmega328P", PartNumber: "MCU-328P",
			Category: "Microcontroladores", LocationBin: "B2",
			Quantity: 40, CriticalLowThreshold: 5,
			UnitPrice:     decimal.RequireFromString("2.80"),
			LastOutwardAt: testTime.Add(-120 * 24 * time.Hour),
		},
		{
			ID: "3", ComponentName: "LED azul", PartNumber: "LED-AZ",
			Category: "Optoelectrónica", LocationBin: "C3",
			Quantity: 100, CriticalLowThreshold: 10,
			UnitPrice:     decimal.RequireFromString("0.12"),
			LastOutwardAt: testTime.Add(-time.Hour),
		},
	}
}

func newExportUC(pdf reports.PDFGenerator) *reports.ExportUseCase {
	return reports.NewExportUseCase(&stubComponentRepo{components: inventory()}, pdf, 90*24*time.Hour).
		WithClock(func() time.Time { return testTime })
}

func TestLowStockReport_FiltraPorUmbral(t *testing.T) {
	uc := newExportUC(nil)
	report, err := uc.LowStockReport(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Rows, 1, "solo la resistencia está en o bajo su umbral")
	assert.Equal(t, "RES-10K", report.Rows[0].PartNumber)
	assert.Equal(t, testTime, report.GeneratedAt)
}

func TestStaleStockReport_VentanaConfiguradaYOverride(t *testing.T) {
	uc := newExportUC(nil)

	// Ventana configurada (90 días): solo el micro lleva 120 días sin salidas.
	report, err := uc.StaleStockReport(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, "MCU-328P", report.Rows[0].PartNumber)

	// Override agresivo de 1 día: la resistencia (24h sin salidas) también entra.
	report, err = uc.StaleStockReport(context.Background(), 1)
	require.NoError(t, err)
	parts := []string{}
	for _, r := range report.Rows {
		parts = append(parts, r.PartNumber)
	}
	assert.ElementsMatch(t, []string{"RES-10K", "MCU-328P"}, parts)
}

func TestRenderCSV(t *testing.T) {
	uc := newExportUC(nil)
	report, err := uc.LowStockReport(context.Background())
	require.NoError(t, err)

	data, err := uc.RenderCSV(report)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2, "cabecera + una fila")

	assert.Equal(t, []string{
		"part_number", "component_name", "category", "location_bin",
		"quantity", "critical_low_threshold", "unit_price", "last_outward_at",
	}, records[0])
	assert.Equal(t, "RES-10K", records[1][0])
	assert.Equal(t, "3", records[1][4])
	assert.Equal(t, "0.05", records[1][6])
}

func TestRenderPDF_DelegaEnElGenerador(t *testing.T) {
	pdf := &stubPDF{}
	uc := newExportUC(pdf)
	report, err := uc.LowStockReport(context.Background())
	require.NoError(t, err)

	data, err := uc.RenderPDF(report)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Same(t, report, pdf.got)
}
