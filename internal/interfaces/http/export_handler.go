package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/labtrack/labstock-api/internal/application/dto"
	"github.com/labtrack/labstock-api/internal/application/reports"
)

// ExportHandler exporta reportes de salud del inventario en CSV, JSON o PDF.
type ExportHandler struct {
	uc *reports.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *reports.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// LowStock godoc
// @Summary      Exportar reporte de stock bajo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        format  query  string  false  "csv | json | pdf (default json)"
// @Success      200  {object}  reports.Report
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/low-stock [get]
func (h *ExportHandler) LowStock(c *fiber.Ctx) error {
	report, err := h.uc.LowStockReport(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return h.render(c, report, "stock_bajo")
}

// Stale godoc
// @Summary      Exportar reporte de stock estancado
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        days    query  int     false  "Ventana de inactividad en días (default: la configurada)"
// @Param        format  query  string  false  "csv | json | pdf (default json)"
// @Success      200  {object}  reports.Report
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/stale [get]
func (h *ExportHandler) Stale(c *fiber.Ctx) error {
	report, err := h.uc.StaleStockReport(c.Context(), c.QueryInt("days"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return h.render(c, report, "stock_estancado")
}

func (h *ExportHandler) render(c *fiber.Ctx, report *reports.Report, filename string) error {
	switch c.Query("format", "json") {
	case "json":
		return c.JSON(report)
	case "csv":
		data, err := h.uc.RenderCSV(report)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s.csv", filename))
		return c.Send(data)
	case "pdf":
		data, err := h.uc.RenderPDF(report)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s.pdf", filename))
		return c.Send(data)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "format debe ser csv, json o pdf"})
	}
}
