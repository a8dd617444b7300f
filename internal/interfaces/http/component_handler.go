package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/labtrack/labstock-api/internal/application/dto"
	"github.com/labtrack/labstock-api/internal/application/ledger"
	"github.com/labtrack/labstock-api/internal/domain"
	"github.com/labtrack/labstock-api/internal/domain/entity"
	"github.com/labtrack/labstock-api/internal/domain/repository"
	"github.com/labtrack/labstock-api/internal/domain/stock"
)

// ComponentHandler maneja el catálogo de componentes (protegido).
type ComponentHandler struct {
	uc *ledger.ComponentUseCase
}

// NewComponentHandler construye el handler.
func NewComponentHandler(uc *ledger.ComponentUseCase) *ComponentHandler {
	return &ComponentHandler{uc: uc}
}

// Create godoc
// @Summary      Crear componente
// @Tags         components
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateComponentRequest  true  "component_name, part_number, quantity, critical_low_threshold, ..."
// @Success      201   {object}  dto.ComponentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/components [post]
func (h *ComponentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateComponentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ComponentName == "" || in.PartNumber == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "component_name y part_number son requeridos"})
	}
	if in.Quantity < 0 || in.CriticalLowThreshold < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity y critical_low_threshold deben ser >= 0"})
	}
	comp := &entity.Component{
		ComponentName:        in.ComponentName,
		PartNumber:           in.PartNumber,
		ManufacturerSupplier: in.ManufacturerSupplier,
		Category:             in.Category,
		LocationBin:          in.LocationBin,
		Quantity:             in.Quantity,
		CriticalLowThreshold: in.CriticalLowThreshold,
		UnitPrice:            in.UnitPrice,
		DatasheetLink:        in.DatasheetLink,
		ImageURL:             in.ImageURL,
	}
	created, err := h.uc.Create(c.Context(), comp, GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un componente con ese part_number"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	flags := stock.Flags{IsLowStock: created.IsLowStock, IsStale: created.IsStale}
	return c.Status(fiber.StatusCreated).JSON(dto.ToComponentResponse(created, flags))
}

// List godoc
// @Summary      Listar componentes
// @Tags         components
// @Security     Bearer
// @Produce      json
// @Param        search    query  string  false  "Nombre o part number (ILIKE)"
// @Param        category  query  string  false  "Filtrar por categoría"
// @Param        location  query  string  false  "Filtrar por ubicación"
// @Param        limit     query  int     false  "Tamaño de página (default 20)"
// @Param        offset    query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.ComponentListResponse
// @Router       /api/components [get]
func (h *ComponentHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit"), Offset: c.QueryInt("offset")}
	page.DefaultPage()
	filters := repository.ComponentFilters{
		Search:      c.Query("search"),
		Category:    c.Query("category"),
		LocationBin: c.Query("location"),
		Limit:       page.Limit,
		Offset:      page.Offset,
	}
	components, total, err := h.uc.List(c.Context(), filters)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toComponentListResponse(components, page, total))
}

// GetByID godoc
// @Summary      Obtener componente por ID
// @Tags         components
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Component ID"
// @Success      200  {object}  dto.ComponentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/components/{id} [get]
func (h *ComponentHandler) GetByID(c *fiber.Ctx) error {
	comp, flags, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "componente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ToComponentResponse(comp, flags))
}

// GetLogs godoc
// @Summary      Historial de auditoría del componente
// @Description  Entradas del ledger en orden cronológico inverso, paginadas
//
//	por cursor opaco. Incluye el tombstone si el componente fue borrado.
//
// @Tags         components
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "Component ID"
// @Param        action  query  string  false  "Filtrar por acción (inward, outward, adjustment, ...)"
// @Param        from    query  string  false  "Desde (RFC3339)"
// @Param        to      query  string  false  "Hasta (RFC3339)"
// @Param        limit   query  int     false  "Tamaño de página (default 20)"
// @Param        cursor  query  string  false  "Cursor de la página anterior"
// @Success      200  {object}  dto.LedgerPageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/components/{id}/logs [get]
func (h *ComponentHandler) GetLogs(c *fiber.Ctx) error {
	filters := repository.LedgerFilters{
		Action: c.Query("action"),
		Limit:  c.QueryInt("limit"),
		Cursor: c.Query("cursor"),
	}
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from debe ser RFC3339"})
		}
		filters.From = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to debe ser RFC3339"})
		}
		filters.To = &t
	}
	_, _, page, err := h.uc.GetWithHistory(c.Context(), c.Params("id"), filters)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "componente no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cursor inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := dto.LedgerPageResponse{
		Logs:       make([]dto.LedgerEntryResponse, 0, len(page.Entries)),
		NextCursor: page.NextCursor,
	}
	for _, e := range page.Entries {
		out.Logs = append(out.Logs, dto.ToLedgerEntryResponse(e))
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar metadatos del componente
// @Description  No modifica la cantidad: eso solo lo hace el motor de ledger
//
//	vía inward/outward/adjust.
//
// @Tags         components
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "Component ID"
// @Param        body  body  dto.UpdateComponentRequest  true  "metadatos"
// @Success      200   {object}  dto.ComponentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/components/{id} [put]
func (h *ComponentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateComponentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ComponentName == "" || in.PartNumber == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "component_name y part_number son requeridos"})
	}
	if in.CriticalLowThreshold < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "critical_low_threshold debe ser >= 0"})
	}
	comp := &entity.Component{
		ID:                   c.Params("id"),
		ComponentName:        in.ComponentName,
		PartNumber:           in.PartNumber,
		ManufacturerSupplier: in.ManufacturerSupplier,
		Category:             in.Category,
		LocationBin:          in.LocationBin,
		CriticalLowThreshold: in.CriticalLowThreshold,
		UnitPrice:            in.UnitPrice,
		DatasheetLink:        in.DatasheetLink,
		ImageURL:             in.ImageURL,
	}
	updated, err := h.uc.UpdateDetails(c.Context(), comp, GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "componente no encontrado"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un componente con ese part_number"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	flags := stock.Flags{IsLowStock: updated.IsLowStock, IsStale: updated.IsStale}
	return c.JSON(dto.ToComponentResponse(updated, flags))
}

// Delete godoc
// @Summary      Borrar componente (soft delete)
// @Description  Marca el componente como borrado y escribe el tombstone en el
//
//	historial; las entradas previas del ledger permanecen.
//
// @Tags         components
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Component ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/components/{id} [delete]
func (h *ComponentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id"), GetUserID(c)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "componente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "componente borrado"})
}

// ListLowStock godoc
// @Summary      Componentes en o bajo su umbral crítico
// @Tags         components
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ComponentListResponse
// @Router       /api/components/low-stock [get]
func (h *ComponentHandler) ListLowStock(c *fiber.Ctx) error {
	components, err := h.uc.ListLowStock(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	page := dto.PageRequest{Limit: len(components)}
	return c.JSON(toComponentListResponse(components, page, len(components)))
}

// ListStale godoc
// @Summary      Componentes sin salidas en la ventana de inactividad
// @Tags         components
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ComponentListResponse
// @Router       /api/components/stale [get]
func (h *ComponentHandler) ListStale(c *fiber.Ctx) error {
	components, err := h.uc.ListStale(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	page := dto.PageRequest{Limit: len(components)}
	return c.JSON(toComponentListResponse(components, page, len(components)))
}

// Categories godoc
// @Summary      Categorías distintas en uso
// @Tags         components
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string][]string
// @Router       /api/components/categories [get]
func (h *ComponentHandler) Categories(c *fiber.Ctx) error {
	categories, err := h.uc.Categories(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"categories": categories})
}

// Locations godoc
// @Summary      Ubicaciones distintas en uso
// @Tags         components
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string][]string
// @Router       /api/components/locations [get]
func (h *ComponentHandler) Locations(c *fiber.Ctx) error {
	locations, err := h.uc.Locations(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"locations": locations})
}

func toComponentListResponse(components []*entity.Component, page dto.PageRequest, total int) dto.ComponentListResponse {
	out := dto.ComponentListResponse{
		Components: make([]dto.ComponentResponse, 0, len(components)),
		Page:       dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	for _, comp := range components {
		flags := stock.Flags{IsLowStock: comp.IsLowStock, IsStale: comp.IsStale}
		out.Components = append(out.Components, dto.ToComponentResponse(comp, flags))
	}
	return out
}
