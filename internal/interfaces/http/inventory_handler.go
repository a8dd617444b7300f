package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/labtrack/labstock-api/internal/application/dto"
	"github.com/labtrack/labstock-api/internal/application/ledger"
	"github.com/labtrack/labstock-api/internal/domain"
	"github.com/labtrack/labstock-api/internal/domain/entity"
	"github.com/labtrack/labstock-api/internal/domain/stock"
)

// InventoryHandler maneja las operaciones del ledger sobre un componente
// (protegido y con control de rol por operación).
type InventoryHandler struct {
	engine *ledger.Engine
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(engine *ledger.Engine) *InventoryHandler {
	return &InventoryHandler{engine: engine}
}

// Inward godoc
// @Summary      Entrada de stock
// @Description  Suma quantity a la cantidad actual y escribe la entrada de
//
//	auditoría en la misma transacción.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "Component ID"
// @Param        body  body  dto.InwardRequest  true  "quantity, reason, batch_id, supplier_info"
// @Success      200   {object}  dto.OperationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/components/{id}/inward [post]
func (h *InventoryHandler) Inward(c *fiber.Ctx) error {
	var in dto.InwardRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	op := ledger.OperationInput{
		Quantity: in.Quantity,
		Reason:   in.Reason,
		Notes:    in.Notes,
		BatchID:  in.BatchID,
		ActorID:  GetUserID(c),
	}
	if in.SupplierInfo != nil {
		op.Supplier = &entity.SupplierInfo{
			Name:          in.SupplierInfo.Name,
			InvoiceNumber: in.SupplierInfo.InvoiceNumber,
			PurchaseDate:  in.SupplierInfo.PurchaseDate,
			UnitCost:      in.SupplierInfo.UnitCost,
		}
	}
	return h.apply(c, ledger.KindInward, op)
}

// Outward godoc
// @Summary      Salida de stock
// @Description  Resta quantity de la cantidad actual. Si quantity supera el
//
//	stock disponible la operación se rechaza sin mutar nada y la
//	respuesta incluye la cantidad disponible.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "Component ID"
// @Param        body  body  dto.OutwardRequest  true  "quantity, reason, project_name"
// @Success      200   {object}  dto.OperationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/components/{id}/outward [post]
func (h *InventoryHandler) Outward(c *fiber.Ctx) error {
	var in dto.OutwardRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	op := ledger.OperationInput{
		Quantity:    in.Quantity,
		Reason:      in.Reason,
		Notes:       in.Notes,
		ProjectName: in.ProjectName,
		ActorID:     GetUserID(c),
	}
	return h.apply(c, ledger.KindOutward, op)
}

// Adjust godoc
// @Summary      Ajuste de stock
// @Description  Fija la cantidad a un valor absoluto (>= 0); el historial
//
//	registra el delta firmado contra la cantidad previa.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "Component ID"
// @Param        body  body  dto.AdjustRequest  true  "quantity (absoluta), reason"
// @Success      200   {object}  dto.OperationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/components/{id}/adjust [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	op := ledger.OperationInput{
		Quantity: in.Quantity,
		Reason:   in.Reason,
		Notes:    in.Notes,
		ActorID:  GetUserID(c),
	}
	return h.apply(c, ledger.KindAdjust, op)
}

// apply ejecuta la operación y traduce la taxonomía de errores del dominio a
// códigos HTTP. InsufficientStock y los conflictos de concurrencia agotados
// van como 409: el primero con la cantidad disponible, el segundo pidiendo
// reintento.
func (h *InventoryHandler) apply(c *fiber.Ctx, kind string, op ledger.OperationInput) error {
	comp, entry, err := h.engine.ApplyOperation(c.Context(), c.Params("id"), kind, op)
	if err != nil {
		if ise, ok := domain.AsInsufficientStock(err); ok {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code:    "INSUFFICIENT_STOCK",
				Message: fmt.Sprintf("stock insuficiente: solicitado %d, disponible %d", ise.Requested, ise.Available),
			})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "componente no encontrado"})
		}
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "modificación concurrente, intente de nuevo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	flags := stock.Flags{IsLowStock: comp.IsLowStock, IsStale: comp.IsStale}
	return c.JSON(dto.OperationResponse{
		Component: dto.ToComponentResponse(comp, flags),
		Log:       dto.ToLedgerEntryResponse(entry),
	})
}
