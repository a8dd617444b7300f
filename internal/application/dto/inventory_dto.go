package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/labtrack/labstock-api/internal/domain/entity"
)

// SupplierInfoDTO datos del proveedor en una entrada (todos opcionales).
type SupplierInfoDTO struct {
	Name          string          `json:"name,omitempty"`
	InvoiceNumber string          `json:"invoice_number,omitempty"`
	PurchaseDate  *time.Time      `json:"purchase_date,omitempty"`
	UnitCost      decimal.Decimal `json:"unit_cost,omitempty"`
}

// InwardRequest body para POST /api/components/:id/inward.
type InwardRequest struct {
	Quantity     int64            `json:"quantity" validate:"required,min=1"`
	Reason       string           `json:"reason" validate:"required,min=1"`
	Notes        string           `json:"notes,omitempty"`
	BatchID      string           `json:"batch_id,omitempty"`
	SupplierInfo *SupplierInfoDTO `json:"supplier_info,omitempty"`
}

// OutwardRequest body para POST /api/components/:id/outward.
type OutwardRequest struct {
	Quantity    int64  `json:"quantity" validate:"required,min=1"`
	Reason      string `json:"reason" validate:"required,min=1"`
	Notes       string `json:"notes,omitempty"`
	ProjectName string `json:"project_name,omitempty"`
}

// AdjustRequest body para POST /api/components/:id/adjust.
// Quantity es el objetivo absoluto (conteo físico), no un delta.
type AdjustRequest struct {
	Quantity int64  `json:"quantity" validate:"min=0"`
	Reason   string `json:"reason" validate:"required,min=1"`
	Notes    string `json:"notes,omitempty"`
}

// LedgerEntryResponse salida de una entrada de auditoría.
type LedgerEntryResponse struct {
	ID               string           `json:"id"`
	ComponentID      string           `json:"component_id"`
	Action           string           `json:"action"`
	PreviousQuantity int64            `json:"previous_quantity"`
	NewQuantity      int64            `json:"new_quantity"`
	QuantityChanged  int64            `json:"quantity_changed"`
	Reason           string           `json:"reason"`
	ProjectName      string           `json:"project_name,omitempty"`
	Notes            string           `json:"notes,omitempty"`
	BatchID          string           `json:"batch_id,omitempty"`
	SupplierInfo     *SupplierInfoDTO `json:"supplier_info,omitempty"`
	ActorID          string           `json:"actor_id"`
	CreatedAt        time.Time        `json:"created_at"`
}

// ToLedgerEntryResponse mapea la entidad al DTO de salida.
func ToLedgerEntryResponse(e *entity.LedgerEntry) LedgerEntryResponse {
	resp := LedgerEntryResponse{
		ID:               e.ID,
		ComponentID:      e.ComponentID,
		Action:           e.Action,
		PreviousQuantity: e.PreviousQuantity,
		NewQuantity:      e.NewQuantity,
		QuantityChanged:  e.QuantityChanged,
		Reason:           e.Reason,
		ProjectName:      e.ProjectName,
		Notes:            e.Notes,
		BatchID:          e.BatchID,
		ActorID:          e.ActorID,
		CreatedAt:        e.CreatedAt,
	}
	if e.SupplierInfo != nil {
		resp.SupplierInfo = &SupplierInfoDTO{
			Name:          e.SupplierInfo.Name,
			InvoiceNumber: e.SupplierInfo.InvoiceNumber,
			PurchaseDate:  e.SupplierInfo.PurchaseDate,
			UnitCost:      e.SupplierInfo.UnitCost,
		}
	}
	return resp
}

// OperationResponse salida de una operación de inventario: estado actualizado
// más la entrada de auditoría generada.
type OperationResponse struct {
	Component ComponentResponse   `json:"component"`
	Log       LedgerEntryResponse `json:"log"`
}

// LedgerPageResponse página del historial con cursor de continuación.
type LedgerPageResponse struct {
	Logs       []LedgerEntryResponse `json:"logs"`
	NextCursor string                `json:"next_cursor,omitempty"`
}
