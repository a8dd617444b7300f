package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Acciones registradas en el ledger de un componente.
const (
	ActionInward     = "inward"
	ActionOutward    = "outward"
	ActionAdjustment = "adjustment"
	ActionCreated    = "created"
	ActionUpdated    = "updated"
	ActionDeleted    = "deleted"
)

// SupplierInfo datos del proveedor asociados a una entrada (solo inward).
// Todos los campos son opcionales; se omite el bloque completo si todos están vacíos.
type SupplierInfo struct {
	Name          string
	InvoiceNumber string
	PurchaseDate  *time.Time
	UnitCost      decimal.Decimal
}

// Empty indica si no hay ningún dato de proveedor que conservar.
func (s SupplierInfo) Empty() bool {
	return s.Name == "" && s.InvoiceNumber == "" && s.PurchaseDate == nil && s.UnitCost.IsZero()
}

// LedgerEntry es un registro inmutable de auditoría de un cambio de cantidad.
// Invariante: NewQuantity = PreviousQuantity + QuantityChanged, y la secuencia
// de entradas de un componente, replayada en orden de CreatedAt, reproduce la
// cantidad actual exactamente.
type LedgerEntry struct {
	ID               string
	ComponentID      string
	Action           string // inward, outward, adjustment, created, updated, deleted
	PreviousQuantity int64
	NewQuantity      int64
	QuantityChanged  int64 // NewQuantity - PreviousQuantity, con signo
	Reason           string
	ProjectName      string // opcional, solo outward
	Notes            string
	BatchID          string        // opcional, solo inward
	SupplierInfo     *SupplierInfo // opcional, solo inward
	ActorID          string
	CreatedAt        time.Time
}
