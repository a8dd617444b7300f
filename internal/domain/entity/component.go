package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Component representa un componente del inventario de laboratorio.
// Quantity es un caché del fold sobre el ledger: el historial es la fuente
// de verdad y Quantity debe reproducirse replayando las entradas en orden.
// LastOutwardAt solo avanza en el tiempo y solo en salidas exitosas.
type Component struct {
	ID                   string
	ComponentName        string
	PartNumber           string
	ManufacturerSupplier string
	Category             string
	LocationBin          string
	Quantity             int64 // siempre >= 0
	CriticalLowThreshold int64 // >= 0
	UnitPrice            decimal.Decimal
	DatasheetLink        string
	ImageURL             string
	LastOutwardAt        time.Time // default: fecha de creación
	// Flags derivados, cacheados junto al componente tras cada mutación.
	// Recalculables bajo demanda con stock.ComputeFlags; el caché existe para
	// que el barrido periódico detecte transiciones sin releer el historial.
	IsLowStock           bool
	IsStale              bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
	DeletedAt            *time.Time // soft delete: el historial nunca se borra
}
