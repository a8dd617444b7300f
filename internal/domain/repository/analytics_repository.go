package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// InventoryTotals agregados globales del inventario activo.
type InventoryTotals struct {
	TotalComponents int64
	TotalUnits      int64
	InventoryValue  decimal.Decimal // sum(quantity * unit_price)
}

// MovementTotals volúmenes de entradas y salidas en una ventana de tiempo.
type MovementTotals struct {
	InwardUnits  int64
	OutwardUnits int64
	InwardCount  int64
	OutwardCount int64
}

// ComponentActivity volumen de movimientos de un componente (para rankings).
type ComponentActivity struct {
	ComponentID   string
	ComponentName string
	Movements     int64
	UnitsMoved    int64
}

// AnalyticsRepository consultas agregadas para el dashboard. Solo lectura;
// se calculan en SQL para no paginar el inventario completo en memoria.
type AnalyticsRepository interface {
	Totals(ctx context.Context) (*InventoryTotals, error)
	MovementTotalsBetween(ctx context.Context, from, to time.Time) (*MovementTotals, error)
	MostActiveComponents(ctx context.Context, from, to time.Time, limit int) ([]ComponentActivity, error)
}
