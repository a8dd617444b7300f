package dto

import "github.com/shopspring/decimal"

// DashboardStatsResponse agregados para el tablero principal.
type DashboardStatsResponse struct {
	TotalComponents int64           `json:"total_components"`
	TotalUnits      int64           `json:"total_units"`
	InventoryValue  decimal.Decimal `json:"inventory_value"`
	LowStockCount   int             `json:"low_stock_count"`
	StaleCount      int             `json:"stale_count"`
	OutOfStockCount int             `json:"out_of_stock_count"`
	// Volúmenes de movimiento de los últimos 30 días.
	InwardUnits30d  int64 `json:"inward_units_30d"`
	OutwardUnits30d int64 `json:"outward_units_30d"`
	Movements30d    int64 `json:"movements_30d"`

	MostActive []ComponentActivityDTO `json:"most_active"`
}

// ComponentActivityDTO ranking de componentes por volumen de movimientos.
type ComponentActivityDTO struct {
	ComponentID   string `json:"component_id"`
	ComponentName string `json:"component_name"`
	Movements     int64  `json:"movements"`
	UnitsMoved    int64  `json:"units_moved"`
}
