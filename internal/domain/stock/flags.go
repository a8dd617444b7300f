// Package stock contiene las reglas puras de salud de inventario: cálculo de
// flags derivados (bajo stock, stock estancado) y capacidades por rol.
// Ninguna función de este paquete hace I/O ni guarda estado.
package stock

import "time"

// DefaultStaleWindow ventana por defecto para considerar stock estancado.
const DefaultStaleWindow = 90 * 24 * time.Hour

// Flags estado de salud derivado de un componente. No se persiste como
// historial: se recalcula tras cada mutación y bajo demanda en reportes.
type Flags struct {
	IsLowStock bool
	IsStale    bool
}

// ComputeFlags deriva los flags de salud a partir del estado actual.
// IsLowStock: quantity <= threshold (en o por debajo del umbral cuenta como
// bajo; quantity == 0 es el sub-caso "agotado" y sigue contando como bajo).
// Con threshold = 0 solo quantity == 0 es bajo.
// IsStale: sin salidas durante al menos staleWindow.
func ComputeFlags(quantity, threshold int64, lastOutwardAt, now time.Time, staleWindow time.Duration) Flags {
	if staleWindow <= 0 {
		staleWindow = DefaultStaleWindow
	}
	return Flags{
		IsLowStock: quantity <= threshold,
		IsStale:    now.Sub(lastOutwardAt) >= staleWindow,
	}
}

// IsOutOfStock sub-caso más fuerte de bajo stock.
func IsOutOfStock(quantity int64) bool {
	return quantity == 0
}

// AlertPriority mapea el estado de stock a la prioridad de una alerta low_stock:
// agotado es crítico, bajo con existencias es alto.
func AlertPriority(quantity int64) string {
	if quantity == 0 {
		return "critical"
	}
	return "high"
}
