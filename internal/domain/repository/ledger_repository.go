package repository

import (
	"time"

	"github.com/labtrack/labstock-api/internal/domain/entity"
)

// LedgerFilters filtros del historial de un componente.
// Cursor es opaco para el caller; lo produce la página anterior.
type LedgerFilters struct {
	Action string // opcional: inward, outward, adjustment, ...
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}

// LedgerPage página de entradas en orden cronológico inverso.
// NextCursor vacío indica que no hay más páginas.
type LedgerPage struct {
	Entries    []*entity.LedgerEntry
	NextCursor string
}

// LedgerRepository define el puerto del almacén de auditoría.
// Append-only: no existe Update ni Delete. El borrado de un componente
// encadena una entrada tombstone (action = deleted), nunca borra historial.
type LedgerRepository interface {
	Append(e *entity.LedgerEntry) error
	// ListByComponent historial paginado, más reciente primero.
	ListByComponent(componentID string, f LedgerFilters) (*LedgerPage, error)
	// ReplayByComponent todas las entradas en orden cronológico ascendente,
	// para reconstruir la cantidad desde cero (verificación de integridad).
	ReplayByComponent(componentID string) ([]*entity.LedgerEntry, error)
}
