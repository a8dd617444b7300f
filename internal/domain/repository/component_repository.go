package repository

import "github.com/labtrack/labstock-api/internal/domain/entity"

// ComponentFilters filtros de listado del catálogo.
type ComponentFilters struct {
	Search      string // nombre o part number (ILIKE)
	Category    string
	LocationBin string
	Limit       int
	Offset      int
}

// ComponentRepository define el puerto de persistencia para componentes.
// La escritura de Quantity/LastOutwardAt pertenece en exclusiva al motor de
// ledger; nadie más actualiza esos campos.
type ComponentRepository interface {
	Create(c *entity.Component) error
	GetByID(id string) (*entity.Component, error)
	// GetForUpdate bloquea la fila del componente (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(id string) (*entity.Component, error)
	// UpdateStock persiste quantity, lastOutwardAt, los flags cacheados y updatedAt.
	UpdateStock(c *entity.Component) error
	// UpdateDetails persiste los campos de catálogo (nunca la cantidad).
	UpdateDetails(c *entity.Component) error
	// UpdateFlags persiste únicamente los flags cacheados (barrido periódico).
	UpdateFlags(id string, isLowStock, isStale bool) error
	// SoftDelete marca el componente como borrado; el historial se conserva.
	SoftDelete(id string) error
	List(f ComponentFilters) ([]*entity.Component, int, error)
	// ListActive devuelve todos los componentes no borrados, para derivar
	// flags con el computador de estado (listados low-stock / stale, sweep).
	ListActive() ([]*entity.Component, error)
	Categories() ([]string, error)
	Locations() ([]string, error)
}
