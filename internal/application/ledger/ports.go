package ledger

import (
	"context"

	"github.com/labtrack/labstock-api/internal/domain/entity"
	"github.com/labtrack/labstock-api/internal/domain/repository"
	"github.com/labtrack/labstock-api/internal/domain/stock"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la escritura de cantidad y el
// append de auditoría sean indivisibles: si la función retorna error se hace
// Rollback y no queda estado huérfano.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		componentRepo repository.ComponentRepository,
		ledgerRepo repository.LedgerRepository,
	) error) error
}

// FlagObserver recibe las transiciones de flags tras cada mutación confirmada.
// Lo implementa el disparador de alertas; la interfaz evita el import circular.
type FlagObserver interface {
	OnStockTransition(c *entity.Component, prev, next stock.Flags)
	OnInventoryEvent(c *entity.Component, action, actorID string)
}
