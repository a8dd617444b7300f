package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labtrack/labstock-api/internal/domain"
	"github.com/labtrack/labstock-api/internal/domain/entity"
	"github.com/labtrack/labstock-api/internal/domain/repository"
	"github.com/labtrack/labstock-api/internal/domain/stock"
)

// ComponentUseCase casos de uso del catálogo de componentes: CRUD con entrada
// de auditoría por evento, lectura con historial y listados por flag de salud.
type ComponentUseCase struct {
	txRunner      TxRunner
	componentRepo repository.ComponentRepository
	ledgerRepo    repository.LedgerRepository
	observer      FlagObserver
	staleWindow   time.Duration
	now           func() time.Time
}

// NewComponentUseCase construye el caso de uso. observer puede ser nil.
func NewComponentUseCase(
	txRunner TxRunner,
	componentRepo repository.ComponentRepository,
	ledgerRepo repository.LedgerRepository,
	observer FlagObserver,
	staleWindow time.Duration,
) *ComponentUseCase {
	return &ComponentUseCase{
		txRunner:      txRunner,
		componentRepo: componentRepo,
		ledgerRepo:    ledgerRepo,
		observer:      observer,
		staleWindow:   staleWindow,
		now:           time.Now,
	}
}

// WithClock fija el reloj del caso de uso (tests).
func (uc *ComponentUseCase) WithClock(now func() time.Time) *ComponentUseCase {
	uc.now = now
	return uc
}

// Create crea el componente y su entrada de auditoría "created" en una sola
// transacción. La cantidad inicial queda registrada como QuantityChanged para
// que el replay desde cero reproduzca el estado.
func (uc *ComponentUseCase) Create(ctx context.Context, c *entity.Component, actorID string) (*entity.Component, error) {
	if strings.TrimSpace(c.ComponentName) == "" || strings.TrimSpace(c.PartNumber) == "" {
		return nil, domain.ErrInvalidInput
	}
	if c.Quantity < 0 || c.CriticalLowThreshold < 0 {
		return nil, domain.ErrInvalidInput
	}

	now := uc.now()
	c.ID = uuid.New().String()
	c.LastOutwardAt = now
	c.CreatedAt = now
	c.UpdatedAt = now

	flags := stock.ComputeFlags(c.Quantity, c.CriticalLowThreshold, c.LastOutwardAt, now, uc.staleWindow)
	c.IsLowStock = flags.IsLowStock
	c.IsStale = flags.IsStale

	err := uc.txRunner.Run(ctx, func(componentRepo repository.ComponentRepository, ledgerRepo repository.LedgerRepository) error {
		if err := componentRepo.Create(c); err != nil {
			return err
		}
		return ledgerRepo.Append(&entity.LedgerEntry{
			ID:               uuid.New().String(),
			ComponentID:      c.ID,
			Action:           entity.ActionCreated,
			PreviousQuantity: 0,
			NewQuantity:      c.Quantity,
			QuantityChanged:  c.Quantity,
			Reason:           "componente creado",
			ActorID:          actorID,
			CreatedAt:        now,
		})
	})
	if err != nil {
		return nil, err
	}

	if uc.observer != nil {
		uc.observer.OnInventoryEvent(c, entity.ActionCreated, actorID)
		// Un componente recién creado ya puede estar en o bajo el umbral.
		uc.observer.OnStockTransition(c, stock.Flags{}, flags)
	}
	return c, nil
}

// UpdateDetails actualiza los campos de catálogo y registra una entrada
// "updated" con cambio de cantidad cero. La cantidad nunca se toca por aquí.
func (uc *ComponentUseCase) UpdateDetails(ctx context.Context, c *entity.Component, actorID string) (*entity.Component, error) {
	existing, err := uc.componentRepo.GetByID(c.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil || existing.DeletedAt != nil {
		return nil, domain.ErrNotFound
	}
	if c.CriticalLowThreshold < 0 {
		return nil, domain.ErrInvalidInput
	}

	now := uc.now()
	existing.ComponentName = c.ComponentName
	existing.PartNumber = c.PartNumber
	existing.ManufacturerSupplier = c.ManufacturerSupplier
	existing.Category = c.Category
	existing.LocationBin = c.LocationBin
	existing.CriticalLowThreshold = c.CriticalLowThreshold
	existing.UnitPrice = c.UnitPrice
	existing.DatasheetLink = c.DatasheetLink
	existing.ImageURL = c.ImageURL
	existing.UpdatedAt = now

	err = uc.txRunner.Run(ctx, func(componentRepo repository.ComponentRepository, ledgerRepo repository.LedgerRepository) error {
		if err := componentRepo.UpdateDetails(existing); err != nil {
			return err
		}
		return ledgerRepo.Append(&entity.LedgerEntry{
			ID:               uuid.New().String(),
			ComponentID:      existing.ID,
			Action:           entity.ActionUpdated,
			PreviousQuantity: existing.Quantity,
			NewQuantity:      existing.Quantity,
			QuantityChanged:  0,
			Reason:           "datos de catálogo actualizados",
			ActorID:          actorID,
			CreatedAt:        now,
		})
	})
	if err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete marca el componente como borrado y encadena la entrada tombstone
// "deleted". Las entradas anteriores no se tocan jamás.
func (uc *ComponentUseCase) Delete(ctx context.Context, id, actorID string) error {
	existing, err := uc.componentRepo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil || existing.DeletedAt != nil {
		return domain.ErrNotFound
	}

	now := uc.now()
	err = uc.txRunner.Run(ctx, func(componentRepo repository.ComponentRepository, ledgerRepo repository.LedgerRepository) error {
		if err := componentRepo.SoftDelete(id); err != nil {
			return err
		}
		return ledgerRepo.Append(&entity.LedgerEntry{
			ID:               uuid.New().String(),
			ComponentID:      id,
			Action:           entity.ActionDeleted,
			PreviousQuantity: existing.Quantity,
			NewQuantity:      0,
			QuantityChanged:  -existing.Quantity,
			Reason:           "componente eliminado",
			ActorID:          actorID,
			CreatedAt:        now,
		})
	})
	if err != nil {
		return err
	}
	if uc.observer != nil {
		uc.observer.OnInventoryEvent(existing, entity.ActionDeleted, actorID)
	}
	return nil
}

// Get devuelve el componente con sus flags recalculados al momento de la lectura.
func (uc *ComponentUseCase) Get(ctx context.Context, id string) (*entity.Component, stock.Flags, error) {
	c, err := uc.componentRepo.GetByID(id)
	if err != nil {
		return nil, stock.Flags{}, err
	}
	if c == nil || c.DeletedAt != nil {
		return nil, stock.Flags{}, domain.ErrNotFound
	}
	flags := stock.ComputeFlags(c.Quantity, c.CriticalLowThreshold, c.LastOutwardAt, uc.now(), uc.staleWindow)
	return c, flags, nil
}

// GetWithHistory devuelve el estado actual más una página del historial.
// A diferencia de Get, acepta componentes borrados: el historial sobrevive al
// soft delete y su última entrada es el tombstone.
func (uc *ComponentUseCase) GetWithHistory(ctx context.Context, id string, f repository.LedgerFilters) (*entity.Component, stock.Flags, *repository.LedgerPage, error) {
	c, err := uc.componentRepo.GetByID(id)
	if err != nil {
		return nil, stock.Flags{}, nil, err
	}
	if c == nil {
		return nil, stock.Flags{}, nil, domain.ErrNotFound
	}
	flags := stock.ComputeFlags(c.Quantity, c.CriticalLowThreshold, c.LastOutwardAt, uc.now(), uc.staleWindow)
	page, err := uc.ledgerRepo.ListByComponent(id, f)
	if err != nil {
		return nil, stock.Flags{}, nil, err
	}
	return c, flags, page, nil
}

// List lista el catálogo con filtros y paginación.
func (uc *ComponentUseCase) List(ctx context.Context, f repository.ComponentFilters) ([]*entity.Component, int, error) {
	return uc.componentRepo.List(f)
}

// ListLowStock devuelve los componentes en o bajo su umbral crítico.
// Construido sobre el computador de estado: función pura sobre el estado
// actual, sin re-derivar nada del historial.
func (uc *ComponentUseCase) ListLowStock(ctx context.Context) ([]*entity.Component, error) {
	return uc.listByFlag(func(f stock.Flags) bool { return f.IsLowStock })
}

// ListStale devuelve los componentes sin salidas dentro de la ventana configurada.
func (uc *ComponentUseCase) ListStale(ctx context.Context) ([]*entity.Component, error) {
	return uc.listByFlag(func(f stock.Flags) bool { return f.IsStale })
}

func (uc *ComponentUseCase) listByFlag(match func(stock.Flags) bool) ([]*entity.Component, error) {
	all, err := uc.componentRepo.ListActive()
	if err != nil {
		return nil, err
	}
	now := uc.now()
	out := make([]*entity.Component, 0, len(all))
	for _, c := range all {
		f := stock.ComputeFlags(c.Quantity, c.CriticalLowThreshold, c.LastOutwardAt, now, uc.staleWindow)
		if match(f) {
			// Refresca el caché en la copia devuelta para que la respuesta
			// no arrastre flags anteriores al último barrido.
			c.IsLowStock, c.IsStale = f.IsLowStock, f.IsStale
			out = append(out, c)
		}
	}
	return out, nil
}

// Categories y Locations listas de valores distintos para filtros del catálogo.
func (uc *ComponentUseCase) Categories(ctx context.Context) ([]string, error) {
	return uc.componentRepo.Categories()
}

func (uc *ComponentUseCase) Locations(ctx context.Context) ([]string, error) {
	return uc.componentRepo.Locations()
}
