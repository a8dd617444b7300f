package ledger

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labtrack/labstock-api/internal/domain"
	"github.com/labtrack/labstock-api/internal/domain/entity"
	"github.com/labtrack/labstock-api/internal/domain/repository"
	"github.com/labtrack/labstock-api/internal/domain/stock"
	"github.com/labtrack/labstock-api/pkg/logger"
)

// Tipos de operación del motor.
const (
	KindInward  = "inward"
	KindOutward = "outward"
	KindAdjust  = "adjust"
)

// OperationInput entrada de ApplyOperation.
// Quantity es delta positivo para inward/outward y objetivo absoluto (>= 0)
// para adjust. Reason es obligatorio en los tres tipos.
type OperationInput struct {
	Quantity    int64
	Reason      string
	Notes       string
	ProjectName string               // solo outward
	BatchID     string               // solo inward
	Supplier    *entity.SupplierInfo // solo inward
	ActorID     string
}

// Engine es el motor de ledger: valida y aplica operaciones de inventario
// contra la cantidad actual de un componente, produciendo la nueva cantidad y
// exactamente una entrada de auditoría por operación, de forma atómica.
//
// Concurrencia: la secuencia leer-validar-escribir-append corre dentro de una
// transacción con la fila del componente bloqueada (SELECT FOR UPDATE), así
// que como máximo una mutación en vuelo por componente hace commit sin leer
// estado obsoleto. Componentes distintos mutan con total independencia.
type Engine struct {
	txRunner    TxRunner
	observer    FlagObserver
	log         *logger.Logger
	staleWindow time.Duration
	retries     int
	now         func() time.Time
}

// NewEngine construye el motor. observer puede ser nil (sin alertas).
func NewEngine(txRunner TxRunner, observer FlagObserver, log *logger.Logger, staleWindow time.Duration, retries int) *Engine {
	if retries < 1 {
		retries = 1
	}
	return &Engine{
		txRunner:    txRunner,
		observer:    observer,
		log:         log,
		staleWindow: staleWindow,
		retries:     retries,
		now:         time.Now,
	}
}

// WithClock fija el reloj del motor (tests).
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// ApplyOperation aplica una operación inward/outward/adjust sobre un componente.
// En caso de éxito escribe la nueva cantidad (y LastOutwardAt en salidas) y
// agrega una entrada al ledger en la misma transacción, y devuelve ambos.
//
// Errores: domain.ErrNotFound, domain.ErrInvalidInput,
// *domain.InsufficientStockError (con la cantidad disponible) y
// domain.ErrConflict tras agotar los reintentos.
func (e *Engine) ApplyOperation(ctx context.Context, componentID, kind string, in OperationInput) (*entity.Component, *entity.LedgerEntry, error) {
	if err := validateInput(kind, in); err != nil {
		return nil, nil, err
	}

	var (
		updated *entity.Component
		entry   *entity.LedgerEntry
		prev    stock.Flags
		next    stock.Flags
	)

	var err error
	for attempt := 1; attempt <= e.retries; attempt++ {
		err = e.txRunner.Run(ctx, func(componentRepo repository.ComponentRepository, ledgerRepo repository.LedgerRepository) error {
			c, lockErr := componentRepo.GetForUpdate(componentID)
			if lockErr != nil {
				return lockErr
			}
			if c == nil || c.DeletedAt != nil {
				return domain.ErrNotFound
			}

			now := e.now()
			prev = stock.ComputeFlags(c.Quantity, c.CriticalLowThreshold, c.LastOutwardAt, now, e.staleWindow)

			previousQty := c.Quantity
			action := ""
			switch kind {
			case KindInward:
				c.Quantity = previousQty + in.Quantity
				action = entity.ActionInward
			case KindOutward:
				if in.Quantity > previousQty {
					return &domain.InsufficientStockError{
						ComponentID: componentID,
						Requested:   in.Quantity,
						Available:   previousQty,
					}
				}
				c.Quantity = previousQty - in.Quantity
				c.LastOutwardAt = now
				action = entity.ActionOutward
			case KindAdjust:
				c.Quantity = in.Quantity
				action = entity.ActionAdjustment
			}

			next = stock.ComputeFlags(c.Quantity, c.CriticalLowThreshold, c.LastOutwardAt, now, e.staleWindow)
			c.IsLowStock = next.IsLowStock
			c.IsStale = next.IsStale
			c.UpdatedAt = now

			le := &entity.LedgerEntry{
				ID:               uuid.New().String(),
				ComponentID:      c.ID,
				Action:           action,
				PreviousQuantity: previousQty,
				NewQuantity:      c.Quantity,
				QuantityChanged:  c.Quantity - previousQty,
				Reason:           in.Reason,
				Notes:            in.Notes,
				ActorID:          in.ActorID,
				CreatedAt:        now,
			}
			switch kind {
			case KindOutward:
				le.ProjectName = in.ProjectName
			case KindInward:
				le.BatchID = in.BatchID
				if in.Supplier != nil && !in.Supplier.Empty() {
					le.SupplierInfo = in.Supplier
				}
			}

			if upErr := componentRepo.UpdateStock(c); upErr != nil {
				return upErr
			}
			if apErr := ledgerRepo.Append(le); apErr != nil {
				return apErr
			}
			updated = c
			entry = le
			return nil
		})
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrConflict) {
			return nil, nil, err
		}
		e.log.Warn().
			Str("component_id", componentID).
			Int("attempt", attempt).
			Msg("conflicto de concurrencia, reintentando operación")
	}
	if err != nil {
		return nil, nil, err
	}

	e.log.Info().
		Str("component_id", updated.ID).
		Str("action", entry.Action).
		Int64("previous_quantity", entry.PreviousQuantity).
		Int64("new_quantity", entry.NewQuantity).
		Str("actor_id", entry.ActorID).
		Msg("operación de inventario aplicada")

	// La notificación se crea después del commit: el fallo al crearla no debe
	// revertir una mutación ya confirmada.
	if e.observer != nil {
		e.observer.OnStockTransition(updated, prev, next)
	}
	return updated, entry, nil
}

func validateInput(kind string, in OperationInput) error {
	if strings.TrimSpace(in.Reason) == "" {
		return domain.ErrInvalidInput
	}
	switch kind {
	case KindInward, KindOutward:
		if in.Quantity <= 0 {
			return domain.ErrInvalidInput
		}
	case KindAdjust:
		if in.Quantity < 0 {
			return domain.ErrInvalidInput
		}
	default:
		return domain.ErrInvalidInput
	}
	return nil
}

// Replay reconstruye la cantidad final plegando las entradas en orden
// cronológico ascendente desde cero. Por invariante del ledger el resultado
// debe coincidir exactamente con Component.Quantity.
func Replay(entries []*entity.LedgerEntry) int64 {
	var q int64
	for _, e := range entries {
		q += e.QuantityChanged
	}
	return q
}
