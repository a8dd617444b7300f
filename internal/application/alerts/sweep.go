package alerts

import (
	"context"
	"time"

	"github.com/labtrack/labstock-api/internal/domain/repository"
	"github.com/labtrack/labstock-api/internal/domain/stock"
	"github.com/labtrack/labstock-api/pkg/logger"
)

// StaleSweeper recalcula periódicamente los flags de salud de todo el
// inventario activo. El tiempo por sí solo puede volver estancado un
// componente sin que medie ninguna mutación, así que las transiciones de
// IsStale solo pueden detectarse barriendo.
//
// Compara contra los flags cacheados en el componente para disparar por
// flanco, y actualiza el caché tras cada transición.
type StaleSweeper struct {
	componentRepo repository.ComponentRepository
	trigger       *Trigger
	log           *logger.Logger
	staleWindow   time.Duration
	interval      time.Duration
	now           func() time.Time
}

// NewStaleSweeper construye el barrido.
func NewStaleSweeper(componentRepo repository.ComponentRepository, trigger *Trigger, log *logger.Logger, staleWindow, interval time.Duration) *StaleSweeper {
	return &StaleSweeper{
		componentRepo: componentRepo,
		trigger:       trigger,
		log:           log,
		staleWindow:   staleWindow,
		interval:      interval,
		now:           time.Now,
	}
}

// WithClock fija el reloj del barrido (tests).
func (s *StaleSweeper) WithClock(now func() time.Time) *StaleSweeper {
	s.now = now
	return s
}

// Run ejecuta el barrido en bucle hasta que el contexto se cancele.
// Pensado para correr en una goroutine desde main.
func (s *StaleSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("barrido de stock estancado detenido")
			return
		case <-ticker.C:
			if err := s.SweepOnce(ctx); err != nil {
				s.log.Error().Err(err).Msg("barrido de stock estancado")
			}
		}
	}
}

// SweepOnce recorre el inventario activo una vez y dispara las transiciones.
func (s *StaleSweeper) SweepOnce(ctx context.Context) error {
	components, err := s.componentRepo.ListActive()
	if err != nil {
		return err
	}
	now := s.now()
	var transitions int
	for _, c := range components {
		prev := stock.Flags{IsLowStock: c.IsLowStock, IsStale: c.IsStale}
		next := stock.ComputeFlags(c.Quantity, c.CriticalLowThreshold, c.LastOutwardAt, now, s.staleWindow)
		if next == prev {
			continue
		}
		if err := s.componentRepo.UpdateFlags(c.ID, next.IsLowStock, next.IsStale); err != nil {
			s.log.Error().Err(err).Str("component_id", c.ID).Msg("actualización de flags en barrido")
			continue
		}
		s.trigger.OnStockTransition(c, prev, next)
		transitions++
	}
	s.log.Debug().Int("components", len(components)).Int("transitions", transitions).
		Msg("barrido de salud de inventario completado")
	return nil
}
