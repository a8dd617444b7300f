// Package reports construye los agregados del dashboard y los reportes
// exportables (CSV, JSON, PDF) de salud de inventario.
package reports

import (
	"context"
	"time"

	"github.com/labtrack/labstock-api/internal/application/dto"
	"github.com/labtrack/labstock-api/internal/domain/repository"
	"github.com/labtrack/labstock-api/internal/domain/stock"
)

// DashboardUseCase agrega estadísticas del inventario para el tablero.
// Las lecturas no se bloquean por escrituras en vuelo: pueden observar un
// snapshot pre o post mutación.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	componentRepo repository.ComponentRepository
	staleWindow   time.Duration
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso del dashboard.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, componentRepo repository.ComponentRepository, staleWindow time.Duration) *DashboardUseCase {
	return &DashboardUseCase{
		analyticsRepo: analyticsRepo,
		componentRepo: componentRepo,
		staleWindow:   staleWindow,
		now:           time.Now,
	}
}

// Stats devuelve los agregados: totales SQL más conteos de flags derivados
// con el computador de estado sobre el snapshot actual.
func (uc *DashboardUseCase) Stats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	totals, err := uc.analyticsRepo.Totals(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	movements, err := uc.analyticsRepo.MovementTotalsBetween(ctx, now.AddDate(0, 0, -30), now)
	if err != nil {
		return nil, err
	}

	active, err := uc.analyticsRepo.MostActiveComponents(ctx, now.AddDate(0, 0, -30), now, 5)
	if err != nil {
		return nil, err
	}

	components, err := uc.componentRepo.ListActive()
	if err != nil {
		return nil, err
	}
	var low, stale, out int
	for _, c := range components {
		flags := stock.ComputeFlags(c.Quantity, c.CriticalLowThreshold, c.LastOutwardAt, now, uc.staleWindow)
		if flags.IsLowStock {
			low++
		}
		if flags.IsStale {
			stale++
		}
		if stock.IsOutOfStock(c.Quantity) {
			out++
		}
	}

	mostActive := make([]dto.ComponentActivityDTO, 0, len(active))
	for _, a := range active {
		mostActive = append(mostActive, dto.ComponentActivityDTO{
			ComponentID:   a.ComponentID,
			ComponentName: a.ComponentName,
			Movements:     a.Movements,
			UnitsMoved:    a.UnitsMoved,
		})
	}

	return &dto.DashboardStatsResponse{
		TotalComponents: totals.TotalComponents,
		TotalUnits:      totals.TotalUnits,
		InventoryValue:  totals.InventoryValue,
		LowStockCount:   low,
		StaleCount:      stale,
		OutOfStockCount: out,
		InwardUnits30d:  movements.InwardUnits,
		OutwardUnits30d: movements.OutwardUnits,
		Movements30d:    movements.InwardCount + movements.OutwardCount,
		MostActive:      mostActive,
	}, nil
}
