package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/labtrack/labstock-api/internal/domain/entity"
	"github.com/labtrack/labstock-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas para el dashboard (solo lectura).
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// Totals agregados globales del inventario activo.
func (r *AnalyticsRepo) Totals(ctx context.Context) (*repository.InventoryTotals, error) {
	query := `
		SELECT count(*),
		       COALESCE(sum(quantity), 0),
		       COALESCE(sum(quantity * unit_price), 0)
		FROM components
		WHERE deleted_at IS NULL`
	var t repository.InventoryTotals
	if err := r.q.QueryRow(ctx, query).Scan(&t.TotalComponents, &t.TotalUnits, &t.InventoryValue); err != nil {
		return nil, fmt.Errorf("inventory totals: %w", err)
	}
	return &t, nil
}

// MovementTotalsBetween volúmenes de entradas y salidas en la ventana [from, to].
func (r *AnalyticsRepo) MovementTotalsBetween(ctx context.Context, from, to time.Time) (*repository.MovementTotals, error) {
	query := `
		SELECT COALESCE(sum(quantity_changed) FILTER (WHERE action = $3), 0),
		       COALESCE(-sum(quantity_changed) FILTER (WHERE action = $4), 0),
		       count(*) FILTER (WHERE action = $3),
		       count(*) FILTER (WHERE action = $4)
		FROM ledger_entries
		WHERE created_at >= $1 AND created_at <= $2`
	var t repository.MovementTotals
	err := r.q.QueryRow(ctx, query, from, to, entity.ActionInward, entity.ActionOutward).Scan(
		&t.InwardUnits, &t.OutwardUnits, &t.InwardCount, &t.OutwardCount)
	if err != nil {
		return nil, fmt.Errorf("movement totals: %w", err)
	}
	return &t, nil
}

// MostActiveComponents ranking por número de movimientos en la ventana.
func (r *AnalyticsRepo) MostActiveComponents(ctx context.Context, from, to time.Time, limit int) ([]repository.ComponentActivity, error) {
	if limit <= 0 {
		limit = 5
	}
	query := `
		SELECT le.component_id, c.component_name, count(*), COALESCE(sum(abs(le.quantity_changed)), 0)
		FROM ledger_entries le
		JOIN components c ON c.id = le.component_id
		WHERE le.created_at >= $1 AND le.created_at <= $2
		  AND le.action IN ($3, $4, $5)
		GROUP BY le.component_id, c.component_name
		ORDER BY count(*) DESC
		LIMIT $6`
	rows, err := r.q.Query(ctx, query, from, to,
		entity.ActionInward, entity.ActionOutward, entity.ActionAdjustment, limit)
	if err != nil {
		return nil, fmt.Errorf("most active components: %w", err)
	}
	defer rows.Close()

	var list []repository.ComponentActivity
	for rows.Next() {
		var a repository.ComponentActivity
		if err := rows.Scan(&a.ComponentID, &a.ComponentName, &a.Movements, &a.UnitsMoved); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
