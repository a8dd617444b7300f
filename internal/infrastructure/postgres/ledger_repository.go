package postgres

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/labtrack/labstock-api/internal/domain"
	"github.com/labtrack/labstock-api/internal/domain/entity"
	"github.com/labtrack/labstock-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo almacén append-only de entradas de auditoría sobre PostgreSQL.
// No existe Update ni Delete: la tabla solo recibe INSERT.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// supplierInfoRecord forma JSON del bloque de proveedor en la columna jsonb.
type supplierInfoRecord struct {
	Name          string     `json:"name,omitempty"`
	InvoiceNumber string     `json:"invoice_number,omitempty"`
	PurchaseDate  *time.Time `json:"purchase_date,omitempty"`
	UnitCost      string     `json:"unit_cost,omitempty"`
}

// Append agrega una entrada. Es la única operación de escritura del ledger.
func (r *LedgerRepo) Append(e *entity.LedgerEntry) error {
	var supplier []byte
	if e.SupplierInfo != nil {
		rec := supplierInfoRecord{
			Name:          e.SupplierInfo.Name,
			InvoiceNumber: e.SupplierInfo.InvoiceNumber,
			PurchaseDate:  e.SupplierInfo.PurchaseDate,
			UnitCost:      e.SupplierInfo.UnitCost.String(),
		}
		var err error
		supplier, err = json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshal supplier info: %w", err)
		}
	}

	query := `
		INSERT INTO ledger_entries (id, component_id, action, previous_quantity, new_quantity,
			quantity_changed, reason, project_name, notes, batch_id, supplier_info, actor_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.ComponentID, e.Action, e.PreviousQuantity, e.NewQuantity,
		e.QuantityChanged, e.Reason, e.ProjectName, e.Notes, e.BatchID, supplier, e.ActorID, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append ledger entry: %w", err)
	}
	return nil
}

const ledgerColumns = `id, component_id, action, previous_quantity, new_quantity,
	quantity_changed, reason, project_name, notes, batch_id, supplier_info, actor_id, created_at`

func scanLedgerEntry(scan func(dest ...any) error) (*entity.LedgerEntry, error) {
	var e entity.LedgerEntry
	var supplier []byte
	if err := scan(
		&e.ID, &e.ComponentID, &e.Action, &e.PreviousQuantity, &e.NewQuantity,
		&e.QuantityChanged, &e.Reason, &e.ProjectName, &e.Notes, &e.BatchID, &supplier, &e.ActorID, &e.CreatedAt,
	); err != nil {
		return nil, err
	}
	if len(supplier) > 0 {
		var rec supplierInfoRecord
		if err := json.Unmarshal(supplier, &rec); err != nil {
			return nil, fmt.Errorf("unmarshal supplier info: %w", err)
		}
		si := &entity.SupplierInfo{
			Name:          rec.Name,
			InvoiceNumber: rec.InvoiceNumber,
			PurchaseDate:  rec.PurchaseDate,
		}
		if rec.UnitCost != "" {
			cost, err := decimal.NewFromString(rec.UnitCost)
			if err != nil {
				return nil, fmt.Errorf("parse supplier unit cost: %w", err)
			}
			si.UnitCost = cost
		}
		e.SupplierInfo = si
	}
	return &e, nil
}

// encodeCursor serializa la posición (created_at, id) como token opaco.
func encodeCursor(createdAt time.Time, id string) string {
	raw := createdAt.UTC().Format(time.RFC3339Nano) + "|" + id
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func decodeCursor(cursor string) (time.Time, string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, "", domain.ErrInvalidInput
	}
	parts := strings.SplitN(string(raw), "|", 2)
	if len(parts) != 2 {
		return time.Time{}, "", domain.ErrInvalidInput
	}
	at, err := time.Parse(time.RFC3339Nano, parts[0])
	if err != nil {
		return time.Time{}, "", domain.ErrInvalidInput
	}
	return at, parts[1], nil
}

// ListByComponent historial paginado en orden cronológico inverso.
// La secuencia es perezosa, finita y reanudable: cada página devuelve el
// cursor de continuación y el caller vuelve a llamar con él.
func (r *LedgerRepo) ListByComponent(componentID string, f repository.LedgerFilters) (*repository.LedgerPage, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE component_id = $1`
	args := []any{componentID}
	pos := 2

	if f.Action != "" {
		query += fmt.Sprintf(" AND action = $%d", pos)
		args = append(args, f.Action)
		pos++
	}
	if f.From != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *f.From)
		pos++
	}
	if f.To != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *f.To)
		pos++
	}
	if f.Cursor != "" {
		at, id, err := decodeCursor(f.Cursor)
		if err != nil {
			return nil, err
		}
		query += fmt.Sprintf(" AND (created_at, id) < ($%d, $%d)", pos, pos+1)
		args = append(args, at, id)
		pos += 2
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	// Se pide una fila extra para saber si hay página siguiente.
	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d", pos)
	args = append(args, limit+1)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []*entity.LedgerEntry
	for rows.Next() {
		e, err := scanLedgerEntry(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	page := &repository.LedgerPage{}
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		page.NextCursor = encodeCursor(last.CreatedAt, last.ID)
	}
	page.Entries = entries
	return page, nil
}

// ReplayByComponent todas las entradas en orden ascendente para reconstruir
// la cantidad desde cero.
func (r *LedgerRepo) ReplayByComponent(componentID string) ([]*entity.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE component_id = $1 ORDER BY created_at ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query, componentID)
	if err != nil {
		return nil, fmt.Errorf("replay ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []*entity.LedgerEntry
	for rows.Next() {
		e, err := scanLedgerEntry(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
