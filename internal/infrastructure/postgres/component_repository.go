package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/labtrack/labstock-api/internal/domain"
	"github.com/labtrack/labstock-api/internal/domain/entity"
	"github.com/labtrack/labstock-api/internal/domain/repository"
)

var _ repository.ComponentRepository = (*ComponentRepo)(nil)

// ComponentRepo implementación de ComponentRepository sobre PostgreSQL (usable con pool o tx).
type ComponentRepo struct {
	q Querier
}

// NewComponentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewComponentRepository(q Querier) *ComponentRepo {
	return &ComponentRepo{q: q}
}

const componentColumns = `id, component_name, part_number, manufacturer_supplier, category, location_bin,
	quantity, critical_low_threshold, unit_price, datasheet_link, image_url,
	last_outward_at, is_low_stock, is_stale, created_at, updated_at, deleted_at`

func scanComponent(row pgx.Row) (*entity.Component, error) {
	var c entity.Component
	err := row.Scan(
		&c.ID, &c.ComponentName, &c.PartNumber, &c.ManufacturerSupplier, &c.Category, &c.LocationBin,
		&c.Quantity, &c.CriticalLowThreshold, &c.UnitPrice, &c.DatasheetLink, &c.ImageURL,
		&c.LastOutwardAt, &c.IsLowStock, &c.IsStale, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un componente nuevo.
func (r *ComponentRepo) Create(c *entity.Component) error {
	query := `
		INSERT INTO components (` + componentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.ComponentName, c.PartNumber, c.ManufacturerSupplier, c.Category, c.LocationBin,
		c.Quantity, c.CriticalLowThreshold, c.UnitPrice, c.DatasheetLink, c.ImageURL,
		c.LastOutwardAt, c.IsLowStock, c.IsStale, c.CreatedAt, c.UpdatedAt, c.DeletedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create component: %w", err)
	}
	return nil
}

// GetByID obtiene un componente por ID (incluye borrados; el caso de uso decide).
func (r *ComponentRepo) GetByID(id string) (*entity.Component, error) {
	query := `SELECT ` + componentColumns + ` FROM components WHERE id = $1`
	c, err := scanComponent(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get component: %w", err)
	}
	return c, nil
}

// GetForUpdate obtiene el componente y bloquea su fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción; es el candado por componente
// que serializa la secuencia leer-validar-escribir-append.
func (r *ComponentRepo) GetForUpdate(id string) (*entity.Component, error) {
	query := `SELECT ` + componentColumns + ` FROM components WHERE id = $1 FOR UPDATE`
	c, err := scanComponent(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get component for update: %w", err)
	}
	return c, nil
}

// UpdateStock persiste cantidad, última salida y flags cacheados.
func (r *ComponentRepo) UpdateStock(c *entity.Component) error {
	query := `
		UPDATE components
		SET quantity = $2, last_outward_at = $3, is_low_stock = $4, is_stale = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		c.ID, c.Quantity, c.LastOutwardAt, c.IsLowStock, c.IsStale, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateDetails persiste los campos de catálogo. La cantidad no se toca.
func (r *ComponentRepo) UpdateDetails(c *entity.Component) error {
	query := `
		UPDATE components
		SET component_name = $2, part_number = $3, manufacturer_supplier = $4, category = $5,
		    location_bin = $6, critical_low_threshold = $7, unit_price = $8,
		    datasheet_link = $9, image_url = $10, updated_at = $11
		WHERE id = $1 AND deleted_at IS NULL`
	tag, err := r.q.Exec(context.Background(), query,
		c.ID, c.ComponentName, c.PartNumber, c.ManufacturerSupplier, c.Category,
		c.LocationBin, c.CriticalLowThreshold, c.UnitPrice,
		c.DatasheetLink, c.ImageURL, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update component details: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateFlags persiste únicamente los flags cacheados (barrido periódico).
func (r *ComponentRepo) UpdateFlags(id string, isLowStock, isStale bool) error {
	query := `UPDATE components SET is_low_stock = $2, is_stale = $3 WHERE id = $1 AND deleted_at IS NULL`
	tag, err := r.q.Exec(context.Background(), query, id, isLowStock, isStale)
	if err != nil {
		return fmt.Errorf("update flags: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca el componente como borrado; el historial del ledger queda intacto.
func (r *ComponentRepo) SoftDelete(id string) error {
	query := `UPDATE components SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL`
	tag, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("soft delete component: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista el catálogo activo con filtros y devuelve también el total.
func (r *ComponentRepo) List(f repository.ComponentFilters) ([]*entity.Component, int, error) {
	where := ` WHERE deleted_at IS NULL`
	args := []any{}
	pos := 1
	if f.Search != "" {
		where += fmt.Sprintf(" AND (component_name ILIKE $%d OR part_number ILIKE $%d)", pos, pos)
		args = append(args, "%"+f.Search+"%")
		pos++
	}
	if f.Category != "" {
		where += fmt.Sprintf(" AND category = $%d", pos)
		args = append(args, f.Category)
		pos++
	}
	if f.LocationBin != "" {
		where += fmt.Sprintf(" AND location_bin = $%d", pos)
		args = append(args, f.LocationBin)
		pos++
	}

	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM components`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count components: %w", err)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT ` + componentColumns + ` FROM components` + where +
		fmt.Sprintf(" ORDER BY component_name ASC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, f.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list components: %w", err)
	}
	defer rows.Close()

	var list []*entity.Component
	for rows.Next() {
		c, err := scanComponent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan component: %w", err)
		}
		list = append(list, c)
	}
	return list, total, rows.Err()
}

// ListActive devuelve todos los componentes no borrados.
func (r *ComponentRepo) ListActive() ([]*entity.Component, error) {
	query := `SELECT ` + componentColumns + ` FROM components WHERE deleted_at IS NULL ORDER BY component_name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list active components: %w", err)
	}
	defer rows.Close()

	var list []*entity.Component
	for rows.Next() {
		c, err := scanComponent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan component: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Categories valores distintos de categoría del inventario activo.
func (r *ComponentRepo) Categories() ([]string, error) {
	return r.distinct("category")
}

// Locations valores distintos de ubicación del inventario activo.
func (r *ComponentRepo) Locations() ([]string, error) {
	return r.distinct("location_bin")
}

func (r *ComponentRepo) distinct(column string) ([]string, error) {
	query := fmt.Sprintf(`SELECT DISTINCT %s FROM components WHERE deleted_at IS NULL AND %s <> '' ORDER BY %s`, column, column, column)
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("distinct %s: %w", column, err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan %s: %w", column, err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
