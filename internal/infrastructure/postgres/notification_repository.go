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

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación de NotificationRepository sobre PostgreSQL.
// read_by es text[]: el estado de lectura es por usuario, no global.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create persiste una notificación nueva con read_by vacío.
func (r *NotificationRepo) Create(n *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, type, priority, title, message, related_component_id, read_by, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8)`
	readBy := n.ReadBy
	if readBy == nil {
		readBy = []string{}
	}
	_, err := r.q.Exec(context.Background(), query,
		n.ID, n.Type, n.Priority, n.Title, n.Message, n.RelatedComponentID, readBy, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}

const notificationColumns = `id, type, priority, title, message, COALESCE(related_component_id, ''), read_by, created_at`

func scanNotification(scan func(dest ...any) error) (*entity.Notification, error) {
	var n entity.Notification
	if err := scan(&n.ID, &n.Type, &n.Priority, &n.Title, &n.Message, &n.RelatedComponentID, &n.ReadBy, &n.CreatedAt); err != nil {
		return nil, err
	}
	return &n, nil
}

// GetByID obtiene una notificación por ID.
func (r *NotificationRepo) GetByID(id string) (*entity.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE id = $1`
	n, err := scanNotification(r.q.QueryRow(context.Background(), query, id).Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notification: %w", err)
	}
	return n, nil
}

// List notificaciones más recientes primero.
func (r *NotificationRepo) List(limit, offset int) ([]*entity.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var list []*entity.Notification
	for rows.Next() {
		n, err := scanNotification(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

// UnreadCount notificaciones que el usuario no ha marcado leídas.
func (r *NotificationRepo) UnreadCount(userID string) (int, error) {
	query := `SELECT count(*) FROM notifications WHERE NOT ($1 = ANY(read_by))`
	var count int
	if err := r.q.QueryRow(context.Background(), query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("unread count: %w", err)
	}
	return count, nil
}

// HasOpenForComponent indica si existe una notificación del tipo que nadie ha
// leído todavía para el componente (regla de deduplicación del disparador).
func (r *NotificationRepo) HasOpenForComponent(componentID, notificationType string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM notifications
			WHERE related_component_id = $1 AND type = $2 AND cardinality(read_by) = 0
		)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, componentID, notificationType).Scan(&exists); err != nil {
		return false, fmt.Errorf("check open notification: %w", err)
	}
	return exists, nil
}

// MarkRead agrega el usuario al conjunto de lectores. Idempotente.
func (r *NotificationRepo) MarkRead(id, userID string) error {
	query := `
		UPDATE notifications
		SET read_by = array_append(read_by, $2)
		WHERE id = $1 AND NOT ($2 = ANY(read_by))`
	if _, err := r.q.Exec(context.Background(), query, id, userID); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

// MarkAllRead marca todas como leídas para el usuario.
func (r *NotificationRepo) MarkAllRead(userID string) error {
	query := `
		UPDATE notifications
		SET read_by = array_append(read_by, $1)
		WHERE NOT ($1 = ANY(read_by))`
	if _, err := r.q.Exec(context.Background(), query, userID); err != nil {
		return fmt.Errorf("mark all notifications read: %w", err)
	}
	return nil
}

// Delete borra la notificación (acción explícita del usuario).
func (r *NotificationRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
