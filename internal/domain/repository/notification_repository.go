package repository

import "github.com/labtrack/labstock-api/internal/domain/entity"

// NotificationRepository define el puerto de persistencia de notificaciones.
// El contenido es inmutable tras la creación: solo se marca leída o se borra.
type NotificationRepository interface {
	Create(n *entity.Notification) error
	GetByID(id string) (*entity.Notification, error)
	List(limit, offset int) ([]*entity.Notification, error)
	// UnreadCount notificaciones que el usuario aún no ha marcado leídas.
	UnreadCount(userID string) (int, error)
	// HasOpenForComponent indica si existe una notificación del tipo dado para
	// el componente que nadie ha leído todavía (regla de deduplicación).
	HasOpenForComponent(componentID, notificationType string) (bool, error)
	// MarkRead agrega el usuario al conjunto de lectores (idempotente).
	MarkRead(id, userID string) error
	MarkAllRead(userID string) error
	Delete(id string) error
}
