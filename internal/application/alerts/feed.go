package alerts

import (
	"github.com/labtrack/labstock-api/internal/domain"
	"github.com/labtrack/labstock-api/internal/domain/entity"
	"github.com/labtrack/labstock-api/internal/domain/repository"
)

// FeedUseCase API pull de notificaciones: listado, contador de no leídas y
// mutaciones de estado de lectura. Cualquier cadencia de polling es asunto
// del caller.
type FeedUseCase struct {
	repo repository.NotificationRepository
}

// NewFeedUseCase construye el caso de uso del feed.
func NewFeedUseCase(repo repository.NotificationRepository) *FeedUseCase {
	return &FeedUseCase{repo: repo}
}

// NotificationView notificación anotada con el estado de lectura del usuario
// que consulta.
type NotificationView struct {
	*entity.Notification
	IsReadByUser bool
}

// List devuelve las notificaciones más recientes con el estado de lectura del usuario.
func (uc *FeedUseCase) List(userID string, limit, offset int) ([]NotificationView, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	views := make([]NotificationView, 0, len(list))
	for _, n := range list {
		views = append(views, NotificationView{Notification: n, IsReadByUser: n.IsReadBy(userID)})
	}
	return views, nil
}

// UnreadCount notificaciones que el usuario no ha marcado leídas.
func (uc *FeedUseCase) UnreadCount(userID string) (int, error) {
	return uc.repo.UnreadCount(userID)
}

// MarkRead agrega al usuario al conjunto de lectores.
func (uc *FeedUseCase) MarkRead(id, userID string) error {
	n, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if n == nil {
		return domain.ErrNotFound
	}
	return uc.repo.MarkRead(id, userID)
}

// MarkAllRead marca todas como leídas para el usuario.
func (uc *FeedUseCase) MarkAllRead(userID string) error {
	return uc.repo.MarkAllRead(userID)
}

// Delete borra la notificación por acción explícita del usuario.
func (uc *FeedUseCase) Delete(id string) error {
	n, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if n == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
