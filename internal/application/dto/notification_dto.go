package dto

import (
	"time"

	"github.com/labtrack/labstock-api/internal/application/alerts"
)

// NotificationResponse salida de una notificación con el estado de lectura
// del usuario que consulta.
type NotificationResponse struct {
	ID                 string    `json:"id"`
	Type               string    `json:"type"`
	Priority           string    `json:"priority"`
	Title              string    `json:"title"`
	Message            string    `json:"message"`
	RelatedComponentID string    `json:"related_component_id,omitempty"`
	IsReadByUser       bool      `json:"is_read_by_user"`
	CreatedAt          time.Time `json:"created_at"`
}

// ToNotificationResponse mapea la vista del feed al DTO de salida.
func ToNotificationResponse(v alerts.NotificationView) NotificationResponse {
	return NotificationResponse{
		ID:                 v.ID,
		Type:               v.Type,
		Priority:           v.Priority,
		Title:              v.Title,
		Message:            v.Message,
		RelatedComponentID: v.RelatedComponentID,
		IsReadByUser:       v.IsReadByUser,
		CreatedAt:          v.CreatedAt,
	}
}

// NotificationListResponse listado del feed.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Page          PageResponse           `json:"page"`
}

// UnreadCountResponse contador de no leídas del usuario.
type UnreadCountResponse struct {
	UnreadCount int `json:"unreadCount"`
}
