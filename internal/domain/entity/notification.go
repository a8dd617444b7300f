package entity

import "time"

// Tipos de notificación.
const (
	NotificationLowStock        = "low_stock"
	NotificationStaleStock      = "stale_stock"
	NotificationSystem          = "system"
	NotificationInventoryUpdate = "inventory_update"
)

// Prioridades de notificación.
const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// Notification es un aviso generado por el disparador de alertas o por un
// evento del sistema. El contenido nunca se modifica después de creada; el
// único estado mutable es el conjunto de lectores (ReadBy) y el borrado
// explícito por el usuario.
type Notification struct {
	ID                 string
	Type               string // low_stock, stale_stock, system, inventory_update
	Priority           string // low, medium, high, critical
	Title              string
	Message            string
	RelatedComponentID string   // opcional
	ReadBy             []string // IDs de usuarios que la marcaron leída
	CreatedAt          time.Time
}

// IsReadBy indica si el usuario ya marcó la notificación como leída.
func (n *Notification) IsReadBy(userID string) bool {
	for _, id := range n.ReadBy {
		if id == userID {
			return true
		}
	}
	return false
}
