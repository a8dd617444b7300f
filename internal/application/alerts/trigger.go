package alerts

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/labtrack/labstock-api/internal/domain/entity"
	"github.com/labtrack/labstock-api/internal/domain/repository"
	"github.com/labtrack/labstock-api/internal/domain/stock"
	"github.com/labtrack/labstock-api/pkg/logger"
)

// Trigger crea notificaciones a partir de transiciones de flags y eventos de
// inventario. Es el único dueño de la creación de notificaciones.
//
// Disparo por flanco: solo la transición false→true de un flag genera una
// notificación; mutaciones repetidas que dejan el flag en true no generan nada.
//
// Deduplicación: como máximo una notificación abierta (sin leer, sin borrar)
// de cada tipo por componente. La verificación existe-luego-crea tiene una
// ventana de carrera entre dos cruces concurrentes del umbral; el resultado
// aceptado es a lo sumo un duplicado extra en carreras raras, no una
// exclusión dura.
type Trigger struct {
	repo repository.NotificationRepository
	log  *logger.Logger
	now  func() time.Time
}

// NewTrigger construye el disparador.
func NewTrigger(repo repository.NotificationRepository, log *logger.Logger) *Trigger {
	return &Trigger{repo: repo, log: log, now: time.Now}
}

// WithClock fija el reloj del disparador (tests).
func (t *Trigger) WithClock(now func() time.Time) *Trigger {
	t.now = now
	return t
}

// OnStockTransition evalúa las transiciones de flags de un componente recién
// mutado. El fallo al crear una notificación se registra y no se propaga: la
// mutación ya hizo commit y no debe revertirse por un aviso.
func (t *Trigger) OnStockTransition(c *entity.Component, prev, next stock.Flags) {
	if !prev.IsLowStock && next.IsLowStock {
		title := "Stock bajo"
		msg := fmt.Sprintf("%s (%s) quedó en %d unidades, umbral crítico %d",
			c.ComponentName, c.PartNumber, c.Quantity, c.CriticalLowThreshold)
		if stock.IsOutOfStock(c.Quantity) {
			title = "Stock agotado"
			msg = fmt.Sprintf("%s (%s) se quedó sin existencias", c.ComponentName, c.PartNumber)
		}
		t.create(c.ID, entity.NotificationLowStock, stock.AlertPriority(c.Quantity), title, msg)
	}
	if !prev.IsStale && next.IsStale {
		t.create(c.ID, entity.NotificationStaleStock, entity.PriorityMedium,
			"Stock estancado",
			fmt.Sprintf("%s (%s) no registra salidas desde %s",
				c.ComponentName, c.PartNumber, c.LastOutwardAt.Format("2006-01-02")))
	}
}

// OnInventoryEvent genera avisos informativos por eventos CRUD del catálogo.
// Las actualizaciones de catálogo no notifican: serían puro ruido.
func (t *Trigger) OnInventoryEvent(c *entity.Component, action, actorID string) {
	switch action {
	case entity.ActionCreated:
		t.create(c.ID, entity.NotificationInventoryUpdate, entity.PriorityLow,
			"Componente agregado",
			fmt.Sprintf("%s (%s) agregado al inventario con %d unidades", c.ComponentName, c.PartNumber, c.Quantity))
	case entity.ActionDeleted:
		t.create(c.ID, entity.NotificationSystem, entity.PriorityMedium,
			"Componente eliminado",
			fmt.Sprintf("%s (%s) fue retirado del inventario", c.ComponentName, c.PartNumber))
	}
}

func (t *Trigger) create(componentID, ntype, priority, title, message string) {
	open, err := t.repo.HasOpenForComponent(componentID, ntype)
	if err != nil {
		t.log.Error().Err(err).Str("component_id", componentID).Str("type", ntype).
			Msg("verificación de duplicados de notificación")
		return
	}
	if open {
		return
	}
	n := &entity.Notification{
		ID:                 uuid.New().String(),
		Type:               ntype,
		Priority:           priority,
		Title:              title,
		Message:            message,
		RelatedComponentID: componentID,
		CreatedAt:          t.now(),
	}
	if err := t.repo.Create(n); err != nil {
		t.log.Error().Err(err).Str("component_id", componentID).Str("type", ntype).
			Msg("creación de notificación")
		return
	}
	t.log.Info().Str("component_id", componentID).Str("type", ntype).Str("priority", priority).
		Msg("notificación creada")
}
