package alerts_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labtrack/labstock-api/internal/application/alerts"
	"github.com/labtrack/labstock-api/internal/domain"
	"github.com/labtrack/labstock-api/internal/domain/entity"
	"github.com/labtrack/labstock-api/internal/domain/repository"
	"github.com/labtrack/labstock-api/internal/domain/stock"
	"github.com/labtrack/labstock-api/pkg/logger"
)

// fakeComponentRepo solo implementa lo que el barrido usa; el resto entra en
// pánico para delatar usos inesperados.
type fakeComponentRepo struct {
	components []*entity.Component
}

func (r *fakeComponentRepo) ListActive() ([]*entity.Component, error) {
	return r.components, nil
}

func (r *fakeComponentRepo) UpdateFlags(id string, isLowStock, isStale bool) error {
	for _, c := range r.components {
		if c.ID == id {
			c.IsLowStock = isLowStock
			c.IsStale = isStale
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeComponentRepo) Create(*entity.Component) error          { panic("no usado") }
func (r *fakeComponentRepo) GetByID(string) (*entity.Component, error) {
	panic("no usado")
}
func (r *fakeComponentRepo) GetForUpdate(string) (*entity.Component, error) {
	panic("no usado")
}
func (r *fakeComponentRepo) UpdateStock(*entity.Component) error   { panic("no usado") }
func (r *fakeComponentRepo) UpdateDetails(*entity.Component) error { panic("no usado") }
func (r *fakeComponentRepo) SoftDelete(string) error               { panic("no usado") }
func (r *fakeComponentRepo) List(repository.ComponentFilters) ([]*entity.Component, int, error) {
	panic("no usado")
}
func (r *fakeComponentRepo) Categories() ([]string, error) { panic("no usado") }
func (r *fakeComponentRepo) Locations() ([]string, error)  { panic("no usado") }

func TestSweepOnce_DetectaTransicionStale(t *testing.T) {
	window := 90 * 24 * time.Hour
	compRepo := &fakeComponentRepo{components: []*entity.Component{
		{
			ID: "old", ComponentName: "LED rojo 5mm", PartNumber: "LED-R5",
			Quantity: 50, CriticalLowThreshold: 10,
			LastOutwardAt: testTime.Add(-91 * 24 * time.Hour),
		},
		{
			ID: "fresh", ComponentName: "LED verde 5mm", PartNumber: "LED-V5",
			Quantity: 50, CriticalLowThreshold: 10,
			LastOutwardAt: testTime.Add(-time.Hour),
		},
	}}
	notifRepo := &fakeNotificationRepo{}
	trigger := alerts.NewTrigger(notifRepo, logger.Nop())
	sweeper := alerts.NewStaleSweeper(compRepo, trigger, logger.Nop(), window, time.Minute).
		WithClock(func() time.Time { return testTime })

	require.NoError(t, sweeper.SweepOnce(context.Background()))

	// Solo el componente viejo transiciona y genera la alerta.
	got := notifRepo.ofType(entity.NotificationStaleStock)
	require.Len(t, got, 1)
	assert.Equal(t, "old", got[0].RelatedComponentID)
	assert.True(t, compRepo.components[0].IsStale, "el caché de flags se actualiza")
	assert.False(t, compRepo.components[1].IsStale)

	// Segundo barrido sin cambios: el flanco ya pasó, ninguna alerta nueva.
	require.NoError(t, sweeper.SweepOnce(context.Background()))
	assert.Len(t, notifRepo.ofType(entity.NotificationStaleStock), 1)
}

func TestSweepOnce_RecuperacionLimpiaElFlag(t *testing.T) {
	window := 90 * 24 * time.Hour
	compRepo := &fakeComponentRepo{components: []*entity.Component{
		{
			ID: "recovered", ComponentName: "Tornillo M3", PartNumber: "TOR-M3",
			Quantity: 100, CriticalLowThreshold: 10,
			LastOutwardAt: testTime.Add(-time.Hour),
			IsStale:       true, // caché viejo: hubo una salida reciente
		},
	}}
	notifRepo := &fakeNotificationRepo{}
	sweeper := alerts.NewStaleSweeper(compRepo, alerts.NewTrigger(notifRepo, logger.Nop()), logger.Nop(), window, time.Minute).
		WithClock(func() time.Time { return testTime })

	require.NoError(t, sweeper.SweepOnce(context.Background()))

	assert.False(t, compRepo.components[0].IsStale)
	assert.Empty(t, notifRepo.notifications, "la transición true→false no notifica")
}

func TestSweep_FlagsCombinados(t *testing.T) {
	window := 90 * 24 * time.Hour
	// Bajo y estancado a la vez: ambas alertas en el mismo barrido.
	compRepo := &fakeComponentRepo{components: []*entity.Component{
		{
			ID: "both", ComponentName: "Fusible 2A", PartNumber: "FUS-2A",
			Quantity: 2, CriticalLowThreshold: 5,
			LastOutwardAt: testTime.Add(-100 * 24 * time.Hour),
		},
	}}
	notifRepo := &fakeNotificationRepo{}
	sweeper := alerts.NewStaleSweeper(compRepo, alerts.NewTrigger(notifRepo, logger.Nop()), logger.Nop(), window, time.Minute).
		WithClock(func() time.Time { return testTime })

	require.NoError(t, sweeper.SweepOnce(context.Background()))

	assert.Len(t, notifRepo.ofType(entity.NotificationLowStock), 1)
	assert.Len(t, notifRepo.ofType(entity.NotificationStaleStock), 1)

	f := stock.ComputeFlags(2, 5, testTime.Add(-100*24*time.Hour), testTime, window)
	assert.Equal(t, stock.Flags{IsLowStock: true, IsStale: true}, f)
}
