package alerts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labtrack/labstock-api/internal/application/alerts"
	"github.com/labtrack/labstock-api/internal/domain"
	"github.com/labtrack/labstock-api/internal/domain/entity"
)

func seedFeed(repo *fakeNotificationRepo, n int) {
	for i := 0; i < n; i++ {
		repo.notifications = append(repo.notifications, &entity.Notification{
			ID:       string(rune('a' + i)),
			Type:     entity.NotificationLowStock,
			Priority: entity.PriorityHigh,
			Title:    "Stock bajo",
		})
	}
}

func TestFeed_ListAnotaEstadoDeLectura(t *testing.T) {
	repo := &fakeNotificationRepo{}
	seedFeed(repo, 3)
	require.NoError(t, repo.MarkRead("b", "user-1"))

	feed := alerts.NewFeedUseCase(repo)
	views, err := feed.List("user-1", 10, 0)
	require.NoError(t, err)
	require.Len(t, views, 3)

	// Más reciente primero; solo "b" está leída para user-1.
	byID := map[string]bool{}
	for _, v := range views {
		byID[v.ID] = v.IsReadByUser
	}
	assert.False(t, byID["a"])
	assert.True(t, byID["b"])
	assert.False(t, byID["c"])

	// Para otro usuario nada está leído: el estado de lectura es por usuario.
	views, err = feed.List("user-2", 10, 0)
	require.NoError(t, err)
	for _, v := range views {
		assert.False(t, v.IsReadByUser)
	}
}

func TestFeed_UnreadCountPorUsuario(t *testing.T) {
	repo := &fakeNotificationRepo{}
	seedFeed(repo, 4)
	feed := alerts.NewFeedUseCase(repo)

	require.NoError(t, feed.MarkRead("a", "user-1"))
	require.NoError(t, feed.MarkRead("b", "user-1"))

	count, err := feed.UnreadCount("user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = feed.UnreadCount("user-2")
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestFeed_MarkReadIdempotente(t *testing.T) {
	repo := &fakeNotificationRepo{}
	seedFeed(repo, 1)
	feed := alerts.NewFeedUseCase(repo)

	require.NoError(t, feed.MarkRead("a", "user-1"))
	require.NoError(t, feed.MarkRead("a", "user-1"))
	assert.Equal(t, []string{"user-1"}, repo.notifications[0].ReadBy)
}

func TestFeed_MarkAllRead(t *testing.T) {
	repo := &fakeNotificationRepo{}
	seedFeed(repo, 3)
	feed := alerts.NewFeedUseCase(repo)

	require.NoError(t, feed.MarkAllRead("user-1"))
	count, err := feed.UnreadCount("user-1")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestFeed_NotFound(t *testing.T) {
	feed := alerts.NewFeedUseCase(&fakeNotificationRepo{})
	assert.ErrorIs(t, feed.MarkRead("nope", "user-1"), domain.ErrNotFound)
	assert.ErrorIs(t, feed.Delete("nope"), domain.ErrNotFound)
}

func TestFeed_Delete(t *testing.T) {
	repo := &fakeNotificationRepo{}
	seedFeed(repo, 2)
	feed := alerts.NewFeedUseCase(repo)

	require.NoError(t, feed.Delete("a"))
	assert.Len(t, repo.notifications, 1)
}
