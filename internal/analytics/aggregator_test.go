package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/analytics"
	"shortlink/internal/domain"
	"shortlink/internal/repository"
)

func seedLink(t *testing.T, s *repository.MemoryStore, slug string, active bool) *domain.ShortLink {
	t.Helper()
	ctx := context.Background()
	id, err := s.NextID(ctx)
	require.NoError(t, err)
	link := &domain.ShortLink{
		ID:          id,
		OriginalURL: "https://example.com/" + slug,
		Slug:        slug,
		Active:      active,
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, s.Create(ctx, link))
	return link
}

func seedClick(t *testing.T, s *repository.MemoryStore, linkID int64, device domain.Device, referrer string, at time.Time) {
	t.Helper()
	event := &domain.ClickEvent{ShortURLID: linkID, Device: device, Timestamp: at}
	if referrer != "" {
		event.Referrer = &referrer
	}
	require.NoError(t, s.CreateClickEvent(context.Background(), event))
}

func TestAggregator_Summarize_Empty(t *testing.T) {
	agg := analytics.NewAggregator(repository.NewMemoryStore())

	summary, err := agg.Summarize(context.Background())
	require.NoError(t, err)

	assert.Zero(t, summary.TotalClicks)
	assert.Zero(t, summary.TotalLinks)
	assert.Zero(t, summary.ActiveLinks)
	assert.Equal(t, domain.DeviceStats{}, summary.DeviceStats)
	assert.NotNil(t, summary.ReferrerStats)
	assert.Empty(t, summary.ReferrerStats)
}

func TestAggregator_Summarize(t *testing.T) {
	store := repository.NewMemoryStore()
	ctx := context.Background()
	now := time.Now().UTC()

	a := seedLink(t, store, "a", true)
	b := seedLink(t, store, "b", true)
	seedLink(t, store, "c", false)

	past := now.Add(-time.Hour)
	expiredID, err := store.NextID(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Create(ctx, &domain.ShortLink{
		ID: expiredID, OriginalURL: "https://example.com/old", Slug: "expired",
		Active: true, CreatedAt: now, ExpiresAt: &past,
	}))

	for range 3 {
		_, err := store.IncrementClicks(ctx, a.ID)
		require.NoError(t, err)
	}
	_, err = store.IncrementClicks(ctx, b.ID)
	require.NoError(t, err)

	seedClick(t, store, a.ID, domain.DeviceMobile, "https://www.facebook.com/x", now)
	seedClick(t, store, a.ID, domain.DeviceDesktop, "", now)
	seedClick(t, store, a.ID, domain.DeviceTablet, "https://x.com/post", now)
	seedClick(t, store, b.ID, domain.DeviceDesktop, "not a url", now)
	seedClick(t, store, b.ID, domain.Device("console"), "", now)

	summary, err := analytics.NewAggregator(store).Summarize(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(4), summary.TotalClicks)
	assert.Equal(t, 4, summary.TotalLinks)
	assert.Equal(t, 3, summary.ActiveLinks)
	assert.Equal(t, domain.DeviceStats{Mobile: 1, Desktop: 2, Tablet: 1}, summary.DeviceStats)
	assert.Equal(t, map[string]int{
		"facebook": 1,
		"direct":   2,
		"twitter":  1,
		"other":    1,
	}, summary.ReferrerStats)
}

func TestAggregator_Summarize_CounterAndEventsDiverge(t *testing.T) {
	store := repository.NewMemoryStore()
	ctx := context.Background()
	link := seedLink(t, store, "diverge", true)

	_, err := store.IncrementClicks(ctx, link.ID)
	require.NoError(t, err)
	_, err = store.IncrementClicks(ctx, link.ID)
	require.NoError(t, err)
	seedClick(t, store, link.ID, domain.DeviceDesktop, "", time.Now())

	summary, err := analytics.NewAggregator(store).Summarize(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), summary.TotalClicks)
	assert.Equal(t, 1, summary.DeviceStats.Desktop)
}

func TestAggregator_Detail(t *testing.T) {
	store := repository.NewMemoryStore()
	now := time.Now().UTC()
	link := seedLink(t, store, "detail", true)
	other := seedLink(t, store, "other", true)

	seedClick(t, store, link.ID, domain.DeviceDesktop, "", now.Add(-2*time.Minute))
	seedClick(t, store, link.ID, domain.DeviceMobile, "", now)
	seedClick(t, store, other.ID, domain.DeviceMobile, "", now)

	detail, err := analytics.NewAggregator(store).Detail(context.Background(), link.ID)
	require.NoError(t, err)

	assert.Equal(t, "detail", detail.URL.Slug)
	require.Len(t, detail.ClickEvents, 2)
	assert.Equal(t, domain.DeviceMobile, detail.ClickEvents[0].Device)
	assert.Equal(t, domain.DeviceDesktop, detail.ClickEvents[1].Device)
}

func TestAggregator_Detail_NoEvents(t *testing.T) {
	store := repository.NewMemoryStore()
	link := seedLink(t, store, "quiet", true)

	detail, err := analytics.NewAggregator(store).Detail(context.Background(), link.ID)
	require.NoError(t, err)
	assert.NotNil(t, detail.ClickEvents)
	assert.Empty(t, detail.ClickEvents)
}

func TestAggregator_Detail_NotFound(t *testing.T) {
	_, err := analytics.NewAggregator(repository.NewMemoryStore()).Detail(context.Background(), 99)
	assert.True(t, errors.Is(err, analytics.ErrLinkNotFound))
}
