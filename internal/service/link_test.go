package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shortlink/internal/domain"
	"shortlink/internal/metrics"
	"shortlink/internal/repository"
	"shortlink/internal/service"
	"shortlink/internal/service/mocks"
)

type testDeps struct {
	repo     *mocks.MockRepository
	slugs    *mocks.MockSlugGenerator
	clicks   *mocks.MockClickRecorder
	recorder *mocks.MockBusinessRecorder
}

func newTestService(t *testing.T) (*service.LinkService, testDeps) {
	deps := testDeps{
		repo:     mocks.NewMockRepository(t),
		slugs:    mocks.NewMockSlugGenerator(t),
		clicks:   mocks.NewMockClickRecorder(t),
		recorder: mocks.NewMockBusinessRecorder(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewLinkService(deps.repo, deps.slugs, deps.clicks, deps.recorder, logger)
	return svc, deps
}

// CreateLink tests

func TestCreateLink_GeneratedSlug(t *testing.T) {
	svc, d := newTestService(t)

	d.repo.EXPECT().NextID(mock.Anything).Return(int64(42), nil)
	d.slugs.EXPECT().Generate(int64(42)).Return("xyz789ab", nil)
	d.repo.EXPECT().FindBySlug(mock.Anything, "xyz789ab").Return(nil, repository.ErrNotFound)
	d.repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(l *domain.ShortLink) bool {
		return l.ID == 42 && l.Slug == "xyz789ab" && l.Active && l.Clicks == 0
	})).Return(nil)
	d.recorder.EXPECT().RecordEvent(metrics.EventLinkCreated).Return().Once()

	link, err := svc.CreateLink(context.Background(), &domain.NewLink{OriginalURL: "https://example.com"})
	require.NoError(t, err)

	assert.Equal(t, int64(42), link.ID)
	assert.Equal(t, "xyz789ab", link.Slug)
	assert.Equal(t, "https://example.com", link.OriginalURL)
	assert.False(t, link.CreatedAt.IsZero())
}

func TestCreateLink_RequestedSlugSkipsGenerator(t *testing.T) {
	svc, d := newTestService(t)
	expires := time.Now().Add(time.Hour).UTC()

	d.repo.EXPECT().NextID(mock.Anything).Return(int64(1), nil)
	d.repo.EXPECT().FindBySlug(mock.Anything, "docs").Return(nil, repository.ErrNotFound)
	d.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	d.recorder.EXPECT().RecordEvent(metrics.EventLinkCreated).Return()

	link, err := svc.CreateLink(context.Background(), &domain.NewLink{
		OriginalURL: "https://example.com/docs",
		Slug:        "docs",
		ExpiresAt:   &expires,
	})
	require.NoError(t, err)
	assert.Equal(t, "docs", link.Slug)
	require.NotNil(t, link.ExpiresAt)
	assert.True(t, expires.Equal(*link.ExpiresAt))
}

func TestCreateLink_SlugExists(t *testing.T) {
	svc, d := newTestService(t)

	d.repo.EXPECT().NextID(mock.Anything).Return(int64(2), nil)
	d.repo.EXPECT().FindBySlug(mock.Anything, "docs").Return(&domain.ShortLink{ID: 1, Slug: "docs"}, nil)

	_, err := svc.CreateLink(context.Background(), &domain.NewLink{OriginalURL: "https://example.com", Slug: "docs"})
	assert.ErrorIs(t, err, service.ErrSlugConflict)
}

func TestCreateLink_SlugTakenOnInsert(t *testing.T) {
	svc, d := newTestService(t)

	d.repo.EXPECT().NextID(mock.Anything).Return(int64(2), nil)
	d.repo.EXPECT().FindBySlug(mock.Anything, "docs").Return(nil, repository.ErrNotFound)
	d.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrSlugTaken)

	_, err := svc.CreateLink(context.Background(), &domain.NewLink{OriginalURL: "https://example.com", Slug: "docs"})
	assert.ErrorIs(t, err, service.ErrSlugConflict)
}

func TestCreateLink_NextIDError(t *testing.T) {
	svc, d := newTestService(t)
	expectedErr := errors.New("db connection error")

	d.repo.EXPECT().NextID(mock.Anything).Return(int64(0), expectedErr)

	_, err := svc.CreateLink(context.Background(), &domain.NewLink{OriginalURL: "https://example.com"})
	assert.ErrorIs(t, err, expectedErr)
}

func TestCreateLink_GenerateError(t *testing.T) {
	svc, d := newTestService(t)
	expectedErr := errors.New("alphabet exhausted")

	d.repo.EXPECT().NextID(mock.Anything).Return(int64(1), nil)
	d.slugs.EXPECT().Generate(int64(1)).Return("", expectedErr)

	_, err := svc.CreateLink(context.Background(), &domain.NewLink{OriginalURL: "https://example.com"})
	assert.ErrorIs(t, err, expectedErr)
}

func TestCreateLink_LookupError(t *testing.T) {
	svc, d := newTestService(t)
	expectedErr := errors.New("timeout")

	d.repo.EXPECT().NextID(mock.Anything).Return(int64(1), nil)
	d.repo.EXPECT().FindBySlug(mock.Anything, "docs").Return(nil, expectedErr)

	_, err := svc.CreateLink(context.Background(), &domain.NewLink{OriginalURL: "https://example.com", Slug: "docs"})
	assert.ErrorIs(t, err, expectedErr)
	assert.NotErrorIs(t, err, service.ErrSlugConflict)
}

// Lookup tests

func TestGetLinkBySlug_NotFound(t *testing.T) {
	svc, d := newTestService(t)
	d.repo.EXPECT().FindBySlug(mock.Anything, "nope").Return(nil, repository.ErrNotFound)

	_, err := svc.GetLinkBySlug(context.Background(), "nope")
	assert.ErrorIs(t, err, service.ErrLinkNotFound)
}

func TestGetLinkByID_StoreError(t *testing.T) {
	svc, d := newTestService(t)
	expectedErr := errors.New("broken pipe")
	d.repo.EXPECT().FindByID(mock.Anything, int64(5)).Return(nil, expectedErr)

	_, err := svc.GetLinkByID(context.Background(), 5)
	assert.ErrorIs(t, err, expectedErr)
	assert.NotErrorIs(t, err, service.ErrLinkNotFound)
}

func TestListLinks_EmptyIsNotNil(t *testing.T) {
	svc, d := newTestService(t)
	d.repo.EXPECT().List(mock.Anything).Return(nil, nil)

	links, err := svc.ListLinks(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, links)
	assert.Empty(t, links)
}

// DeleteLink tests

func TestDeleteLink_Success(t *testing.T) {
	svc, d := newTestService(t)
	d.repo.EXPECT().Delete(mock.Anything, int64(3)).Return(nil)
	d.recorder.EXPECT().RecordEvent(metrics.EventLinkDeleted).Return().Once()

	assert.NoError(t, svc.DeleteLink(context.Background(), 3))
}

func TestDeleteLink_NotFound(t *testing.T) {
	svc, d := newTestService(t)
	d.repo.EXPECT().Delete(mock.Anything, int64(3)).Return(repository.ErrNotFound)

	assert.ErrorIs(t, svc.DeleteLink(context.Background(), 3), service.ErrLinkNotFound)
}

func TestSetActive_NotFound(t *testing.T) {
	svc, d := newTestService(t)
	d.repo.EXPECT().SetActive(mock.Anything, int64(9), false).Return(nil, repository.ErrNotFound)

	_, err := svc.SetActive(context.Background(), 9, false)
	assert.ErrorIs(t, err, service.ErrLinkNotFound)
}

// Visit tests

func TestVisit_Success(t *testing.T) {
	svc, d := newTestService(t)
	link := &domain.ShortLink{ID: 7, Slug: "go", OriginalURL: "https://go.dev", Active: true}
	counted := *link
	counted.Clicks = 1
	event := &domain.ClickEvent{ID: 1, ShortURLID: 7, Device: domain.DeviceMobile}

	var order []string
	d.repo.EXPECT().FindBySlug(mock.Anything, "go").Return(link, nil)
	d.repo.EXPECT().IncrementClicks(mock.Anything, int64(7)).
		Run(func(context.Context, int64) { order = append(order, "increment") }).
		Return(&counted, nil)
	d.clicks.EXPECT().Record(mock.Anything, int64(7), "https://x.com/post", "Android").
		Run(func(context.Context, int64, string, string) { order = append(order, "record") }).
		Return(event, nil)

	got, gotEvent, err := svc.Visit(context.Background(), "go", domain.Visit{Referrer: "https://x.com/post", UserAgent: "Android"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), got.Clicks)
	assert.Equal(t, event, gotEvent)
	assert.Equal(t, []string{"increment", "record"}, order)
}

func TestVisit_NotFound(t *testing.T) {
	svc, d := newTestService(t)
	d.repo.EXPECT().FindBySlug(mock.Anything, "missing").Return(nil, repository.ErrNotFound)

	_, _, err := svc.Visit(context.Background(), "missing", domain.Visit{})
	assert.ErrorIs(t, err, service.ErrLinkNotFound)
}

func TestVisit_Inactive(t *testing.T) {
	svc, d := newTestService(t)
	d.repo.EXPECT().FindBySlug(mock.Anything, "off").Return(&domain.ShortLink{ID: 1, Slug: "off"}, nil)

	_, _, err := svc.Visit(context.Background(), "off", domain.Visit{})
	assert.ErrorIs(t, err, service.ErrLinkInactive)
}

func TestVisit_Expired(t *testing.T) {
	svc, d := newTestService(t)
	past := time.Now().Add(-time.Minute)
	d.repo.EXPECT().FindBySlug(mock.Anything, "old").Return(&domain.ShortLink{ID: 1, Slug: "old", Active: true, ExpiresAt: &past}, nil)

	_, _, err := svc.Visit(context.Background(), "old", domain.Visit{})
	assert.ErrorIs(t, err, service.ErrLinkExpired)
}

func TestVisit_RecordError(t *testing.T) {
	svc, d := newTestService(t)
	expectedErr := errors.New("event store down")
	link := &domain.ShortLink{ID: 1, Slug: "go", Active: true}

	d.repo.EXPECT().FindBySlug(mock.Anything, "go").Return(link, nil)
	d.repo.EXPECT().IncrementClicks(mock.Anything, int64(1)).Return(link, nil)
	d.clicks.EXPECT().Record(mock.Anything, int64(1), "", "").Return(nil, expectedErr)

	_, _, err := svc.Visit(context.Background(), "go", domain.Visit{})
	assert.ErrorIs(t, err, expectedErr)
}

func TestVisit_LinkDeletedBeforeIncrement(t *testing.T) {
	svc, d := newTestService(t)
	link := &domain.ShortLink{ID: 1, Slug: "go", Active: true}

	d.repo.EXPECT().FindBySlug(mock.Anything, "go").Return(link, nil)
	d.repo.EXPECT().IncrementClicks(mock.Anything, int64(1)).Return(nil, repository.ErrNotFound)

	_, _, err := svc.Visit(context.Background(), "go", domain.Visit{})
	assert.ErrorIs(t, err, service.ErrLinkNotFound)
}
