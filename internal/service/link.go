package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"shortlink/internal/domain"
	"shortlink/internal/metrics"
	"shortlink/internal/repository"
)

var (
	ErrLinkNotFound = errors.New("link not found")
	ErrSlugConflict = errors.New("slug already in use")
	ErrLinkInactive = errors.New("link is inactive")
	ErrLinkExpired  = errors.New("link has expired")
)

type LinkService struct {
	repo     Repository
	slugs    SlugGenerator
	clicks   ClickRecorder
	recorder BusinessRecorder
	logger   *slog.Logger
	now      func() time.Time
}

func NewLinkService(
	repo Repository,
	slugs SlugGenerator,
	clicks ClickRecorder,
	recorder BusinessRecorder,
	logger *slog.Logger,
) *LinkService {
	return &LinkService{
		repo:     repo,
		slugs:    slugs,
		clicks:   clicks,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *LinkService) ListLinks(ctx context.Context) ([]domain.ShortLink, error) {
	links, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	if links == nil {
		links = []domain.ShortLink{}
	}
	return links, nil
}

// CreateLink stores a validated link. Without a requested slug one is
// derived from the link id. Either way the slug is checked once before the
// insert and the store rejects a slug that was taken in between.
func (s *LinkService) CreateLink(ctx context.Context, in *domain.NewLink) (*domain.ShortLink, error) {
	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get next id: %w", err)
	}

	slug := in.Slug
	if slug == "" {
		slug, err = s.slugs.Generate(id)
		if err != nil {
			return nil, fmt.Errorf("failed to generate slug: %w", err)
		}
	}

	_, err = s.repo.FindBySlug(ctx, slug)
	switch {
	case err == nil:
		return nil, ErrSlugConflict
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}

	link := &domain.ShortLink{
		ID:          id,
		OriginalURL: in.OriginalURL,
		Slug:        slug,
		Active:      true,
		CreatedAt:   s.now().UTC(),
		ExpiresAt:   in.ExpiresAt,
	}
	if err := s.repo.Create(ctx, link); err != nil {
		if errors.Is(err, repository.ErrSlugTaken) {
			return nil, ErrSlugConflict
		}
		return nil, fmt.Errorf("failed to create link: %w", err)
	}

	s.recorder.RecordEvent(metrics.EventLinkCreated)
	s.logger.Debug("link created", slog.Int64("id", link.ID), slog.String("slug", link.Slug))

	return link, nil
}

func (s *LinkService) GetLinkBySlug(ctx context.Context, slug string) (*domain.ShortLink, error) {
	link, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, s.wrapLookup(err)
	}
	return link, nil
}

func (s *LinkService) GetLinkByID(ctx context.Context, id int64) (*domain.ShortLink, error) {
	link, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.wrapLookup(err)
	}
	return link, nil
}

func (s *LinkService) DeleteLink(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrLinkNotFound
		}
		return fmt.Errorf("failed to delete link: %w", err)
	}
	s.recorder.RecordEvent(metrics.EventLinkDeleted)
	return nil
}

func (s *LinkService) SetActive(ctx context.Context, id int64, active bool) (*domain.ShortLink, error) {
	link, err := s.repo.SetActive(ctx, id, active)
	if err != nil {
		return nil, s.wrapLookup(err)
	}
	return link, nil
}

// Visit resolves a slug for a redirect. Inactive and expired links are
// rejected without touching the counter or the event log. On success the
// counter is incremented before the click event is appended; the two
// writes are independent and a failure between them leaves the counter
// ahead of the events.
func (s *LinkService) Visit(ctx context.Context, slug string, visit domain.Visit) (*domain.ShortLink, *domain.ClickEvent, error) {
	link, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, nil, s.wrapLookup(err)
	}

	if !link.Active {
		return nil, nil, ErrLinkInactive
	}
	if link.Expired(s.now()) {
		return nil, nil, ErrLinkExpired
	}

	updated, err := s.repo.IncrementClicks(ctx, link.ID)
	if err != nil {
		return nil, nil, s.wrapLookup(err)
	}

	event, err := s.clicks.Record(ctx, link.ID, visit.Referrer, visit.UserAgent)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to record click: %w", err)
	}

	return updated, event, nil
}

func (s *LinkService) wrapLookup(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrLinkNotFound
	}
	return fmt.Errorf("failed to get link: %w", err)
}
