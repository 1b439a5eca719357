package service

//go:generate go tool mockery

import (
	"context"

	"shortlink/internal/domain"
)

type Repository interface {
	NextID(ctx context.Context) (int64, error)
	Create(ctx context.Context, link *domain.ShortLink) error
	FindByID(ctx context.Context, id int64) (*domain.ShortLink, error)
	FindBySlug(ctx context.Context, slug string) (*domain.ShortLink, error)
	List(ctx context.Context) ([]domain.ShortLink, error)
	IncrementClicks(ctx context.Context, id int64) (*domain.ShortLink, error)
	SetActive(ctx context.Context, id int64, active bool) (*domain.ShortLink, error)
	Delete(ctx context.Context, id int64) error
}

type SlugGenerator interface {
	Generate(id int64) (string, error)
}

type ClickRecorder interface {
	Record(ctx context.Context, shortURLID int64, referrer, userAgent string) (*domain.ClickEvent, error)
}

type BusinessRecorder interface {
	RecordEvent(event string)
}
