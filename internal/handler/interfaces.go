package handler

//go:generate go tool mockery

import (
	"context"

	"shortlink/internal/domain"
)

type LinkService interface {
	ListLinks(ctx context.Context) ([]domain.ShortLink, error)
	CreateLink(ctx context.Context, in *domain.NewLink) (*domain.ShortLink, error)
	GetLinkBySlug(ctx context.Context, slug string) (*domain.ShortLink, error)
	DeleteLink(ctx context.Context, id int64) error
	SetActive(ctx context.Context, id int64, active bool) (*domain.ShortLink, error)
	Visit(ctx context.Context, slug string, visit domain.Visit) (*domain.ShortLink, *domain.ClickEvent, error)
}

type AnalyticsService interface {
	Summarize(ctx context.Context) (*domain.AnalyticsSummary, error)
	Detail(ctx context.Context, id int64) (*domain.LinkAnalytics, error)
}

type LinkValidator interface {
	ValidateCreate(req domain.CreateLinkRequest) (*domain.NewLink, error)
}

type BusinessRecorder interface {
	RecordEvent(event string)
	RecordClick(device domain.Device, referrer string)
}
