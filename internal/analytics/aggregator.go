package analytics

import (
	"context"
	"errors"
	"fmt"

	"shortlink/internal/domain"
	"shortlink/internal/repository"
)

var ErrLinkNotFound = errors.New("link not found")

type Store interface {
	List(ctx context.Context) ([]domain.ShortLink, error)
	FindByID(ctx context.Context, id int64) (*domain.ShortLink, error)
	ListClickEvents(ctx context.Context) ([]domain.ClickEvent, error)
	ClickEventsByLinkID(ctx context.Context, linkID int64) ([]domain.ClickEvent, error)
}

// Aggregator computes statistics by scanning the store on every call.
// Links and events are read separately, so a summary taken during
// concurrent writes may mix states.
type Aggregator struct {
	store Store
}

func NewAggregator(store Store) *Aggregator {
	return &Aggregator{store: store}
}

// Summarize reports totals over all links and click events. TotalClicks sums
// the per-link counters and is not reconciled with the number of events.
func (a *Aggregator) Summarize(ctx context.Context) (*domain.AnalyticsSummary, error) {
	links, err := a.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	events, err := a.store.ListClickEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list click events: %w", err)
	}

	summary := &domain.AnalyticsSummary{
		TotalLinks:    len(links),
		ReferrerStats: make(map[string]int),
	}
	for _, link := range links {
		summary.TotalClicks += link.Clicks
		if link.Active {
			summary.ActiveLinks++
		}
	}

	for _, event := range events {
		switch event.Device {
		case domain.DeviceMobile:
			summary.DeviceStats.Mobile++
		case domain.DeviceDesktop:
			summary.DeviceStats.Desktop++
		case domain.DeviceTablet:
			summary.DeviceStats.Tablet++
		}
		summary.ReferrerStats[NormalizeReferrer(event.Referrer)]++
	}

	return summary, nil
}

func (a *Aggregator) Detail(ctx context.Context, id int64) (*domain.LinkAnalytics, error) {
	link, err := a.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, fmt.Errorf("failed to get link: %w", err)
	}

	events, err := a.store.ClickEventsByLinkID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list click events: %w", err)
	}
	if events == nil {
		events = []domain.ClickEvent{}
	}

	return &domain.LinkAnalytics{URL: *link, ClickEvents: events}, nil
}
