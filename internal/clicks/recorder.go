package clicks

import (
	"context"
	"fmt"
	"time"

	"shortlink/internal/domain"
)

type Store interface {
	CreateClickEvent(ctx context.Context, event *domain.ClickEvent) error
}

// Recorder appends click events. It does not touch the link's click
// counter; the caller increments that separately.
type Recorder struct {
	store Store
	now   func() time.Time
}

func NewRecorder(store Store) *Recorder {
	return &Recorder{store: store, now: time.Now}
}

func (r *Recorder) Record(ctx context.Context, shortURLID int64, referrer, userAgent string) (*domain.ClickEvent, error) {
	event := &domain.ClickEvent{
		ShortURLID: shortURLID,
		Referrer:   optional(referrer),
		UserAgent:  optional(userAgent),
		Device:     ClassifyDevice(userAgent),
		Timestamp:  r.now().UTC(),
	}

	if err := r.store.CreateClickEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to record click: %w", err)
	}
	return event, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
