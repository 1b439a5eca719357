package domain

import "time"

type ShortLink struct {
	ID          int64      `json:"id" gorm:"primaryKey"`
	OriginalURL string     `json:"originalUrl" gorm:"type:text;not null"`
	Slug        string     `json:"slug" gorm:"size:50;uniqueIndex;not null"`
	Clicks      int64      `json:"clicks" gorm:"not null"`
	Active      bool       `json:"active" gorm:"not null"`
	CreatedAt   time.Time  `json:"createdAt" gorm:"not null"`
	ExpiresAt   *time.Time `json:"expiresAt"`
}

func (ShortLink) TableName() string {
	return "short_links"
}

// Expired reports whether the link has an expiry that lies before now.
func (l *ShortLink) Expired(now time.Time) bool {
	return l.ExpiresAt != nil && l.ExpiresAt.Before(now)
}

type CreateLinkRequest struct {
	OriginalURL string  `json:"originalUrl"`
	Slug        string  `json:"slug"`
	ExpiresAt   *string `json:"expiresAt"`
}

type UpdateLinkRequest struct {
	Active *bool `json:"active"`
}

// NewLink is a validated create request ready to be stored.
type NewLink struct {
	OriginalURL string
	Slug        string
	ExpiresAt   *time.Time
}
