package domain

import "time"

type Device string

const (
	DeviceMobile  Device = "mobile"
	DeviceDesktop Device = "desktop"
	DeviceTablet  Device = "tablet"
)

// ClickEvent is never modified after it is stored.
type ClickEvent struct {
	ID         int64     `json:"id"`
	ShortURLID int64     `json:"shortUrlId"`
	Referrer   *string   `json:"referrer"`
	UserAgent  *string   `json:"userAgent"`
	Device     Device    `json:"device"`
	Timestamp  time.Time `json:"timestamp"`
}

// Visit carries the raw request attributes of one redirect.
type Visit struct {
	Referrer  string
	UserAgent string
}
