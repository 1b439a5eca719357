package domain

type DeviceStats struct {
	Mobile  int `json:"mobile"`
	Desktop int `json:"desktop"`
	Tablet  int `json:"tablet"`
}

type AnalyticsSummary struct {
	TotalClicks   int64          `json:"totalClicks"`
	TotalLinks    int            `json:"totalLinks"`
	ActiveLinks   int            `json:"activeLinks"`
	DeviceStats   DeviceStats    `json:"deviceStats"`
	ReferrerStats map[string]int `json:"referrerStats"`
}

type LinkAnalytics struct {
	URL         ShortLink    `json:"url"`
	ClickEvents []ClickEvent `json:"clickEvents"`
}
