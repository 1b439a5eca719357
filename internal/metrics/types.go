package metrics

import "time"

// Business event names.
const (
	EventRedirect     = "redirect"
	EventLinkNotFound = "link_not_found"
	EventLinkGone     = "link_gone"
	EventLinkCreated  = "link_created"
	EventLinkDeleted  = "link_deleted"
)

type HTTPMetric struct {
	Method     string
	Path       string
	StatusCode int
	Duration   time.Duration
	ClientIP   string
	Error      string
}
