package loadtest

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"sync/atomic"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

// Visitor profiles rotated through redirect targets so the analytics
// endpoints see a spread of devices and referrers.
var (
	userAgents = []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/124.0 Safari/537.36",
		"Mozilla/5.0 (iPhone; CPU iPhone OS 17_4 like Mac OS X) AppleWebKit/605.1.15 Mobile/15E148",
		"Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 Chrome/124.0 Mobile Safari/537.36",
		"Mozilla/5.0 (iPad; CPU OS 17_4 like Mac OS X) AppleWebKit/605.1.15 Mobile/15E148",
	}
	referrers = []string{
		"",
		"https://www.facebook.com/",
		"https://x.com/home",
		"https://www.linkedin.com/feed/",
		"https://www.instagram.com/",
		"https://news.ycombinator.com/",
	}
)

var urlCounter atomic.Uint64

func CreateTargeter(baseURL string) vegeta.Targeter {
	header := http.Header{"Content-Type": []string{"application/json"}}
	url := baseURL + "/api/urls"

	return func(t *vegeta.Target) error {
		t.Method = http.MethodPost
		t.URL = url
		t.Header = header
		t.Body = fmt.Appendf(nil, `{"originalUrl":"https://example.com/%d"}`, urlCounter.Add(1))
		return nil
	}
}

func RedirectTargeter(baseURL string, slugs []string) vegeta.Targeter {
	return func(t *vegeta.Target) error {
		slug := slugs[rand.IntN(len(slugs))]
		t.Method = http.MethodGet
		t.URL = baseURL + "/api/r/" + slug
		t.Header = http.Header{"User-Agent": []string{userAgents[rand.IntN(len(userAgents))]}}
		if ref := referrers[rand.IntN(len(referrers))]; ref != "" {
			t.Header.Set("Referer", ref)
		}
		return nil
	}
}

func MixedTargeter(baseURL string, slugs []string, createRatio float64) vegeta.Targeter {
	createTarget := CreateTargeter(baseURL)
	redirectTarget := RedirectTargeter(baseURL, slugs)

	return func(t *vegeta.Target) error {
		if rand.Float64() < createRatio {
			return createTarget(t)
		}
		return redirectTarget(t)
	}
}
