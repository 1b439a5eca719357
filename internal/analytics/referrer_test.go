package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shortlink/internal/analytics"
)

func TestNormalizeReferrer(t *testing.T) {
	str := func(s string) *string { return &s }

	tests := []struct {
		name     string
		referrer *string
		want     string
	}{
		{"absent", nil, "direct"},
		{"empty", str(""), "direct"},
		{"facebook", str("https://www.facebook.com/some/post"), "facebook"},
		{"facebook mobile", str("https://m.facebook.com/"), "facebook"},
		{"twitter", str("https://twitter.com/user/status/1"), "twitter"},
		{"x.com", str("https://x.com/user"), "twitter"},
		{"t.co is other", str("https://t.co/abc"), "other"},
		{"instagram", str("https://www.instagram.com/p/xyz"), "instagram"},
		{"linkedin uppercase", str("HTTPS://WWW.LINKEDIN.COM/feed"), "linkedin"},
		{"search engine", str("https://www.google.com/search?q=x"), "other"},
		{"not a url", str("not a url"), "other"},
		{"bare domain", str("facebook.com"), "facebook"},
		{"literal direct", str("direct"), "direct"},
		{"http without host", str("http:///path"), "other"},
		{"scheme only", str("http://"), "other"},
		{"https scheme only", str("https://"), "other"},
		{"http prefix but no scheme", str("httpbin"), "other"},
		{"malformed url", str("http://[::1"), "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, analytics.NormalizeReferrer(tt.referrer))
		})
	}
}
