package validation

import (
	"net/url"
	"strings"
)

var blockedProtocols = map[string]bool{
	"javascript": true,
	"data":       true,
	"file":       true,
	"vbscript":   true,
	"about":      true,
	"blob":       true,
}

type URLValidator struct {
	maxLength int
}

func NewURLValidator(maxLength int) *URLValidator {
	return &URLValidator{maxLength: maxLength}
}

// ValidateURL accepts absolute URLs with a host and a scheme that cannot
// execute in the visitor's browser.
func (v *URLValidator) ValidateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return ErrEmptyURL
	}

	if v.maxLength > 0 && len(rawURL) > v.maxLength {
		return ErrURLTooLong
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ErrInvalidURLFormat
	}

	scheme := strings.ToLower(parsed.Scheme)
	if blockedProtocols[scheme] {
		return ErrUnsafeProtocol
	}
	if scheme == "" || parsed.Host == "" {
		return ErrInvalidURLFormat
	}

	return nil
}
