package analytics

import (
	"net/url"
	"strings"
)

const (
	ReferrerDirect    = "direct"
	ReferrerFacebook  = "facebook"
	ReferrerTwitter   = "twitter"
	ReferrerInstagram = "instagram"
	ReferrerLinkedIn  = "linkedin"
	ReferrerOther     = "other"
)

// NormalizeReferrer buckets a raw Referer header into a coarse source
// category. Unparseable values land in "other".
func NormalizeReferrer(referrer *string) string {
	if referrer == nil || *referrer == "" {
		return ReferrerDirect
	}

	ref := strings.ToLower(*referrer)
	domain := ref
	if strings.HasPrefix(ref, "http") {
		u, err := url.Parse(ref)
		if err != nil || u.Scheme == "" || u.Hostname() == "" {
			return ReferrerOther
		}
		domain = u.Hostname()
	}

	switch {
	case strings.Contains(domain, "facebook"):
		return ReferrerFacebook
	case strings.Contains(domain, "twitter"), strings.Contains(domain, "x.com"):
		return ReferrerTwitter
	case strings.Contains(domain, "instagram"):
		return ReferrerInstagram
	case strings.Contains(domain, "linkedin"):
		return ReferrerLinkedIn
	case domain == "", domain == ReferrerDirect:
		return ReferrerDirect
	default:
		return ReferrerOther
	}
}
