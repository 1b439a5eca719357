package clicks

import (
	"strings"

	"shortlink/internal/domain"
)

var mobileMarkers = []string{"mobile", "android", "iphone", "ipod"}

// ClassifyDevice guesses the device category from a user agent string.
// Tablets are checked first because iPad agents also mention "Mobile".
func ClassifyDevice(userAgent string) domain.Device {
	ua := strings.ToLower(userAgent)
	if strings.Contains(ua, "ipad") {
		return domain.DeviceTablet
	}
	for _, marker := range mobileMarkers {
		if strings.Contains(ua, marker) {
			return domain.DeviceMobile
		}
	}
	return domain.DeviceDesktop
}
