package marquee

import "regexp"

// MobileBreakpoint is the viewport width, in px, at or below which the loop leaves
// scrolling to the browser.
const MobileBreakpoint = 768

var mobileUA = regexp.MustCompile(`(?i)Android|webOS|iPhone|iPad|iPod|BlackBerry|IEMobile|Opera Mini`)

// DeviceHints are the signals used to detect a touch form factor.
type DeviceHints struct {
	ViewportWidth  float64
	UserAgent      string
	TouchEvents    bool
	MaxTouchPoints int
}

// IsMobile reports whether any signal points at a mobile or touch device.
// A zero viewport width means unknown and is not a signal.
func IsMobile(h DeviceHints) bool {
	return (h.ViewportWidth > 0 && h.ViewportWidth <= MobileBreakpoint) ||
		mobileUA.MatchString(h.UserAgent) ||
		h.TouchEvents ||
		h.MaxTouchPoints > 0
}
