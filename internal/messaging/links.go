package messaging

import (
	"net/url"
	"regexp"
	"strings"
)

// LinkBuilder turns a destination number and message text into a WhatsApp URI.
type LinkBuilder func(phone, text string) string

var mobileUA = regexp.MustCompile(`(?i)iPhone|iPad|iPod|Android`)

// encodeURIComponent escapes s the way browsers do for a URI component.
func encodeURIComponent(s string) string {
	escaped := url.QueryEscape(s)
	return componentReplacer.Replace(escaped)
}

var componentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// MobileLink opens the WhatsApp app directly.
func MobileLink(phone, text string) string {
	return "whatsapp://send?phone=" + phone + "&text=" + encodeURIComponent(text)
}

// WebLink opens WhatsApp through wa.me, which works on any browser.
func WebLink(phone, text string) string {
	return "https://wa.me/" + phone + "?text=" + encodeURIComponent(text)
}

func IsMobileUserAgent(ua string) bool {
	return mobileUA.MatchString(ua)
}

// LinkForUserAgent picks MobileLink for phones and tablets and WebLink otherwise.
func LinkForUserAgent(ua string) LinkBuilder {
	if IsMobileUserAgent(ua) {
		return MobileLink
	}
	return WebLink
}
