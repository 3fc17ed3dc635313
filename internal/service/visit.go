package service

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"minilink/internal/entities"
)

// Visit carries the raw request metadata for one redirect attempt.
// Controllers fill it from headers; services classify it.
type Visit struct {
	UserAgent string
	Referrer  string // full Referer header value
	Country   string // e.g. from a CDN geo header, may be empty
}

// Device categories
const (
	DeviceMobile  = "Mobile"
	DeviceTablet  = "Tablet"
	DeviceDesktop = "Desktop"
)

// ReferrerDirect is the referrer domain recorded when no Referer header is
// present
const ReferrerDirect = "Direct"

// CountryUnknown is recorded when the visit carries no geo information
const CountryUnknown = "Unknown"

var tabletPattern = regexp.MustCompile(`(?i)tablet|ipad`)
var mobilePattern = regexp.MustCompile(`(?i)mobile|android|iphone`)

// DeviceType classifies a User-Agent string into Mobile, Tablet or Desktop
func DeviceType(userAgent string) string {
	switch {
	case tabletPattern.MatchString(userAgent):
		return DeviceTablet
	case mobilePattern.MatchString(userAgent):
		return DeviceMobile
	default:
		return DeviceDesktop
	}
}

// ReferrerDomain extracts the host from a Referer header value, falling
// back to "Direct" when the header is missing or unparseable
func ReferrerDomain(referrer string) string {
	if referrer == "" {
		return ReferrerDirect
	}
	u, err := url.Parse(referrer)
	if err != nil || u.Hostname() == "" {
		return ReferrerDirect
	}
	return u.Hostname()
}

// classifyVisit turns raw visit metadata into a click event for a code
func classifyVisit(shortCode string, visit Visit) *entities.Click {
	country := strings.TrimSpace(visit.Country)
	if country == "" {
		country = CountryUnknown
	}
	return &entities.Click{
		ShortCode:      shortCode,
		Device:         DeviceType(visit.UserAgent),
		Country:        country,
		ReferrerDomain: ReferrerDomain(visit.Referrer),
		Timestamp:      time.Now().UTC(),
	}
}
