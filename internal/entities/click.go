package entities

import "time"

// Click represents a single recorded visit to a short code.
// Rows are append-only; they are never updated and never deleted,
// not even when the parent link is removed.
type Click struct {
	ID             string    `json:"id"` // UUID
	LinkID         string    `json:"link_id"`
	ShortCode      string    `json:"short_code"`
	Device         string    `json:"device"`  // Mobile, Tablet or Desktop
	Country        string    `json:"country"` // full country name, "Unknown" when unresolvable
	ReferrerDomain string    `json:"referrer_domain"`
	Timestamp      time.Time `json:"timestamp"`
}
