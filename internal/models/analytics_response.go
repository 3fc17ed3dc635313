package models

import (
	"time"

	"minilink/internal/entities"
)

// DailyCount represents clicks for a single UTC day
type DailyCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// PopularLink represents one entry of the top-links ranking
type PopularLink struct {
	ShortCode   string    `json:"short_code"`
	OriginalURL string    `json:"original_url"`
	Clicks      int       `json:"clicks"`
	CreatedAt   time.Time `json:"created_at"`
}

// AnalyticsSnapshot represents aggregate click statistics, recomputed on
// demand from the click log and link table
type AnalyticsSnapshot struct {
	TotalClicks   int            `json:"total_clicks"`
	DeviceStats   map[string]int `json:"device_stats"`
	GeoStats      map[string]int `json:"geo_stats"`
	ReferrerStats map[string]int `json:"referrer_stats"`
	DailyClicks   []DailyCount   `json:"daily_clicks"`
	PopularLinks  []PopularLink  `json:"popular_links"`
}

// AdminAnalyticsResponse represents the admin dashboard overview
type AdminAnalyticsResponse struct {
	TotalLinks    int              `json:"total_links"`
	TotalClicks   int              `json:"total_clicks"`
	TotalUsers    int              `json:"total_users"`
	LinksToday    int              `json:"links_today"`
	ClicksToday   int              `json:"clicks_today"`
	DeviceStats   map[string]int   `json:"device_stats"`
	GeoStats      map[string]int   `json:"geo_stats"`
	ReferrerStats map[string]int   `json:"referrer_stats"`
	PopularLinks  []PopularLink    `json:"popular_links"`
	RecentClicks  []entities.Click `json:"recent_clicks"` // last 50, newest first
	RecentLinks   []entities.Link  `json:"recent_links"`  // last 10, newest first
}
