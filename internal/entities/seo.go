package entities

import "time"

// SEOSettings is a singleton settings row used to render meta tags,
// robots.txt and sitemap.xml
type SEOSettings struct {
	ID                 string    `json:"id"` // UUID
	SiteName           string    `json:"site_name"`
	SiteDescription    string    `json:"site_description"`
	SiteKeywords       string    `json:"site_keywords"`
	SiteURL            string    `json:"site_url"`
	DefaultTitle       string    `json:"default_title"`
	DefaultDescription string    `json:"default_description"`
	TwitterHandle      string    `json:"twitter_handle"`
	OGImage            string    `json:"og_image"`
	UpdatedAt          time.Time `json:"updated_at"`
}
