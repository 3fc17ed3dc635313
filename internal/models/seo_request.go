package models

// UpdateSEORequest represents the admin request to replace the site's SEO
// settings
type UpdateSEORequest struct {
	SiteName           string `json:"site_name" binding:"required"`
	SiteDescription    string `json:"site_description"`
	SiteKeywords       string `json:"site_keywords"`
	SiteURL            string `json:"site_url" binding:"required,url"`
	DefaultTitle       string `json:"default_title"`
	DefaultDescription string `json:"default_description"`
	TwitterHandle      string `json:"twitter_handle"`
	OGImage            string `json:"og_image"`
}
