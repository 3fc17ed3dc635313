package service

import (
	"fmt"
	"strings"
	"time"

	"minilink/internal/entities"
	"minilink/internal/models"
	"minilink/internal/repository"
)

// SEOService defines the interface for site SEO settings and the derived
// robots.txt / sitemap.xml documents
type SEOService interface {
	GetSettings() (*entities.SEOSettings, error)
	UpdateSettings(req *models.UpdateSEORequest) (*entities.SEOSettings, error)
	RobotsTxt() (string, error)
	SitemapXML() (string, error)
}

type seoService struct {
	seoRepo  repository.SEORepository
	postRepo repository.PostRepository
}

// NewSEOService creates a new SEO service
func NewSEOService(seoRepo repository.SEORepository, postRepo repository.PostRepository) SEOService {
	return &seoService{
		seoRepo:  seoRepo,
		postRepo: postRepo,
	}
}

// GetSettings retrieves the current SEO settings
func (s *seoService) GetSettings() (*entities.SEOSettings, error) {
	return s.seoRepo.Get()
}

// UpdateSettings replaces the SEO settings (admin)
func (s *seoService) UpdateSettings(req *models.UpdateSEORequest) (*entities.SEOSettings, error) {
	return s.seoRepo.Update(&entities.SEOSettings{
		SiteName:           req.SiteName,
		SiteDescription:    req.SiteDescription,
		SiteKeywords:       req.SiteKeywords,
		SiteURL:            req.SiteURL,
		DefaultTitle:       req.DefaultTitle,
		DefaultDescription: req.DefaultDescription,
		TwitterHandle:      req.TwitterHandle,
		OGImage:            req.OGImage,
	})
}

// RobotsTxt renders robots.txt from the settings. Short codes stay
// crawlable; only the API surface is disallowed.
func (s *seoService) RobotsTxt() (string, error) {
	settings, err := s.seoRepo.Get()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Disallow: /api/\n")
	fmt.Fprintf(&b, "Sitemap: %s/sitemap.xml\n", strings.TrimRight(settings.SiteURL, "/"))
	return b.String(), nil
}

// SitemapXML renders a sitemap of the site root and the published blog
// posts
func (s *seoService) SitemapXML() (string, error) {
	settings, err := s.seoRepo.Get()
	if err != nil {
		return "", err
	}
	posts, err := s.postRepo.ListPublished()
	if err != nil {
		return "", err
	}

	base := strings.TrimRight(settings.SiteURL, "/")

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	fmt.Fprintf(&b, "  <url><loc>%s/</loc></url>\n", base)
	fmt.Fprintf(&b, "  <url><loc>%s/blog</loc></url>\n", base)
	for _, post := range posts {
		fmt.Fprintf(&b, "  <url><loc>%s/blog/%s</loc><lastmod>%s</lastmod></url>\n",
			base, post.Slug, post.UpdatedAt.UTC().Format(time.RFC3339))
	}
	b.WriteString("</urlset>\n")
	return b.String(), nil
}
