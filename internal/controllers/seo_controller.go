package controllers

import (
	"net/http"

	"minilink/internal/models"
	"minilink/internal/service"

	"github.com/gin-gonic/gin"
)

type SEOController struct {
	seoService service.SEOService
}

func NewSEOController(seoService service.SEOService) *SEOController {
	return &SEOController{
		seoService: seoService,
	}
}

// GetSettings handles GET /api/v1/seo
func (sc *SEOController) GetSettings(c *gin.Context) {
	settings, err := sc.seoService.GetSettings()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateSettings handles PUT /api/v1/admin/seo
func (sc *SEOController) UpdateSettings(c *gin.Context) {
	var req models.UpdateSEORequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	settings, err := sc.seoService.UpdateSettings(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// RobotsTxt handles GET /robots.txt
func (sc *SEOController) RobotsTxt(c *gin.Context) {
	body, err := sc.seoService.RobotsTxt()
	if err != nil {
		c.String(http.StatusInternalServerError, "")
		return
	}

	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}

// SitemapXML handles GET /sitemap.xml
func (sc *SEOController) SitemapXML(c *gin.Context) {
	body, err := sc.seoService.SitemapXML()
	if err != nil {
		c.String(http.StatusInternalServerError, "")
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(body))
}
