package controllers

import (
	"net/http"
	"strconv"

	"minilink/internal/models"
	"minilink/internal/service"

	"github.com/gin-gonic/gin"
)

type ShortenerController struct {
	linkService      service.LinkService
	resolver         service.ResolverService
	analyticsService service.AnalyticsService
	baseURL          string
}

func NewShortenerController(linkService service.LinkService, resolver service.ResolverService, analyticsService service.AnalyticsService, baseURL string) *ShortenerController {
	return &ShortenerController{
		linkService:      linkService,
		resolver:         resolver,
		analyticsService: analyticsService,
		baseURL:          baseURL,
	}
}

// visitFrom extracts the classification metadata for one redirect attempt
func visitFrom(c *gin.Context) service.Visit {
	return service.Visit{
		UserAgent: c.Request.UserAgent(),
		Referrer:  c.Request.Referer(),
		Country:   c.GetHeader("CF-IPCountry"),
	}
}

// CreateShortURL handles POST /api/v1/shorten
func (sc *ShortenerController) CreateShortURL(c *gin.Context) {
	var req models.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	userID, _ := currentUser(c)
	response, err := sc.linkService.CreateLink(&req, &userID, sc.baseURL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// Resolve handles GET /:shortCode - the public redirect path
func (sc *ShortenerController) Resolve(c *gin.Context) {
	shortCode := c.Param("shortCode")

	outcome := sc.resolver.Resolve(shortCode, visitFrom(c))
	switch outcome.State {
	case models.StateRedirecting:
		c.Redirect(http.StatusFound, outcome.OriginalURL)
	case models.StateNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "Short URL not found"})
	case models.StateDeactivated:
		c.JSON(http.StatusGone, gin.H{"error": "This link has been deactivated by its owner"})
	case models.StatePasswordRequired:
		c.JSON(http.StatusUnauthorized, outcome)
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Resolution failed"})
	}
}

// SubmitPassword handles POST /:shortCode/password - the password gate
func (sc *ShortenerController) SubmitPassword(c *gin.Context) {
	shortCode := c.Param("shortCode")

	var req models.SubmitPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	outcome := sc.resolver.SubmitPassword(shortCode, req.Password, visitFrom(c))
	switch outcome.State {
	case models.StateRedirecting:
		c.JSON(http.StatusOK, outcome)
	case models.StateNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "Short URL not found"})
	case models.StateDeactivated:
		c.JSON(http.StatusGone, gin.H{"error": "This link has been deactivated by its owner"})
	case models.StatePasswordRequired:
		c.JSON(http.StatusUnauthorized, outcome)
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Resolution failed"})
	}
}

// GetLinkPublic handles GET /api/v1/redirect/:shortCode - resolves without
// performing the HTTP redirect (for API clients)
func (sc *ShortenerController) GetLinkPublic(c *gin.Context) {
	shortCode := c.Param("shortCode")

	outcome := sc.resolver.Resolve(shortCode, visitFrom(c))
	switch outcome.State {
	case models.StateRedirecting:
		c.JSON(http.StatusOK, outcome)
	case models.StateNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "Short URL not found"})
	case models.StateDeactivated:
		c.JSON(http.StatusGone, gin.H{"error": "This link has been deactivated by its owner"})
	case models.StatePasswordRequired:
		c.JSON(http.StatusUnauthorized, outcome)
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Resolution failed"})
	}
}

// GetUserLinks handles GET /api/v1/urls - returns all links for the
// authenticated user
func (sc *ShortenerController) GetUserLinks(c *gin.Context) {
	userID, _ := currentUser(c)

	links, err := sc.linkService.GetUserLinks(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, links)
}

// GetLinkStats handles GET /api/v1/url/:shortCode - returns link statistics
func (sc *ShortenerController) GetLinkStats(c *gin.Context) {
	shortCode := c.Param("shortCode")

	stats, err := sc.linkService.GetLinkStats(shortCode, scopeOwner(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetLinkAnalytics handles GET /api/v1/url/:shortCode/analytics - returns
// aggregated click analytics over a trailing day window
func (sc *ShortenerController) GetLinkAnalytics(c *gin.Context) {
	shortCode := c.Param("shortCode")

	// Day window (default 7)
	days := 7
	if daysStr := c.Query("days"); daysStr != "" {
		if parsed, err := strconv.Atoi(daysStr); err == nil && parsed > 0 {
			days = parsed
		}
	}

	snapshot, err := sc.analyticsService.LinkAnalytics(shortCode, scopeOwner(c), days)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// UpdateLink handles PATCH /api/v1/url/:id - partial update of a link
func (sc *ShortenerController) UpdateLink(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	link, err := sc.linkService.UpdateLink(id, scopeOwner(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, link)
}

// DeleteLink handles DELETE /api/v1/url/:id - hard-deletes a link
func (sc *ShortenerController) DeleteLink(c *gin.Context) {
	id := c.Param("id")

	if err := sc.linkService.DeleteLink(id, scopeOwner(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Link deleted successfully",
	})
}
