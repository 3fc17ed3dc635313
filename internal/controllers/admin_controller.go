package controllers

import (
	"net/http"

	"minilink/internal/models"
	"minilink/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	authService      service.AuthService
	analyticsService service.AnalyticsService
	contactService   service.ContactService
}

func NewAdminController(authService service.AuthService, analyticsService service.AnalyticsService, contactService service.ContactService) *AdminController {
	return &AdminController{
		authService:      authService,
		analyticsService: analyticsService,
		contactService:   contactService,
	}
}

// GetAnalytics handles GET /api/v1/admin/analytics - the dashboard overview
func (ac *AdminController) GetAnalytics(c *gin.Context) {
	overview, err := ac.analyticsService.AdminOverview()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// ListUsers handles GET /api/v1/admin/users
func (ac *AdminController) ListUsers(c *gin.Context) {
	users, err := ac.authService.ListUsers()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// CreateUser handles POST /api/v1/admin/users
func (ac *AdminController) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	user, err := ac.authService.CreateUser(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// UpdateUser handles PUT /api/v1/admin/users/:id
func (ac *AdminController) UpdateUser(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	user, err := ac.authService.UpdateUser(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /api/v1/admin/users/:id
func (ac *AdminController) DeleteUser(c *gin.Context) {
	id := c.Param("id")

	if err := ac.authService.DeleteUser(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User deleted successfully",
	})
}

// ListMessages handles GET /api/v1/admin/messages
func (ac *AdminController) ListMessages(c *gin.Context) {
	messages, err := ac.contactService.ListMessages()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

// MarkMessageRead handles POST /api/v1/admin/messages/:id/read
func (ac *AdminController) MarkMessageRead(c *gin.Context) {
	id := c.Param("id")

	if err := ac.contactService.MarkRead(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Message marked as read",
	})
}

// DeleteMessage handles DELETE /api/v1/admin/messages/:id
func (ac *AdminController) DeleteMessage(c *gin.Context) {
	id := c.Param("id")

	if err := ac.contactService.DeleteMessage(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Message deleted successfully",
	})
}
