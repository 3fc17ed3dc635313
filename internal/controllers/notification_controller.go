package controllers

import (
	"net/http"

	"minilink/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	notificationService service.NotificationService
}

func NewNotificationController(notificationService service.NotificationService) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
	}
}

// List handles GET /api/v1/notifications - the caller's notifications,
// newest first
func (nc *NotificationController) List(c *gin.Context) {
	userID, _ := currentUser(c)

	notifications, err := nc.notificationService.ListForUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// MarkRead handles POST /api/v1/notifications/:id/read
func (nc *NotificationController) MarkRead(c *gin.Context) {
	userID, _ := currentUser(c)
	id := c.Param("id")

	if err := nc.notificationService.MarkRead(id, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Notification marked as read",
	})
}
