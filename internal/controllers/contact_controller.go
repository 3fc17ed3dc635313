package controllers

import (
	"net/http"

	"minilink/internal/models"
	"minilink/internal/service"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	contactService service.ContactService
}

func NewContactController(contactService service.ContactService) *ContactController {
	return &ContactController{
		contactService: contactService,
	}
}

// Submit handles POST /api/v1/contact
func (cc *ContactController) Submit(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if _, err := cc.contactService.Submit(&req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Message received. We'll get back to you soon.",
	})
}
