package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"minilink/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

const (
	qrDefaultSize = 256
	qrMaxSize     = 1024
)

type QRCodeController struct {
	linkService service.LinkService
	baseURL     string
}

func NewQRCodeController(linkService service.LinkService, baseURL string) *QRCodeController {
	return &QRCodeController{
		linkService: linkService,
		baseURL:     baseURL,
	}
}

// GenerateQRCode handles GET /api/v1/qrcode/:shortCode - renders a PNG QR
// code pointing at the short URL. The link must exist; size is clamped via
// the optional ?size query parameter.
func (qc *QRCodeController) GenerateQRCode(c *gin.Context) {
	shortCode := c.Param("shortCode")

	// Only issue QR codes for links that actually exist
	if _, err := qc.linkService.GetLink(shortCode); err != nil {
		respondError(c, err)
		return
	}

	size := qrDefaultSize
	if raw := c.Query("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 64 || parsed > qrMaxSize {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("size must be an integer between 64 and %d", qrMaxSize),
			})
			return
		}
		size = parsed
	}

	shortURL := qc.baseURL + "/" + shortCode

	pngData, err := qrcode.Encode(shortURL, qrcode.Medium, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate QR code",
		})
		return
	}

	c.Header("Content-Disposition", "inline; filename="+shortCode+".png")
	c.Data(http.StatusOK, "image/png", pngData)
}
