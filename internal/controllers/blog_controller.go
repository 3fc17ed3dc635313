package controllers

import (
	"net/http"

	"minilink/internal/models"
	"minilink/internal/service"

	"github.com/gin-gonic/gin"
)

type BlogController struct {
	blogService service.BlogService
}

func NewBlogController(blogService service.BlogService) *BlogController {
	return &BlogController{
		blogService: blogService,
	}
}

// ListPublished handles GET /api/v1/blog - published posts, newest first
func (bc *BlogController) ListPublished(c *gin.Context) {
	posts, err := bc.blogService.ListPublished()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetBySlug handles GET /api/v1/blog/:slug - returns one post and counts
// the view
func (bc *BlogController) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	post, err := bc.blogService.GetBySlug(slug)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// ListAll handles GET /api/v1/admin/blog - all posts including drafts
func (bc *BlogController) ListAll(c *gin.Context) {
	posts, err := bc.blogService.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// CreatePost handles POST /api/v1/admin/blog
func (bc *BlogController) CreatePost(c *gin.Context) {
	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	post, err := bc.blogService.CreatePost(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// UpdatePost handles PUT /api/v1/admin/blog/:id
func (bc *BlogController) UpdatePost(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	post, err := bc.blogService.UpdatePost(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost handles DELETE /api/v1/admin/blog/:id
func (bc *BlogController) DeletePost(c *gin.Context) {
	id := c.Param("id")

	if err := bc.blogService.DeletePost(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Post deleted successfully",
	})
}
