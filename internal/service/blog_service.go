package service

import (
	"log"

	"minilink/internal/entities"
	"minilink/internal/models"
	"minilink/internal/repository"
)

// BlogService defines the interface for blog content management
type BlogService interface {
	ListPublished() ([]entities.Post, error)
	GetBySlug(slug string) (*entities.Post, error)

	ListAll() ([]entities.Post, error)
	CreatePost(req *models.CreatePostRequest) (*entities.Post, error)
	UpdatePost(id string, req *models.UpdatePostRequest) (*entities.Post, error)
	DeletePost(id string) error
}

type blogService struct {
	postRepo repository.PostRepository
}

// NewBlogService creates a new blog service
func NewBlogService(postRepo repository.PostRepository) BlogService {
	return &blogService{postRepo: postRepo}
}

// ListPublished retrieves published posts, newest first
func (s *blogService) ListPublished() ([]entities.Post, error) {
	return s.postRepo.ListPublished()
}

// GetBySlug retrieves a post by slug and bumps its view counter. A failed
// counter bump is logged, not surfaced; the read still succeeds.
func (s *blogService) GetBySlug(slug string) (*entities.Post, error) {
	post, err := s.postRepo.FindBySlug(slug)
	if err != nil {
		return nil, err
	}

	if err := s.postRepo.IncrementViews(post.ID); err != nil {
		log.Printf("failed to increment views for post %s: %v", post.Slug, err)
	} else {
		post.Views++
	}
	return post, nil
}

// ListAll retrieves all posts including drafts (admin)
func (s *blogService) ListAll() ([]entities.Post, error) {
	return s.postRepo.List()
}

// CreatePost creates a blog post (admin)
func (s *blogService) CreatePost(req *models.CreatePostRequest) (*entities.Post, error) {
	status := req.Status
	if status == "" {
		status = entities.PostDraft
	}

	return s.postRepo.Create(&entities.Post{
		Title:   req.Title,
		Slug:    req.Slug,
		Content: req.Content,
		Excerpt: req.Excerpt,
		Status:  status,
		Author:  "Admin",
	})
}

// UpdatePost applies a partial update to a post (admin)
func (s *blogService) UpdatePost(id string, req *models.UpdatePostRequest) (*entities.Post, error) {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Slug != nil {
		post.Slug = *req.Slug
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.Status != nil {
		post.Status = *req.Status
	}

	return s.postRepo.Update(post)
}

// DeletePost removes a post (admin)
func (s *blogService) DeletePost(id string) error {
	return s.postRepo.Delete(id)
}
