package service

import (
	"errors"
	"testing"

	"minilink/internal/apperrors"
	"minilink/internal/entities"
	"minilink/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetBySlug(t *testing.T) {
	t.Run("counts the view", func(t *testing.T) {
		repo := new(mockPostRepository)
		repo.On("FindBySlug", "hello-world").Return(&entities.Post{ID: "post-1", Slug: "hello-world", Views: 4}, nil)
		repo.On("IncrementViews", "post-1").Return(nil)

		svc := NewBlogService(repo)
		post, err := svc.GetBySlug("hello-world")

		require.NoError(t, err)
		assert.Equal(t, 5, post.Views)
		repo.AssertExpectations(t)
	})

	t.Run("read survives a failed counter bump", func(t *testing.T) {
		repo := new(mockPostRepository)
		repo.On("FindBySlug", "hello-world").Return(&entities.Post{ID: "post-1", Slug: "hello-world", Views: 4}, nil)
		repo.On("IncrementViews", "post-1").Return(errors.New("db hiccup"))

		svc := NewBlogService(repo)
		post, err := svc.GetBySlug("hello-world")

		require.NoError(t, err)
		assert.Equal(t, 4, post.Views)
	})

	t.Run("unknown slug", func(t *testing.T) {
		repo := new(mockPostRepository)
		repo.On("FindBySlug", "nosuch").Return(nil, apperrors.ErrNotFound)

		svc := NewBlogService(repo)
		_, err := svc.GetBySlug("nosuch")

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		repo.AssertNotCalled(t, "IncrementViews", mock.Anything)
	})
}

func TestCreatePost(t *testing.T) {
	t.Run("defaults to draft", func(t *testing.T) {
		repo := new(mockPostRepository)
		repo.On("Create", mock.MatchedBy(func(p *entities.Post) bool {
			return p.Status == entities.PostDraft && p.Author == "Admin"
		})).Return(&entities.Post{ID: "post-1", Status: entities.PostDraft}, nil)

		svc := NewBlogService(repo)
		_, err := svc.CreatePost(&models.CreatePostRequest{Title: "Hello", Slug: "hello", Content: "..."})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		repo := new(mockPostRepository)
		repo.On("Create", mock.Anything).Return(nil, apperrors.ErrDuplicateCode)

		svc := NewBlogService(repo)
		_, err := svc.CreatePost(&models.CreatePostRequest{Title: "Hello", Slug: "hello", Content: "...", Status: entities.PostPublished})

		assert.ErrorIs(t, err, apperrors.ErrDuplicateCode)
	})
}

func TestUpdatePost(t *testing.T) {
	repo := new(mockPostRepository)
	repo.On("FindByID", "post-1").Return(&entities.Post{ID: "post-1", Title: "Old", Slug: "old", Status: entities.PostDraft}, nil)
	repo.On("Update", mock.MatchedBy(func(p *entities.Post) bool {
		return p.Title == "New" && p.Slug == "old" && p.Status == entities.PostPublished
	})).Return(&entities.Post{ID: "post-1", Title: "New", Slug: "old", Status: entities.PostPublished}, nil)

	svc := NewBlogService(repo)
	title := "New"
	status := entities.PostPublished
	post, err := svc.UpdatePost("post-1", &models.UpdatePostRequest{Title: &title, Status: &status})

	require.NoError(t, err)
	assert.Equal(t, "New", post.Title)
	repo.AssertExpectations(t)
}
