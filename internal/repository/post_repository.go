package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"minilink/internal/apperrors"
	"minilink/internal/entities"
)

// PostRepository defines the interface for blog post database operations
type PostRepository interface {
	Create(post *entities.Post) (*entities.Post, error)
	FindBySlug(slug string) (*entities.Post, error)
	FindByID(id string) (*entities.Post, error)
	List() ([]entities.Post, error)
	ListPublished() ([]entities.Post, error)
	Update(post *entities.Post) (*entities.Post, error)
	Delete(id string) error
	IncrementViews(id string) error
}

type postRepository struct {
	db *sql.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *sql.DB) PostRepository {
	return &postRepository{db: db}
}

const postColumns = `id, title, slug, content, excerpt, status, author, views, created_at, updated_at`

func scanPost(row *sql.Row) (*entities.Post, error) {
	var post entities.Post
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Slug,
		&post.Content,
		&post.Excerpt,
		&post.Status,
		&post.Author,
		&post.Views,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Create inserts a new blog post. Slugs are unique; collisions surface as
// ErrDuplicateCode.
func (r *postRepository) Create(post *entities.Post) (*entities.Post, error) {
	query := `
		INSERT INTO posts (title, slug, content, excerpt, status, author)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + postColumns

	created, err := scanPost(r.db.QueryRow(query, post.Title, post.Slug, post.Content, post.Excerpt, post.Status, post.Author))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicateCode
		}
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return created, nil
}

// FindBySlug finds a post by its slug
func (r *postRepository) FindBySlug(slug string) (*entities.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE slug = $1`

	post, err := scanPost(r.db.QueryRow(query, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return post, nil
}

// FindByID finds a post by its ID (UUID)
func (r *postRepository) FindByID(id string) (*entities.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	post, err := scanPost(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return post, nil
}

// List retrieves all posts, newest first
func (r *postRepository) List() ([]entities.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts ORDER BY created_at DESC`
	return r.queryPosts(query)
}

// ListPublished retrieves published posts, newest first
func (r *postRepository) ListPublished() ([]entities.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE status = $1 ORDER BY created_at DESC`
	return r.queryPosts(query, entities.PostPublished)
}

func (r *postRepository) queryPosts(query string, args ...interface{}) ([]entities.Post, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	var posts []entities.Post
	for rows.Next() {
		var post entities.Post
		err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Slug,
			&post.Content,
			&post.Excerpt,
			&post.Status,
			&post.Author,
			&post.Views,
			&post.CreatedAt,
			&post.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}
	return posts, nil
}

// Update replaces the mutable fields of a post
func (r *postRepository) Update(post *entities.Post) (*entities.Post, error) {
	query := `
		UPDATE posts
		SET title = $1, slug = $2, content = $3, excerpt = $4, status = $5, updated_at = now()
		WHERE id = $6
		RETURNING ` + postColumns

	updated, err := scanPost(r.db.QueryRow(query, post.Title, post.Slug, post.Content, post.Excerpt, post.Status, post.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicateCode
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return updated, nil
}

// Delete removes a post
func (r *postRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// IncrementViews bumps the view counter for a post
func (r *postRepository) IncrementViews(id string) error {
	_, err := r.db.Exec(`UPDATE posts SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	return nil
}
