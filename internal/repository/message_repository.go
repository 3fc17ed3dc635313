package repository

import (
	"database/sql"
	"fmt"

	"minilink/internal/apperrors"
	"minilink/internal/entities"
)

// MessageRepository defines the interface for contact message database
// operations
type MessageRepository interface {
	Create(message *entities.Message) (*entities.Message, error)
	List() ([]entities.Message, error)
	MarkRead(id string) error
	Delete(id string) error
}

type messageRepository struct {
	db *sql.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *sql.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create inserts a new contact message
func (r *messageRepository) Create(message *entities.Message) (*entities.Message, error) {
	query := `
		INSERT INTO messages (name, email, subject, body)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, subject, body, status, created_at
	`

	var created entities.Message
	err := r.db.QueryRow(query, message.Name, message.Email, message.Subject, message.Body).Scan(
		&created.ID,
		&created.Name,
		&created.Email,
		&created.Subject,
		&created.Body,
		&created.Status,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	return &created, nil
}

// List retrieves all contact messages, newest first
func (r *messageRepository) List() ([]entities.Message, error) {
	query := `
		SELECT id, name, email, subject, body, status, created_at
		FROM messages
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	var messages []entities.Message
	for rows.Next() {
		var m entities.Message
		err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body, &m.Status, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating messages: %w", err)
	}
	return messages, nil
}

// MarkRead marks a message as read
func (r *messageRepository) MarkRead(id string) error {
	result, err := r.db.Exec(`UPDATE messages SET status = $1 WHERE id = $2`, entities.MessageRead, id)
	if err != nil {
		return fmt.Errorf("failed to mark message read: %w", err)
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

// Delete removes a message
func (r *messageRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
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
