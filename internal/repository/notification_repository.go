package repository

import (
	"database/sql"
	"fmt"

	"minilink/internal/apperrors"
	"minilink/internal/entities"
)

// NotificationRepository defines the interface for notification database
// operations
type NotificationRepository interface {
	Create(notification *entities.Notification) (*entities.Notification, error)
	ListByUser(userID string) ([]entities.Notification, error)
	MarkRead(id, userID string) error
}

type notificationRepository struct {
	db *sql.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *sql.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// Create inserts a new notification
func (r *notificationRepository) Create(notification *entities.Notification) (*entities.Notification, error) {
	query := `
		INSERT INTO notifications (user_id, link_id, type, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, link_id, type, message, read, created_at
	`

	var created entities.Notification
	err := r.db.QueryRow(query, notification.UserID, notification.LinkID, notification.Type, notification.Message).Scan(
		&created.ID,
		&created.UserID,
		&created.LinkID,
		&created.Type,
		&created.Message,
		&created.Read,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	return &created, nil
}

// ListByUser retrieves all notifications for a user, newest first
func (r *notificationRepository) ListByUser(userID string) ([]entities.Notification, error) {
	query := `
		SELECT id, user_id, link_id, type, message, read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var notifications []entities.Notification
	for rows.Next() {
		var n entities.Notification
		err := rows.Scan(&n.ID, &n.UserID, &n.LinkID, &n.Type, &n.Message, &n.Read, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead marks a notification as read, scoped to its owner
func (r *notificationRepository) MarkRead(id, userID string) error {
	result, err := r.db.Exec(`UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
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
