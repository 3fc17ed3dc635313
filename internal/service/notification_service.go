package service

import (
	"minilink/internal/entities"
	"minilink/internal/repository"
)

// NotificationService defines the interface for reading a user's
// notifications
type NotificationService interface {
	ListForUser(userID string) ([]entities.Notification, error)
	MarkRead(id, userID string) error
}

type notificationService struct {
	notifRepo repository.NotificationRepository
}

// NewNotificationService creates a new notification service
func NewNotificationService(notifRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notifRepo: notifRepo}
}

// ListForUser retrieves a user's notifications, newest first
func (s *notificationService) ListForUser(userID string) ([]entities.Notification, error) {
	return s.notifRepo.ListByUser(userID)
}

// MarkRead marks one of the user's notifications as read
func (s *notificationService) MarkRead(id, userID string) error {
	return s.notifRepo.MarkRead(id, userID)
}
