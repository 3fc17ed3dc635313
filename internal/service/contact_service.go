package service

import (
	"fmt"
	"log"

	"minilink/internal/entities"
	"minilink/internal/models"
	"minilink/internal/repository"
)

// ContactService defines the interface for the contact form
type ContactService interface {
	Submit(req *models.ContactRequest) (*entities.Message, error)
	ListMessages() ([]entities.Message, error)
	MarkRead(id string) error
	DeleteMessage(id string) error
}

type contactService struct {
	messageRepo repository.MessageRepository
	email       EmailSender
	siteOwner   string // address the contact echo goes to
}

// NewContactService creates a new contact service
func NewContactService(messageRepo repository.MessageRepository, email EmailSender, siteOwner string) ContactService {
	return &contactService{
		messageRepo: messageRepo,
		email:       email,
		siteOwner:   siteOwner,
	}
}

// Submit stores a contact message and forwards a copy to the site owner.
// The email echo is best-effort; its failure never fails the submission.
func (s *contactService) Submit(req *models.ContactRequest) (*entities.Message, error) {
	message, err := s.messageRepo.Create(&entities.Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		return nil, err
	}

	go func() {
		subject := fmt.Sprintf("Contact form: %s", message.Subject)
		body := fmt.Sprintf("From %s <%s>:\n\n%s", message.Name, message.Email, message.Body)
		if err := s.email.SendEmail(s.siteOwner, subject, body); err != nil {
			log.Printf("failed to forward contact message %s: %v", message.ID, err)
		}
	}()

	return message, nil
}

// ListMessages retrieves all contact messages, newest first (admin)
func (s *contactService) ListMessages() ([]entities.Message, error) {
	return s.messageRepo.List()
}

// MarkRead marks a message as read (admin)
func (s *contactService) MarkRead(id string) error {
	return s.messageRepo.MarkRead(id)
}

// DeleteMessage removes a message (admin)
func (s *contactService) DeleteMessage(id string) error {
	return s.messageRepo.Delete(id)
}
