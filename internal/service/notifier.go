package service

import (
	"fmt"
	"log"
	"sync"

	"minilink/internal/entities"
	"minilink/internal/repository"
)

// EmailSender is the outbound email sink. Delivery is best-effort; callers
// never fail because an email could not be sent.
type EmailSender interface {
	SendEmail(to, subject, body string) error
}

// LogEmailSender is an EmailSender that only logs. Stands in for a real
// provider integration.
type LogEmailSender struct{}

func (LogEmailSender) SendEmail(to, subject, body string) error {
	log.Printf("email to %s: %s", to, subject)
	return nil
}

// Click milestones that trigger an owner notification. Beyond the fixed
// thresholds, every multiple of 500 counts.
var milestones = map[int]bool{10: true, 50: true, 100: true}

// IsMilestone reports whether a cumulative click count just crossed a
// notification threshold
func IsMilestone(clicks int) bool {
	if milestones[clicks] {
		return true
	}
	return clicks > 0 && clicks%500 == 0
}

type milestoneEvent struct {
	link   entities.Link
	clicks int
}

// Notifier delivers milestone notifications to link owners off the click
// recording path. Events flow through a buffered channel to a single
// background worker; when the buffer is full events are dropped rather
// than blocking a redirect.
type Notifier struct {
	notifRepo repository.NotificationRepository
	userRepo  repository.UserRepository
	email     EmailSender

	events chan milestoneEvent
	wg     sync.WaitGroup
}

// NewNotifier creates a notifier and starts its background worker
func NewNotifier(notifRepo repository.NotificationRepository, userRepo repository.UserRepository, email EmailSender) *Notifier {
	n := &Notifier{
		notifRepo: notifRepo,
		userRepo:  userRepo,
		email:     email,
		events:    make(chan milestoneEvent, 256),
	}
	n.wg.Add(1)
	go n.run()
	return n
}

// NotifyMilestone queues a milestone notification for the link's owner.
// Never blocks and never returns an error.
func (n *Notifier) NotifyMilestone(link *entities.Link, clicks int) {
	if link.OwnerID == nil {
		return // anonymous links have nobody to notify
	}
	select {
	case n.events <- milestoneEvent{link: *link, clicks: clicks}:
	default:
		log.Printf("notification queue full, dropping milestone event for %s", link.ShortCode)
	}
}

// Close stops the worker after draining queued events
func (n *Notifier) Close() {
	close(n.events)
	n.wg.Wait()
}

func (n *Notifier) run() {
	defer n.wg.Done()
	for ev := range n.events {
		n.deliver(ev)
	}
}

func (n *Notifier) deliver(ev milestoneEvent) {
	message := fmt.Sprintf("Your link /%s reached %d clicks!", ev.link.ShortCode, ev.clicks)

	linkID := ev.link.ID
	_, err := n.notifRepo.Create(&entities.Notification{
		UserID:  *ev.link.OwnerID,
		LinkID:  &linkID,
		Type:    entities.NotificationMilestone,
		Message: message,
	})
	if err != nil {
		log.Printf("failed to store milestone notification for %s: %v", ev.link.ShortCode, err)
		return
	}

	user, err := n.userRepo.FindByID(*ev.link.OwnerID)
	if err != nil {
		log.Printf("failed to look up owner for milestone email: %v", err)
		return
	}
	if err := n.email.SendEmail(user.Email, "Click milestone reached", message); err != nil {
		log.Printf("failed to send milestone email to %s: %v", user.Email, err)
	}
}
