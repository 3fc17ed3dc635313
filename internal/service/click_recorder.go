package service

import (
	"minilink/internal/entities"
	"minilink/internal/repository"
)

// ClickRecorder defines the interface for recording redirect visits
type ClickRecorder interface {
	RecordClick(shortCode string, visit Visit) (*entities.Link, error)
}

type clickRecorder struct {
	clickRepo repository.ClickRepository
	notifier  *Notifier
}

// NewClickRecorder creates a new click recorder. notifier may be nil.
func NewClickRecorder(clickRepo repository.ClickRepository, notifier *Notifier) ClickRecorder {
	return &clickRecorder{
		clickRepo: clickRepo,
		notifier:  notifier,
	}
}

// RecordClick classifies the visit and records it: the counter increment
// and the event append are one transaction in the repository. Milestone
// notifications are queued after the commit and can never fail the click.
func (r *clickRecorder) RecordClick(shortCode string, visit Visit) (*entities.Link, error) {
	click := classifyVisit(shortCode, visit)

	link, err := r.clickRepo.Record(click)
	if err != nil {
		return nil, err
	}

	if r.notifier != nil && IsMilestone(link.Clicks) {
		r.notifier.NotifyMilestone(link, link.Clicks)
	}
	return link, nil
}
