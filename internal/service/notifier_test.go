package service

import (
	"testing"

	"minilink/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestIsMilestone(t *testing.T) {
	tests := []struct {
		clicks int
		want   bool
	}{
		{0, false},
		{1, false},
		{9, false},
		{10, true},
		{11, false},
		{50, true},
		{100, true},
		{499, false},
		{500, true},
		{501, false},
		{1000, true},
		{1500, true},
		{1501, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsMilestone(tt.clicks), "clicks=%d", tt.clicks)
	}
}

func TestNotifierDeliversMilestone(t *testing.T) {
	owner := "user-1"
	link := &entities.Link{ID: "link-1", ShortCode: "abc123", OwnerID: &owner, Clicks: 10}

	notifRepo := new(mockNotificationRepository)
	userRepo := new(mockUserRepository)
	notifRepo.On("Create", mock.MatchedBy(func(n *entities.Notification) bool {
		return n.UserID == owner && n.Type == entities.NotificationMilestone
	})).Return(&entities.Notification{ID: "notif-1"}, nil).Once()
	userRepo.On("FindByID", owner).Return(&entities.User{ID: owner, Email: "owner@example.com"}, nil).Once()

	n := NewNotifier(notifRepo, userRepo, LogEmailSender{})
	n.NotifyMilestone(link, 10)
	n.Close() // drains the queue

	notifRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestNotifierSkipsAnonymousLinks(t *testing.T) {
	notifRepo := new(mockNotificationRepository)
	userRepo := new(mockUserRepository)

	n := NewNotifier(notifRepo, userRepo, LogEmailSender{})
	n.NotifyMilestone(&entities.Link{ID: "link-1", ShortCode: "abc123"}, 10)
	n.Close()

	notifRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRecordClick(t *testing.T) {
	visit := Visit{UserAgent: "curl/8.4.0", Country: "AT"}

	t.Run("returns the link with the fresh count", func(t *testing.T) {
		clickRepo := new(mockClickRepository)
		clickRepo.On("Record", mock.MatchedBy(func(c *entities.Click) bool {
			return c.ShortCode == "abc123" && c.Country == "AT" && c.Device == DeviceDesktop
		})).Return(&entities.Link{ID: "link-1", ShortCode: "abc123", Clicks: 7}, nil).Once()

		recorder := NewClickRecorder(clickRepo, nil)
		link, err := recorder.RecordClick("abc123", visit)

		assert.NoError(t, err)
		assert.Equal(t, 7, link.Clicks)
		clickRepo.AssertExpectations(t)
	})

	t.Run("queues a notification when a milestone is crossed", func(t *testing.T) {
		owner := "user-1"
		clickRepo := new(mockClickRepository)
		clickRepo.On("Record", mock.Anything).Return(&entities.Link{ID: "link-1", ShortCode: "abc123", OwnerID: &owner, Clicks: 50}, nil)

		notifRepo := new(mockNotificationRepository)
		userRepo := new(mockUserRepository)
		notifRepo.On("Create", mock.Anything).Return(&entities.Notification{ID: "notif-1"}, nil).Once()
		userRepo.On("FindByID", owner).Return(&entities.User{ID: owner, Email: "owner@example.com"}, nil)

		notifier := NewNotifier(notifRepo, userRepo, LogEmailSender{})
		recorder := NewClickRecorder(clickRepo, notifier)

		_, err := recorder.RecordClick("abc123", visit)
		assert.NoError(t, err)
		notifier.Close()

		notifRepo.AssertExpectations(t)
	})

	t.Run("no notification off-milestone", func(t *testing.T) {
		owner := "user-1"
		clickRepo := new(mockClickRepository)
		clickRepo.On("Record", mock.Anything).Return(&entities.Link{ID: "link-1", ShortCode: "abc123", OwnerID: &owner, Clicks: 11}, nil)

		notifRepo := new(mockNotificationRepository)
		userRepo := new(mockUserRepository)

		notifier := NewNotifier(notifRepo, userRepo, LogEmailSender{})
		recorder := NewClickRecorder(clickRepo, notifier)

		_, err := recorder.RecordClick("abc123", visit)
		assert.NoError(t, err)
		notifier.Close()

		notifRepo.AssertNotCalled(t, "Create", mock.Anything)
	})
}
