package service

import (
	"time"

	"minilink/internal/entities"

	"github.com/stretchr/testify/mock"
)

type mockLinkRepository struct {
	mock.Mock
}

func (m *mockLinkRepository) Create(link *entities.Link) (*entities.Link, error) {
	args := m.Called(link)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Link), args.Error(1)
}

func (m *mockLinkRepository) FindByShortCode(shortCode string) (*entities.Link, error) {
	args := m.Called(shortCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Link), args.Error(1)
}

func (m *mockLinkRepository) FindByID(id string) (*entities.Link, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Link), args.Error(1)
}

func (m *mockLinkRepository) ListByOwner(ownerID string) ([]entities.Link, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Link), args.Error(1)
}

func (m *mockLinkRepository) ListRecent(limit int) ([]entities.Link, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Link), args.Error(1)
}

func (m *mockLinkRepository) TopByClicks(limit int) ([]entities.Link, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Link), args.Error(1)
}

func (m *mockLinkRepository) Update(link *entities.Link) (*entities.Link, error) {
	args := m.Called(link)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Link), args.Error(1)
}

func (m *mockLinkRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *mockLinkRepository) Count() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *mockLinkRepository) CountCreatedSince(since time.Time) (int, error) {
	args := m.Called(since)
	return args.Int(0), args.Error(1)
}

func (m *mockLinkRepository) SumClicks() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

type mockClickRepository struct {
	mock.Mock
}

func (m *mockClickRepository) Record(click *entities.Click) (*entities.Link, error) {
	args := m.Called(click)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Link), args.Error(1)
}

func (m *mockClickRepository) ListSince(since time.Time) ([]entities.Click, error) {
	args := m.Called(since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Click), args.Error(1)
}

func (m *mockClickRepository) ListByLinkSince(linkID string, since time.Time) ([]entities.Click, error) {
	args := m.Called(linkID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Click), args.Error(1)
}

func (m *mockClickRepository) ListRecent(limit int) ([]entities.Click, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Click), args.Error(1)
}

func (m *mockClickRepository) CountSince(since time.Time) (int, error) {
	args := m.Called(since)
	return args.Int(0), args.Error(1)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(email, passwordHash string, name *string, role string) (*entities.User, error) {
	args := m.Called(email, passwordHash, name, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(email string) (*entities.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) FindByID(id string) (*entities.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) List() ([]entities.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.User), args.Error(1)
}

func (m *mockUserRepository) Update(user *entities.User) (*entities.User, error) {
	args := m.Called(user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *mockUserRepository) Count() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

type mockNotificationRepository struct {
	mock.Mock
}

func (m *mockNotificationRepository) Create(n *entities.Notification) (*entities.Notification, error) {
	args := m.Called(n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Notification), args.Error(1)
}

func (m *mockNotificationRepository) ListByUser(userID string) ([]entities.Notification, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Notification), args.Error(1)
}

func (m *mockNotificationRepository) MarkRead(id, userID string) error {
	args := m.Called(id, userID)
	return args.Error(0)
}

type mockPostRepository struct {
	mock.Mock
}

func (m *mockPostRepository) Create(post *entities.Post) (*entities.Post, error) {
	args := m.Called(post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Post), args.Error(1)
}

func (m *mockPostRepository) FindBySlug(slug string) (*entities.Post, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Post), args.Error(1)
}

func (m *mockPostRepository) FindByID(id string) (*entities.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Post), args.Error(1)
}

func (m *mockPostRepository) List() ([]entities.Post, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Post), args.Error(1)
}

func (m *mockPostRepository) ListPublished() ([]entities.Post, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Post), args.Error(1)
}

func (m *mockPostRepository) Update(post *entities.Post) (*entities.Post, error) {
	args := m.Called(post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Post), args.Error(1)
}

func (m *mockPostRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *mockPostRepository) IncrementViews(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

type mockSEORepository struct {
	mock.Mock
}

func (m *mockSEORepository) Get() (*entities.SEOSettings, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SEOSettings), args.Error(1)
}

func (m *mockSEORepository) Update(settings *entities.SEOSettings) (*entities.SEOSettings, error) {
	args := m.Called(settings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SEOSettings), args.Error(1)
}

type mockClickRecorder struct {
	mock.Mock
}

func (m *mockClickRecorder) RecordClick(shortCode string, visit Visit) (*entities.Link, error) {
	args := m.Called(shortCode, visit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Link), args.Error(1)
}
