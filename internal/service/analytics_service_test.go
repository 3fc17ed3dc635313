package service

import (
	"testing"
	"time"

	"minilink/internal/apperrors"
	"minilink/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func clickAt(device, country, referrer string, ts time.Time) entities.Click {
	return entities.Click{
		LinkID:         "link-1",
		ShortCode:      "abc123",
		Device:         device,
		Country:        country,
		ReferrerDomain: referrer,
		Timestamp:      ts,
	}
}

func TestLinkAnalytics(t *testing.T) {
	owner := "user-1"
	link := &entities.Link{ID: "link-1", ShortCode: "abc123", OwnerID: &owner}

	t.Run("histograms each sum to the event count", func(t *testing.T) {
		now := time.Now().UTC()
		clicks := []entities.Click{
			clickAt(DeviceMobile, "AT", "twitter.com", now),
			clickAt(DeviceMobile, "DE", ReferrerDirect, now),
			clickAt(DeviceDesktop, "AT", "twitter.com", now),
			clickAt(DeviceDesktop, "US", ReferrerDirect, now.Add(-24*time.Hour)),
			clickAt(DeviceMobile, "AT", "news.ycombinator.com", now.Add(-48*time.Hour)),
		}

		linkRepo := new(mockLinkRepository)
		clickRepo := new(mockClickRepository)
		linkRepo.On("FindByShortCode", "abc123").Return(link, nil)
		clickRepo.On("ListByLinkSince", "link-1", mock.AnythingOfType("time.Time")).Return(clicks, nil)

		svc := NewAnalyticsService(linkRepo, clickRepo, new(mockUserRepository))
		snapshot, err := svc.LinkAnalytics("abc123", &owner, 7)
		require.NoError(t, err)

		assert.Equal(t, 5, snapshot.TotalClicks)
		assert.Equal(t, map[string]int{DeviceMobile: 3, DeviceDesktop: 2}, snapshot.DeviceStats)
		assert.Equal(t, map[string]int{"AT": 3, "DE": 1, "US": 1}, snapshot.GeoStats)
		assert.Equal(t, map[string]int{"twitter.com": 2, ReferrerDirect: 2, "news.ycombinator.com": 1}, snapshot.ReferrerStats)

		for _, hist := range []map[string]int{snapshot.DeviceStats, snapshot.GeoStats, snapshot.ReferrerStats} {
			total := 0
			for _, n := range hist {
				total += n
			}
			assert.Equal(t, snapshot.TotalClicks, total)
		}
	})

	t.Run("daily series is dense over the window", func(t *testing.T) {
		now := time.Now().UTC()
		clicks := []entities.Click{
			clickAt(DeviceDesktop, "AT", ReferrerDirect, now),
			clickAt(DeviceDesktop, "AT", ReferrerDirect, now),
			clickAt(DeviceDesktop, "AT", ReferrerDirect, now.Add(-48*time.Hour)),
		}

		linkRepo := new(mockLinkRepository)
		clickRepo := new(mockClickRepository)
		linkRepo.On("FindByShortCode", "abc123").Return(link, nil)
		clickRepo.On("ListByLinkSince", "link-1", mock.AnythingOfType("time.Time")).Return(clicks, nil)

		svc := NewAnalyticsService(linkRepo, clickRepo, new(mockUserRepository))
		snapshot, err := svc.LinkAnalytics("abc123", &owner, 7)
		require.NoError(t, err)

		require.Len(t, snapshot.DailyClicks, 7)

		total := 0
		for _, day := range snapshot.DailyClicks {
			total += day.Count
		}
		assert.Equal(t, 3, total)

		// today is the last bucket
		today := now.Format("2006-01-02")
		assert.Equal(t, today, snapshot.DailyClicks[6].Date)
		assert.Equal(t, 2, snapshot.DailyClicks[6].Count)
	})

	t.Run("empty click log still yields a dense zero series", func(t *testing.T) {
		linkRepo := new(mockLinkRepository)
		clickRepo := new(mockClickRepository)
		linkRepo.On("FindByShortCode", "abc123").Return(link, nil)
		clickRepo.On("ListByLinkSince", "link-1", mock.AnythingOfType("time.Time")).Return([]entities.Click{}, nil)

		svc := NewAnalyticsService(linkRepo, clickRepo, new(mockUserRepository))
		snapshot, err := svc.LinkAnalytics("abc123", &owner, 30)
		require.NoError(t, err)

		assert.Equal(t, 0, snapshot.TotalClicks)
		assert.Empty(t, snapshot.DeviceStats)
		require.Len(t, snapshot.DailyClicks, 30)
		for _, day := range snapshot.DailyClicks {
			assert.Equal(t, 0, day.Count)
		}
	})

	t.Run("ownership is enforced", func(t *testing.T) {
		linkRepo := new(mockLinkRepository)
		clickRepo := new(mockClickRepository)
		linkRepo.On("FindByShortCode", "abc123").Return(link, nil)

		svc := NewAnalyticsService(linkRepo, clickRepo, new(mockUserRepository))
		other := "user-2"
		_, err := svc.LinkAnalytics("abc123", &other, 7)

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		clickRepo.AssertNotCalled(t, "ListByLinkSince", mock.Anything, mock.Anything)
	})
}

func TestAdminOverview(t *testing.T) {
	linkRepo := new(mockLinkRepository)
	clickRepo := new(mockClickRepository)
	userRepo := new(mockUserRepository)

	now := time.Now().UTC()
	allClicks := []entities.Click{
		clickAt(DeviceMobile, "AT", ReferrerDirect, now),
		clickAt(DeviceDesktop, "DE", "twitter.com", now),
		clickAt(DeviceDesktop, "AT", ReferrerDirect, now.Add(-72*time.Hour)),
	}
	topLinks := []entities.Link{
		{ShortCode: "first1", OriginalURL: "https://example.com/a", Clicks: 9},
		{ShortCode: "second", OriginalURL: "https://example.com/b", Clicks: 9},
		{ShortCode: "third3", OriginalURL: "https://example.com/c", Clicks: 1},
	}

	linkRepo.On("Count").Return(3, nil)
	linkRepo.On("SumClicks").Return(19, nil)
	userRepo.On("Count").Return(2, nil)
	linkRepo.On("CountCreatedSince", mock.AnythingOfType("time.Time")).Return(1, nil)
	clickRepo.On("CountSince", mock.AnythingOfType("time.Time")).Return(2, nil)
	clickRepo.On("ListSince", time.Time{}).Return(allClicks, nil)
	linkRepo.On("TopByClicks", topLinksLimit).Return(topLinks, nil)
	clickRepo.On("ListRecent", 50).Return(allClicks, nil)
	linkRepo.On("ListRecent", 10).Return(topLinks, nil)

	svc := NewAnalyticsService(linkRepo, clickRepo, userRepo)
	overview, err := svc.AdminOverview()
	require.NoError(t, err)

	assert.Equal(t, 3, overview.TotalLinks)
	assert.Equal(t, 19, overview.TotalClicks)
	assert.Equal(t, 2, overview.TotalUsers)
	assert.Equal(t, 1, overview.LinksToday)
	assert.Equal(t, 2, overview.ClicksToday)

	assert.Equal(t, map[string]int{DeviceMobile: 1, DeviceDesktop: 2}, overview.DeviceStats)
	assert.Equal(t, map[string]int{"AT": 2, "DE": 1}, overview.GeoStats)

	// ranking order comes straight from the repository
	require.Len(t, overview.PopularLinks, 3)
	assert.Equal(t, "first1", overview.PopularLinks[0].ShortCode)
	assert.Equal(t, "second", overview.PopularLinks[1].ShortCode)
	assert.Equal(t, "third3", overview.PopularLinks[2].ShortCode)

	assert.Len(t, overview.RecentClicks, 3)
	assert.Len(t, overview.RecentLinks, 3)
}
