package service

import (
	"time"

	"minilink/internal/entities"
	"minilink/internal/models"
	"minilink/internal/repository"
)

// Number of entries in the popular-links ranking
const topLinksLimit = 10

// AnalyticsService defines the interface for aggregate click statistics.
// Snapshots are pure functions of the click log and link table at call
// time; nothing is cached or incrementally maintained.
type AnalyticsService interface {
	LinkAnalytics(shortCode string, ownerID *string, days int) (*models.AnalyticsSnapshot, error)
	AdminOverview() (*models.AdminAnalyticsResponse, error)
}

type analyticsService struct {
	linkRepo  repository.LinkRepository
	clickRepo repository.ClickRepository
	userRepo  repository.UserRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(linkRepo repository.LinkRepository, clickRepo repository.ClickRepository, userRepo repository.UserRepository) AnalyticsService {
	return &analyticsService{
		linkRepo:  linkRepo,
		clickRepo: clickRepo,
		userRepo:  userRepo,
	}
}

// LinkAnalytics aggregates the click log of one link over a trailing day
// window, enforcing ownership
func (s *analyticsService) LinkAnalytics(shortCode string, ownerID *string, days int) (*models.AnalyticsSnapshot, error) {
	link, err := s.linkRepo.FindByShortCode(shortCode)
	if err != nil {
		return nil, err
	}
	if err := checkOwnership(link, ownerID); err != nil {
		return nil, err
	}

	since := dayWindowStart(days)
	clicks, err := s.clickRepo.ListByLinkSince(link.ID, since)
	if err != nil {
		return nil, err
	}

	snapshot := aggregateClicks(clicks)
	snapshot.DailyClicks = dailyCounts(clicks, days)
	return snapshot, nil
}

// AdminOverview builds the admin dashboard: global totals, today's
// activity, histograms over the whole click log, the top-10 ranking and
// recent activity lists
func (s *analyticsService) AdminOverview() (*models.AdminAnalyticsResponse, error) {
	totalLinks, err := s.linkRepo.Count()
	if err != nil {
		return nil, err
	}
	totalClicks, err := s.linkRepo.SumClicks()
	if err != nil {
		return nil, err
	}
	totalUsers, err := s.userRepo.Count()
	if err != nil {
		return nil, err
	}

	startOfDay := time.Now().UTC().Truncate(24 * time.Hour)
	linksToday, err := s.linkRepo.CountCreatedSince(startOfDay)
	if err != nil {
		return nil, err
	}
	clicksToday, err := s.clickRepo.CountSince(startOfDay)
	if err != nil {
		return nil, err
	}

	allClicks, err := s.clickRepo.ListSince(time.Time{})
	if err != nil {
		return nil, err
	}
	histograms := aggregateClicks(allClicks)

	popular, err := s.topLinks()
	if err != nil {
		return nil, err
	}

	recentClicks, err := s.clickRepo.ListRecent(50)
	if err != nil {
		return nil, err
	}
	recentLinks, err := s.linkRepo.ListRecent(10)
	if err != nil {
		return nil, err
	}

	return &models.AdminAnalyticsResponse{
		TotalLinks:    totalLinks,
		TotalClicks:   totalClicks,
		TotalUsers:    totalUsers,
		LinksToday:    linksToday,
		ClicksToday:   clicksToday,
		DeviceStats:   histograms.DeviceStats,
		GeoStats:      histograms.GeoStats,
		ReferrerStats: histograms.ReferrerStats,
		PopularLinks:  popular,
		RecentClicks:  recentClicks,
		RecentLinks:   recentLinks,
	}, nil
}

// topLinks ranks links by click count; the repository breaks ties by
// descending creation time
func (s *analyticsService) topLinks() ([]models.PopularLink, error) {
	links, err := s.linkRepo.TopByClicks(topLinksLimit)
	if err != nil {
		return nil, err
	}

	popular := make([]models.PopularLink, len(links))
	for i, link := range links {
		popular[i] = models.PopularLink{
			ShortCode:   link.ShortCode,
			OriginalURL: link.OriginalURL,
			Clicks:      link.Clicks,
			CreatedAt:   link.CreatedAt,
		}
	}
	return popular, nil
}

// aggregateClicks computes the device, country and referrer histograms of
// a click log slice. Each histogram sums to the number of events.
func aggregateClicks(clicks []entities.Click) *models.AnalyticsSnapshot {
	snapshot := &models.AnalyticsSnapshot{
		TotalClicks:   len(clicks),
		DeviceStats:   make(map[string]int),
		GeoStats:      make(map[string]int),
		ReferrerStats: make(map[string]int),
	}
	for _, click := range clicks {
		snapshot.DeviceStats[click.Device]++
		snapshot.GeoStats[click.Country]++
		snapshot.ReferrerStats[click.ReferrerDomain]++
	}
	return snapshot
}

// dailyCounts buckets clicks per UTC day over the trailing window,
// including zero-click days so callers get a dense series
func dailyCounts(clicks []entities.Click, days int) []models.DailyCount {
	if days < 1 {
		days = 1
	}

	counts := make(map[string]int)
	for _, click := range clicks {
		counts[click.Timestamp.UTC().Format("2006-01-02")]++
	}

	start := dayWindowStart(days)
	series := make([]models.DailyCount, 0, days)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		series = append(series, models.DailyCount{Date: date, Count: counts[date]})
	}
	return series
}

// dayWindowStart returns midnight UTC of the first day in a trailing
// window of the given length ending today
func dayWindowStart(days int) time.Time {
	if days < 1 {
		days = 1
	}
	return time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -(days - 1))
}
