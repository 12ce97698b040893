package services

import (
	"context"
	"fmt"

	"github.com/azhar2201/achievement-tracker/internal/models"
	jwtutil "github.com/azhar2201/achievement-tracker/pkg/jwt"
)

// AnalyticsService computes dashboard counts over the caller's visible
// achievement set. Admins see the global set, students their own.
type AnalyticsService struct {
	repo AchievementStore
}

// NewAnalyticsService creates a new instance of AnalyticsService.
func NewAnalyticsService(repo AchievementStore) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

// Summary groups the visible achievements by status, category and level.
func (s *AnalyticsService) Summary(ctx context.Context, claims *jwtutil.Claims) (*models.AnalyticsSummary, error) {
	var achievements []models.Achievement
	var err error

	if claims.Role == models.RoleAdmin {
		achievements, err = s.repo.GetAll(ctx)
	} else {
		achievements, err = s.repo.GetByRollNumber(ctx, claims.RollNumber)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch achievements for analytics: %v", err)
	}

	summary := &models.AnalyticsSummary{
		Total:      len(achievements),
		ByStatus:   make(map[string]int),
		ByCategory: make(map[string]int),
		ByLevel:    make(map[string]int),
	}
	for _, a := range achievements {
		summary.ByStatus[a.Status]++
		summary.ByCategory[a.Category]++
		summary.ByLevel[a.Level]++
	}
	return summary, nil
}
