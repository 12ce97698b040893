package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/azhar2201/achievement-tracker/internal/services"
	"github.com/sirupsen/logrus"
)

// Pending submissions older than this are flagged for admin attention.
const staleAfter = 7 * 24 * time.Hour

// PendingReminder surfaces achievements that have sat in the review queue
// too long.
type PendingReminder struct {
	AchievementService *services.AchievementService
}

// NewPendingReminder creates a new instance of PendingReminder.
func NewPendingReminder(achievementService *services.AchievementService) *PendingReminder {
	return &PendingReminder{
		AchievementService: achievementService,
	}
}

// RunDailyScan logs every pending achievement older than the staleness
// window so the review backlog is visible in the operational logs.
func (p *PendingReminder) RunDailyScan(ctx context.Context) error {
	pending, err := p.AchievementService.GetPendingAchievements(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch pending achievements: %v", err)
	}

	cutoff := time.Now().Add(-staleAfter)
	stale := 0
	for _, achievement := range pending {
		if achievement.DateLogged.Before(cutoff) {
			stale++
			logrus.WithFields(logrus.Fields{
				"achievement_id": achievement.ID.Hex(),
				"roll_number":    achievement.RollNumber,
				"title":          achievement.AchievementTitle,
				"logged_at":      achievement.DateLogged.Format("Jan 2"),
			}).Warn("Achievement awaiting validation for over a week")
		}
	}

	logrus.WithFields(logrus.Fields{
		"pending": len(pending),
		"stale":   stale,
	}).Info("Pending review scan completed")
	return nil
}
