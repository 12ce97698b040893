package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/azhar2201/achievement-tracker/internal/models"
	"github.com/azhar2201/achievement-tracker/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AchievementService encapsulates the business logic for achievements.
type AchievementService struct {
	repo  AchievementStore
	audit AuditStore
}

// NewAchievementService creates a new instance of AchievementService.
func NewAchievementService(repo AchievementStore, audit AuditStore) *AchievementService {
	return &AchievementService{
		repo:  repo,
		audit: audit,
	}
}

// LogAchievement validates and stores a new achievement submission. The new
// record always starts as pending.
func (s *AchievementService) LogAchievement(ctx context.Context, achievement *models.Achievement) (*models.Achievement, error) {
	if missing := missingFields(achievement); len(missing) > 0 {
		logger.Log.WithField("missing", missing).Warn("Achievement submission rejected: missing fields")
		return nil, fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}

	// Read-then-write duplicate check; concurrent identical submissions can
	// race past it. Accepted as-is, see DESIGN.md.
	count, err := s.repo.CountByRollAndTitle(ctx, achievement.RollNumber, achievement.AchievementTitle)
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicates: %v", err)
	}
	if count > 0 {
		logger.Log.WithFields(map[string]interface{}{
			"roll_number": achievement.RollNumber,
			"title":       achievement.AchievementTitle,
		}).Warn("Duplicate achievement submission rejected")
		return nil, fmt.Errorf("%w: achievement %q already logged for %s", ErrDuplicate, achievement.AchievementTitle, achievement.RollNumber)
	}

	achievement.Status = models.StatusPending
	created, err := s.repo.CreateAchievement(ctx, achievement)
	if err != nil {
		return nil, fmt.Errorf("failed to create achievement: %v", err)
	}

	logger.Log.WithField("achievement_id", created.ID.Hex()).Info("Achievement logged")
	return created, nil
}

// ValidateAchievement applies an admin decision to a pending record and
// writes an audit entry. Only the two terminal statuses are accepted.
func (s *AchievementService) ValidateAchievement(ctx context.Context, id, status, decidedBy string) (*models.Achievement, error) {
	if status != models.StatusValidated && status != models.StatusRejected {
		return nil, fmt.Errorf("%w: status must be %q or %q", ErrInvalidStatus, models.StatusValidated, models.StatusRejected)
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid achievement ID", ErrNotFound)
	}

	achievement, err := s.repo.GetAchievementByID(ctx, objID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch achievement: %v", err)
	}
	if achievement == nil {
		return nil, fmt.Errorf("%w: achievement %s", ErrNotFound, id)
	}

	if err := s.repo.UpdateStatus(ctx, objID, status); err != nil {
		return nil, fmt.Errorf("failed to update status: %v", err)
	}
	achievement.Status = status

	if err := s.audit.RecordDecision(ctx, &models.AuditEntry{
		AchievementID: objID,
		RollNumber:    achievement.RollNumber,
		Decision:      status,
		DecidedBy:     decidedBy,
	}); err != nil {
		// The decision itself stands even when the audit write fails.
		logger.Log.WithError(err).Warn("Failed to record audit entry for validation decision")
	}

	return achievement, nil
}

// GetAllAchievements returns every record, for the admin dashboard.
func (s *AchievementService) GetAllAchievements(ctx context.Context) ([]models.Achievement, error) {
	return s.repo.GetAll(ctx)
}

// GetPendingAchievements returns the admin review queue.
func (s *AchievementService) GetPendingAchievements(ctx context.Context) ([]models.Achievement, error) {
	return s.repo.GetByStatus(ctx, models.StatusPending)
}

// GetStudentAchievements returns the records owned by one roll number.
func (s *AchievementService) GetStudentAchievements(ctx context.Context, rollNumber string) ([]models.Achievement, error) {
	return s.repo.GetByRollNumber(ctx, rollNumber)
}

// GetAuditTrail returns the validation decisions recorded for one record.
func (s *AchievementService) GetAuditTrail(ctx context.Context, id string) ([]models.AuditEntry, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid achievement ID", ErrNotFound)
	}
	return s.audit.GetDecisions(ctx, objID)
}

// UpdateAchievement applies a student edit. Whatever the previous status
// was, the record goes back to pending for re-validation.
func (s *AchievementService) UpdateAchievement(ctx context.Context, id, rollNumber string, update *models.AchievementUpdate) (*models.Achievement, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid achievement ID", ErrNotFound)
	}

	achievement, err := s.repo.GetAchievementByID(ctx, objID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch achievement: %v", err)
	}
	if achievement == nil {
		return nil, fmt.Errorf("%w: achievement %s", ErrNotFound, id)
	}
	if achievement.RollNumber != rollNumber {
		return nil, fmt.Errorf("%w: achievement belongs to another student", ErrForbidden)
	}

	applyUpdate(achievement, update)
	achievement.Status = models.StatusPending

	updated, err := s.repo.UpdateAchievement(ctx, objID, achievement)
	if err != nil {
		return nil, fmt.Errorf("failed to update achievement: %v", err)
	}

	logger.Log.WithField("achievement_id", id).Info("Achievement edited, status reset to pending")
	return updated, nil
}

// DeleteAchievement hard-deletes a record after an ownership check.
func (s *AchievementService) DeleteAchievement(ctx context.Context, id, rollNumber string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid achievement ID", ErrNotFound)
	}

	achievement, err := s.repo.GetAchievementByID(ctx, objID)
	if err != nil {
		return fmt.Errorf("failed to fetch achievement: %v", err)
	}
	if achievement == nil {
		return fmt.Errorf("%w: achievement %s", ErrNotFound, id)
	}
	if achievement.RollNumber != rollNumber {
		return fmt.Errorf("%w: achievement belongs to another student", ErrForbidden)
	}

	return s.repo.DeleteAchievement(ctx, objID)
}

func missingFields(a *models.Achievement) []string {
	required := []struct {
		name  string
		value string
	}{
		{"studentName", a.StudentName},
		{"rollNumber", a.RollNumber},
		{"achievementTitle", a.AchievementTitle},
		{"achievementDescription", a.AchievementDescription},
		{"category", a.Category},
		{"level", a.Level},
		{"achievementDate", a.AchievementDate},
		{"issuingAuthority", a.IssuingAuthority},
		{"evidenceLink", a.EvidenceLink},
	}

	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

func applyUpdate(a *models.Achievement, u *models.AchievementUpdate) {
	if u.AchievementTitle != nil {
		a.AchievementTitle = *u.AchievementTitle
	}
	if u.AchievementDescription != nil {
		a.AchievementDescription = *u.AchievementDescription
	}
	if u.Category != nil {
		a.Category = *u.Category
	}
	if u.Level != nil {
		a.Level = *u.Level
	}
	if u.AchievementDate != nil {
		a.AchievementDate = *u.AchievementDate
	}
	if u.IssuingAuthority != nil {
		a.IssuingAuthority = *u.IssuingAuthority
	}
	if u.EvidenceLink != nil {
		a.EvidenceLink = *u.EvidenceLink
	}
}
