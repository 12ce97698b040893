package services

import (
	"context"
	"fmt"

	"github.com/azhar2201/achievement-tracker/internal/ai"
	"github.com/azhar2201/achievement-tracker/internal/models"
	jwtutil "github.com/azhar2201/achievement-tracker/pkg/jwt"
	"github.com/azhar2201/achievement-tracker/pkg/logger"
)

// ResumeService runs the resume assembly pipeline: gather validated
// achievements, pick a generator, return the assembled document. Nothing is
// persisted.
type ResumeService struct {
	achievements AchievementStore
	students     StudentStore
	remote       ai.Generator // nil when no provider is configured
	fallback     ai.Generator
}

// NewResumeService creates a new instance of ResumeService. remote may be
// nil; fallback must not be.
func NewResumeService(achievements AchievementStore, students StudentStore, remote, fallback ai.Generator) *ResumeService {
	return &ResumeService{
		achievements: achievements,
		students:     students,
		remote:       remote,
		fallback:     fallback,
	}
}

// Generate assembles a resume for the given roll number. Students may only
// request their own; admins may request any. When mock is set, or the remote
// provider is unconfigured or fails, the rule-based generator produces the
// same output shape, so provider unavailability never breaks the feature.
func (s *ResumeService) Generate(ctx context.Context, claims *jwtutil.Claims, rollNumber string, mock bool) (*models.Resume, error) {
	if rollNumber == "" {
		rollNumber = claims.RollNumber
	}
	if claims.Role != models.RoleAdmin && rollNumber != claims.RollNumber {
		return nil, fmt.Errorf("%w: students can only generate their own resume", ErrForbidden)
	}

	achievements, err := s.achievements.GetValidatedByRollNumber(ctx, rollNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch validated achievements: %v", err)
	}
	if len(achievements) == 0 {
		return nil, fmt.Errorf("%w: no validated achievements for %s yet. Submit achievements and wait for admin validation", ErrNoValidated, rollNumber)
	}

	displayName := achievements[0].StudentName
	if displayName == "" {
		displayName = claims.Name
	}

	// Profile enriches the resume but its absence is not an error.
	profile, err := s.students.GetStudentByRollNumber(ctx, rollNumber)
	if err != nil {
		logger.Log.WithError(err).Warn("Failed to fetch profile for resume, continuing without it")
		profile = nil
	}

	req := &ai.Request{
		DisplayName:  displayName,
		RollNumber:   rollNumber,
		Profile:      profile,
		Achievements: achievements,
	}

	generator := s.fallback
	if !mock && s.remote != nil {
		generator = s.remote
	}

	resume, err := generator.Generate(ctx, req)
	if err != nil && generator != s.fallback {
		logger.Log.WithError(err).Warn("Remote resume generation failed, falling back to rule-based generator")
		resume, err = s.fallback.Generate(ctx, req)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to generate resume: %v", err)
	}

	logger.Log.WithFields(map[string]interface{}{
		"roll_number":  rollNumber,
		"generated_by": resume.GeneratedBy,
		"achievements": len(achievements),
	}).Info("Resume generated")
	return resume, nil
}
