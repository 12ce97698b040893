package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/azhar2201/achievement-tracker/internal/models"
)

// Request carries everything a generator needs to assemble a resume.
type Request struct {
	DisplayName  string
	RollNumber   string
	Profile      *models.Student // nil when no profile document exists
	Achievements []models.Achievement
}

// Generator produces a resume document from validated achievements. Both
// implementations satisfy the same output contract so the pipeline can swap
// them freely.
type Generator interface {
	Generate(ctx context.Context, req *Request) (*models.Resume, error)
	Name() string
}

// FormatAchievements serializes achievements into the flat text block fed to
// the remote model and echoed into logs.
func FormatAchievements(achievements []models.Achievement) string {
	var b strings.Builder
	for i, a := range achievements {
		b.WriteString(fmt.Sprintf("%d. [%s] %s\n", i+1, a.Category, a.AchievementTitle))
		if a.AchievementDescription != "" {
			b.WriteString(fmt.Sprintf("   Description: %s\n", a.AchievementDescription))
		}
		if a.IssuingAuthority != "" {
			b.WriteString(fmt.Sprintf("   Issued by: %s\n", a.IssuingAuthority))
		}
		if a.AchievementDate != "" {
			b.WriteString(fmt.Sprintf("   Date: %s\n", a.AchievementDate))
		}
		if a.Level != "" {
			b.WriteString(fmt.Sprintf("   Level: %s\n", a.Level))
		}
	}
	return b.String()
}
