package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/azhar2201/achievement-tracker/internal/ai"
	"github.com/azhar2201/achievement-tracker/internal/models"
	jwtutil "github.com/azhar2201/achievement-tracker/pkg/jwt"
	"github.com/sirupsen/logrus"
)

// AssistantService backs the generative helper endpoints. Every operation
// proxies one prompt to the remote provider and degrades to a deterministic
// answer when the provider is unconfigured or failing.
type AssistantService struct {
	remote       *ai.RemoteGenerator // nil when unconfigured
	achievements AchievementStore
	students     StudentStore
	analytics    *AnalyticsService
}

// NewAssistantService creates a new instance of AssistantService.
func NewAssistantService(remote *ai.RemoteGenerator, achievements AchievementStore, students StudentStore, analytics *AnalyticsService) *AssistantService {
	return &AssistantService{
		remote:       remote,
		achievements: achievements,
		students:     students,
		analytics:    analytics,
	}
}

const assistantPersona = "You are a concise writing assistant for a student achievement tracker. Improve text without inventing facts."

// DescribeAchievement polishes a rough achievement description.
func (s *AssistantService) DescribeAchievement(ctx context.Context, title, category, rough string) (string, error) {
	if s.remote != nil {
		prompt := fmt.Sprintf("Write a 2-3 sentence achievement description for a student resume.\nTitle: %s\nCategory: %s\nNotes: %s", title, category, rough)
		answer, err := s.remote.Complete(ctx, assistantPersona, prompt)
		if err == nil {
			return strings.TrimSpace(answer), nil
		}
		logrus.WithError(err).Warn("Remote describe failed, using template")
	}

	if rough != "" {
		return fmt.Sprintf("%s: %s", title, rough), nil
	}
	return fmt.Sprintf("Earned recognition for %q in the %s category.", title, category), nil
}

// OptimizeBullet rewrites a resume bullet in stronger action-verb form.
func (s *AssistantService) OptimizeBullet(ctx context.Context, bullet string) (string, error) {
	if s.remote != nil {
		prompt := fmt.Sprintf("Rewrite this resume bullet with a strong action verb and a measurable outcome where possible. Return only the bullet.\n\n%s", bullet)
		answer, err := s.remote.Complete(ctx, assistantPersona, prompt)
		if err == nil {
			return strings.TrimSpace(answer), nil
		}
		logrus.WithError(err).Warn("Remote bullet optimization failed, using original")
	}
	return bullet, nil
}

// ExtractSkills pulls technology keywords out of freeform text.
func (s *AssistantService) ExtractSkills(ctx context.Context, text string) ([]string, error) {
	if s.remote != nil {
		prompt := fmt.Sprintf("List the concrete technologies and tools mentioned in the text below as a comma-separated list, nothing else.\n\n%s", text)
		answer, err := s.remote.Complete(ctx, assistantPersona, prompt)
		if err == nil {
			var skills []string
			for _, part := range strings.Split(answer, ",") {
				if skill := strings.TrimSpace(part); skill != "" {
					skills = append(skills, skill)
				}
			}
			if len(skills) > 0 {
				return skills, nil
			}
		} else {
			logrus.WithError(err).Warn("Remote skill extraction failed, using keyword match")
		}
	}
	return ai.ExtractKeywords(text), nil
}

// AnalyzeGaps reviews the caller's profile and achievement mix and suggests
// what to work on next.
func (s *AssistantService) AnalyzeGaps(ctx context.Context, claims *jwtutil.Claims) (string, error) {
	profile, err := s.students.GetStudentByRollNumber(ctx, claims.RollNumber)
	if err != nil {
		return "", fmt.Errorf("failed to fetch profile: %v", err)
	}
	achievements, err := s.achievements.GetByRollNumber(ctx, claims.RollNumber)
	if err != nil {
		return "", fmt.Errorf("failed to fetch achievements: %v", err)
	}

	if s.remote != nil {
		prompt := fmt.Sprintf("A student asks what is missing from their track record.\n\nProfile complete: %v\nAchievements:\n%s\nSuggest 3 concrete gaps to address.",
			profile != nil && profile.ProfileComplete, ai.FormatAchievements(achievements))
		answer, err := s.remote.Complete(ctx, assistantPersona, prompt)
		if err == nil {
			return strings.TrimSpace(answer), nil
		}
		logrus.WithError(err).Warn("Remote gap analysis failed, using rule-based summary")
	}

	return ruleBasedGaps(profile, achievements), nil
}

// Chat answers a free-form question with role-scoped context injected:
// students get their own profile and achievements, admins get aggregate
// statistics. Neither sees the other side's data.
func (s *AssistantService) Chat(ctx context.Context, claims *jwtutil.Claims, message string) (string, error) {
	contextBlock, err := s.chatContext(ctx, claims)
	if err != nil {
		return "", err
	}

	if s.remote != nil {
		system := fmt.Sprintf("%s\nYou are answering a %s. Use only the context below and never reveal data belonging to other roles or other students.\n\nContext:\n%s",
			assistantPersona, claims.Role, contextBlock)
		answer, err := s.remote.Complete(ctx, system, message)
		if err == nil {
			return strings.TrimSpace(answer), nil
		}
		logrus.WithError(err).Warn("Remote chat failed, using canned summary")
	}

	return fmt.Sprintf("The assistant is offline right now. Here is what I can see:\n%s", contextBlock), nil
}

func (s *AssistantService) chatContext(ctx context.Context, claims *jwtutil.Claims) (string, error) {
	if claims.Role == models.RoleAdmin {
		summary, err := s.analytics.Summary(ctx, claims)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Total achievements: %d\nPending: %d\nValidated: %d\nRejected: %d",
			summary.Total,
			summary.ByStatus[models.StatusPending],
			summary.ByStatus[models.StatusValidated],
			summary.ByStatus[models.StatusRejected]), nil
	}

	profile, err := s.students.GetStudentByRollNumber(ctx, claims.RollNumber)
	if err != nil {
		return "", fmt.Errorf("failed to fetch profile: %v", err)
	}
	achievements, err := s.achievements.GetByRollNumber(ctx, claims.RollNumber)
	if err != nil {
		return "", fmt.Errorf("failed to fetch achievements: %v", err)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Student: %s (%s)\n", claims.Name, claims.RollNumber))
	if profile != nil {
		b.WriteString(fmt.Sprintf("Profile complete: %v\n", profile.ProfileComplete))
	}
	b.WriteString("Achievements:\n")
	b.WriteString(ai.FormatAchievements(achievements))
	return b.String(), nil
}

func ruleBasedGaps(profile *models.Student, achievements []models.Achievement) string {
	var gaps []string

	if profile == nil || !profile.ProfileComplete {
		gaps = append(gaps, "Complete your profile (name, email, phone, degree, institution) so resume generation has full contact details.")
	}

	categories := make(map[string]bool)
	validated := 0
	for _, a := range achievements {
		categories[strings.ToLower(a.Category)] = true
		if a.Status == models.StatusValidated {
			validated++
		}
	}
	if validated == 0 {
		gaps = append(gaps, "No validated achievements yet. Submit evidence-backed records and follow up on pending validations.")
	}
	if !categories["project"] && !categories["research"] {
		gaps = append(gaps, "Add a project or research achievement; resumes without a projects section are weaker.")
	}
	if !categories["internship"] && !categories["leadership"] {
		gaps = append(gaps, "Add an internship or leadership achievement to fill the experience section.")
	}

	if len(gaps) == 0 {
		return "Your record covers projects, experience and a complete profile. Keep logging new achievements as they happen."
	}
	return "- " + strings.Join(gaps, "\n- ")
}
