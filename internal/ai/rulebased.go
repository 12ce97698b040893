package ai

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/azhar2201/achievement-tracker/internal/models"
)

// Skill keyword lists used to populate the technical-skills buckets. Matching
// is case-insensitive on word boundaries of the achievement text and profile
// skills.
var (
	languageKeywords = []string{
		"python", "java", "c", "c++", "c#", "go", "golang", "javascript",
		"typescript", "kotlin", "swift", "rust", "php", "ruby", "scala",
		"sql", "r", "matlab", "dart",
	}
	frameworkKeywords = []string{
		"react", "angular", "vue", "node", "nodejs", "express", "django",
		"flask", "spring", "fastapi", "tensorflow", "pytorch", "keras",
		"pandas", "numpy", "flutter", "bootstrap", "tailwind",
	}
	toolKeywords = []string{
		"git", "github", "gitlab", "docker", "kubernetes", "aws", "azure",
		"gcp", "firebase", "linux", "mongodb", "postgresql", "mysql",
		"redis", "jenkins", "figma", "tableau", "excel",
	}
)

// Categories routed into the extracurricular section instead of the general
// achievements list.
var extracurricularCategories = map[string]bool{
	"sports":          true,
	"cultural":        true,
	"volunteer":       true,
	"volunteering":    true,
	"extracurricular": true,
}

// RuleBasedGenerator is the deterministic fallback. It performs the same
// category routing and keyword extraction the remote prompt asks for, so the
// endpoint stays usable without any external provider.
type RuleBasedGenerator struct{}

// NewRuleBasedGenerator creates the fallback generator.
func NewRuleBasedGenerator() *RuleBasedGenerator {
	return &RuleBasedGenerator{}
}

// Name identifies this generator in responses and logs.
func (g *RuleBasedGenerator) Name() string {
	return "rule-based"
}

// Generate assembles the resume locally from the validated achievements and
// profile fields.
func (g *RuleBasedGenerator) Generate(_ context.Context, req *Request) (*models.Resume, error) {
	resume := &models.Resume{
		PersonalInfo:              personalInfo(req),
		Objective:                 buildObjective(req),
		Education:                 []models.ResumeEducation{},
		Projects:                  []models.ResumeProject{},
		Experience:                []models.ResumeExperience{},
		Achievements:              []models.ResumeAchievement{},
		ExtracurricularActivities: []string{},
		GeneratedBy:               g.Name(),
	}

	if req.Profile != nil {
		for _, e := range req.Profile.Education {
			resume.Education = append(resume.Education, models.ResumeEducation{
				Degree:      e.Degree,
				Institution: e.Institution,
				Year:        e.Year,
				Grade:       e.Grade,
			})
		}
		if len(resume.Education) == 0 && req.Profile.Degree != "" {
			resume.Education = append(resume.Education, models.ResumeEducation{
				Degree:      req.Profile.Degree,
				Institution: req.Profile.Institution,
				Year:        req.Profile.GraduationYear,
				Grade:       req.Profile.GPA,
			})
		}
	}

	for _, a := range req.Achievements {
		switch routeCategory(a.Category) {
		case "education":
			resume.Education = append(resume.Education, models.ResumeEducation{
				Degree:      a.AchievementTitle,
				Institution: a.IssuingAuthority,
				Year:        a.AchievementDate,
				Highlight:   a.AchievementDescription,
			})
		case "projects":
			resume.Projects = append(resume.Projects, models.ResumeProject{
				Title:       a.AchievementTitle,
				Description: a.AchievementDescription,
				Date:        a.AchievementDate,
				Link:        a.EvidenceLink,
			})
		case "experience":
			resume.Experience = append(resume.Experience, models.ResumeExperience{
				Role:         a.AchievementTitle,
				Organization: a.IssuingAuthority,
				Duration:     a.AchievementDate,
				Description:  a.AchievementDescription,
			})
		case "extracurricular":
			resume.ExtracurricularActivities = append(resume.ExtracurricularActivities,
				fmt.Sprintf("%s (%s)", a.AchievementTitle, a.Category))
		default:
			resume.Achievements = append(resume.Achievements, models.ResumeAchievement{
				Title:  a.AchievementTitle,
				Issuer: a.IssuingAuthority,
				Date:   a.AchievementDate,
				Level:  a.Level,
			})
		}
	}

	resume.TechnicalSkills = extractSkills(req)
	return resume, nil
}

// routeCategory maps an achievement category onto a resume section.
func routeCategory(category string) string {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "academic":
		return "education"
	case "project", "research":
		return "projects"
	case "internship", "leadership":
		return "experience"
	}
	if extracurricularCategories[strings.ToLower(strings.TrimSpace(category))] {
		return "extracurricular"
	}
	return "achievements"
}

// extractSkills scans achievement text and profile skills against the fixed
// keyword lists and sorts the matches into buckets.
func extractSkills(req *Request) models.TechnicalSkills {
	tokens := make(map[string]bool)
	for _, a := range req.Achievements {
		collectTokens(a.AchievementTitle, tokens)
		collectTokens(a.AchievementDescription, tokens)
	}

	var profileSkills []string
	if req.Profile != nil {
		profileSkills = req.Profile.Skills
		for _, s := range profileSkills {
			collectTokens(s, tokens)
		}
	}

	skills := models.TechnicalSkills{
		ProgrammingLanguages:   matchKeywords(tokens, languageKeywords),
		FrameworksAndLibraries: matchKeywords(tokens, frameworkKeywords),
		ToolsAndPlatforms:      matchKeywords(tokens, toolKeywords),
		OtherSkills:            []string{},
	}

	// Profile skills that fell into no bucket still belong on the resume.
	matched := make(map[string]bool)
	for _, list := range [][]string{skills.ProgrammingLanguages, skills.FrameworksAndLibraries, skills.ToolsAndPlatforms} {
		for _, s := range list {
			matched[strings.ToLower(s)] = true
		}
	}
	for _, s := range profileSkills {
		if s != "" && !matched[strings.ToLower(s)] {
			skills.OtherSkills = append(skills.OtherSkills, s)
		}
	}
	return skills
}

// ExtractKeywords returns every known technology keyword found in the given
// texts, across all buckets. Shared with the skill-extraction helper.
func ExtractKeywords(texts ...string) []string {
	tokens := make(map[string]bool)
	for _, t := range texts {
		collectTokens(t, tokens)
	}

	var all []string
	for _, list := range [][]string{languageKeywords, frameworkKeywords, toolKeywords} {
		all = append(all, matchKeywords(tokens, list)...)
	}
	sort.Strings(all)
	return all
}

func collectTokens(text string, tokens map[string]bool) {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return false
		case r == '+' || r == '#':
			return false
		}
		return true
	})
	for _, f := range fields {
		tokens[f] = true
	}
}

func matchKeywords(tokens map[string]bool, keywords []string) []string {
	var matches []string
	for _, kw := range keywords {
		if tokens[kw] {
			matches = append(matches, titleCase(kw))
		}
	}
	sort.Strings(matches)
	return matches
}

func titleCase(s string) string {
	switch s {
	case "aws", "gcp", "sql", "php", "mysql":
		return strings.ToUpper(s)
	case "nodejs":
		return "Node.js"
	case "golang":
		return "Go"
	}
	if len(s) > 0 && s[0] >= 'a' && s[0] <= 'z' {
		return strings.ToUpper(s[:1]) + s[1:]
	}
	return s
}

func personalInfo(req *Request) models.PersonalInfo {
	info := models.PersonalInfo{Name: req.DisplayName}
	if req.Profile != nil {
		info.Email = req.Profile.Email
		info.Phone = req.Profile.Phone
		info.Location = req.Profile.Location
		info.LinkedIn = req.Profile.LinkedIn
		info.GitHub = req.Profile.GitHub
		info.Portfolio = req.Profile.Portfolio
		if info.Name == "" {
			info.Name = req.Profile.Name
		}
	}
	return info
}

func buildObjective(req *Request) string {
	degree := ""
	institution := ""
	if req.Profile != nil {
		degree = req.Profile.Degree
		institution = req.Profile.Institution
	}

	var b strings.Builder
	if degree != "" && institution != "" {
		b.WriteString(fmt.Sprintf("%s student at %s", degree, institution))
	} else {
		b.WriteString("Motivated student")
	}
	b.WriteString(fmt.Sprintf(" with %d validated achievement", len(req.Achievements)))
	if len(req.Achievements) != 1 {
		b.WriteString("s")
	}
	b.WriteString(", seeking opportunities to apply proven skills and a consistent record of accomplishment.")
	return b.String()
}
