package services

import (
	"context"
	"testing"

	"github.com/azhar2201/achievement-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// All assistant tests run without a remote provider, exercising the
// deterministic fallbacks.

func newOfflineAssistant(achievements *fakeAchievementStore, students *fakeStudentStore) *AssistantService {
	return NewAssistantService(nil, achievements, students, NewAnalyticsService(achievements))
}

func TestDescribeAchievement_Offline(t *testing.T) {
	service := newOfflineAssistant(newFakeAchievementStore(), newFakeStudentStore())

	described, err := service.DescribeAchievement(context.Background(), "Hackathon Winner", "project", "built a dashboard overnight")
	require.NoError(t, err)
	assert.Equal(t, "Hackathon Winner: built a dashboard overnight", described)

	described, err = service.DescribeAchievement(context.Background(), "Hackathon Winner", "project", "")
	require.NoError(t, err)
	assert.Contains(t, described, "Hackathon Winner")
	assert.Contains(t, described, "project")
}

func TestOptimizeBullet_OfflineReturnsOriginal(t *testing.T) {
	service := newOfflineAssistant(newFakeAchievementStore(), newFakeStudentStore())

	bullet := "did some coding on the team project"
	out, err := service.OptimizeBullet(context.Background(), bullet)
	require.NoError(t, err)
	assert.Equal(t, bullet, out)
}

func TestExtractSkills_OfflineKeywordMatch(t *testing.T) {
	service := newOfflineAssistant(newFakeAchievementStore(), newFakeStudentStore())

	skills, err := service.ExtractSkills(context.Background(), "Deployed a Django app with PostgreSQL and Docker")
	require.NoError(t, err)
	assert.Equal(t, []string{"Django", "Docker", "Postgresql"}, skills)
}

func TestAnalyzeGaps_OfflineSuggestions(t *testing.T) {
	achievements := newFakeAchievementStore()
	service := newOfflineAssistant(achievements, newFakeStudentStore())

	gaps, err := service.AnalyzeGaps(context.Background(), studentClaims("R1"))
	require.NoError(t, err)
	assert.Contains(t, gaps, "Complete your profile")
	assert.Contains(t, gaps, "No validated achievements yet")
	assert.Contains(t, gaps, "project or research")
	assert.Contains(t, gaps, "internship or leadership")
}

func TestAnalyzeGaps_CompleteRecord(t *testing.T) {
	achievements := newFakeAchievementStore()
	students := newFakeStudentStore()
	_, err := students.CreateStudent(context.Background(), &models.Student{
		Username: "aruzhan", RollNumber: "R1", Name: "Aruzhan", ProfileComplete: true,
	})
	require.NoError(t, err)

	seedValidated(t, achievements, "R1", "Dashboard", "project")
	seedValidated(t, achievements, "R1", "Backend Intern", "internship")

	service := newOfflineAssistant(achievements, students)
	gaps, err := service.AnalyzeGaps(context.Background(), studentClaims("R1"))
	require.NoError(t, err)
	assert.Contains(t, gaps, "Keep logging new achievements")
}

func TestChat_RoleScopedContext(t *testing.T) {
	achievements := newFakeAchievementStore()
	students := newFakeStudentStore()
	seedValidated(t, achievements, "R1", "Dashboard", "project")
	seedValidated(t, achievements, "R2", "Marathon", "sports")

	service := newOfflineAssistant(achievements, students)

	studentReply, err := service.Chat(context.Background(), studentClaims("R1"), "How am I doing?")
	require.NoError(t, err)
	assert.Contains(t, studentReply, "Dashboard")
	assert.NotContains(t, studentReply, "Marathon", "students never see other students' records")

	adminReply, err := service.Chat(context.Background(), adminClaims(), "What does the queue look like?")
	require.NoError(t, err)
	assert.Contains(t, adminReply, "Total achievements: 2")
	assert.NotContains(t, adminReply, "Dashboard", "admin context is aggregate counts, not record detail")
}
