package services

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/azhar2201/achievement-tracker/internal/models"
	"github.com/azhar2201/achievement-tracker/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMain(m *testing.M) {
	logger.InitLogger()
	os.Exit(m.Run())
}

func validSubmission() *models.Achievement {
	return &models.Achievement{
		StudentName:            "Aruzhan",
		RollNumber:             "R1",
		AchievementTitle:       "Hackathon Winner",
		AchievementDescription: "Won first place building a React dashboard",
		Category:               "project",
		Level:                  "national",
		AchievementDate:        "2026-03-15",
		IssuingAuthority:       "ACM",
		EvidenceLink:           "http://evidence.example/1",
	}
}

func TestLogAchievement_MissingFieldsCreatesNothing(t *testing.T) {
	store := newFakeAchievementStore()
	service := NewAchievementService(store, &fakeAuditStore{})

	fields := []func(*models.Achievement){
		func(a *models.Achievement) { a.StudentName = "" },
		func(a *models.Achievement) { a.RollNumber = "" },
		func(a *models.Achievement) { a.AchievementTitle = "" },
		func(a *models.Achievement) { a.AchievementDescription = "" },
		func(a *models.Achievement) { a.Category = "" },
		func(a *models.Achievement) { a.Level = "" },
		func(a *models.Achievement) { a.AchievementDate = "" },
		func(a *models.Achievement) { a.IssuingAuthority = "" },
		func(a *models.Achievement) { a.EvidenceLink = "" },
	}

	for _, clear := range fields {
		submission := validSubmission()
		clear(submission)

		_, err := service.LogAchievement(context.Background(), submission)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingFields))
	}

	assert.Empty(t, store.records, "no record may be created for an invalid submission")
}

func TestLogAchievement_StartsPending(t *testing.T) {
	store := newFakeAchievementStore()
	service := NewAchievementService(store, &fakeAuditStore{})

	created, err := service.LogAchievement(context.Background(), validSubmission())
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.False(t, created.ID.IsZero())
}

func TestLogAchievement_DuplicateRejected(t *testing.T) {
	store := newFakeAchievementStore()
	service := NewAchievementService(store, &fakeAuditStore{})

	_, err := service.LogAchievement(context.Background(), validSubmission())
	require.NoError(t, err)

	_, err = service.LogAchievement(context.Background(), validSubmission())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicate))
	assert.Len(t, store.records, 1, "store must contain exactly one matching record")

	// Same title under a different roll number is a different achievement.
	other := validSubmission()
	other.RollNumber = "R2"
	_, err = service.LogAchievement(context.Background(), other)
	assert.NoError(t, err)
}

func TestValidateAchievement_InvalidStatusLeavesRecordUnchanged(t *testing.T) {
	store := newFakeAchievementStore()
	service := NewAchievementService(store, &fakeAuditStore{})

	created, err := service.LogAchievement(context.Background(), validSubmission())
	require.NoError(t, err)

	for _, status := range []string{"approved", "PENDING", "Validated", ""} {
		_, err = service.ValidateAchievement(context.Background(), created.ID.Hex(), status, "admin")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidStatus))
	}

	stored := store.records[created.ID]
	assert.Equal(t, models.StatusPending, stored.Status)
}

func TestValidateAchievement_UnknownIDNotFound(t *testing.T) {
	service := NewAchievementService(newFakeAchievementStore(), &fakeAuditStore{})

	_, err := service.ValidateAchievement(context.Background(), primitive.NewObjectID().Hex(), models.StatusValidated, "admin")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = service.ValidateAchievement(context.Background(), "not-a-hex-id", models.StatusValidated, "admin")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestValidateAchievement_RecordsAuditEntry(t *testing.T) {
	store := newFakeAchievementStore()
	audit := &fakeAuditStore{}
	service := NewAchievementService(store, audit)

	created, err := service.LogAchievement(context.Background(), validSubmission())
	require.NoError(t, err)

	validated, err := service.ValidateAchievement(context.Background(), created.ID.Hex(), models.StatusValidated, "reviewer1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusValidated, validated.Status)
	assert.Equal(t, models.StatusValidated, store.records[created.ID].Status)

	require.Len(t, audit.entries, 1)
	assert.Equal(t, "reviewer1", audit.entries[0].DecidedBy)
	assert.Equal(t, models.StatusValidated, audit.entries[0].Decision)
}

func TestUpdateAchievement_ResetsValidatedToPending(t *testing.T) {
	store := newFakeAchievementStore()
	service := NewAchievementService(store, &fakeAuditStore{})

	created, err := service.LogAchievement(context.Background(), validSubmission())
	require.NoError(t, err)
	_, err = service.ValidateAchievement(context.Background(), created.ID.Hex(), models.StatusValidated, "admin")
	require.NoError(t, err)

	newTitle := "Hackathon Winner 2026"
	updated, err := service.UpdateAchievement(context.Background(), created.ID.Hex(), "R1", &models.AchievementUpdate{
		AchievementTitle: &newTitle,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, updated.Status, "edit must force re-validation")
	assert.Equal(t, newTitle, updated.AchievementTitle)
	assert.Equal(t, "project", updated.Category, "untouched fields survive the edit")
}

func TestUpdateAchievement_OwnershipEnforced(t *testing.T) {
	store := newFakeAchievementStore()
	service := NewAchievementService(store, &fakeAuditStore{})

	created, err := service.LogAchievement(context.Background(), validSubmission())
	require.NoError(t, err)

	title := "Stolen"
	_, err = service.UpdateAchievement(context.Background(), created.ID.Hex(), "R2", &models.AchievementUpdate{AchievementTitle: &title})
	assert.True(t, errors.Is(err, ErrForbidden))

	err = service.DeleteAchievement(context.Background(), created.ID.Hex(), "R2")
	assert.True(t, errors.Is(err, ErrForbidden))
	assert.Len(t, store.records, 1)
}

func TestDeleteAchievement_RemovesRecord(t *testing.T) {
	store := newFakeAchievementStore()
	service := NewAchievementService(store, &fakeAuditStore{})

	created, err := service.LogAchievement(context.Background(), validSubmission())
	require.NoError(t, err)

	require.NoError(t, service.DeleteAchievement(context.Background(), created.ID.Hex(), "R1"))
	assert.Empty(t, store.records)
}
