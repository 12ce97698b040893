package services

import (
	"context"

	"github.com/azhar2201/achievement-tracker/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AchievementStore is the persistence surface the achievement, resume and
// analytics services depend on. The Mongo repository implements it; tests
// substitute an in-memory fake.
type AchievementStore interface {
	CreateAchievement(ctx context.Context, achievement *models.Achievement) (*models.Achievement, error)
	GetAchievementByID(ctx context.Context, id primitive.ObjectID) (*models.Achievement, error)
	CountByRollAndTitle(ctx context.Context, rollNumber, title string) (int64, error)
	GetAll(ctx context.Context) ([]models.Achievement, error)
	GetByStatus(ctx context.Context, status string) ([]models.Achievement, error)
	GetByRollNumber(ctx context.Context, rollNumber string) ([]models.Achievement, error)
	GetValidatedByRollNumber(ctx context.Context, rollNumber string) ([]models.Achievement, error)
	UpdateAchievement(ctx context.Context, id primitive.ObjectID, achievement *models.Achievement) (*models.Achievement, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error
	DeleteAchievement(ctx context.Context, id primitive.ObjectID) error
}

// StudentStore is the persistence surface for student accounts and profiles.
type StudentStore interface {
	CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error)
	GetStudentByUsername(ctx context.Context, username string) (*models.Student, error)
	GetStudentByRollNumber(ctx context.Context, rollNumber string) (*models.Student, error)
	UpdateStudent(ctx context.Context, id primitive.ObjectID, student *models.Student) (*models.Student, error)
	UpsertProfile(ctx context.Context, student *models.Student) error
	UpdateLastActive(ctx context.Context, id primitive.ObjectID) error
}

// AuditStore records admin validation decisions.
type AuditStore interface {
	RecordDecision(ctx context.Context, entry *models.AuditEntry) error
	GetDecisions(ctx context.Context, achievementID primitive.ObjectID) ([]models.AuditEntry, error)
}
