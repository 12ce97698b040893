package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/azhar2201/achievement-tracker/internal/models"
	"github.com/azhar2201/achievement-tracker/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AchievementRepository handles database operations related to achievements.
type AchievementRepository struct {
	collection *mongo.Collection
}

// NewAchievementRepository creates a new instance of AchievementRepository.
func NewAchievementRepository(db *mongo.Database) *AchievementRepository {
	return &AchievementRepository{
		collection: db.Collection("achievements"),
	}
}

// CreateAchievement inserts a new achievement record.
func (r *AchievementRepository) CreateAchievement(ctx context.Context, achievement *models.Achievement) (*models.Achievement, error) {
	achievement.DateLogged = time.Now()
	achievement.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, achievement)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to insert achievement")
		return nil, fmt.Errorf("failed to insert achievement: %v", err)
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		logger.Log.Error("Failed to cast inserted ID to ObjectID")
		return nil, fmt.Errorf("failed to cast inserted ID")
	}
	achievement.ID = insertedID

	logger.Log.WithField("achievement_id", achievement.ID.Hex()).Info("Achievement created successfully")
	return achievement, nil
}

// GetAchievementByID fetches an achievement by its ID.
func (r *AchievementRepository) GetAchievementByID(ctx context.Context, id primitive.ObjectID) (*models.Achievement, error) {
	var achievement models.Achievement
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&achievement)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		logger.Log.WithError(err).WithField("achievement_id", id.Hex()).Error("Failed to find achievement by ID")
		return nil, fmt.Errorf("failed to find achievement: %v", err)
	}
	return &achievement, nil
}

// CountByRollAndTitle counts records matching a (rollNumber, title) pair.
// Used for the duplicate-submission check at creation time.
func (r *AchievementRepository) CountByRollAndTitle(ctx context.Context, rollNumber, title string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"roll_number":       rollNumber,
		"achievement_title": title,
	})
	if err != nil {
		logger.Log.WithError(err).Error("Failed to count achievements for duplicate check")
		return 0, fmt.Errorf("failed to count achievements: %v", err)
	}
	return count, nil
}

// GetAchievements fetches achievements matching the given filter.
func (r *AchievementRepository) GetAchievements(ctx context.Context, filter bson.M) ([]models.Achievement, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch achievements")
		return nil, fmt.Errorf("failed to fetch achievements: %v", err)
	}
	defer cursor.Close(ctx)

	var achievements []models.Achievement
	for cursor.Next(ctx) {
		var achievement models.Achievement
		if err := cursor.Decode(&achievement); err != nil {
			logger.Log.WithError(err).Error("Failed to decode achievement")
			return nil, fmt.Errorf("failed to decode achievement: %v", err)
		}
		achievements = append(achievements, achievement)
	}

	logger.Log.WithField("count", len(achievements)).Info("Achievements fetched successfully")
	return achievements, nil
}

// GetAll fetches every achievement record.
func (r *AchievementRepository) GetAll(ctx context.Context) ([]models.Achievement, error) {
	return r.GetAchievements(ctx, bson.M{})
}

// GetByStatus fetches achievements with the given status.
func (r *AchievementRepository) GetByStatus(ctx context.Context, status string) ([]models.Achievement, error) {
	return r.GetAchievements(ctx, bson.M{"status": status})
}

// GetByRollNumber fetches all achievements of one student.
func (r *AchievementRepository) GetByRollNumber(ctx context.Context, rollNumber string) ([]models.Achievement, error) {
	return r.GetAchievements(ctx, bson.M{"roll_number": rollNumber})
}

// GetValidatedByRollNumber fetches a student's validated achievements for
// resume generation.
func (r *AchievementRepository) GetValidatedByRollNumber(ctx context.Context, rollNumber string) ([]models.Achievement, error) {
	return r.GetAchievements(ctx, bson.M{
		"roll_number": rollNumber,
		"status":      models.StatusValidated,
	})
}

// UpdateAchievement replaces the mutable fields of an achievement.
func (r *AchievementRepository) UpdateAchievement(ctx context.Context, id primitive.ObjectID, achievement *models.Achievement) (*models.Achievement, error) {
	achievement.UpdatedAt = time.Now()

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": achievement})
	if err != nil {
		logger.Log.WithError(err).WithField("achievement_id", id.Hex()).Error("Failed to update achievement")
		return nil, fmt.Errorf("failed to update achievement: %v", err)
	}

	logger.Log.WithField("achievement_id", id.Hex()).Info("Achievement updated successfully")
	return achievement, nil
}

// UpdateStatus sets only the status field of an achievement.
func (r *AchievementRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
	)
	if err != nil {
		logger.Log.WithError(err).WithField("achievement_id", id.Hex()).Error("Failed to update achievement status")
		return fmt.Errorf("failed to update achievement status: %v", err)
	}

	logger.Log.WithFields(map[string]interface{}{
		"achievement_id": id.Hex(),
		"status":         status,
	}).Info("Achievement status updated")
	return nil
}

// DeleteAchievement hard-deletes an achievement by its ID.
func (r *AchievementRepository) DeleteAchievement(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logger.Log.WithError(err).WithField("achievement_id", id.Hex()).Error("Failed to delete achievement")
		return fmt.Errorf("failed to delete achievement: %v", err)
	}

	logger.Log.WithField("achievement_id", id.Hex()).Info("Achievement deleted successfully")
	return nil
}
