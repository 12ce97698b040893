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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AuditRepository persists validation decisions so every admin review is
// traceable.
type AuditRepository struct {
	collection *mongo.Collection
}

// NewAuditRepository creates a new instance of AuditRepository.
func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{
		collection: db.Collection("validation_audit"),
	}
}

// RecordDecision appends an audit entry for one validate/reject action.
func (r *AuditRepository) RecordDecision(ctx context.Context, entry *models.AuditEntry) error {
	entry.DecidedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to record validation decision")
		return fmt.Errorf("failed to record validation decision: %v", err)
	}

	logger.Log.WithFields(map[string]interface{}{
		"achievement_id": entry.AchievementID.Hex(),
		"decision":       entry.Decision,
		"decided_by":     entry.DecidedBy,
	}).Info("Validation decision recorded")
	return nil
}

// GetDecisions returns the audit trail for one achievement, newest first.
func (r *AuditRepository) GetDecisions(ctx context.Context, achievementID primitive.ObjectID) ([]models.AuditEntry, error) {
	findOptions := options.Find().SetSort(bson.M{"decided_at": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"achievement_id": achievementID}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch audit entries: %v", err)
	}
	defer cursor.Close(ctx)

	var entries []models.AuditEntry
	for cursor.Next(ctx) {
		var entry models.AuditEntry
		if err := cursor.Decode(&entry); err != nil {
			return nil, fmt.Errorf("failed to decode audit entry: %v", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
