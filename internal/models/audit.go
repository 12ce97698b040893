package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuditEntry records a single admin validation decision so reviews can be
// traced back to who made them and when.
type AuditEntry struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AchievementID primitive.ObjectID `bson:"achievement_id" json:"achievementId"`
	RollNumber    string             `bson:"roll_number" json:"rollNumber"`
	Decision      string             `bson:"decision" json:"decision"`
	DecidedBy     string             `bson:"decided_by" json:"decidedBy"`
	DecidedAt     time.Time          `bson:"decided_at" json:"decidedAt"`
}
