package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Achievement statuses. An achievement starts as pending, an admin moves it
// to validated or rejected, and a student edit always resets it to pending.
const (
	StatusPending   = "pending"
	StatusValidated = "validated"
	StatusRejected  = "rejected"
)

// Achievement represents a single student-submitted accomplishment record
// subject to admin validation.
type Achievement struct {
	ID                     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentName            string             `bson:"student_name" json:"studentName"`
	RollNumber             string             `bson:"roll_number" json:"rollNumber"`
	AchievementTitle       string             `bson:"achievement_title" json:"achievementTitle"`
	AchievementDescription string             `bson:"achievement_description" json:"achievementDescription"`
	Category               string             `bson:"category" json:"category"`
	Level                  string             `bson:"level" json:"level"`
	AchievementDate        string             `bson:"achievement_date" json:"achievementDate"`
	IssuingAuthority       string             `bson:"issuing_authority" json:"issuingAuthority"`
	EvidenceLink           string             `bson:"evidence_link" json:"evidenceLink"`
	Status                 string             `bson:"status" json:"status"`
	DateLogged             time.Time          `bson:"date_logged" json:"dateLogged"`
	UpdatedAt              time.Time          `bson:"updated_at" json:"updatedAt"`
}

// AchievementUpdate carries the editable fields of a student edit. Pointer
// fields distinguish "not provided" from "set to empty".
type AchievementUpdate struct {
	AchievementTitle       *string `json:"achievementTitle,omitempty"`
	AchievementDescription *string `json:"achievementDescription,omitempty"`
	Category               *string `json:"category,omitempty"`
	Level                  *string `json:"level,omitempty"`
	AchievementDate        *string `json:"achievementDate,omitempty"`
	IssuingAuthority       *string `json:"issuingAuthority,omitempty"`
	EvidenceLink           *string `json:"evidenceLink,omitempty"`
}
