package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles carried in token claims.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// Student represents a student account together with its resume profile.
type Student struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username        string             `bson:"username" json:"username"`
	HashedPassword  string             `bson:"hashed_password" json:"-"`
	RollNumber      string             `bson:"roll_number" json:"rollNumber"`
	Name            string             `bson:"name" json:"name"`
	Email           string             `bson:"email" json:"email"`
	Phone           string             `bson:"phone" json:"phone"`
	Location        string             `bson:"location" json:"location"`
	LinkedIn        string             `bson:"linkedin" json:"linkedin"`
	GitHub          string             `bson:"github" json:"github"`
	Portfolio       string             `bson:"portfolio" json:"portfolio"`
	Degree          string             `bson:"degree" json:"degree"`
	Institution     string             `bson:"institution" json:"institution"`
	GraduationYear  string             `bson:"graduation_year" json:"graduationYear"`
	GPA             string             `bson:"gpa" json:"gpa"`
	Skills          []string           `bson:"skills" json:"skills"`
	Education       []EducationEntry   `bson:"education" json:"education"`
	Certifications  []Certification    `bson:"certifications" json:"certifications"`
	ProfileComplete bool               `bson:"profile_complete" json:"profileComplete"`
	Role            string             `bson:"role" json:"role"`
	CreatedAt       time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updatedAt"`
	LastActive      time.Time          `bson:"last_active,omitempty" json:"lastActive,omitempty"`
}

// EducationEntry is a freeform education record on the profile. Entries are
// wholesale-replaced on each save, not diffed.
type EducationEntry struct {
	Degree      string `bson:"degree" json:"degree"`
	Institution string `bson:"institution" json:"institution"`
	Year        string `bson:"year" json:"year"`
	Grade       string `bson:"grade,omitempty" json:"grade,omitempty"`
}

// Certification is a freeform certification record on the profile.
type Certification struct {
	Name   string `bson:"name" json:"name"`
	Issuer string `bson:"issuer" json:"issuer"`
	Year   string `bson:"year,omitempty" json:"year,omitempty"`
}

// ProfileUpdate carries a partial profile update. Only provided fields
// overwrite existing ones; list fields replace the stored lists entirely.
type ProfileUpdate struct {
	Name           *string           `json:"name,omitempty"`
	Email          *string           `json:"email,omitempty"`
	Phone          *string           `json:"phone,omitempty"`
	Location       *string           `json:"location,omitempty"`
	LinkedIn       *string           `json:"linkedin,omitempty"`
	GitHub         *string           `json:"github,omitempty"`
	Portfolio      *string           `json:"portfolio,omitempty"`
	Degree         *string           `json:"degree,omitempty"`
	Institution    *string           `json:"institution,omitempty"`
	GraduationYear *string           `json:"graduationYear,omitempty"`
	GPA            *string           `json:"gpa,omitempty"`
	Skills         *[]string         `json:"skills,omitempty"`
	Education      *[]EducationEntry `json:"education,omitempty"`
	Certifications *[]Certification  `json:"certifications,omitempty"`
}

// PublicStudent is the student payload returned to clients after
// registration and login.
type PublicStudent struct {
	ID         primitive.ObjectID `json:"id"`
	Username   string             `json:"username"`
	Name       string             `json:"name"`
	RollNumber string             `json:"rollNumber"`
	Email      string             `json:"email"`
}
