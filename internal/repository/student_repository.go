package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/azhar2201/achievement-tracker/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StudentRepository handles database operations related to student accounts.
type StudentRepository struct {
	collection *mongo.Collection
}

// NewStudentRepository creates a new instance of StudentRepository.
func NewStudentRepository(db *mongo.Database) *StudentRepository {
	return &StudentRepository{
		collection: db.Collection("students"),
	}
}

// CreateStudent inserts a new student account.
func (r *StudentRepository) CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error) {
	student.CreatedAt = time.Now()
	student.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, student)
	if err != nil {
		logrus.WithError(err).Error("Failed to insert student into database")
		return nil, fmt.Errorf("failed to insert student: %v", err)
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		logrus.Error("Failed to cast inserted ID to ObjectID")
		return nil, fmt.Errorf("failed to cast inserted ID")
	}
	student.ID = insertedID

	logrus.WithField("studentID", student.ID.Hex()).Info("Student inserted successfully")
	return student, nil
}

// GetStudentByUsername retrieves a student by username. Returns nil when no
// account exists.
func (r *StudentRepository) GetStudentByUsername(ctx context.Context, username string) (*models.Student, error) {
	var student models.Student
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&student)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		logrus.WithFields(logrus.Fields{
			"username": username,
			"error":    err,
		}).Warn("Failed to find student by username")
		return nil, fmt.Errorf("failed to find student by username: %v", err)
	}
	return &student, nil
}

// GetStudentByRollNumber retrieves a student by roll number. Returns nil
// when no account exists.
func (r *StudentRepository) GetStudentByRollNumber(ctx context.Context, rollNumber string) (*models.Student, error) {
	var student models.Student
	err := r.collection.FindOne(ctx, bson.M{"roll_number": rollNumber}).Decode(&student)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		logrus.WithFields(logrus.Fields{
			"rollNumber": rollNumber,
			"error":      err,
		}).Warn("Failed to find student by roll number")
		return nil, fmt.Errorf("failed to find student by roll number: %v", err)
	}
	return &student, nil
}

// UpdateStudent replaces a student's stored fields.
func (r *StudentRepository) UpdateStudent(ctx context.Context, id primitive.ObjectID, student *models.Student) (*models.Student, error) {
	student.UpdatedAt = time.Now()
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": student})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"studentID": id.Hex(),
			"error":     err,
		}).Error("Failed to update student")
		return nil, fmt.Errorf("failed to update student: %v", err)
	}

	logrus.WithField("studentID", id.Hex()).Info("Student updated successfully")
	return student, nil
}

// UpsertProfile writes a profile document keyed by roll number, creating it
// when absent. Used by the lazy default-profile path.
func (r *StudentRepository) UpsertProfile(ctx context.Context, student *models.Student) error {
	student.UpdatedAt = time.Now()
	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"roll_number": student.RollNumber},
		bson.M{"$set": student},
		opts,
	)
	if err != nil {
		logrus.WithError(err).WithField("rollNumber", student.RollNumber).Error("Failed to upsert profile")
		return fmt.Errorf("failed to upsert profile: %v", err)
	}
	return nil
}

// UpdateLastActive stamps the student's last activity time.
func (r *StudentRepository) UpdateLastActive(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"last_active": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to update last active: %v", err)
	}
	return nil
}
