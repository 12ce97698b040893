package services

import (
	"context"
	"fmt"

	"github.com/azhar2201/achievement-tracker/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory stores backing the service tests.

type fakeAchievementStore struct {
	records map[primitive.ObjectID]*models.Achievement
	failAll bool
}

func newFakeAchievementStore() *fakeAchievementStore {
	return &fakeAchievementStore{records: make(map[primitive.ObjectID]*models.Achievement)}
}

func (f *fakeAchievementStore) CreateAchievement(_ context.Context, a *models.Achievement) (*models.Achievement, error) {
	if f.failAll {
		return nil, fmt.Errorf("store down")
	}
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	copied := *a
	f.records[a.ID] = &copied
	return a, nil
}

func (f *fakeAchievementStore) GetAchievementByID(_ context.Context, id primitive.ObjectID) (*models.Achievement, error) {
	record, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	copied := *record
	return &copied, nil
}

func (f *fakeAchievementStore) CountByRollAndTitle(_ context.Context, rollNumber, title string) (int64, error) {
	var count int64
	for _, r := range f.records {
		if r.RollNumber == rollNumber && r.AchievementTitle == title {
			count++
		}
	}
	return count, nil
}

func (f *fakeAchievementStore) GetAll(_ context.Context) ([]models.Achievement, error) {
	if f.failAll {
		return nil, fmt.Errorf("store down")
	}
	var out []models.Achievement
	for _, r := range f.records {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeAchievementStore) GetByStatus(ctx context.Context, status string) ([]models.Achievement, error) {
	all, err := f.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.Achievement
	for _, r := range all {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAchievementStore) GetByRollNumber(ctx context.Context, rollNumber string) ([]models.Achievement, error) {
	all, err := f.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.Achievement
	for _, r := range all {
		if r.RollNumber == rollNumber {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAchievementStore) GetValidatedByRollNumber(ctx context.Context, rollNumber string) ([]models.Achievement, error) {
	byRoll, err := f.GetByRollNumber(ctx, rollNumber)
	if err != nil {
		return nil, err
	}
	var out []models.Achievement
	for _, r := range byRoll {
		if r.Status == models.StatusValidated {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAchievementStore) UpdateAchievement(_ context.Context, id primitive.ObjectID, a *models.Achievement) (*models.Achievement, error) {
	copied := *a
	copied.ID = id
	f.records[id] = &copied
	return a, nil
}

func (f *fakeAchievementStore) UpdateStatus(_ context.Context, id primitive.ObjectID, status string) error {
	record, ok := f.records[id]
	if !ok {
		return fmt.Errorf("no such record")
	}
	record.Status = status
	return nil
}

func (f *fakeAchievementStore) DeleteAchievement(_ context.Context, id primitive.ObjectID) error {
	delete(f.records, id)
	return nil
}

type fakeStudentStore struct {
	students map[primitive.ObjectID]*models.Student
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: make(map[primitive.ObjectID]*models.Student)}
}

func (f *fakeStudentStore) CreateStudent(_ context.Context, s *models.Student) (*models.Student, error) {
	s.ID = primitive.NewObjectID()
	copied := *s
	f.students[s.ID] = &copied
	return s, nil
}

func (f *fakeStudentStore) GetStudentByUsername(_ context.Context, username string) (*models.Student, error) {
	for _, s := range f.students {
		if s.Username == username {
			copied := *s
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeStudentStore) GetStudentByRollNumber(_ context.Context, rollNumber string) (*models.Student, error) {
	for _, s := range f.students {
		if s.RollNumber == rollNumber {
			copied := *s
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeStudentStore) UpdateStudent(_ context.Context, id primitive.ObjectID, s *models.Student) (*models.Student, error) {
	copied := *s
	copied.ID = id
	f.students[id] = &copied
	return s, nil
}

func (f *fakeStudentStore) UpsertProfile(_ context.Context, s *models.Student) error {
	for id, existing := range f.students {
		if existing.RollNumber == s.RollNumber {
			copied := *s
			copied.ID = id
			f.students[id] = &copied
			return nil
		}
	}
	s.ID = primitive.NewObjectID()
	copied := *s
	f.students[s.ID] = &copied
	return nil
}

func (f *fakeStudentStore) UpdateLastActive(_ context.Context, _ primitive.ObjectID) error {
	return nil
}

type fakeAuditStore struct {
	entries []models.AuditEntry
}

func (f *fakeAuditStore) RecordDecision(_ context.Context, entry *models.AuditEntry) error {
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeAuditStore) GetDecisions(_ context.Context, achievementID primitive.ObjectID) ([]models.AuditEntry, error) {
	var out []models.AuditEntry
	for _, e := range f.entries {
		if e.AchievementID == achievementID {
			out = append(out, e)
		}
	}
	return out, nil
}
