package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/azhar2201/achievement-tracker/internal/models"
	"github.com/azhar2201/achievement-tracker/pkg/email"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile fields counted towards the completion percentage. The boolean
// profileComplete flag is stricter: it requires the first five.
var completionFields = []string{
	"name", "email", "phone", "degree", "institution",
	"location", "graduationYear", "gpa", "linkedin", "github",
}

// StudentService encapsulates the business logic for student accounts and
// profiles.
type StudentService struct {
	repo   StudentStore
	mailer *email.Sender
}

// NewStudentService creates a new instance of StudentService.
func NewStudentService(repo StudentStore, mailer *email.Sender) *StudentService {
	return &StudentService{
		repo:   repo,
		mailer: mailer,
	}
}

// RegisterStudent creates a new student account with a hashed password.
func (s *StudentService) RegisterStudent(ctx context.Context, student *models.Student, password string) (*models.Student, error) {
	if strings.TrimSpace(student.Username) == "" || strings.TrimSpace(password) == "" ||
		strings.TrimSpace(student.RollNumber) == "" || strings.TrimSpace(student.Name) == "" {
		return nil, fmt.Errorf("%w: username, password, rollNumber and name are required", ErrMissingFields)
	}

	existing, err := s.repo.GetStudentByUsername(ctx, student.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %v", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: username %q is taken", ErrDuplicate, student.Username)
	}

	existing, err = s.repo.GetStudentByRollNumber(ctx, student.RollNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to check roll number: %v", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: roll number %q is already registered", ErrDuplicate, student.RollNumber)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}
	student.HashedPassword = string(hashed)
	student.Role = models.RoleStudent
	student.ProfileComplete = profileComplete(student)
	if student.Skills == nil {
		student.Skills = []string{}
	}
	if student.Education == nil {
		student.Education = []models.EducationEntry{}
	}
	if student.Certifications == nil {
		student.Certifications = []models.Certification{}
	}

	created, err := s.repo.CreateStudent(ctx, student)
	if err != nil {
		return nil, fmt.Errorf("failed to register student: %v", err)
	}

	if s.mailer.Enabled() && created.Email != "" {
		go func() {
			body := fmt.Sprintf("Hi %s,\n\nYour achievement tracker account is ready. Log your accomplishments and keep your profile up to date to generate a resume.\n", created.Name)
			if err := s.mailer.Send(created.Email, "Welcome to Achievement Tracker", body); err != nil {
				logrus.WithError(err).Warn("Failed to send welcome email")
			}
		}()
	}

	logrus.WithField("studentID", created.ID.Hex()).Info("Student registered")
	return created, nil
}

// AuthenticateStudent verifies credentials and returns the account. The
// error is deliberately generic for both unknown user and bad password.
func (s *StudentService) AuthenticateStudent(ctx context.Context, username, password string) (*models.Student, error) {
	student, err := s.repo.GetStudentByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up student: %v", err)
	}
	if student == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(student.HashedPassword), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return student, nil
}

// GetProfile fetches the profile for a roll number, synthesizing a default
// empty profile for partially-provisioned accounts instead of failing.
func (s *StudentService) GetProfile(ctx context.Context, rollNumber, name, username string) (*models.Student, error) {
	student, err := s.repo.GetStudentByRollNumber(ctx, rollNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %v", err)
	}
	if student == nil {
		return defaultProfile(rollNumber, name, username), nil
	}
	return student, nil
}

// UpdateProfile applies a partial update: only provided fields overwrite
// existing ones, list fields are wholesale-replaced, and profileComplete is
// recomputed.
func (s *StudentService) UpdateProfile(ctx context.Context, rollNumber, name, username string, update *models.ProfileUpdate) (*models.Student, error) {
	student, err := s.repo.GetStudentByRollNumber(ctx, rollNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %v", err)
	}
	if student == nil {
		student = defaultProfile(rollNumber, name, username)
	}

	applyProfileUpdate(student, update)
	student.ProfileComplete = profileComplete(student)

	if student.ID.IsZero() {
		if err := s.repo.UpsertProfile(ctx, student); err != nil {
			return nil, err
		}
	} else {
		if _, err := s.repo.UpdateStudent(ctx, student.ID, student); err != nil {
			return nil, err
		}
	}

	logrus.WithFields(logrus.Fields{
		"rollNumber": rollNumber,
		"complete":   student.ProfileComplete,
	}).Info("Profile updated")
	return student, nil
}

// UpdateLastActive stamps the account's last activity time.
func (s *StudentService) UpdateLastActive(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.UpdateLastActive(ctx, id)
}

// CompletionPercent scores the profile over the tracked field set.
func CompletionPercent(student *models.Student) int {
	values := map[string]string{
		"name":           student.Name,
		"email":          student.Email,
		"phone":          student.Phone,
		"degree":         student.Degree,
		"institution":    student.Institution,
		"location":       student.Location,
		"graduationYear": student.GraduationYear,
		"gpa":            student.GPA,
		"linkedin":       student.LinkedIn,
		"github":         student.GitHub,
	}

	filled := 0
	for _, field := range completionFields {
		if strings.TrimSpace(values[field]) != "" {
			filled++
		}
	}
	return filled * 100 / len(completionFields)
}

// profileComplete is the conjunction the resume pipeline cares about.
func profileComplete(s *models.Student) bool {
	return strings.TrimSpace(s.Name) != "" &&
		strings.TrimSpace(s.Email) != "" &&
		strings.TrimSpace(s.Phone) != "" &&
		strings.TrimSpace(s.Degree) != "" &&
		strings.TrimSpace(s.Institution) != ""
}

func defaultProfile(rollNumber, name, username string) *models.Student {
	return &models.Student{
		Username:       username,
		RollNumber:     rollNumber,
		Name:           name,
		Role:           models.RoleStudent,
		Skills:         []string{},
		Education:      []models.EducationEntry{},
		Certifications: []models.Certification{},
	}
}

func applyProfileUpdate(s *models.Student, u *models.ProfileUpdate) {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Email != nil {
		s.Email = *u.Email
	}
	if u.Phone != nil {
		s.Phone = *u.Phone
	}
	if u.Location != nil {
		s.Location = *u.Location
	}
	if u.LinkedIn != nil {
		s.LinkedIn = *u.LinkedIn
	}
	if u.GitHub != nil {
		s.GitHub = *u.GitHub
	}
	if u.Portfolio != nil {
		s.Portfolio = *u.Portfolio
	}
	if u.Degree != nil {
		s.Degree = *u.Degree
	}
	if u.Institution != nil {
		s.Institution = *u.Institution
	}
	if u.GraduationYear != nil {
		s.GraduationYear = *u.GraduationYear
	}
	if u.GPA != nil {
		s.GPA = *u.GPA
	}
	if u.Skills != nil {
		s.Skills = *u.Skills
	}
	if u.Education != nil {
		s.Education = *u.Education
	}
	if u.Certifications != nil {
		s.Certifications = *u.Certifications
	}
}
