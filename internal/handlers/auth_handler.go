package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/azhar2201/achievement-tracker/internal/config"
	"github.com/azhar2201/achievement-tracker/internal/models"
	"github.com/azhar2201/achievement-tracker/internal/services"
	jwtutil "github.com/azhar2201/achievement-tracker/pkg/jwt"
	log "github.com/sirupsen/logrus"
)

// AuthHandler handles login and registration for both roles.
type AuthHandler struct {
	Service *services.StudentService
	Config  *config.Config
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(service *services.StudentService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		Service: service,
		Config:  cfg,
	}
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginHandler signs in either the seeded admin or a student account.
func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.WithError(err).Warn("Failed to decode login request")
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if h.Config.AdminPassword != "" &&
		creds.Username == h.Config.AdminUsername && creds.Password == h.Config.AdminPassword {
		token, err := jwtutil.GenerateToken("admin", creds.Username, models.RoleAdmin, "Administrator", "", h.Config.JWTSecret, h.Config.TokenExpiry)
		if err != nil {
			log.WithError(err).Error("Failed to generate admin token")
			respondError(w, http.StatusInternalServerError, "Failed to generate token")
			return
		}

		log.WithField("username", creds.Username).Info("Admin logged in")
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"token": token,
			"user": map[string]string{
				"username": creds.Username,
				"role":     models.RoleAdmin,
				"name":     "Administrator",
			},
		})
		return
	}

	h.loginStudent(w, r, creds)
}

// RegisterStudentHandler creates a student account and signs it in.
func (h *AuthHandler) RegisterStudentHandler(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username   string `json:"username"`
		Password   string `json:"password"`
		RollNumber string `json:"rollNumber"`
		Name       string `json:"name"`
		Email      string `json:"email"`
		Phone      string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.WithError(err).Warn("Failed to decode registration request")
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	student := &models.Student{
		Username:   payload.Username,
		RollNumber: payload.RollNumber,
		Name:       payload.Name,
		Email:      payload.Email,
		Phone:      payload.Phone,
	}

	created, err := h.Service.RegisterStudent(r.Context(), student, payload.Password)
	if err != nil {
		log.WithError(err).Warn("Student registration failed")
		status, message := statusFromError(err)
		respondError(w, status, message)
		return
	}

	token, err := jwtutil.GenerateToken(created.ID.Hex(), created.Username, created.Role, created.Name, created.RollNumber, h.Config.JWTSecret, h.Config.TokenExpiry)
	if err != nil {
		log.WithError(err).Error("Failed to generate token after registration")
		respondError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	log.WithField("studentID", created.ID.Hex()).Info("Student registered and logged in")
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"token":           token,
		"profileComplete": created.ProfileComplete,
		"student":         publicStudent(created),
	})
}

// LoginStudentHandler signs in a student account.
func (h *AuthHandler) LoginStudentHandler(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.WithError(err).Warn("Failed to decode student login request")
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	h.loginStudent(w, r, creds)
}

func (h *AuthHandler) loginStudent(w http.ResponseWriter, r *http.Request, creds credentials) {
	student, err := h.Service.AuthenticateStudent(r.Context(), creds.Username, creds.Password)
	if err != nil {
		log.WithField("username", creds.Username).Warn("Authentication failed")
		status, message := statusFromError(err)
		respondError(w, status, message)
		return
	}

	token, err := jwtutil.GenerateToken(student.ID.Hex(), student.Username, student.Role, student.Name, student.RollNumber, h.Config.JWTSecret, h.Config.TokenExpiry)
	if err != nil {
		log.WithError(err).Error("Failed to generate JWT token")
		respondError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	log.WithField("studentID", student.ID.Hex()).Info("Student logged in")
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"token":           token,
		"profileComplete": student.ProfileComplete,
		"student":         publicStudent(student),
	})
}

func publicStudent(s *models.Student) models.PublicStudent {
	return models.PublicStudent{
		ID:         s.ID,
		Username:   s.Username,
		Name:       s.Name,
		RollNumber: s.RollNumber,
		Email:      s.Email,
	}
}
