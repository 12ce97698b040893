package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/azhar2201/achievement-tracker/internal/config"
	"github.com/azhar2201/achievement-tracker/internal/models"
	"github.com/azhar2201/achievement-tracker/internal/services"
	jwtutil "github.com/azhar2201/achievement-tracker/pkg/jwt"
	"github.com/azhar2201/achievement-tracker/pkg/middleware"
	log "github.com/sirupsen/logrus"
)

// ProfileHandler serves the unified profile routes. The same handler is
// mounted at both /api/students/profile and /api/user/profile; ownership is
// always the token's roll number.
type ProfileHandler struct {
	Service *services.StudentService
	Config  *config.Config
}

// NewProfileHandler creates a new instance of ProfileHandler.
func NewProfileHandler(service *services.StudentService, cfg *config.Config) *ProfileHandler {
	return &ProfileHandler{
		Service: service,
		Config:  cfg,
	}
}

// GetProfileHandler returns the caller's profile, synthesizing an empty one
// for partially-provisioned accounts.
func (h *ProfileHandler) GetProfileHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile, err := h.Service.GetProfile(r.Context(), claims.RollNumber, claims.Name, claims.Username)
	if err != nil {
		log.WithError(err).Error("Failed to fetch profile")
		respondError(w, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"profile":           profile,
		"profileComplete":   profile.ProfileComplete,
		"completionPercent": services.CompletionPercent(profile),
	})
}

// UpdateProfileHandler applies a partial profile update and reissues the
// token so the client's cached identity picks up a changed name.
func (h *ProfileHandler) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var update models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.WithError(err).Warn("Failed to decode profile update")
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	profile, err := h.Service.UpdateProfile(r.Context(), claims.RollNumber, claims.Name, claims.Username, &update)
	if err != nil {
		log.WithError(err).Error("Failed to update profile")
		status, message := statusFromError(err)
		respondError(w, status, message)
		return
	}

	token, err := jwtutil.GenerateToken(claims.UserID, claims.Username, claims.Role, profile.Name, claims.RollNumber, h.Config.JWTSecret, h.Config.TokenExpiry)
	if err != nil {
		log.WithError(err).Error("Failed to reissue token after profile update")
		respondError(w, http.StatusInternalServerError, "Failed to reissue token")
		return
	}

	log.WithField("rollNumber", claims.RollNumber).Info("Profile updated")
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"profile":           profile,
		"token":             token,
		"profileComplete":   profile.ProfileComplete,
		"completionPercent": services.CompletionPercent(profile),
	})
}
