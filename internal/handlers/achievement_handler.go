package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/azhar2201/achievement-tracker/internal/models"
	"github.com/azhar2201/achievement-tracker/internal/services"
	"github.com/azhar2201/achievement-tracker/pkg/middleware"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AchievementHandler handles HTTP requests related to achievements.
type AchievementHandler struct {
	Service *services.AchievementService
}

// NewAchievementHandler creates a new instance of AchievementHandler.
func NewAchievementHandler(service *services.AchievementService) *AchievementHandler {
	return &AchievementHandler{
		Service: service,
	}
}

// LogAchievementHandler handles a student achievement submission.
func (h *AchievementHandler) LogAchievementHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var achievement models.Achievement
	if err := json.NewDecoder(r.Body).Decode(&achievement); err != nil {
		logrus.WithError(err).Warn("Invalid payload during achievement submission")
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	// Submissions always land on the caller's own roll number, and the
	// record ID is assigned by the store, never by the client.
	achievement.ID = primitive.NilObjectID
	achievement.RollNumber = claims.RollNumber
	if achievement.StudentName == "" {
		achievement.StudentName = claims.Name
	}

	created, err := h.Service.LogAchievement(r.Context(), &achievement)
	if err != nil {
		logrus.WithError(err).Warn("Achievement submission rejected")
		status, message := statusFromError(err)
		respondError(w, status, message)
		return
	}

	logrus.WithFields(logrus.Fields{
		"rollNumber":    created.RollNumber,
		"achievementID": created.ID.Hex(),
	}).Info("Achievement logged")

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message":    "Achievement logged successfully, pending validation",
		"id":         created.ID.Hex(),
		"status":     created.Status,
		"dateLogged": created.DateLogged,
	})
}

// GetStudentAchievementsHandler lists the caller's own achievements.
func (h *AchievementHandler) GetStudentAchievementsHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	achievements, err := h.Service.GetStudentAchievements(r.Context(), claims.RollNumber)
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch student achievements")
		respondError(w, http.StatusInternalServerError, "Failed to fetch achievements")
		return
	}
	if achievements == nil {
		achievements = []models.Achievement{}
	}

	respondJSON(w, http.StatusOK, achievements)
}

// UpdateAchievementHandler applies a student edit; the record always drops
// back to pending.
func (h *AchievementHandler) UpdateAchievementHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	achievementID := mux.Vars(r)["id"]

	var update models.AchievementUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		logrus.WithError(err).Warn("Invalid payload during achievement edit")
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	updated, err := h.Service.UpdateAchievement(r.Context(), achievementID, claims.RollNumber, &update)
	if err != nil {
		logrus.WithError(err).WithField("achievementID", achievementID).Warn("Achievement edit failed")
		status, message := statusFromError(err)
		respondError(w, status, message)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

// DeleteAchievementHandler hard-deletes one of the caller's achievements.
func (h *AchievementHandler) DeleteAchievementHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	achievementID := mux.Vars(r)["id"]

	if err := h.Service.DeleteAchievement(r.Context(), achievementID, claims.RollNumber); err != nil {
		logrus.WithError(err).WithField("achievementID", achievementID).Warn("Achievement delete failed")
		status, message := statusFromError(err)
		respondError(w, status, message)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Achievement deleted"})
}

// GetAllAchievementsHandler lists every record for the admin dashboard.
func (h *AchievementHandler) GetAllAchievementsHandler(w http.ResponseWriter, r *http.Request) {
	achievements, err := h.Service.GetAllAchievements(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch all achievements")
		respondError(w, http.StatusInternalServerError, "Failed to fetch achievements")
		return
	}
	if achievements == nil {
		achievements = []models.Achievement{}
	}
	respondJSON(w, http.StatusOK, achievements)
}

// GetPendingAchievementsHandler lists the admin review queue.
func (h *AchievementHandler) GetPendingAchievementsHandler(w http.ResponseWriter, r *http.Request) {
	achievements, err := h.Service.GetPendingAchievements(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch pending achievements")
		respondError(w, http.StatusInternalServerError, "Failed to fetch achievements")
		return
	}
	if achievements == nil {
		achievements = []models.Achievement{}
	}
	respondJSON(w, http.StatusOK, achievements)
}

// ValidateAchievementHandler applies an admin validate/reject decision.
func (h *AchievementHandler) ValidateAchievementHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	achievementID := mux.Vars(r)["id"]

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logrus.WithError(err).Warn("Invalid payload during validation")
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	achievement, err := h.Service.ValidateAchievement(r.Context(), achievementID, payload.Status, claims.Username)
	if err != nil {
		logrus.WithError(err).WithField("achievementID", achievementID).Warn("Validation failed")
		status, message := statusFromError(err)
		respondError(w, status, message)
		return
	}

	logrus.WithFields(logrus.Fields{
		"achievementID": achievementID,
		"decision":      payload.Status,
		"decidedBy":     claims.Username,
	}).Info("Achievement validation decision applied")

	respondJSON(w, http.StatusOK, achievement)
}

// GetAuditTrailHandler returns the validation decisions for one record.
func (h *AchievementHandler) GetAuditTrailHandler(w http.ResponseWriter, r *http.Request) {
	achievementID := mux.Vars(r)["id"]

	entries, err := h.Service.GetAuditTrail(r.Context(), achievementID)
	if err != nil {
		status, message := statusFromError(err)
		respondError(w, status, message)
		return
	}
	if entries == nil {
		entries = []models.AuditEntry{}
	}
	respondJSON(w, http.StatusOK, entries)
}
