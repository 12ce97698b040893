package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/azhar2201/achievement-tracker/internal/services"
	"github.com/azhar2201/achievement-tracker/pkg/middleware"
	"github.com/sirupsen/logrus"
)

// AssistantHandler serves the generative helper endpoints.
type AssistantHandler struct {
	Service *services.AssistantService
}

// NewAssistantHandler creates a new instance of AssistantHandler.
func NewAssistantHandler(service *services.AssistantService) *AssistantHandler {
	return &AssistantHandler{
		Service: service,
	}
}

// DescribeHandler polishes a rough achievement description.
func (h *AssistantHandler) DescribeHandler(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Title    string `json:"title"`
		Category string `json:"category"`
		Notes    string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if strings.TrimSpace(payload.Title) == "" {
		respondError(w, http.StatusBadRequest, "title is required")
		return
	}

	description, err := h.Service.DescribeAchievement(r.Context(), payload.Title, payload.Category, payload.Notes)
	if err != nil {
		logrus.WithError(err).Error("Describe helper failed")
		respondError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"description": description})
}

// OptimizeBulletHandler rewrites a resume bullet.
func (h *AssistantHandler) OptimizeBulletHandler(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Bullet string `json:"bullet"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if strings.TrimSpace(payload.Bullet) == "" {
		respondError(w, http.StatusBadRequest, "bullet is required")
		return
	}

	optimized, err := h.Service.OptimizeBullet(r.Context(), payload.Bullet)
	if err != nil {
		logrus.WithError(err).Error("Bullet optimization failed")
		respondError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"bullet": optimized})
}

// ExtractSkillsHandler pulls technology keywords out of freeform text.
func (h *AssistantHandler) ExtractSkillsHandler(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if strings.TrimSpace(payload.Text) == "" {
		respondError(w, http.StatusBadRequest, "text is required")
		return
	}

	skills, err := h.Service.ExtractSkills(r.Context(), payload.Text)
	if err != nil {
		logrus.WithError(err).Error("Skill extraction failed")
		respondError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}
	if skills == nil {
		skills = []string{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"skills": skills})
}

// GapAnalysisHandler reviews the caller's record and suggests improvements.
func (h *AssistantHandler) GapAnalysisHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	analysis, err := h.Service.AnalyzeGaps(r.Context(), claims)
	if err != nil {
		logrus.WithError(err).Error("Gap analysis failed")
		respondError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"analysis": analysis})
}

// ChatHandler answers a free-form question with role-scoped context.
func (h *AssistantHandler) ChatHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if strings.TrimSpace(payload.Message) == "" {
		respondError(w, http.StatusBadRequest, "message is required")
		return
	}

	answer, err := h.Service.Chat(r.Context(), claims, payload.Message)
	if err != nil {
		logrus.WithError(err).Error("Chat failed")
		respondError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"reply": answer})
}
