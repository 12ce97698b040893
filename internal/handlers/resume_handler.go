package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/azhar2201/achievement-tracker/internal/services"
	"github.com/azhar2201/achievement-tracker/pkg/middleware"
	"github.com/sirupsen/logrus"
)

// ResumeHandler serves the resume assembly pipeline.
type ResumeHandler struct {
	Service *services.ResumeService
}

// NewResumeHandler creates a new instance of ResumeHandler.
func NewResumeHandler(service *services.ResumeService) *ResumeHandler {
	return &ResumeHandler{
		Service: service,
	}
}

// GenerateResumeHandler assembles a resume from validated achievements. The
// mock flag (query or body) forces the rule-based fallback.
func (h *ResumeHandler) GenerateResumeHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var payload struct {
		RollNumber string `json:"rollNumber"`
		Mock       bool   `json:"mock"`
	}
	if r.Body != nil {
		// An empty body is fine; the caller's own roll number is implied.
		_ = json.NewDecoder(r.Body).Decode(&payload)
		defer r.Body.Close()
	}
	if r.URL.Query().Get("mock") == "true" {
		payload.Mock = true
	}

	resume, err := h.Service.Generate(r.Context(), claims, payload.RollNumber, payload.Mock)
	if err != nil {
		logrus.WithError(err).WithField("rollNumber", payload.RollNumber).Warn("Resume generation failed")
		status, message := statusFromError(err)
		respondError(w, status, message)
		return
	}

	respondJSON(w, http.StatusOK, resume)
}
