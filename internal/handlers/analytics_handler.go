package handlers

import (
	"net/http"

	"github.com/azhar2201/achievement-tracker/internal/services"
	"github.com/azhar2201/achievement-tracker/pkg/middleware"
	"github.com/sirupsen/logrus"
)

// AnalyticsHandler serves dashboard counts.
type AnalyticsHandler struct {
	Service *services.AnalyticsService
}

// NewAnalyticsHandler creates a new instance of AnalyticsHandler.
func NewAnalyticsHandler(service *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		Service: service,
	}
}

// SummaryHandler returns status/category/level counts for the caller's
// visible achievement set.
func (h *AnalyticsHandler) SummaryHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	summary, err := h.Service.Summary(r.Context(), claims)
	if err != nil {
		logrus.WithError(err).Error("Failed to compute analytics summary")
		respondError(w, http.StatusInternalServerError, "Failed to compute analytics")
		return
	}

	respondJSON(w, http.StatusOK, summary)
}
