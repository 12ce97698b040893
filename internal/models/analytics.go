package models

// AnalyticsSummary holds per-request dashboard counts. Nothing is cached;
// the summary is recomputed from the visible achievement set each time.
type AnalyticsSummary struct {
	Total      int            `json:"total"`
	ByStatus   map[string]int `json:"byStatus"`
	ByCategory map[string]int `json:"byCategory"`
	ByLevel    map[string]int `json:"byLevel"`
}
