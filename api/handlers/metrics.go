package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rentride/car-rental-api/api"
	"github.com/rentride/car-rental-api/config"
)

// MetricsSummaryHandler returns the per-route request aggregates
func MetricsSummaryHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	b, err := json.Marshal(api.DefaultMetrics.Summary())
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
