package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rentride/car-rental-api/config"
	"github.com/rentride/car-rental-api/models"
	"github.com/rentride/car-rental-api/records"
	"github.com/rentride/car-rental-api/rental"
)

// Profile exported for testing purposes
type Profile struct {
	PDB      records.ProfileRecords
	SDB      records.SettingsRecords
	Bookings *rental.BookingService
}

// ProfileHandler returns the display profile with stats recomputed from the
// full booking collection on every load
func (h Profile) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	profile, err := h.PDB.Get(r.Context())
	if err != nil {
		config.ErrorStatus("failed to get profile", http.StatusInternalServerError, w, err)
		return
	}
	if profile == nil {
		profile = &models.UserProfile{}
	}

	stats, err := h.Bookings.Stats(r.Context())
	if err != nil {
		config.ErrorStatus("failed to get booking stats", http.StatusInternalServerError, w, err)
		return
	}
	profile.TotalBookings = stats.TotalBookings
	profile.TotalSpent = stats.TotalSpent

	b, err := json.Marshal(profile)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// UpdateProfileHandler writes the display profile record. This is
// intentionally disconnected from the users collection.
func (h Profile) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	if err := h.PDB.Put(r.Context(), profile); err != nil {
		config.ErrorStatus("failed to update profile", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(profile)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

type darkModeBody struct {
	Enabled bool `json:"enabled"`
}

// DarkModeHandler returns the dark-mode setting
func (h Profile) DarkModeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	enabled, err := h.SDB.DarkMode(r.Context())
	if err != nil {
		config.ErrorStatus("failed to get dark mode", http.StatusInternalServerError, w, err)
		return
	}

	b, _ := json.Marshal(darkModeBody{Enabled: enabled})
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// SetDarkModeHandler writes the dark-mode setting
func (h Profile) SetDarkModeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var body darkModeBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	if err := h.SDB.SetDarkMode(r.Context(), body.Enabled); err != nil {
		config.ErrorStatus("failed to set dark mode", http.StatusInternalServerError, w, err)
		return
	}

	b, _ := json.Marshal(body)
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
