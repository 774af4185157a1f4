package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rentride/car-rental-api/config"
	"github.com/rentride/car-rental-api/rental"
)

// Contact exported for testing purposes
type Contact struct {
	Service *rental.ContactService
}

// CreateContactHandler persists a contact form submission
func (h Contact) CreateContactHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var in rental.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	submission, err := h.Service.Submit(r.Context(), in)
	if err != nil {
		config.ErrorStatus("failed to submit contact form", statusForError(err), w, err)
		return
	}

	b, err := json.Marshal(submission)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}
