package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/rentride/car-rental-api/config"
	"github.com/rentride/car-rental-api/models"
	"github.com/rentride/car-rental-api/rental"
)

// Listing exported for testing purposes
type Listing struct {
	Service *rental.ListingService
}

// CreateListingHandler accepts an owner's vehicle submission, created pending
func (h Listing) CreateListingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var in rental.ListingInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	listing, err := h.Service.Submit(r.Context(), in)
	if err != nil {
		config.ErrorStatus("failed to create listing", statusForError(err), w, err)
		return
	}
	zap.S().Infow("listing submitted", "id", listing.ID, "vehicle", listing.VehicleName)

	b, err := json.Marshal(listing)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// ListingsHandler returns the entire listing collection
func (h Listing) ListingsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	listings, err := h.Service.List(r.Context())
	if err != nil {
		config.ErrorStatus("failed to get listings", http.StatusInternalServerError, w, err)
		return
	}
	if len(listings) == 0 {
		listings = []models.VehicleListing{}
	}

	b, err := json.Marshal(listings)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// AdminListingsHandler returns the listings awaiting moderation
func (h Listing) AdminListingsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	listings, err := h.Service.Pending(r.Context())
	if err != nil {
		config.ErrorStatus("failed to get pending listings", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(listings)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// ApproveListingHandler transitions a pending listing to approved
func (h Listing) ApproveListingHandler(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, true)
}

// RejectListingHandler transitions a pending listing to rejected
func (h Listing) RejectListingHandler(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, false)
}

func (h Listing) moderate(w http.ResponseWriter, r *http.Request, approve bool) {
	w.Header().Set("Content-Type", "application/json")
	listingID := mux.Vars(r)["listing_id"]

	var (
		listing *models.VehicleListing
		err     error
	)
	if approve {
		listing, err = h.Service.Approve(r.Context(), listingID)
	} else {
		listing, err = h.Service.Reject(r.Context(), listingID)
	}
	if err != nil {
		config.ErrorStatus("failed to moderate listing", statusForError(err), w, err)
		return
	}
	zap.S().Infow("listing moderated", "id", listing.ID, "status", listing.Status)

	b, err := json.Marshal(listing)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
