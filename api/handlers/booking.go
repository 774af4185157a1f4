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

// Booking exported for testing purposes
type Booking struct {
	Service *rental.BookingService
}

type quoteResponse struct {
	TotalCost float64 `json:"totalCost"`
}

// QuoteHandler prices a prospective booking without persisting anything. An
// invalid or incomplete range quotes as 0.
func (h Booking) QuoteHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var in rental.BookingInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	cost, err := h.Service.Quote(in)
	if err != nil {
		config.ErrorStatus("failed to quote booking", statusForError(err), w, err)
		return
	}

	b, err := json.Marshal(quoteResponse{TotalCost: cost})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateBookingHandler validates and persists a booking, returning the new
// record for the confirmation view
func (h Booking) CreateBookingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var in rental.BookingInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	booking, err := h.Service.Submit(r.Context(), in)
	if err != nil {
		config.ErrorStatus("failed to create booking", statusForError(err), w, err)
		return
	}
	zap.S().Infow("booking created",
		"bookingId", booking.BookingID,
		"carId", booking.CarID,
		"totalCost", booking.TotalCost,
	)

	b, err := json.Marshal(booking)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// BookingsHandler returns the entire booking collection
func (h Booking) BookingsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	bookings, err := h.Service.List(r.Context())
	if err != nil {
		config.ErrorStatus("failed to get bookings", http.StatusInternalServerError, w, err)
		return
	}
	// Because the frontend requires that the data elements exist, if
	// len == 0 then we will just return an empty data object
	if len(bookings) == 0 {
		bookings = []models.Booking{}
	}

	b, err := json.Marshal(bookings)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CancelBookingHandler sets a booking's status to cancelled
func (h Booking) CancelBookingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	bookingID := mux.Vars(r)["booking_id"]

	if err := h.Service.Cancel(r.Context(), bookingID); err != nil {
		config.ErrorStatus("failed to cancel booking", statusForError(err), w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"cancelled": true}`))
}

// BookingStatsHandler returns the aggregate stats for the profile view
func (h Booking) BookingStatsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	stats, err := h.Service.Stats(r.Context())
	if err != nil {
		config.ErrorStatus("failed to get booking stats", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(stats)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
