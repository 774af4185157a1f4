package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rentride/car-rental-api/api/handlers"
	"github.com/rentride/car-rental-api/models"
	"github.com/rentride/car-rental-api/records"
	"github.com/rentride/car-rental-api/rental"
	"github.com/rentride/car-rental-api/store"
)

func newProfileHandler() (handlers.Profile, *rental.BookingService) {
	db := store.NewMemStore()
	bookings := rental.NewBookingService(records.NewBookingRecords(db), nil)
	h := handlers.Profile{
		PDB:      records.NewProfileRecords(db),
		SDB:      records.NewSettingsRecords(db),
		Bookings: bookings,
	}
	return h, bookings
}

func TestProfile_ProfileHandlerEmptyProfile(t *testing.T) {
	h, _ := newProfileHandler()

	req, err := http.NewRequest("GET", "/api/v1/profile", nil)
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(h.ProfileHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	var profile models.UserProfile
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &profile))
	assert.Zero(t, profile.TotalBookings)
	assert.Zero(t, profile.TotalSpent)
}

func TestProfile_ProfileHandlerRecomputesStats(t *testing.T) {
	h, bookings := newProfileHandler()

	booking, err := bookings.Submit(context.Background(), rental.BookingInput{
		CarID:         "1",
		CustomerName:  "Alice",
		CustomerEmail: "alice@example.com",
		CustomerPhone: "555-0100",
		RentalPlan:    models.RentalPlanDaily,
		PickupDate:    "2026-09-01",
		PickupTime:    "10:00",
		DropoffDate:   "2026-09-03",
		DropoffTime:   "10:00",
	})
	assert.NoError(t, err)

	req, _ := http.NewRequest("GET", "/api/v1/profile", nil)
	rr := httptest.NewRecorder()
	http.HandlerFunc(h.ProfileHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var profile models.UserProfile
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &profile))
	assert.Equal(t, 1, profile.TotalBookings)
	assert.Equal(t, booking.TotalCost, profile.TotalSpent)
}

func TestProfile_UpdateProfileHandler(t *testing.T) {
	h, _ := newProfileHandler()

	body := `{"name":"Alice","email":"alice@example.com","joinDate":"2026-01-15"}`
	req, _ := http.NewRequest("PUT", "/api/v1/profile", strings.NewReader(body))
	rr := httptest.NewRecorder()
	http.HandlerFunc(h.UpdateProfileHandler).ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	req, _ = http.NewRequest("GET", "/api/v1/profile", nil)
	rr = httptest.NewRecorder()
	http.HandlerFunc(h.ProfileHandler).ServeHTTP(rr, req)

	var profile models.UserProfile
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &profile))
	assert.Equal(t, "Alice", profile.Name)
	assert.Equal(t, "2026-01-15", profile.JoinDate)
}

func TestProfile_DarkModeRoundTrip(t *testing.T) {
	h, _ := newProfileHandler()

	req, _ := http.NewRequest("GET", "/api/v1/settings/dark-mode", nil)
	rr := httptest.NewRecorder()
	http.HandlerFunc(h.DarkModeHandler).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"enabled": false}`, rr.Body.String())

	req, _ = http.NewRequest("PUT", "/api/v1/settings/dark-mode", strings.NewReader(`{"enabled": true}`))
	rr = httptest.NewRecorder()
	http.HandlerFunc(h.SetDarkModeHandler).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	req, _ = http.NewRequest("GET", "/api/v1/settings/dark-mode", nil)
	rr = httptest.NewRecorder()
	http.HandlerFunc(h.DarkModeHandler).ServeHTTP(rr, req)
	assert.JSONEq(t, `{"enabled": true}`, rr.Body.String())
}
