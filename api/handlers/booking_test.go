package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/rentride/car-rental-api/api/handlers"
	"github.com/rentride/car-rental-api/models"
	"github.com/rentride/car-rental-api/records"
	"github.com/rentride/car-rental-api/rental"
	"github.com/rentride/car-rental-api/store"
)

func newBookingHandler() handlers.Booking {
	svc := rental.NewBookingService(records.NewBookingRecords(store.NewMemStore()), nil)
	return handlers.Booking{Service: svc}
}

const bookingBody = `{
	"carId": "1",
	"customerName": "Alice",
	"customerEmail": "alice@example.com",
	"customerPhone": "555-0100",
	"rentalPlan": "daily",
	"pickupDate": "2026-09-01",
	"pickupTime": "10:00",
	"dropoffDate": "2026-09-03",
	"dropoffTime": "10:00"
}`

func TestBooking_CreateBookingHandler(t *testing.T) {
	h := newBookingHandler()

	req, err := http.NewRequest("POST", "/api/v1/bookings", strings.NewReader(bookingBody))
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(h.CreateBookingHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusCreated {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusCreated)
	}

	var booking models.Booking
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &booking))
	assert.NotEmpty(t, booking.BookingID)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, 360.0, booking.TotalCost)
}

func TestBooking_CreateBookingHandlerMissingFields(t *testing.T) {
	h := newBookingHandler()

	req, err := http.NewRequest("POST", "/api/v1/bookings", strings.NewReader(`{"carId":"1"}`))
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(h.CreateBookingHandler).ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusBadRequest {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusBadRequest)
	}
}

func TestBooking_QuoteHandler(t *testing.T) {
	h := newBookingHandler()

	body := `{"carId":"1","rentalPlan":"daily","pickupDate":"2026-09-01","pickupTime":"10:00","dropoffDate":"2026-09-02","dropoffTime":"10:00"}`
	req, err := http.NewRequest("POST", "/api/v1/bookings/quote", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(h.QuoteHandler).ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	var resp struct {
		TotalCost float64 `json:"totalCost"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 180.0, resp.TotalCost)
}

func TestBooking_QuoteHandlerInvalidRange(t *testing.T) {
	h := newBookingHandler()

	body := `{"carId":"1","rentalPlan":"daily","pickupDate":"2026-09-03","dropoffDate":"2026-09-01"}`
	req, err := http.NewRequest("POST", "/api/v1/bookings/quote", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(h.QuoteHandler).ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	var resp struct {
		TotalCost float64 `json:"totalCost"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Zero(t, resp.TotalCost)
}

func TestBooking_BookingsHandlerEmpty(t *testing.T) {
	h := newBookingHandler()

	req, err := http.NewRequest("GET", "/api/v1/bookings", nil)
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(h.BookingsHandler).ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}
	assert.Equal(t, "[]", rr.Body.String())
}

func TestBooking_CancelBookingHandler(t *testing.T) {
	h := newBookingHandler()

	req, _ := http.NewRequest("POST", "/api/v1/bookings", strings.NewReader(bookingBody))
	rr := httptest.NewRecorder()
	http.HandlerFunc(h.CreateBookingHandler).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusCreated, rr.Code)

	var booking models.Booking
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &booking))

	req, _ = http.NewRequest("PUT", "/api/v1/bookings/"+booking.BookingID+"/cancel", nil)
	req = mux.SetURLVars(req, map[string]string{"booking_id": booking.BookingID})
	rr = httptest.NewRecorder()
	http.HandlerFunc(h.CancelBookingHandler).ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}
	assert.Equal(t, `{"cancelled": true}`, rr.Body.String())
}

func TestBooking_CancelBookingHandlerNotFound(t *testing.T) {
	h := newBookingHandler()

	req, _ := http.NewRequest("PUT", "/api/v1/bookings/missing/cancel", nil)
	req = mux.SetURLVars(req, map[string]string{"booking_id": "missing"})
	rr := httptest.NewRecorder()
	http.HandlerFunc(h.CancelBookingHandler).ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusNotFound {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusNotFound)
	}
}

func TestBooking_BookingStatsHandler(t *testing.T) {
	h := newBookingHandler()

	req, _ := http.NewRequest("POST", "/api/v1/bookings", strings.NewReader(bookingBody))
	rr := httptest.NewRecorder()
	http.HandlerFunc(h.CreateBookingHandler).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusCreated, rr.Code)

	req, _ = http.NewRequest("GET", "/api/v1/bookings/stats", nil)
	rr = httptest.NewRecorder()
	http.HandlerFunc(h.BookingStatsHandler).ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	var stats models.BookingStats
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.TotalBookings)
	assert.Equal(t, 360.0, stats.TotalSpent)
}
