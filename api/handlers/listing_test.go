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

func newListingHandler() handlers.Listing {
	svc := rental.NewListingService(records.NewListingRecords(store.NewMemStore()))
	return handlers.Listing{Service: svc}
}

const listingBody = `{
	"ownerName": "Olivia Owner",
	"ownerEmail": "olivia@example.com",
	"ownerPhone": "555-0200",
	"vehicleName": "Skoda Octavia",
	"brand": "Skoda",
	"model": "Octavia",
	"year": 2021,
	"type": "sedan",
	"city": "Berlin",
	"pricePerDay": 85
}`

func TestListing_CreateListingHandler(t *testing.T) {
	h := newListingHandler()

	req, err := http.NewRequest("POST", "/api/v1/listings", strings.NewReader(listingBody))
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(h.CreateListingHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusCreated {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusCreated)
	}

	var listing models.VehicleListing
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listing))
	assert.NotEmpty(t, listing.ID)
	assert.Equal(t, models.ListingStatusPending, listing.Status)
}

func TestListing_CreateListingHandlerInvalidPrice(t *testing.T) {
	h := newListingHandler()

	body := strings.Replace(listingBody, `"pricePerDay": 85`, `"pricePerDay": 0`, 1)
	req, err := http.NewRequest("POST", "/api/v1/listings", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(h.CreateListingHandler).ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusBadRequest {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusBadRequest)
	}
}

func TestListing_ApproveListingHandler(t *testing.T) {
	h := newListingHandler()

	req, _ := http.NewRequest("POST", "/api/v1/listings", strings.NewReader(listingBody))
	rr := httptest.NewRecorder()
	http.HandlerFunc(h.CreateListingHandler).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusCreated, rr.Code)

	var listing models.VehicleListing
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listing))

	req, _ = http.NewRequest("PUT", "/api/v1/admin/listings/"+listing.ID+"/approve", nil)
	req = mux.SetURLVars(req, map[string]string{"listing_id": listing.ID})
	rr = httptest.NewRecorder()
	http.HandlerFunc(h.ApproveListingHandler).ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	var approved models.VehicleListing
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &approved))
	assert.Equal(t, models.ListingStatusApproved, approved.Status)
}

func TestListing_RejectListingHandlerAlreadyModerated(t *testing.T) {
	h := newListingHandler()

	req, _ := http.NewRequest("POST", "/api/v1/listings", strings.NewReader(listingBody))
	rr := httptest.NewRecorder()
	http.HandlerFunc(h.CreateListingHandler).ServeHTTP(rr, req)

	var listing models.VehicleListing
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listing))

	vars := map[string]string{"listing_id": listing.ID}

	req, _ = http.NewRequest("PUT", "/api/v1/admin/listings/"+listing.ID+"/approve", nil)
	req = mux.SetURLVars(req, vars)
	rr = httptest.NewRecorder()
	http.HandlerFunc(h.ApproveListingHandler).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	req, _ = http.NewRequest("PUT", "/api/v1/admin/listings/"+listing.ID+"/reject", nil)
	req = mux.SetURLVars(req, vars)
	rr = httptest.NewRecorder()
	http.HandlerFunc(h.RejectListingHandler).ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusBadRequest {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusBadRequest)
	}
}

func TestListing_AdminListingsHandlerOnlyPending(t *testing.T) {
	h := newListingHandler()

	req, _ := http.NewRequest("POST", "/api/v1/listings", strings.NewReader(listingBody))
	rr := httptest.NewRecorder()
	http.HandlerFunc(h.CreateListingHandler).ServeHTTP(rr, req)

	var listing models.VehicleListing
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listing))

	req, _ = http.NewRequest("POST", "/api/v1/listings", strings.NewReader(listingBody))
	rr = httptest.NewRecorder()
	http.HandlerFunc(h.CreateListingHandler).ServeHTTP(rr, req)

	req, _ = http.NewRequest("PUT", "/api/v1/admin/listings/"+listing.ID+"/approve", nil)
	req = mux.SetURLVars(req, map[string]string{"listing_id": listing.ID})
	rr = httptest.NewRecorder()
	http.HandlerFunc(h.ApproveListingHandler).ServeHTTP(rr, req)

	req, _ = http.NewRequest("GET", "/api/v1/admin/listings", nil)
	rr = httptest.NewRecorder()
	http.HandlerFunc(h.AdminListingsHandler).ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	var pending []models.VehicleListing
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &pending))
	assert.Len(t, pending, 1)
	assert.Equal(t, models.ListingStatusPending, pending[0].Status)
}
