package handlers_test

import (
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

func newContactHandler() handlers.Contact {
	svc := rental.NewContactService(records.NewContactRecords(store.NewMemStore()), nil, "")
	return handlers.Contact{Service: svc}
}

func TestContact_CreateContactHandler(t *testing.T) {
	h := newContactHandler()

	body := `{"name":"Alice","email":"alice@example.com","subject":"Hi","message":"Hello there"}`
	req, err := http.NewRequest("POST", "/api/v1/contact", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(h.CreateContactHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusCreated {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusCreated)
	}

	var submission models.ContactSubmission
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &submission))
	assert.NotEmpty(t, submission.ID)
	assert.NotEmpty(t, submission.SubmittedAt)
}

func TestContact_CreateContactHandlerMissingMessage(t *testing.T) {
	h := newContactHandler()

	body := `{"name":"Alice","email":"alice@example.com"}`
	req, err := http.NewRequest("POST", "/api/v1/contact", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(h.CreateContactHandler).ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusBadRequest {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusBadRequest)
	}
}
