package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rentride/car-rental-api/api"
)

func adminToken(t *testing.T, secret, scope string) string {
	claims := jwt.MapClaims{
		"sub":   "admin@rentride.example",
		"scope": scope,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAdminMiddlewareMissingToken(t *testing.T) {
	guard := api.AdminMiddleware("secret")

	req, _ := http.NewRequest("GET", "/api/v1/admin/listings", nil)
	rr := httptest.NewRecorder()
	guard(okHandler()).ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusUnauthorized {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusUnauthorized)
	}
}

func TestAdminMiddlewareWrongSecret(t *testing.T) {
	guard := api.AdminMiddleware("secret")

	req, _ := http.NewRequest("GET", "/api/v1/admin/listings", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, "other-secret", "admin"))
	rr := httptest.NewRecorder()
	guard(okHandler()).ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusUnauthorized {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusUnauthorized)
	}
}

func TestAdminMiddlewareWrongScope(t *testing.T) {
	guard := api.AdminMiddleware("secret")

	req, _ := http.NewRequest("GET", "/api/v1/admin/listings", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, "secret", "user"))
	rr := httptest.NewRecorder()
	guard(okHandler()).ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusForbidden {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusForbidden)
	}
}

func TestAdminMiddlewareValidToken(t *testing.T) {
	guard := api.AdminMiddleware("secret")

	req, _ := http.NewRequest("GET", "/api/v1/admin/listings", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, "secret", "admin"))
	rr := httptest.NewRecorder()
	guard(okHandler()).ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}
}
