package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rentride/car-rental-api/config"
	"github.com/rentride/car-rental-api/models"
	"github.com/rentride/car-rental-api/records"
	"github.com/rentride/car-rental-api/rental"
)

// Auth exported for testing purposes
type Auth struct {
	Service *rental.AuthService
}

// sanitize strips the password hash before an account leaves the API.
func sanitize(u models.UserAccount) models.UserAccount {
	u.Password = ""
	return u
}

// SignupHandler creates an account and establishes a session for it
func (a Auth) SignupHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var in rental.SignupInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	user, err := a.Service.Signup(r.Context(), in)
	if err != nil {
		config.ErrorStatus("failed to sign up", statusForError(err), w, err)
		return
	}

	b, err := json.Marshal(sanitize(*user))
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginHandler authenticates a user and sets the current session
func (a Auth) LoginHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	user, err := a.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		config.ErrorStatus("failed to log in", statusForError(err), w, err)
		return
	}

	b, err := json.Marshal(sanitize(*user))
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// LogoutHandler clears the current session pointer
func (a Auth) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := a.Service.Logout(r.Context()); err != nil {
		config.ErrorStatus("failed to log out", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"loggedOut": true}`))
}

// SessionHandler returns the signed-in account, if any
func (a Auth) SessionHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	user, err := a.Service.Current(r.Context())
	if err != nil {
		if errors.Is(err, records.ErrNoSession) {
			config.ErrorStatus("no active session", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to get session", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(sanitize(*user))
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
