package rental

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/rentride/car-rental-api/models"
	"github.com/rentride/car-rental-api/records"
)

// AuthService registers and authenticates users against the users collection
// and maintains the single current-session pointer.
type AuthService struct {
	Users    records.UserRecords
	Sessions records.SessionRecords
}

// NewAuthService returns an auth service over the given records.
func NewAuthService(users records.UserRecords, sessions records.SessionRecords) *AuthService {
	return &AuthService{Users: users, Sessions: sessions}
}

// SignupInput carries the signup form fields.
type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup creates an account and immediately establishes a session for it.
// Emails are stored lowercased, so duplicate checks are case-insensitive.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*models.UserAccount, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, ErrMissingFields
	}
	email := normalizeEmail(in.Email)

	existing, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.UserAccount{
		Name:      in.Name,
		Email:     email,
		Phone:     in.Phone,
		Address:   in.Address,
		Password:  string(hash),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.Users.Append(ctx, user); err != nil {
		return nil, err
	}
	if err := s.Sessions.Set(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates by email and password and copies the account into the
// session pointer. Both a missing account and a wrong password surface as
// ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.UserAccount, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	user, err := s.Users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := s.Sessions.Set(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}

// Logout clears the session pointer only; no other collection is touched.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.Sessions.Clear(ctx)
}

// Current returns the signed-in account, or records.ErrNoSession.
func (s *AuthService) Current(ctx context.Context) (*models.UserAccount, error) {
	return s.Sessions.Current(ctx)
}
