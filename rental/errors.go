// Package rental implements the booking, auth, listing, and contact
// workflows over the record store. Handlers map these sentinel errors onto
// HTTP statuses; every error here is recoverable and user-facing.
package rental

import "errors"

var (
	// ErrMissingFields indicates a required form field was empty.
	ErrMissingFields = errors.New("missing required fields")
	// ErrInvalidCredentials indicates a login email/password mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrDuplicateEmail indicates a signup collision on email.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrInvalidDateRange indicates the dropoff is not after the pickup, or
	// the date/time fields could not be parsed.
	ErrInvalidDateRange = errors.New("invalid date range")
	// ErrInvalidPlan indicates an unknown rental plan.
	ErrInvalidPlan = errors.New("invalid rental plan")
	// ErrInvalidPrice indicates a listing without a positive daily price.
	ErrInvalidPrice = errors.New("invalid daily price")
	// ErrVehicleNotFound indicates the carId has no catalog entry.
	ErrVehicleNotFound = errors.New("vehicle not found")
	// ErrBookingNotFound indicates no booking exists with the given id.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrListingNotFound indicates no listing exists with the given id.
	ErrListingNotFound = errors.New("listing not found")
	// ErrInvalidTransition indicates a moderation action on a listing that
	// is no longer pending.
	ErrInvalidTransition = errors.New("listing is not pending")
)
