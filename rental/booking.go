package rental

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rentride/car-rental-api/catalog"
	"github.com/rentride/car-rental-api/models"
	"github.com/rentride/car-rental-api/pricing"
	"github.com/rentride/car-rental-api/records"
)

// Mailer sends transactional email. A nil Mailer disables sending.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// BookingService runs the booking workflow: validation, pricing, id minting,
// and persistence. It never checks for overlapping reservations on the same
// vehicle; the system targets a single interactive user.
type BookingService struct {
	DB   records.BookingRecords
	Mail Mailer
}

// NewBookingService returns a booking service over the given records.
func NewBookingService(db records.BookingRecords, mail Mailer) *BookingService {
	return &BookingService{DB: db, Mail: mail}
}

// BookingInput carries the booking form fields. Dates are "2006-01-02",
// times are "15:04".
type BookingInput struct {
	CarID         string `json:"carId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	RentalPlan    string `json:"rentalPlan"`
	PickupDate    string `json:"pickupDate"`
	PickupTime    string `json:"pickupTime"`
	DropoffDate   string `json:"dropoffDate"`
	DropoffTime   string `json:"dropoffTime"`
}

func parseAt(date, clock, fallback string) (time.Time, error) {
	if clock == "" {
		clock = fallback
	}
	return time.Parse("2006-01-02 15:04", date+" "+clock)
}

// Quote computes the cost for the given vehicle, plan, and range without
// persisting anything. An empty or unparsable range yields 0, the sentinel
// for an invalid range. Missing pickup time defaults to 00:00 and missing
// dropoff time to 23:59, matching the quote form's defaults.
func (s *BookingService) Quote(in BookingInput) (float64, error) {
	car, ok := catalog.ByID(in.CarID)
	if !ok {
		return 0, ErrVehicleNotFound
	}
	plan := in.RentalPlan
	if plan == "" {
		plan = models.RentalPlanDaily
	}
	if !pricing.ValidPlan(plan) {
		return 0, ErrInvalidPlan
	}
	if in.PickupDate == "" || in.DropoffDate == "" {
		return 0, nil
	}
	pickupAt, err := parseAt(in.PickupDate, in.PickupTime, "00:00")
	if err != nil {
		return 0, nil
	}
	dropoffAt, err := parseAt(in.DropoffDate, in.DropoffTime, "23:59")
	if err != nil {
		return 0, nil
	}
	return pricing.Cost(car, plan, pickupAt, dropoffAt), nil
}

// Submit validates the form, prices the rental, and appends a confirmed
// booking to the collection. The new record is returned for the
// confirmation view.
func (s *BookingService) Submit(ctx context.Context, in BookingInput) (*models.Booking, error) {
	if in.CustomerName == "" || in.CustomerEmail == "" || in.CustomerPhone == "" ||
		in.PickupDate == "" || in.PickupTime == "" || in.DropoffDate == "" || in.DropoffTime == "" {
		return nil, ErrMissingFields
	}
	car, ok := catalog.ByID(in.CarID)
	if !ok {
		return nil, ErrVehicleNotFound
	}
	plan := in.RentalPlan
	if plan == "" {
		plan = models.RentalPlanDaily
	}
	if !pricing.ValidPlan(plan) {
		return nil, ErrInvalidPlan
	}
	pickupAt, err := parseAt(in.PickupDate, in.PickupTime, "00:00")
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	dropoffAt, err := parseAt(in.DropoffDate, in.DropoffTime, "23:59")
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	cost := pricing.Cost(car, plan, pickupAt, dropoffAt)
	if cost <= 0 {
		return nil, ErrInvalidDateRange
	}

	booking := models.Booking{
		BookingID:     uuid.New().String(),
		CarID:         car.ID,
		CarName:       car.Name,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
		RentalPlan:    plan,
		PickupDate:    in.PickupDate,
		PickupTime:    in.PickupTime,
		DropoffDate:   in.DropoffDate,
		DropoffTime:   in.DropoffTime,
		TotalCost:     cost,
		Status:        models.BookingStatusConfirmed,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.DB.Append(ctx, booking); err != nil {
		return nil, err
	}

	if s.Mail != nil {
		body := fmt.Sprintf("Hi %s,\n\nYour booking %s for the %s is confirmed.\nPickup: %s %s\nDropoff: %s %s\nTotal: $%.2f\n\nSee you at pickup!",
			in.CustomerName, booking.BookingID, car.Name,
			booking.PickupDate, booking.PickupTime, booking.DropoffDate, booking.DropoffTime, cost)
		if err := s.Mail.Send(ctx, in.CustomerEmail, "Booking Confirmed", body); err != nil {
			zap.S().Warnw("failed to send booking confirmation",
				"bookingId", booking.BookingID, "error", err)
		}
	}

	return &booking, nil
}

// List returns the entire booking collection. No per-customer filter is
// applied; every signed-in user sees every booking made in this profile.
func (s *BookingService) List(ctx context.Context) ([]models.Booking, error) {
	return s.DB.List(ctx)
}

// Cancel sets the booking's status to cancelled. Cancelling an already
// cancelled booking changes nothing value-wise but still rewrites the
// collection.
func (s *BookingService) Cancel(ctx context.Context, bookingID string) error {
	bookings, err := s.DB.List(ctx)
	if err != nil {
		return err
	}
	found := false
	for i := range bookings {
		if bookings[i].BookingID == bookingID {
			bookings[i].Status = models.BookingStatusCancelled
			found = true
		}
	}
	if !found {
		return ErrBookingNotFound
	}
	return s.DB.Replace(ctx, bookings)
}

// Stats folds over the full collection: count of records and sum of
// totalCost. Recomputed on every call.
func (s *BookingService) Stats(ctx context.Context) (models.BookingStats, error) {
	bookings, err := s.DB.List(ctx)
	if err != nil {
		return models.BookingStats{}, err
	}
	stats := models.BookingStats{TotalBookings: len(bookings)}
	for _, b := range bookings {
		stats.TotalSpent += b.TotalCost
	}
	return stats, nil
}

// UpcomingPickups returns confirmed bookings whose pickup falls inside the
// window starting at now. Used by the reminder job.
func (s *BookingService) UpcomingPickups(ctx context.Context, now time.Time, window time.Duration) ([]models.Booking, error) {
	bookings, err := s.DB.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.Booking
	for _, b := range bookings {
		if !strings.EqualFold(b.Status, models.BookingStatusConfirmed) {
			continue
		}
		pickupAt, err := parseAt(b.PickupDate, b.PickupTime, "00:00")
		if err != nil {
			continue
		}
		if pickupAt.After(now) && pickupAt.Sub(now) <= window {
			out = append(out, b)
		}
	}
	return out, nil
}
