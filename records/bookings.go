package records

import (
	"context"
	"errors"

	"github.com/rentride/car-rental-api/models"
	"github.com/rentride/car-rental-api/store"
)

// BookingRecords contains the methods to use with the carBookings
// collection. Bookings are append-only; status changes rewrite the whole
// collection via Replace.
type BookingRecords interface {
	List(ctx context.Context) ([]models.Booking, error)
	Append(ctx context.Context, booking models.Booking) error
	Replace(ctx context.Context, bookings []models.Booking) error
}

type bookingRecords struct {
	db store.RecordStore
}

// NewBookingRecords initializes a new instance of booking records with the
// provided store.
func NewBookingRecords(db store.RecordStore) BookingRecords {
	return &bookingRecords{db: db}
}

func (b *bookingRecords) List(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	err := b.db.Get(ctx, store.KeyBookings, &bookings)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []models.Booking{}, nil
		}
		return nil, err
	}
	return bookings, nil
}

func (b *bookingRecords) Append(ctx context.Context, booking models.Booking) error {
	bookings, err := b.List(ctx)
	if err != nil {
		return err
	}
	bookings = append(bookings, booking)
	return b.db.Put(ctx, store.KeyBookings, bookings)
}

func (b *bookingRecords) Replace(ctx context.Context, bookings []models.Booking) error {
	return b.db.Put(ctx, store.KeyBookings, bookings)
}
