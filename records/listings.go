package records

import (
	"context"
	"errors"

	"github.com/rentride/car-rental-api/models"
	"github.com/rentride/car-rental-api/store"
)

// ListingRecords contains the methods to use with the ownerVehicles
// collection.
type ListingRecords interface {
	List(ctx context.Context) ([]models.VehicleListing, error)
	Append(ctx context.Context, listing models.VehicleListing) error
	Replace(ctx context.Context, listings []models.VehicleListing) error
}

type listingRecords struct {
	db store.RecordStore
}

// NewListingRecords initializes a new instance of listing records with the
// provided store.
func NewListingRecords(db store.RecordStore) ListingRecords {
	return &listingRecords{db: db}
}

func (l *listingRecords) List(ctx context.Context) ([]models.VehicleListing, error) {
	var listings []models.VehicleListing
	err := l.db.Get(ctx, store.KeyListings, &listings)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []models.VehicleListing{}, nil
		}
		return nil, err
	}
	return listings, nil
}

func (l *listingRecords) Append(ctx context.Context, listing models.VehicleListing) error {
	listings, err := l.List(ctx)
	if err != nil {
		return err
	}
	listings = append(listings, listing)
	return l.db.Put(ctx, store.KeyListings, listings)
}

func (l *listingRecords) Replace(ctx context.Context, listings []models.VehicleListing) error {
	return l.db.Put(ctx, store.KeyListings, listings)
}
