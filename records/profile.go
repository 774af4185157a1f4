package records

import (
	"context"
	"errors"

	"github.com/rentride/car-rental-api/models"
	"github.com/rentride/car-rental-api/store"
)

// ProfileRecords holds the display-only userProfile record. Profile edits
// land here, not in the users collection, so the two can diverge.
type ProfileRecords interface {
	Get(ctx context.Context) (*models.UserProfile, error)
	Put(ctx context.Context, profile models.UserProfile) error
}

type profileRecords struct {
	db store.RecordStore
}

// NewProfileRecords initializes a new instance of profile records with the
// provided store.
func NewProfileRecords(db store.RecordStore) ProfileRecords {
	return &profileRecords{db: db}
}

func (p *profileRecords) Get(ctx context.Context) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := p.db.Get(ctx, store.KeyUserProfile, &profile)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (p *profileRecords) Put(ctx context.Context, profile models.UserProfile) error {
	return p.db.Put(ctx, store.KeyUserProfile, profile)
}
