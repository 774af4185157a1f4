package records

import (
	"context"
	"errors"

	"github.com/rentride/car-rental-api/store"
)

// SettingsRecords holds per-profile display settings. Dark mode is stored as
// the strings "true"/"false" to match the persisted shape.
type SettingsRecords interface {
	DarkMode(ctx context.Context) (bool, error)
	SetDarkMode(ctx context.Context, enabled bool) error
}

type settingsRecords struct {
	db store.RecordStore
}

// NewSettingsRecords initializes a new instance of settings records with the
// provided store.
func NewSettingsRecords(db store.RecordStore) SettingsRecords {
	return &settingsRecords{db: db}
}

func (s *settingsRecords) DarkMode(ctx context.Context) (bool, error) {
	var v string
	err := s.db.Get(ctx, store.KeyDarkMode, &v)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return v == "true", nil
}

func (s *settingsRecords) SetDarkMode(ctx context.Context, enabled bool) error {
	v := "false"
	if enabled {
		v = "true"
	}
	return s.db.Put(ctx, store.KeyDarkMode, v)
}
