package records

import (
	"context"
	"errors"

	"github.com/rentride/car-rental-api/models"
	"github.com/rentride/car-rental-api/store"
)

// ErrNoSession is returned when no user is currently signed in.
var ErrNoSession = errors.New("records: no current session")

// SessionRecords holds the single current-user pointer. The session is a
// full value-copy of the authenticated account, not a reference into the
// users collection.
type SessionRecords interface {
	Current(ctx context.Context) (*models.UserAccount, error)
	Set(ctx context.Context, user models.UserAccount) error
	Clear(ctx context.Context) error
}

type sessionRecords struct {
	db store.RecordStore
}

// NewSessionRecords initializes a new instance of session records with the
// provided store.
func NewSessionRecords(db store.RecordStore) SessionRecords {
	return &sessionRecords{db: db}
}

func (s *sessionRecords) Current(ctx context.Context) (*models.UserAccount, error) {
	var user models.UserAccount
	err := s.db.Get(ctx, store.KeyCurrentUser, &user)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNoSession
		}
		return nil, err
	}
	return &user, nil
}

func (s *sessionRecords) Set(ctx context.Context, user models.UserAccount) error {
	return s.db.Put(ctx, store.KeyCurrentUser, user)
}

func (s *sessionRecords) Clear(ctx context.Context) error {
	return s.db.Delete(ctx, store.KeyCurrentUser)
}
