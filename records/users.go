// Package records provides typed accessors for each persisted collection.
// Every accessor follows the same pattern: an interface, a constructor over
// the injected store port, and an implementation doing whole-collection
// read-modify-write.
package records

import (
	"context"
	"errors"

	"github.com/rentride/car-rental-api/models"
	"github.com/rentride/car-rental-api/store"
)

// UserRecords contains the methods to use with the users collection.
type UserRecords interface {
	List(ctx context.Context) ([]models.UserAccount, error)
	FindByEmail(ctx context.Context, email string) (*models.UserAccount, error)
	Append(ctx context.Context, user models.UserAccount) error
}

type userRecords struct {
	db store.RecordStore
}

// NewUserRecords initializes a new instance of user records with the
// provided store.
func NewUserRecords(db store.RecordStore) UserRecords {
	return &userRecords{db: db}
}

func (u *userRecords) List(ctx context.Context) ([]models.UserAccount, error) {
	var users []models.UserAccount
	err := u.db.Get(ctx, store.KeyUsers, &users)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []models.UserAccount{}, nil
		}
		return nil, err
	}
	return users, nil
}

func (u *userRecords) FindByEmail(ctx context.Context, email string) (*models.UserAccount, error) {
	users, err := u.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (u *userRecords) Append(ctx context.Context, user models.UserAccount) error {
	users, err := u.List(ctx)
	if err != nil {
		return err
	}
	users = append(users, user)
	return u.db.Put(ctx, store.KeyUsers, users)
}
