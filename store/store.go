// Package store defines the record-store port backing all persisted state.
//
// Every collection is one JSON value under a string key, read and written
// whole. Writers do read-modify-write on the full value; there is no locking
// across processes, so the last writer wins.
package store

import (
	"context"
	"errors"
)

// Keys for the persisted collections.
const (
	KeyUsers              = "users"
	KeyCurrentUser        = "currentUser"
	KeyBookings           = "carBookings"
	KeyListings           = "ownerVehicles"
	KeyContactSubmissions = "contactSubmissions"
	KeyUserProfile        = "userProfile"
	KeyDarkMode           = "darkMode"
)

// ErrNotFound is returned by Get when no value exists under the key.
var ErrNotFound = errors.New("store: key not found")

// RecordStore is the persistence port used by the record accessors. Values
// are JSON-encoded on Put and decoded into v on Get.
type RecordStore interface {
	Get(ctx context.Context, key string, v interface{}) error
	Put(ctx context.Context, key string, v interface{}) error
	Delete(ctx context.Context, key string) error
}
