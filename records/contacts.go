package records

import (
	"context"
	"errors"

	"github.com/rentride/car-rental-api/models"
	"github.com/rentride/car-rental-api/store"
)

// ContactRecords contains the methods to use with the contactSubmissions
// collection. Submissions are write-once; no workflow reads them back.
type ContactRecords interface {
	Append(ctx context.Context, submission models.ContactSubmission) error
}

type contactRecords struct {
	db store.RecordStore
}

// NewContactRecords initializes a new instance of contact records with the
// provided store.
func NewContactRecords(db store.RecordStore) ContactRecords {
	return &contactRecords{db: db}
}

func (c *contactRecords) Append(ctx context.Context, submission models.ContactSubmission) error {
	var submissions []models.ContactSubmission
	err := c.db.Get(ctx, store.KeyContactSubmissions, &submissions)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	submissions = append(submissions, submission)
	return c.db.Put(ctx, store.KeyContactSubmissions, submissions)
}
