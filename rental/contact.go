package rental

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rentride/car-rental-api/models"
	"github.com/rentride/car-rental-api/records"
)

// ContactService persists contact form submissions and forwards them to the
// support inbox when a mailer is configured.
type ContactService struct {
	DB           records.ContactRecords
	Mail         Mailer
	SupportEmail string
}

// NewContactService returns a contact service over the given records.
func NewContactService(db records.ContactRecords, mail Mailer, supportEmail string) *ContactService {
	return &ContactService{DB: db, Mail: mail, SupportEmail: supportEmail}
}

// ContactInput carries the contact form fields.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit validates the form and appends the submission. Submissions are
// never read back by any workflow.
func (s *ContactService) Submit(ctx context.Context, in ContactInput) (*models.ContactSubmission, error) {
	if in.Name == "" || in.Email == "" || in.Message == "" {
		return nil, ErrMissingFields
	}

	submission := models.ContactSubmission{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Subject:     in.Subject,
		Message:     in.Message,
		SubmittedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.DB.Append(ctx, submission); err != nil {
		return nil, err
	}

	if s.Mail != nil && s.SupportEmail != "" {
		body := fmt.Sprintf("From: %s <%s>\nPhone: %s\nSubject: %s\n\n%s",
			in.Name, in.Email, in.Phone, in.Subject, in.Message)
		if err := s.Mail.Send(ctx, s.SupportEmail, "New contact submission", body); err != nil {
			zap.S().Warnw("failed to forward contact submission",
				"id", submission.ID, "error", err)
		}
	}

	return &submission, nil
}
