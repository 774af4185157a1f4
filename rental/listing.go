package rental

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rentride/car-rental-api/models"
	"github.com/rentride/car-rental-api/records"
)

// ListingService runs the owner vehicle-listing flow and its moderation
// workflow. Listings are created pending and move to approved or rejected
// exactly once.
type ListingService struct {
	DB records.ListingRecords
}

// NewListingService returns a listing service over the given records.
func NewListingService(db records.ListingRecords) *ListingService {
	return &ListingService{DB: db}
}

// ListingInput carries the owner submission form fields.
type ListingInput struct {
	OwnerName    string   `json:"ownerName"`
	OwnerEmail   string   `json:"ownerEmail"`
	OwnerPhone   string   `json:"ownerPhone"`
	VehicleName  string   `json:"vehicleName"`
	Brand        string   `json:"brand"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	Type         string   `json:"type"`
	City         string   `json:"city"`
	PricePerHour float64  `json:"pricePerHour"`
	PricePerDay  float64  `json:"pricePerDay"`
	PricePerWeek float64  `json:"pricePerWeek"`
	Seats        int      `json:"seats"`
	Fuel         string   `json:"fuel"`
	Transmission string   `json:"transmission"`
	Features     []string `json:"features"`
	ImageURL     string   `json:"imageUrl"`
}

// Submit validates the owner form and appends a pending listing.
func (s *ListingService) Submit(ctx context.Context, in ListingInput) (*models.VehicleListing, error) {
	if in.OwnerName == "" || in.OwnerEmail == "" || in.OwnerPhone == "" ||
		in.VehicleName == "" || in.Brand == "" || in.Model == "" || in.City == "" {
		return nil, ErrMissingFields
	}
	if in.PricePerDay <= 0 {
		return nil, ErrInvalidPrice
	}

	listing := models.VehicleListing{
		ID:           uuid.New().String(),
		OwnerName:    in.OwnerName,
		OwnerEmail:   in.OwnerEmail,
		OwnerPhone:   in.OwnerPhone,
		VehicleName:  in.VehicleName,
		Brand:        in.Brand,
		Model:        in.Model,
		Year:         in.Year,
		Type:         in.Type,
		City:         in.City,
		PricePerHour: in.PricePerHour,
		PricePerDay:  in.PricePerDay,
		PricePerWeek: in.PricePerWeek,
		Seats:        in.Seats,
		Fuel:         in.Fuel,
		Transmission: in.Transmission,
		Features:     in.Features,
		ImageURL:     in.ImageURL,
		Status:       models.ListingStatusPending,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.DB.Append(ctx, listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// List returns the entire listing collection.
func (s *ListingService) List(ctx context.Context) ([]models.VehicleListing, error) {
	return s.DB.List(ctx)
}

// Pending returns listings still awaiting moderation, oldest first in
// collection order.
func (s *ListingService) Pending(ctx context.Context) ([]models.VehicleListing, error) {
	listings, err := s.DB.List(ctx)
	if err != nil {
		return nil, err
	}
	out := []models.VehicleListing{}
	for _, l := range listings {
		if l.Status == models.ListingStatusPending {
			out = append(out, l)
		}
	}
	return out, nil
}

// Approve transitions a pending listing to approved.
func (s *ListingService) Approve(ctx context.Context, id string) (*models.VehicleListing, error) {
	return s.moderate(ctx, id, models.ListingStatusApproved)
}

// Reject transitions a pending listing to rejected.
func (s *ListingService) Reject(ctx context.Context, id string) (*models.VehicleListing, error) {
	return s.moderate(ctx, id, models.ListingStatusRejected)
}

func (s *ListingService) moderate(ctx context.Context, id, status string) (*models.VehicleListing, error) {
	listings, err := s.DB.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range listings {
		if listings[i].ID != id {
			continue
		}
		if listings[i].Status != models.ListingStatusPending {
			return nil, ErrInvalidTransition
		}
		listings[i].Status = status
		if err := s.DB.Replace(ctx, listings); err != nil {
			return nil, err
		}
		return &listings[i], nil
	}
	return nil, ErrListingNotFound
}
