package models

// Listing statuses. Listings are created pending and move to approved or
// rejected through the moderation workflow.
const (
	ListingStatusPending  = "pending"
	ListingStatusApproved = "approved"
	ListingStatusRejected = "rejected"
)

// VehicleListing holds the structure for a single entry in the ownerVehicles
// collection, an owner's submission of a vehicle for the rental fleet.
type VehicleListing struct {
	ID           string   `json:"id" bson:"id"`
	OwnerName    string   `json:"ownerName" bson:"ownerName"`
	OwnerEmail   string   `json:"ownerEmail" bson:"ownerEmail"`
	OwnerPhone   string   `json:"ownerPhone" bson:"ownerPhone"`
	VehicleName  string   `json:"vehicleName" bson:"vehicleName"`
	Brand        string   `json:"brand" bson:"brand"`
	Model        string   `json:"model" bson:"model"`
	Year         int      `json:"year" bson:"year"`
	Type         string   `json:"type" bson:"type"`
	City         string   `json:"city" bson:"city"`
	PricePerHour float64  `json:"pricePerHour" bson:"pricePerHour"`
	PricePerDay  float64  `json:"pricePerDay" bson:"pricePerDay"`
	PricePerWeek float64  `json:"pricePerWeek" bson:"pricePerWeek"`
	Seats        int      `json:"seats" bson:"seats"`
	Fuel         string   `json:"fuel" bson:"fuel"`
	Transmission string   `json:"transmission" bson:"transmission"`
	Features     []string `json:"features" bson:"features"`
	ImageURL     string   `json:"imageUrl" bson:"imageUrl"`
	Status       string   `json:"status" bson:"status"`
	CreatedAt    string   `json:"createdAt" bson:"createdAt"`
}
