package models

// Booking statuses. Pending is part of the declared state machine but the
// booking workflow creates bookings as confirmed; the only transition is
// confirmed -> cancelled.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Rental plans supported by the pricing engine.
const (
	RentalPlanHourly = "hourly"
	RentalPlanDaily  = "daily"
	RentalPlanWeekly = "weekly"
)

// Booking holds the structure for a single entry in the carBookings
// collection. TotalCost is computed once at creation and never recomputed.
type Booking struct {
	BookingID     string  `json:"bookingId" bson:"bookingId"`
	CarID         string  `json:"carId" bson:"carId"`
	CarName       string  `json:"carName" bson:"carName"`
	CustomerName  string  `json:"customerName" bson:"customerName"`
	CustomerEmail string  `json:"customerEmail" bson:"customerEmail"`
	CustomerPhone string  `json:"customerPhone" bson:"customerPhone"`
	RentalPlan    string  `json:"rentalPlan" bson:"rentalPlan"`
	PickupDate    string  `json:"pickupDate" bson:"pickupDate"`
	PickupTime    string  `json:"pickupTime" bson:"pickupTime"`
	DropoffDate   string  `json:"dropoffDate" bson:"dropoffDate"`
	DropoffTime   string  `json:"dropoffTime" bson:"dropoffTime"`
	TotalCost     float64 `json:"totalCost" bson:"totalCost"`
	Status        string  `json:"status" bson:"status"`
	CreatedAt     string  `json:"createdAt" bson:"createdAt"`
}

// BookingStats aggregates the booking collection for the profile view.
type BookingStats struct {
	TotalBookings int     `json:"totalBookings"`
	TotalSpent    float64 `json:"totalSpent"`
}
