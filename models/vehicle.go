package models

// Vehicle holds the structure for a single entry in the fixture catalog.
// Catalog entries are defined at build time and never mutated.
type Vehicle struct {
	ID           string   `json:"id" bson:"id"`
	Name         string   `json:"name" bson:"name"`
	Brand        string   `json:"brand" bson:"brand"`
	Model        string   `json:"model" bson:"model"`
	Year         int      `json:"year" bson:"year"`
	Type         string   `json:"type" bson:"type"`
	Rating       float64  `json:"rating" bson:"rating"`
	Reviews      int      `json:"reviews" bson:"reviews"`
	PricePerHour float64  `json:"pricePerHour" bson:"pricePerHour"`
	PricePerDay  float64  `json:"pricePerDay" bson:"pricePerDay"`
	PricePerWeek float64  `json:"pricePerWeek" bson:"pricePerWeek"`
	Location     string   `json:"location" bson:"location"`
	Available    bool     `json:"available" bson:"available"`
	Features     []string `json:"features" bson:"features"`
	Fuel         string   `json:"fuel" bson:"fuel"`
	Transmission string   `json:"transmission" bson:"transmission"`
	Seats        int      `json:"seats" bson:"seats"`
}

// Vehicle types as they appear in the catalog.
const (
	VehicleTypeSedan     = "sedan"
	VehicleTypeSUV       = "suv"
	VehicleTypeHatchback = "hatchback"
	VehicleTypeLuxury    = "luxury"
)
