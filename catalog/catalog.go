// Package catalog exposes the static vehicle inventory. The data is fixed at
// build time; nothing in the system creates, updates, or deletes entries.
package catalog

import (
	"strings"

	"github.com/rentride/car-rental-api/models"
)

// Cities lists the pickup locations offered in the search UI.
var Cities = []string{
	"New York", "Los Angeles", "Chicago", "Miami", "San Francisco",
	"Boston", "Seattle", "Austin", "Denver", "Atlanta",
}

var cars = []models.Vehicle{
	{
		ID: "1", Name: "BMW 5 Series", Brand: "BMW", Model: "5 Series", Year: 2023,
		Type: models.VehicleTypeLuxury, Rating: 4.9, Reviews: 127,
		PricePerHour: 25, PricePerDay: 180, PricePerWeek: 1100,
		Location: "New York", Available: true,
		Features:     []string{"GPS Navigation", "Leather Seats", "Sunroof", "Premium Audio"},
		Fuel:         "petrol", Transmission: "automatic", Seats: 5,
	},
	{
		ID: "2", Name: "Audi Q7", Brand: "Audi", Model: "Q7", Year: 2023,
		Type: models.VehicleTypeSUV, Rating: 4.8, Reviews: 89,
		PricePerHour: 30, PricePerDay: 220, PricePerWeek: 1400,
		Location: "Los Angeles", Available: true,
		Features:     []string{"7 Seats", "All-Wheel Drive", "Premium Audio", "Parking Sensors"},
		Fuel:         "petrol", Transmission: "automatic", Seats: 7,
	},
	{
		ID: "3", Name: "Volkswagen Golf", Brand: "Volkswagen", Model: "Golf", Year: 2022,
		Type: models.VehicleTypeHatchback, Rating: 4.6, Reviews: 203,
		PricePerHour: 15, PricePerDay: 95, PricePerWeek: 550,
		Location: "Chicago", Available: true,
		Features:     []string{"Fuel Efficient", "Bluetooth", "Air Conditioning", "USB Ports"},
		Fuel:         "petrol", Transmission: "manual", Seats: 5,
	},
	{
		ID: "4", Name: "Mercedes C-Class", Brand: "Mercedes", Model: "C-Class", Year: 2023,
		Type: models.VehicleTypeLuxury, Rating: 4.9, Reviews: 156,
		PricePerHour: 28, PricePerDay: 200, PricePerWeek: 1250,
		Location: "Miami", Available: false,
		Features:     []string{"Premium Interior", "Advanced Safety", "Wireless Charging", "Ambient Lighting"},
		Fuel:         "petrol", Transmission: "automatic", Seats: 5,
	},
	{
		ID: "5", Name: "Tesla Model Y", Brand: "Tesla", Model: "Model Y", Year: 2023,
		Type: models.VehicleTypeSUV, Rating: 4.8, Reviews: 94,
		PricePerHour: 35, PricePerDay: 250, PricePerWeek: 1600,
		Location: "San Francisco", Available: true,
		Features:     []string{"Electric", "Autopilot", "Supercharging", "Premium Connectivity"},
		Fuel:         "electric", Transmission: "automatic", Seats: 5,
	},
	{
		ID: "6", Name: "Honda Civic", Brand: "Honda", Model: "Civic", Year: 2022,
		Type: models.VehicleTypeSedan, Rating: 4.5, Reviews: 178,
		PricePerHour: 18, PricePerDay: 120, PricePerWeek: 700,
		Location: "Boston", Available: true,
		Features:     []string{"Reliable", "Fuel Efficient", "Safety Features", "Spacious Interior"},
		Fuel:         "petrol", Transmission: "automatic", Seats: 5,
	},
	{
		ID: "7", Name: "Range Rover Evoque", Brand: "Land Rover", Model: "Range Rover Evoque", Year: 2023,
		Type: models.VehicleTypeSUV, Rating: 4.7, Reviews: 67,
		PricePerHour: 40, PricePerDay: 300, PricePerWeek: 1900,
		Location: "Seattle", Available: true,
		Features:     []string{"Luxury Interior", "Off-Road Capable", "Panoramic Roof", "Premium Sound"},
		Fuel:         "petrol", Transmission: "automatic", Seats: 5,
	},
	{
		ID: "8", Name: "Mini Cooper", Brand: "Mini", Model: "Cooper", Year: 2022,
		Type: models.VehicleTypeHatchback, Rating: 4.4, Reviews: 142,
		PricePerHour: 16, PricePerDay: 110, PricePerWeek: 650,
		Location: "Austin", Available: true,
		Features:     []string{"Compact Size", "Fun to Drive", "Unique Design", "Good Fuel Economy"},
		Fuel:         "petrol", Transmission: "manual", Seats: 4,
	},
}

// All returns a copy of the full catalog.
func All() []models.Vehicle {
	out := make([]models.Vehicle, len(cars))
	copy(out, cars)
	return out
}

// ByID returns the catalog entry with the given id, or false when no entry
// matches.
func ByID(id string) (models.Vehicle, bool) {
	for _, c := range cars {
		if c.ID == id {
			return c, true
		}
	}
	return models.Vehicle{}, false
}

// Price bands used by the daily-rate filter.
const (
	PriceBandBudget   = "budget"   // under 150/day
	PriceBandStandard = "standard" // 150-249/day
	PriceBandPremium  = "premium"  // 250+/day
)

// Availability filter values.
const (
	AvailabilityAvailable = "available"
	AvailabilityRented    = "rented"
)

// Query holds the search predicates applied to the catalog. Empty or "all"
// values match everything for that field.
type Query struct {
	Search       string
	City         string
	Type         string
	PriceBand    string
	Availability string
}

// Filter returns the catalog entries matching every predicate in q.
func Filter(q Query) []models.Vehicle {
	out := []models.Vehicle{}
	for _, c := range cars {
		if matches(c, q) {
			out = append(out, c)
		}
	}
	return out
}

func matches(c models.Vehicle, q Query) bool {
	if s := strings.ToLower(strings.TrimSpace(q.Search)); s != "" {
		if !strings.Contains(strings.ToLower(c.Name), s) &&
			!strings.Contains(strings.ToLower(c.Brand), s) &&
			!strings.Contains(strings.ToLower(c.Model), s) {
			return false
		}
	}
	if q.City != "" && q.City != "all" && c.Location != q.City {
		return false
	}
	if q.Type != "" && q.Type != "all" && c.Type != q.Type {
		return false
	}
	switch q.PriceBand {
	case PriceBandBudget:
		if c.PricePerDay >= 150 {
			return false
		}
	case PriceBandStandard:
		if c.PricePerDay < 150 || c.PricePerDay >= 250 {
			return false
		}
	case PriceBandPremium:
		if c.PricePerDay < 250 {
			return false
		}
	}
	switch q.Availability {
	case AvailabilityAvailable:
		if !c.Available {
			return false
		}
	case AvailabilityRented:
		if c.Available {
			return false
		}
	}
	return true
}
