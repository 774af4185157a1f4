// Package pricing computes rental cost from a vehicle's rate fields and a
// pickup/dropoff range. Everything here is a pure function of its inputs.
package pricing

import (
	"math"
	"time"

	"github.com/rentride/car-rental-api/models"
)

const (
	hour = time.Hour
	day  = 24 * time.Hour
	week = 7 * 24 * time.Hour
)

// Cost returns the total rental cost for the given plan and time range.
//
// A dropoff at or before the pickup yields 0, the sentinel for an invalid
// range. Otherwise the elapsed duration is converted to whole plan units,
// rounded up, and multiplied by the vehicle's matching rate: a booking of
// 1 hour 1 minute on the hourly plan bills as 2 hours. There is no minimum
// duration and no proration.
func Cost(v models.Vehicle, plan string, pickupAt, dropoffAt time.Time) float64 {
	if !dropoffAt.After(pickupAt) {
		return 0
	}
	elapsed := dropoffAt.Sub(pickupAt)
	switch plan {
	case models.RentalPlanHourly:
		return units(elapsed, hour) * v.PricePerHour
	case models.RentalPlanDaily:
		return units(elapsed, day) * v.PricePerDay
	case models.RentalPlanWeekly:
		return units(elapsed, week) * v.PricePerWeek
	}
	return 0
}

func units(elapsed, unit time.Duration) float64 {
	return math.Ceil(float64(elapsed) / float64(unit))
}

// ValidPlan reports whether plan is one of the supported rate plans.
func ValidPlan(plan string) bool {
	switch plan {
	case models.RentalPlanHourly, models.RentalPlanDaily, models.RentalPlanWeekly:
		return true
	}
	return false
}
