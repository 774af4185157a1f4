// Package docs RentRide Car Rental API.
//
// Documentation of RentRide Car Rental API.
//
//     Schemes: https
//     BasePath: /
//     Version: 1.0.0
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
//     Security:
//     - basic
//
//    SecurityDefinitions:
//    basic:
//      type: basic
//
// swagger:meta
package docs

import (
	"github.com/rentride/car-rental-api/models"
)

// swagger:route GET /health health healthEndpointID
// Lists the healthchex of the web service api.
// responses:
//   200: healthResponse

// Shows the current health of the api. true means it is alive, false means it is not.
// swagger:response healthResponse
type healthResponseWrapper struct {
	// in:body
	Body models.HealthCheckResponse
}

// swagger:route GET /api/v1/cars/{car_id} cars carByID
// Gets a single catalog car by ID.
// responses:
//   200: carByIDResponse

// Shows a single car by the given {car_id}
// swagger:response carByIDResponse
type carByIDResponseWrapper struct {
	// in:body
	Body models.Vehicle
}

// swagger:route POST /api/v1/bookings bookings createBooking
// Creates a booking and returns the confirmed record.
// responses:
//   201: createBookingResponse

// Shows the booking as persisted, including the computed total cost.
// swagger:response createBookingResponse
type createBookingResponseWrapper struct {
	// in:body
	Body models.Booking
}

// swagger:route POST /api/v1/listings listings createListing
// Submits an owner vehicle listing for moderation.
// responses:
//   201: createListingResponse

// Shows the pending listing as persisted.
// swagger:response createListingResponse
type createListingResponseWrapper struct {
	// in:body
	Body models.VehicleListing
}
