package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/rentride/car-rental-api/catalog"
	"github.com/rentride/car-rental-api/config"
)

// Cars exported for testing purposes
type Cars struct{}

// CarsHandler returns the catalog filtered by the query params: search,
// city, type, price_band, availability. Absent params match everything.
func (c Cars) CarsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	q := catalog.Query{
		Search:       r.URL.Query().Get("search"),
		City:         r.URL.Query().Get("city"),
		Type:         r.URL.Query().Get("type"),
		PriceBand:    r.URL.Query().Get("price_band"),
		Availability: r.URL.Query().Get("availability"),
	}

	cars := catalog.Filter(q)
	zap.S().Debugw("catalog filtered", "matches", len(cars))

	b, err := json.Marshal(cars)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CarByIDHandler returns a catalog entry by ID
func (c Cars) CarByIDHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	carID := mux.Vars(r)["car_id"]

	car, ok := catalog.ByID(carID)
	if !ok {
		config.ErrorStatus("failed to get car by ID", http.StatusNotFound, w, fmt.Errorf("no car with id %q", carID))
		return
	}

	b, err := json.Marshal(car)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CitiesHandler returns the pickup locations offered in the search UI
func (c Cars) CitiesHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	b, err := json.Marshal(catalog.Cities)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
