package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/rentride/car-rental-api/api"
	"github.com/rentride/car-rental-api/config"
	"github.com/rentride/car-rental-api/mailer"
	"github.com/rentride/car-rental-api/models"
	"github.com/rentride/car-rental-api/records"
	"github.com/rentride/car-rental-api/rental"
	"github.com/rentride/car-rental-api/store"
)

// App stores the router and record store, so it can be reused
type App struct {
	Router *mux.Router
	DB     store.RecordStore
	Config config.Config
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	users := records.NewUserRecords(a.DB)
	sessions := records.NewSessionRecords(a.DB)
	bookings := records.NewBookingRecords(a.DB)
	listings := records.NewListingRecords(a.DB)
	contacts := records.NewContactRecords(a.DB)
	profiles := records.NewProfileRecords(a.DB)
	settings := records.NewSettingsRecords(a.DB)

	var mail rental.Mailer
	if a.Config.SendgridKey != "" {
		mail = mailer.New(a.Config.SendgridKey, a.Config.FromEmail)
	}

	m := api.MiddlewareDB{DB: users}
	m.SetupGoGuardian()
	adminGuard := api.AdminMiddleware(a.Config.JWTSecret)

	auth := Auth{Service: rental.NewAuthService(users, sessions)}
	cars := Cars{}
	b := Booking{Service: rental.NewBookingService(bookings, mail)}
	l := Listing{Service: rental.NewListingService(listings)}
	c := Contact{Service: rental.NewContactService(contacts, mail, a.Config.SupportEmail)}
	p := Profile{PDB: profiles, SDB: settings, Bookings: rental.NewBookingService(bookings, nil)}
	admin := Admin{Config: a.Config}
	uploads := UploadHandler{}

	// healthchex
	r := mux.NewRouter()
	r.HandleFunc("/health", healthCheckHandler)
	r.Use(api.MetricsMiddleware)
	r.Use(api.TimeoutMiddleware(30 * time.Second))

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	apiCreate.Handle("/auth/token", api.Middleware(http.HandlerFunc(m.CreateToken))).Methods("POST")
	apiCreate.Handle("/auth/logout", api.Middleware(http.HandlerFunc(api.RevokeToken))).Methods("DELETE")

	apiCreate.Handle("/cars", http.HandlerFunc(cars.CarsHandler)).Methods("GET")
	apiCreate.Handle("/cars/{car_id}", http.HandlerFunc(cars.CarByIDHandler)).Methods("GET")
	apiCreate.Handle("/cities", http.HandlerFunc(cars.CitiesHandler)).Methods("GET")

	apiCreate.Handle("/signup", http.HandlerFunc(auth.SignupHandler)).Methods("POST")
	apiCreate.Handle("/login", http.HandlerFunc(auth.LoginHandler)).Methods("POST")
	apiCreate.Handle("/logout", http.HandlerFunc(auth.LogoutHandler)).Methods("POST")
	apiCreate.Handle("/session", http.HandlerFunc(auth.SessionHandler)).Methods("GET")

	apiCreate.Handle("/bookings/quote", http.HandlerFunc(b.QuoteHandler)).Methods("POST")
	apiCreate.Handle("/bookings/stats", api.Middleware(http.HandlerFunc(b.BookingStatsHandler))).Methods("GET")
	apiCreate.Handle("/bookings", http.HandlerFunc(b.CreateBookingHandler)).Methods("POST")
	apiCreate.Handle("/bookings", api.Middleware(http.HandlerFunc(b.BookingsHandler))).Methods("GET")
	apiCreate.Handle("/bookings/{booking_id}/cancel", api.Middleware(http.HandlerFunc(b.CancelBookingHandler))).Methods("PUT")

	apiCreate.Handle("/profile", api.Middleware(http.HandlerFunc(p.ProfileHandler))).Methods("GET")
	apiCreate.Handle("/profile", api.Middleware(http.HandlerFunc(p.UpdateProfileHandler))).Methods("PUT")
	apiCreate.Handle("/settings/dark-mode", http.HandlerFunc(p.DarkModeHandler)).Methods("GET")
	apiCreate.Handle("/settings/dark-mode", http.HandlerFunc(p.SetDarkModeHandler)).Methods("PUT")

	apiCreate.Handle("/listings", http.HandlerFunc(l.CreateListingHandler)).Methods("POST")
	apiCreate.Handle("/listings", http.HandlerFunc(l.ListingsHandler)).Methods("GET")

	apiCreate.Handle("/contact", http.HandlerFunc(c.CreateContactHandler)).Methods("POST")

	apiCreate.Handle("/generate-signature", api.Middleware(http.HandlerFunc(uploads.GenerateSignature))).Methods("POST")

	apiCreate.Handle("/admin/login", http.HandlerFunc(admin.AdminLoginHandler)).Methods("POST")
	apiCreate.Handle("/admin/listings", adminGuard(http.HandlerFunc(l.AdminListingsHandler))).Methods("GET")
	apiCreate.Handle("/admin/listings/{listing_id}/approve", adminGuard(http.HandlerFunc(l.ApproveListingHandler))).Methods("PUT")
	apiCreate.Handle("/admin/listings/{listing_id}/reject", adminGuard(http.HandlerFunc(l.RejectListingHandler))).Methods("PUT")

	apiCreate.Handle("/metrics/summary", http.HandlerFunc(MetricsSummaryHandler)).Methods("GET")

	return r
}

// Initialize is invoked by main to open the record store and create a router
func (a *App) Initialize() error {
	if a.Config.URL != "" {
		ctx, cancel := api.WithQueryTimeout(nil)
		defer cancel()
		db, err := store.NewMongoStore(ctx, a.Config.URL, a.Config.DatabaseName)
		if err != nil {
			// if we fail to connect to the database, then kill the pod
			zap.S().With(err).Error("failed to connect to database")
			return err
		}
		a.DB = db
		zap.S().Info("car-rental-api has connected to the database")
	} else {
		db, err := store.NewFileStore(a.Config.DataDir)
		if err != nil {
			zap.S().With(err).Error("failed to open data directory")
			return err
		}
		a.DB = db
		zap.S().Infow("car-rental-api is using the file store", "dir", a.Config.DataDir)
	}

	a.initializeRoutes()
	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}

// statusForError maps workflow sentinel errors onto HTTP statuses. Anything
// unrecognized is a storage or encoding fault and surfaces as a 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, rental.ErrMissingFields),
		errors.Is(err, rental.ErrInvalidDateRange),
		errors.Is(err, rental.ErrInvalidPlan),
		errors.Is(err, rental.ErrInvalidPrice),
		errors.Is(err, rental.ErrInvalidTransition):
		return http.StatusBadRequest
	case errors.Is(err, rental.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, rental.ErrVehicleNotFound),
		errors.Is(err, rental.ErrBookingNotFound),
		errors.Is(err, rental.ErrListingNotFound),
		errors.Is(err, records.ErrNoSession):
		return http.StatusNotFound
	case errors.Is(err, rental.ErrDuplicateEmail):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
