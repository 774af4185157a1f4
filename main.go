package main

import (
	"fmt"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/rentride/car-rental-api/api/handlers"
	"github.com/rentride/car-rental-api/config"
	"github.com/rentride/car-rental-api/mailer"
	"github.com/rentride/car-rental-api/records"
	"github.com/rentride/car-rental-api/rental"
	"github.com/rentride/car-rental-api/scheduler"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	if err := a.Initialize(); err != nil { //initialize record store and router
		log.Fatal(err)
	}

	var mail rental.Mailer
	if a.Config.SendgridKey != "" {
		mail = mailer.New(a.Config.SendgridKey, a.Config.FromEmail)
	}
	bookings := rental.NewBookingService(records.NewBookingRecords(a.DB), mail)
	listings := rental.NewListingService(records.NewListingRecords(a.DB))
	sched := scheduler.NewScheduler(bookings, listings, mail)
	sched.Start()
	defer sched.Stop()

	zap.S().Infow("car-rental-api is up and running",
		"port", a.Config.Port,
		"url", a.Config.BaseURL,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", a.Config.Port), a.Router))
}
