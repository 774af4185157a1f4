// Package scheduler runs the periodic background jobs: pickup reminders and
// nudges for listings that have sat in review too long.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/rentride/car-rental-api/models"
	"github.com/rentride/car-rental-api/rental"
)

const staleListingAge = 7 * 24 * time.Hour

// Scheduler handles periodic background jobs
type Scheduler struct {
	cron     *cron.Cron
	Bookings *rental.BookingService
	Listings *rental.ListingService
	Mail     rental.Mailer
}

// NewScheduler creates a new scheduler instance
func NewScheduler(bookings *rental.BookingService, listings *rental.ListingService, mail rental.Mailer) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(time.UTC)),
		Bookings: bookings,
		Listings: listings,
		Mail:     mail,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Send pickup reminders daily at 8 AM UTC
	_, err := s.cron.AddFunc("0 8 * * *", s.sendPickupReminders)
	if err != nil {
		zap.S().Errorw("failed to register pickup reminder job", "error", err)
	}

	// Nudge support about stale pending listings daily at 3 AM UTC
	_, err = s.cron.AddFunc("0 3 * * *", s.checkStaleListings)
	if err != nil {
		zap.S().Errorw("failed to register stale listing job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("Rental scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Rental scheduler stopped")
}

// sendPickupReminders emails customers whose confirmed pickup falls in the
// next 24 hours
func (s *Scheduler) sendPickupReminders() {
	if s.Mail == nil {
		zap.S().Debug("mailer not configured, skipping pickup reminders")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	upcoming, err := s.Bookings.UpcomingPickups(ctx, time.Now(), 24*time.Hour)
	if err != nil {
		zap.S().Errorw("failed to find upcoming pickups", "error", err)
		return
	}

	for _, b := range upcoming {
		body := fmt.Sprintf("Hi %s,\n\nA reminder that your rental of the %s starts %s at %s.\nBooking reference: %s\n\nSafe travels!",
			b.CustomerName, b.CarName, b.PickupDate, b.PickupTime, b.BookingID)
		if err := s.Mail.Send(ctx, b.CustomerEmail, "Pickup Reminder", body); err != nil {
			zap.S().Errorw("failed to send pickup reminder",
				"bookingId", b.BookingID, "error", err)
			continue
		}
		zap.S().Infow("pickup reminder sent", "bookingId", b.BookingID)
	}
}

// checkStaleListings emails owners whose listing has been pending for over a
// week so the review queue does not silently rot
func (s *Scheduler) checkStaleListings() {
	if s.Mail == nil {
		zap.S().Debug("mailer not configured, skipping stale listing check")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pending, err := s.Listings.Pending(ctx)
	if err != nil {
		zap.S().Errorw("failed to find pending listings", "error", err)
		return
	}

	cutoff := time.Now().Add(-staleListingAge)
	for _, l := range pending {
		createdAt, err := time.Parse(time.RFC3339, l.CreatedAt)
		if err != nil || createdAt.After(cutoff) {
			continue
		}
		if l.Status != models.ListingStatusPending {
			continue
		}
		body := fmt.Sprintf("Hi %s,\n\nYour listing for the %s %s is still in review. We have not forgotten it; a decision is coming shortly.",
			l.OwnerName, l.Brand, l.Model)
		if err := s.Mail.Send(ctx, l.OwnerEmail, "Your listing is still in review", body); err != nil {
			zap.S().Errorw("failed to send stale listing nudge", "id", l.ID, "error", err)
		}
	}
}
