package service

import (
	"context"
	"log"
	"time"
)

const maintenanceTimeout = time.Minute

// CompletePastBookings closes out confirmed bookings from earlier days.
func (s *BookingService) CompletePastBookings(ctx context.Context) (int64, error) {
	n, err := s.ledger.CompletePast(ctx, s.today())
	if err != nil {
		return 0, internal(err)
	}
	return n, nil
}

// PurgeSlotLocks drops partition rows of days that are over.
func (s *BookingService) PurgeSlotLocks(ctx context.Context) (int64, error) {
	n, err := s.ledger.PurgeSlotLocks(ctx, s.today())
	if err != nil {
		return 0, internal(err)
	}
	return n, nil
}

// CompletePastBookingsJob is the scheduler entry for CompletePastBookings.
func (s *BookingService) CompletePastBookingsJob() {
	ctx, cancel := context.WithTimeout(context.Background(), maintenanceTimeout)
	defer cancel()

	n, err := s.CompletePastBookings(ctx)
	if err != nil {
		log.Printf("cron: complete past bookings: %v", err)
		return
	}
	if n > 0 {
		log.Printf("cron: marked %d bookings completed", n)
	}
}

func (s *BookingService) PurgeSlotLocksJob() {
	ctx, cancel := context.WithTimeout(context.Background(), maintenanceTimeout)
	defer cancel()

	n, err := s.PurgeSlotLocks(ctx)
	if err != nil {
		log.Printf("cron: purge slot locks: %v", err)
		return
	}
	if n > 0 {
		log.Printf("cron: purged %d slot lock rows", n)
	}
}
