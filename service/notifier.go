package service

import (
	"context"
	"log"
	"sync"
	"time"

	"dinebook/model"
)

// Dispatcher delivers confirmations in the background. Delivery is best effort:
// failures are logged and never reach the booking caller.
type Dispatcher struct {
	notifier Notifier
	timeout  time.Duration
	wg       sync.WaitGroup
}

func NewDispatcher(notifier Notifier, timeout time.Duration) *Dispatcher {
	return &Dispatcher{notifier: notifier, timeout: timeout}
}

func (d *Dispatcher) Dispatch(ctx context.Context, email string, details model.BookingDetails) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.Printf("notify: booking %s panicked: %v", details.BookingID, r)
			}
		}()

		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
		defer cancel()

		if err := d.notifier.SendBookingConfirmation(sendCtx, email, details); err != nil {
			log.Printf("notify: booking %s to %s: %v", details.BookingID, email, err)
		}
	}()
}

func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// LogNotifier writes confirmations to the log when no mail transport is configured.
type LogNotifier struct{}

func (LogNotifier) SendBookingConfirmation(_ context.Context, email string, details model.BookingDetails) error {
	log.Printf("notify: confirmation for %s: booking %s at %s on %s %s for %d",
		email, details.BookingID, details.RestaurantName, details.Date, details.Time, details.Guests)
	return nil
}
