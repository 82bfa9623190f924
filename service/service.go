// Package service holds the booking availability and capacity-allocation rules.
package service

import (
	"context"
	"log"
	"time"

	"dinebook/constants"
	"dinebook/feed"
	"dinebook/model"
	"dinebook/slotlock"
)

type Options struct {
	// LockTimeout bounds the wait for a slot partition. Defaults to 5s.
	LockTimeout time.Duration
	// NotifyTimeout bounds one confirmation delivery. Defaults to 10s.
	NotifyTimeout time.Duration
	// Location interprets naive booking dates and times. Defaults to time.Local.
	Location *time.Location
	Now      func() time.Time
}

type BookingService struct {
	restaurants   RestaurantDirectory
	users         UserDirectory
	ledger        Ledger
	locker        slotlock.Locker
	feed          feed.Feed
	notifications *Dispatcher

	lockTimeout time.Duration
	loc         *time.Location
	now         func() time.Time
}

func NewBookingService(
	restaurants RestaurantDirectory,
	users UserDirectory,
	ledger Ledger,
	locker slotlock.Locker,
	changes feed.Feed,
	notifier Notifier,
	opts Options,
) *BookingService {
	if opts.LockTimeout <= 0 {
		opts.LockTimeout = 5 * time.Second
	}
	if opts.NotifyTimeout <= 0 {
		opts.NotifyTimeout = 10 * time.Second
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if locker == nil {
		locker = slotlock.NewMemoryLocker()
	}
	if changes == nil {
		changes = feed.NewMemoryFeed()
	}
	if notifier == nil {
		notifier = LogNotifier{}
	}

	return &BookingService{
		restaurants:   restaurants,
		users:         users,
		ledger:        ledger,
		locker:        locker,
		feed:          changes,
		notifications: NewDispatcher(notifier, opts.NotifyTimeout),
		lockTimeout:   opts.LockTimeout,
		loc:           opts.Location,
		now:           opts.Now,
	}
}

// Feed exposes the availability change feed to live subscribers.
func (s *BookingService) Feed() feed.Feed {
	return s.feed
}

// Wait blocks until in-flight notifications finish.
func (s *BookingService) Wait() {
	s.notifications.Wait()
}

func (s *BookingService) localNow() time.Time {
	return s.now().In(s.loc)
}

func (s *BookingService) today() string {
	return s.localNow().Format(constants.DATE_LAYOUT)
}

// publishChange signals live subscribers. The ledger is already committed, so failures are only logged.
func (s *BookingService) publishChange(ctx context.Context, b *model.Booking) {
	if err := s.feed.Publish(context.WithoutCancel(ctx), b.RestaurantID, b.Date); err != nil {
		log.Printf("feed: publish %s %s: %v", b.RestaurantID, b.Date, err)
	}
}
