package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"dinebook/constants"
	"dinebook/helper"
	"dinebook/model"
	"dinebook/repository"
	"dinebook/slotlock"

	"golang.org/x/sync/errgroup"
)

// CreateBooking reserves capacity for a party and records a confirmed booking.
//
// Shape, directory and calendar checks all run before any lock is taken. The capacity
// check and the insert then run under the slot's partition lock inside one transaction,
// so concurrent requests for the same slot can never oversell it.
func (s *BookingService) CreateBooking(ctx context.Context, input model.CreateBookingInput) (*model.Booking, error) {
	if strings.TrimSpace(input.CustomerID) == "" {
		return nil, newError(ErrUnauthorized, constants.MISSING_TOKEN)
	}
	if err := helper.Validator.Struct(input); err != nil {
		return nil, newError(ErrInvalidInput, "%s", helper.ValidationMessage(err))
	}
	input.Time = helper.NormalizeClock(input.Time)

	var (
		restaurant *model.Restaurant
		customer   *model.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		restaurant, err = s.GetRestaurant(gctx, input.RestaurantID)
		return err
	})
	g.Go(func() error {
		var err error
		customer, err = s.GetUser(gctx, input.CustomerID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	day, err := helper.DayOfWeek(input.Date)
	if err != nil {
		return nil, newError(ErrInvalidInput, "Invalid date format. Use YYYY-MM-DD")
	}
	hours := helper.GetOpeningHours(restaurant, day)
	if helper.IsClosed(hours) {
		return nil, newError(ErrInvalidInput, "%s", closedMessage(day))
	}
	if !helper.IsTimeWithinHours(input.Time, hours.Open, hours.Close) {
		return nil, newError(ErrInvalidInput, "Requested time is outside restaurant hours (%s - %s)", hours.Open, hours.Close)
	}
	if !helper.IsSlotAligned(input.Time, hours.Open) {
		return nil, newError(ErrInvalidInput, "Requested time must fall on a %d-minute slot starting at %s", helper.SlotInterval, hours.Open)
	}

	booking := &model.Booking{
		CustomerID:      customer.ID,
		RestaurantID:    restaurant.ID,
		Date:            input.Date,
		Time:            input.Time,
		Guests:          input.Guests,
		SpecialRequests: trimRequests(input.SpecialRequests),
	}
	start, err := booking.StartsAt(s.loc)
	if err != nil {
		return nil, newError(ErrInvalidInput, "Invalid date or time")
	}
	if start.Before(s.now()) {
		return nil, newError(ErrInvalidInput, constants.CANNOT_BOOK_PAST)
	}

	if err := s.reserve(ctx, booking, restaurant.Capacity); err != nil {
		return nil, err
	}
	booking.Restaurant = restaurant

	log.Printf("booking: created %s restaurant=%s slot=%s %s guests=%d",
		booking.ID, booking.RestaurantID, booking.Date, booking.Time, booking.Guests)

	s.publishChange(ctx, booking)
	s.notifications.Dispatch(ctx, customer.Email, model.BookingDetails{
		BookingID:       booking.ID,
		RestaurantName:  restaurant.Name,
		Date:            booking.Date,
		Time:            booking.Time,
		Guests:          booking.Guests,
		SpecialRequests: derefString(booking.SpecialRequests),
	})

	return booking, nil
}

// reserve holds the slot's partition lock across the ledger's check-and-insert.
func (s *BookingService) reserve(ctx context.Context, booking *model.Booking, capacity int) error {
	key := slotlock.Key(booking.RestaurantID, booking.Date, booking.Time)

	lockCtx, cancel := context.WithTimeout(ctx, s.lockTimeout)
	release, err := s.locker.Acquire(lockCtx, key)
	cancel()
	if err != nil {
		log.Printf("booking: lock %s: %v", key, err)
		return transient(err)
	}
	defer release()

	err = s.ledger.Reserve(ctx, booking, capacity, s.lockTimeout)
	var capErr *repository.CapacityError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &capErr):
		return newError(ErrConflict, "This time slot is fully booked. Available capacity: %d, Requested: %d",
			max(capErr.Available, 0), capErr.Requested)
	default:
		log.Printf("booking: reserve %s: %v", key, err)
		return transient(err)
	}
}

func trimRequests(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func derefString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
