package service

import (
	"context"
	"errors"
	"log"

	"dinebook/constants"
	"dinebook/helper"
	"dinebook/model"
	"dinebook/repository"
)

// GetBooking returns a booking owned by customerID. Someone else's booking is reported as missing.
func (s *BookingService) GetBooking(ctx context.Context, bookingID, customerID string) (*model.Booking, error) {
	booking, err := s.ledger.FindForCustomer(ctx, bookingID, customerID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, newError(ErrNotFound, constants.BOOKING_NOT_FOUND)
	}
	if err != nil {
		return nil, internal(err)
	}
	return booking, nil
}

// CancelBooking releases a future booking's capacity. Cancelling twice fails without side effects.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID, customerID string) (*model.Booking, error) {
	booking, err := s.GetBooking(ctx, bookingID, customerID)
	if err != nil {
		return nil, err
	}
	if err := s.checkCancellable(booking); err != nil {
		return nil, err
	}

	n, err := s.ledger.CancelIfActive(ctx, booking.ID, customerID)
	if err != nil {
		return nil, transient(err)
	}
	if n == 0 {
		// Lost a race with another status change; report what it became.
		current, err := s.GetBooking(ctx, bookingID, customerID)
		if err != nil {
			return nil, err
		}
		if err := s.checkCancellable(current); err != nil {
			return nil, err
		}
		return nil, newError(ErrConflict, "Booking changed while cancelling, please retry")
	}

	booking.Status = model.BookingCancelled
	log.Printf("booking: cancelled %s restaurant=%s slot=%s %s", booking.ID, booking.RestaurantID, booking.Date, booking.Time)
	s.publishChange(ctx, booking)

	return booking, nil
}

func (s *BookingService) checkCancellable(booking *model.Booking) error {
	if booking.Status == model.BookingCancelled {
		return newError(ErrInvalidInput, constants.BOOKING_ALREADY_CANCELLED)
	}
	if !helper.CanTransition(booking.Status, model.BookingCancelled) {
		return newError(ErrInvalidInput, "Cannot cancel a %s booking", booking.Status)
	}

	start, err := booking.StartsAt(s.loc)
	if err != nil {
		return internal(err)
	}
	if start.Before(s.now()) {
		return newError(ErrInvalidInput, constants.CANNOT_CANCEL_PAST)
	}
	return nil
}

// ListBookings returns the customer's bookings newest first.
// An empty status or "all" disables the status filter.
func (s *BookingService) ListBookings(ctx context.Context, customerID string, filter model.BookingFilter) ([]model.Booking, error) {
	if err := helper.Validator.Struct(filter); err != nil {
		return nil, newError(ErrInvalidInput, "%s", helper.ValidationMessage(err))
	}
	if filter.DateFrom != "" && filter.DateTo != "" && filter.DateFrom > filter.DateTo {
		return nil, newError(ErrInvalidInput, "dateFrom must not be after dateTo")
	}

	query := repository.ListFilter{DateFrom: filter.DateFrom, DateTo: filter.DateTo}
	if filter.Status != "" && filter.Status != "all" {
		query.Status = model.BookingStatus(filter.Status)
	}

	bookings, err := s.ledger.ListByCustomer(ctx, customerID, query)
	if err != nil {
		return nil, internal(err)
	}
	return bookings, nil
}

func (s *BookingService) GetStats(ctx context.Context, customerID string) (model.BookingStats, error) {
	now := s.localNow()
	stats, err := s.ledger.Stats(ctx, customerID, now.Format(constants.DATE_LAYOUT), now.Format(constants.TIME_LAYOUT))
	if err != nil {
		return model.BookingStats{}, internal(err)
	}
	return stats, nil
}
