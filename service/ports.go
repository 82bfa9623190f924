package service

import (
	"context"
	"time"

	"dinebook/model"
	"dinebook/repository"
)

type RestaurantDirectory interface {
	FindByID(ctx context.Context, id string) (*model.Restaurant, error)
}

type UserDirectory interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
}

// Ledger is the persisted booking store, the only source of slot usage.
type Ledger interface {
	Reserve(ctx context.Context, booking *model.Booking, capacity int, lockTimeout time.Duration) error
	FindForCustomer(ctx context.Context, id, customerID string) (*model.Booking, error)
	ListByCustomer(ctx context.Context, customerID string, filter repository.ListFilter) ([]model.Booking, error)
	CancelIfActive(ctx context.Context, id, customerID string) (int64, error)
	SlotGuestTotals(ctx context.Context, restaurantID, date string) (map[string]int, error)
	Stats(ctx context.Context, customerID, today, clock string) (model.BookingStats, error)
	CompletePast(ctx context.Context, today string) (int64, error)
	PurgeSlotLocks(ctx context.Context, today string) (int64, error)
}

type Notifier interface {
	SendBookingConfirmation(ctx context.Context, email string, details model.BookingDetails) error
}
