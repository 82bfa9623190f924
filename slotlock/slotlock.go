// Package slotlock serializes reservations per (restaurant, date, time) partition.
package slotlock

import (
	"context"
	"errors"
	"fmt"
)

// ErrTimeout is returned when the partition lock is not acquired before the context ends.
var ErrTimeout = errors.New("slotlock: timed out waiting for partition lock")

// Locker grants exclusive access to a partition key. Different keys never block each other.
// The returned release func is safe to call more than once.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// Key builds the partition key of a reservation slot.
func Key(restaurantID, date, time string) string {
	return fmt.Sprintf("%s:%s:%s", restaurantID, date, time)
}

func timeoutError(ctx context.Context) error {
	return fmt.Errorf("%w: %w", ErrTimeout, context.Cause(ctx))
}
