// Package feed broadcasts "availability changed" signals per restaurant and date.
//
// Signals carry no payload. Subscribers re-read availability from the ledger when woken,
// and back-to-back signals may be coalesced into one.
package feed

import (
	"context"
	"fmt"
)

type Feed interface {
	Publish(ctx context.Context, restaurantID, date string) error
	// Subscribe returns a signal channel and a cancel func that closes it.
	Subscribe(ctx context.Context, restaurantID, date string) (<-chan struct{}, func(), error)
}

// Topic is the channel name for one restaurant day.
func Topic(restaurantID, date string) string {
	return fmt.Sprintf("availability:%s:%s", restaurantID, date)
}

func notify(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
