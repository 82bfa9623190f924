package helper

import "dinebook/model"

var bookingTransitions = map[model.BookingStatus][]model.BookingStatus{
	model.BookingPending:   {model.BookingConfirmed, model.BookingCancelled, model.BookingCompleted},
	model.BookingConfirmed: {model.BookingCancelled, model.BookingCompleted},
}

// CanTransition reports whether a booking may move from one status to another.
// Cancelled and completed are terminal.
func CanTransition(from, to model.BookingStatus) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
