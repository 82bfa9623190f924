package model

import (
	"time"

	"dinebook/constants"

	"github.com/jinzhu/copier"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingPending   BookingStatus = "pending"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// ActiveStatuses are the statuses that consume slot capacity.
var ActiveStatuses = []BookingStatus{BookingConfirmed, BookingPending}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingConfirmed, BookingPending, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

func (s BookingStatus) IsActive() bool {
	return s == BookingConfirmed || s == BookingPending
}

type Booking struct {
	ID              string        `gorm:"primaryKey;size:36" json:"id"`
	CustomerID      string        `gorm:"size:36;not null;index:idx_bookings_customer_created,priority:1" json:"customerId"`
	RestaurantID    string        `gorm:"size:36;not null;index:idx_bookings_slot,priority:1" json:"restaurantId"`
	Date            string        `gorm:"column:slot_date;size:10;not null;index:idx_bookings_slot,priority:2" json:"date"`
	Time            string        `gorm:"column:slot_time;size:5;not null;index:idx_bookings_slot,priority:3" json:"time"`
	Guests          int           `gorm:"not null" json:"guests"`
	SpecialRequests *string       `gorm:"size:500" json:"specialRequests,omitempty"`
	Status          BookingStatus `gorm:"size:16;not null;index" json:"status"`
	CreatedAt       time.Time     `gorm:"index:idx_bookings_customer_created,priority:2" json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID" json:"-"`
}

// StartsAt interprets the booking's naive date and time as wall-clock time in loc.
func (b *Booking) StartsAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(constants.DATE_LAYOUT+" "+constants.TIME_LAYOUT, b.Date+" "+b.Time, loc)
}

// SlotLock is the per-partition row locked while capacity is checked and committed.
type SlotLock struct {
	RestaurantID string `gorm:"primaryKey;size:36"`
	Date         string `gorm:"column:slot_date;primaryKey;size:10"`
	Time         string `gorm:"column:slot_time;primaryKey;size:5"`
	CreatedAt    time.Time
}

type CreateBookingInput struct {
	CustomerID      string  `json:"-"`
	RestaurantID    string  `json:"restaurantId" validate:"required"`
	Date            string  `json:"date" validate:"required,bookingdate"`
	Time            string  `json:"time" validate:"required,clock"`
	Guests          int     `json:"guests" validate:"gte=1,lte=20"`
	SpecialRequests *string `json:"specialRequests" validate:"omitempty,max=500"`
}

type BookingFilter struct {
	Status   string `query:"status" validate:"omitempty,oneof=all confirmed pending cancelled completed"`
	DateFrom string `query:"dateFrom" validate:"omitempty,bookingdate"`
	DateTo   string `query:"dateTo" validate:"omitempty,bookingdate"`
}

type BookingResponse struct {
	ID              string        `json:"id"`
	CustomerID      string        `json:"customerId"`
	RestaurantID    string        `json:"restaurantId"`
	RestaurantName  string        `json:"restaurantName,omitempty"`
	Date            string        `json:"date"`
	Time            string        `json:"time"`
	Guests          int           `json:"guests"`
	SpecialRequests *string       `json:"specialRequests,omitempty"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

type BookingStats struct {
	TotalBookings     int64 `json:"totalBookings"`
	UpcomingBookings  int64 `json:"upcomingBookings"`
	CompletedBookings int64 `json:"completedBookings"`
	CancelledBookings int64 `json:"cancelledBookings"`
}

// BookingDetails is what the confirmation notification needs to render.
type BookingDetails struct {
	BookingID       string
	RestaurantName  string
	Date            string
	Time            string
	Guests          int
	SpecialRequests string
}

func NewBookingResponse(b *Booking) BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, b)
	if b.Restaurant != nil {
		resp.RestaurantName = b.Restaurant.Name
	}
	return resp
}

func NewBookingResponses(bookings []Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, NewBookingResponse(&bookings[i]))
	}
	return out
}
