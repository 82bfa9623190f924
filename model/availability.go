package model

type TimeSlot struct {
	Time              string `json:"time"`
	Available         bool   `json:"available"`
	AvailableCapacity int    `json:"availableCapacity"`
	TotalCapacity     int    `json:"totalCapacity"`
}

type Availability struct {
	RestaurantID   string     `json:"restaurantId"`
	RestaurantName string     `json:"restaurantName"`
	Date           string     `json:"date"`
	DayOfWeek      string     `json:"dayOfWeek"`
	Closed         bool       `json:"closed"`
	Message        string     `json:"message,omitempty"`
	OpeningHours   *DayHours  `json:"openingHours,omitempty"`
	Slots          []TimeSlot `json:"slots"`
	TotalSlots     int        `json:"totalSlots"`
}

type AvailabilityQuery struct {
	RestaurantID string `query:"restaurantId" validate:"required"`
	Date         string `query:"date" validate:"required,bookingdate"`
}
