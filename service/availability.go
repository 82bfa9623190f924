package service

import (
	"context"

	"dinebook/helper"
	"dinebook/model"
)

// GetAvailability lists every slot of the restaurant's day with its remaining capacity.
// A closed day is not an error; it comes back with no slots and Closed set.
func (s *BookingService) GetAvailability(ctx context.Context, restaurantID, date string) (*model.Availability, error) {
	query := model.AvailabilityQuery{RestaurantID: restaurantID, Date: date}
	if err := helper.Validator.Struct(query); err != nil {
		return nil, newError(ErrInvalidInput, "%s", helper.ValidationMessage(err))
	}

	restaurant, err := s.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	day, err := helper.DayOfWeek(date)
	if err != nil {
		return nil, newError(ErrInvalidInput, "Invalid date format. Use YYYY-MM-DD")
	}

	result := &model.Availability{
		RestaurantID:   restaurant.ID,
		RestaurantName: restaurant.Name,
		Date:           date,
		DayOfWeek:      day,
		Slots:          []model.TimeSlot{},
	}

	hours := helper.GetOpeningHours(restaurant, day)
	if helper.IsClosed(hours) {
		result.Closed = true
		result.Message = closedMessage(day)
		return result, nil
	}
	result.OpeningHours = hours

	booked, err := s.ledger.SlotGuestTotals(ctx, restaurant.ID, date)
	if err != nil {
		return nil, internal(err)
	}

	for _, slot := range helper.GenerateTimeSlots(hours.Open, hours.Close) {
		remaining := restaurant.Capacity - booked[slot]
		result.Slots = append(result.Slots, model.TimeSlot{
			Time:              slot,
			Available:         remaining > 0,
			AvailableCapacity: remaining,
			TotalCapacity:     restaurant.Capacity,
		})
	}
	result.TotalSlots = len(result.Slots)

	return result, nil
}

func closedMessage(day string) string {
	return "Restaurant is closed on " + day
}
