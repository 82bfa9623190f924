package service

import (
	"context"
	"errors"
	"strings"

	"dinebook/constants"
	"dinebook/model"
	"dinebook/repository"
)

// GetRestaurant resolves a bookable restaurant. Inactive restaurants are reported as missing.
func (s *BookingService) GetRestaurant(ctx context.Context, id string) (*model.Restaurant, error) {
	if strings.TrimSpace(id) == "" {
		return nil, newError(ErrInvalidInput, "restaurantId is required")
	}

	restaurant, err := s.restaurants.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) || (err == nil && !restaurant.IsActive) {
		return nil, newError(ErrNotFound, constants.RESTAURANT_NOT_FOUND)
	}
	if err != nil {
		return nil, internal(err)
	}
	return restaurant, nil
}

func (s *BookingService) GetUser(ctx context.Context, id string) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, newError(ErrNotFound, constants.USER_NOT_FOUND)
	}
	if err != nil {
		return nil, internal(err)
	}
	return user, nil
}
