package repository

import (
	"context"

	"dinebook/helper"
	"dinebook/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RestaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

func (r *RestaurantRepository) FindByID(ctx context.Context, id string) (*model.Restaurant, error) {
	var restaurant model.Restaurant
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&restaurant).Error; err != nil {
		return nil, notFound(err)
	}
	return &restaurant, nil
}

// Create assigns an id and a unique slug derived from the name.
func (r *RestaurantRepository) Create(ctx context.Context, restaurant *model.Restaurant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if restaurant.ID == "" {
			restaurant.ID = uuid.NewString()
		}
		if restaurant.Slug == "" {
			slug, err := helper.GenerateUniqueRestaurantSlug(tx, restaurant.Name)
			if err != nil {
				return err
			}
			restaurant.Slug = slug
		}
		return tx.Create(restaurant).Error
	})
}
