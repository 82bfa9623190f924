package database

import (
	"errors"
	"log"

	"dinebook/constants"
	"dinebook/helper"
	"dinebook/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func hours(open, close string) *model.DayHours {
	return &model.DayHours{Open: open, Close: close}
}

// SeedData inserts demo accounts and restaurants. Running it again changes nothing.
func SeedData(db *gorm.DB) {
	hash, err := helper.HashPassword("123456dn")
	if err != nil {
		log.Println("seed: cannot hash password:", err)
		return
	}

	users := []model.User{
		{Name: "Demo Owner", Email: "owner@dinebook.com", Role: constants.ROLE_OWNER, IsVerified: true},
		{Name: "Demo Customer", Email: "customer@dinebook.com", Role: constants.ROLE_CUSTOMER, IsVerified: true},
	}
	for i := range users {
		user := &users[i]
		user.PasswordHash = hash
		if err := db.Where(model.User{Email: user.Email}).
			Attrs(model.User{ID: uuid.NewString()}).
			FirstOrCreate(user).Error; err != nil {
			log.Println("seed: failed to seed user:", user.Email, "error:", err)
		}
	}
	owner := users[0]

	weekdays := hours("11:00", "22:00")
	restaurants := []model.Restaurant{
		{
			Name:     "The Golden Fork",
			Capacity: 40,
			OpeningHours: model.OpeningHours{
				Monday:    weekdays,
				Tuesday:   weekdays,
				Wednesday: weekdays,
				Thursday:  weekdays,
				Friday:    hours("11:00", "23:00"),
				Saturday:  hours("10:00", "23:00"),
				Sunday:    hours("10:00", "21:00"),
			},
		},
		{
			Name:     "Little Saigon Kitchen",
			Capacity: 10,
			OpeningHours: model.OpeningHours{
				Tuesday:   hours("17:00", "22:00"),
				Wednesday: hours("17:00", "22:00"),
				Thursday:  hours("17:00", "22:00"),
				Friday:    hours("17:00", "23:30"),
				Saturday:  hours("12:00", "23:30"),
				// Closed on Sunday and Monday.
			},
		},
	}

	for i := range restaurants {
		restaurant := &restaurants[i]
		var existing model.Restaurant
		err := db.Where("name = ?", restaurant.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("seed: failed to look up restaurant:", restaurant.Name, "error:", err)
			continue
		}

		restaurant.ID = uuid.NewString()
		restaurant.OwnerID = owner.ID
		restaurant.IsActive = true
		if restaurant.Slug, err = helper.GenerateUniqueRestaurantSlug(db, restaurant.Name); err != nil {
			log.Println("seed: failed to generate slug:", restaurant.Name, "error:", err)
			continue
		}
		if err := db.Create(restaurant).Error; err != nil {
			log.Println("seed: failed to seed restaurant:", restaurant.Name, "error:", err)
		}
	}
	log.Println("seed: demo data ready")
}
