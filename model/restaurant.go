package model

import "github.com/jinzhu/copier"

// DayHours holds one day's opening window in 24-hour "HH:MM".
type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

type OpeningHours struct {
	Monday    *DayHours `json:"monday,omitempty"`
	Tuesday   *DayHours `json:"tuesday,omitempty"`
	Wednesday *DayHours `json:"wednesday,omitempty"`
	Thursday  *DayHours `json:"thursday,omitempty"`
	Friday    *DayHours `json:"friday,omitempty"`
	Saturday  *DayHours `json:"saturday,omitempty"`
	Sunday    *DayHours `json:"sunday,omitempty"`
}

type Restaurant struct {
	ID           string       `gorm:"primaryKey;size:36" json:"id"`
	Slug         string       `gorm:"size:120;uniqueIndex" json:"slug"`
	Name         string       `gorm:"size:100;not null" json:"name"`
	OwnerID      string       `gorm:"size:36;index" json:"ownerId"`
	Capacity     int          `gorm:"not null" json:"capacity"`
	OpeningHours OpeningHours `gorm:"type:text;serializer:json" json:"openingHours"`
	IsActive     bool         `gorm:"not null;index" json:"isActive"`
	Timestamps
}

type RestaurantResponse struct {
	ID           string       `json:"id"`
	Slug         string       `json:"slug"`
	Name         string       `json:"name"`
	Capacity     int          `json:"capacity"`
	OpeningHours OpeningHours `json:"openingHours"`
}

func NewRestaurantResponse(r *Restaurant) RestaurantResponse {
	var resp RestaurantResponse
	_ = copier.Copy(&resp, r)
	return resp
}
