package model

type User struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	Name         string `gorm:"size:50;not null" json:"name"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"size:16;not null" json:"role"`
	IsVerified   bool   `gorm:"not null" json:"isVerified"`
	Timestamps
}
