package models

import (
	"time"
)

type Client struct {
	ClientID string `gorm:"type:uuid;primaryKey" json:"client_id"`
	Name     string `gorm:"not null" json:"name"`
	// Email uniqueness is global, not per hotel.
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	Phone          string    `json:"phone"`
	Identification string    `json:"identification"`
	HotelName      string    `gorm:"index;not null" json:"hotel_name"`
	CreatedBy      string    `gorm:"type:uuid" json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
}
