package models

import (
	"time"
)

type Room struct {
	RoomID        string    `gorm:"type:uuid;primaryKey" json:"room_id"`
	RoomNumber    string    `gorm:"not null" json:"room_number"`
	RoomType      string    `gorm:"not null" json:"room_type"`
	PricePerNight float64   `gorm:"type:decimal(10,2);not null" json:"price_per_night"`
	Capacity      int       `json:"capacity"`
	Description   string    `json:"description"`
	HotelName     string    `gorm:"index;not null" json:"hotel_name"`
	IsAvailable   bool      `gorm:"default:true" json:"is_available"`
	CreatedAt     time.Time `json:"created_at"`
}
