package models

import (
	"time"
)

const (
	ReservationStatusActive    = "active"
	ReservationStatusCancelled = "cancelled"
)

// Reservation records a stay. Status only ever moves active -> cancelled;
// a cancelled reservation is terminal.
type Reservation struct {
	ReservationID string     `gorm:"type:uuid;primaryKey" json:"reservation_id"`
	ClientID      string     `gorm:"type:uuid;index;not null" json:"client_id"`
	RoomID        string     `gorm:"type:uuid;index;not null" json:"room_id"`
	CheckInDate   time.Time  `gorm:"not null" json:"check_in_date"`
	CheckOutDate  time.Time  `gorm:"not null" json:"check_out_date"`
	Guests        int        `json:"guests"`
	Nights        int        `gorm:"not null" json:"nights"`
	TotalPrice    float64    `gorm:"type:decimal(10,2);not null" json:"total_price"`
	Status        string     `gorm:"not null;default:'active'" json:"status"`
	HotelName     string     `gorm:"index;not null" json:"hotel_name"`
	CreatedBy     string     `gorm:"type:uuid" json:"created_by"`
	CreatedAt     time.Time  `json:"created_at"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
}
