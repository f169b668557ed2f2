package models

import (
	"time"
)

// Worker is a hotel staff account. Its HotelName is the tenant boundary
// for every other entity.
type Worker struct {
	WorkerID  string    `gorm:"type:uuid;primaryKey" json:"worker_id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // bcrypt hash, never returned in JSON
	Name      string    `gorm:"not null" json:"name"`
	Phone     string    `json:"phone"`
	HotelName string    `gorm:"index;not null" json:"hotel_name"`
	CreatedAt time.Time `json:"created_at"`
}
