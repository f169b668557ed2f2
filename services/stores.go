package services

import (
	"time"

	"hotel-reservation-backend/models"
)

// Store interfaces over the persistence collections. The GORM-backed
// services implement them for real; tests use in-memory fakes so the
// booking logic can be exercised without a database.

type WorkerStore interface {
	Create(worker *models.Worker) error
	ByEmail(email string) (*models.Worker, error)
	ByID(workerID string) (*models.Worker, error)
	// Hotels lists the distinct hotel names known to the system.
	Hotels() ([]string, error)
}

type ClientStore interface {
	Create(client *models.Client) error
	// ByEmail looks a client up across all hotels; client email uniqueness
	// is global.
	ByEmail(email string) (*models.Client, error)
	ByID(hotelName, clientID string) (*models.Client, error)
	ListByHotel(hotelName string) ([]models.Client, error)
	CountByHotel(hotelName string) (int64, error)
}

type RoomStore interface {
	Create(room *models.Room) error
	ByID(hotelName, roomID string) (*models.Room, error)
	ListByHotel(hotelName string) ([]models.Room, error)
	ListAvailable(hotelName string) ([]models.Room, error)
	// Hold atomically claims an available room, flipping is_available
	// false. It reports whether this caller won the claim.
	Hold(hotelName, roomID string) (bool, error)
	// Release marks the room available again.
	Release(hotelName, roomID string) error
	CountByHotel(hotelName string) (int64, error)
	CountAvailable(hotelName string) (int64, error)
}

type ReservationStore interface {
	Create(reservation *models.Reservation) error
	ByID(hotelName, reservationID string) (*models.Reservation, error)
	ListByHotel(hotelName string) ([]models.Reservation, error)
	MarkCancelled(reservationID string, at time.Time) error
	CountActive(hotelName string) (int64, error)
}
