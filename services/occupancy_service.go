// services/occupancy_service.go
package services

import (
	"log"

	"github.com/robfig/cron/v3"
)

// OccupancyService logs a daily per-hotel occupancy summary. Reporting
// only; it never mutates inventory and sends nothing anywhere.
type OccupancyService struct {
	Workers      WorkerStore
	Rooms        RoomStore
	Reservations ReservationStore
}

func NewOccupancyService(workers WorkerStore, rooms RoomStore, reservations ReservationStore) *OccupancyService {
	return &OccupancyService{
		Workers:      workers,
		Rooms:        rooms,
		Reservations: reservations,
	}
}

func (s *OccupancyService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.LogDailyOccupancy)

	c.Start()
	log.Println("Occupancy scheduler started")
}

func (s *OccupancyService) LogDailyOccupancy() {
	hotels, err := s.Workers.Hotels()
	if err != nil {
		log.Printf("Failed to fetch hotels for occupancy report: %v", err)
		return
	}

	for _, hotel := range hotels {
		totalRooms, err := s.Rooms.CountByHotel(hotel)
		if err != nil {
			log.Printf("Hotel %s: failed to count rooms: %v", hotel, err)
			continue
		}
		availableRooms, err := s.Rooms.CountAvailable(hotel)
		if err != nil {
			log.Printf("Hotel %s: failed to count available rooms: %v", hotel, err)
			continue
		}
		activeReservations, err := s.Reservations.CountActive(hotel)
		if err != nil {
			log.Printf("Hotel %s: failed to count active reservations: %v", hotel, err)
			continue
		}

		log.Printf("[OCCUPANCY] %s | rooms: %d | available: %d | occupied: %d | active reservations: %d",
			hotel, totalRooms, availableRooms, totalRooms-availableRooms, activeReservations)
	}
}
