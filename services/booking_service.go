// services/booking_service.go
package services

import (
	"errors"
	"log"
	"time"

	"hotel-reservation-backend/models"
	"hotel-reservation-backend/utils"

	"github.com/google/uuid"
)

// BookingService holds the reservation lifecycle logic: create with pricing
// and room claim, cancel with room release, and the enriched listing. It
// only talks to the stores, so it works the same over GORM or in-memory
// fakes.
type BookingService struct {
	Clients      ClientStore
	Rooms        RoomStore
	Reservations ReservationStore
}

func NewBookingService(clients ClientStore, rooms RoomStore, reservations ReservationStore) *BookingService {
	return &BookingService{
		Clients:      clients,
		Rooms:        rooms,
		Reservations: reservations,
	}
}

// CreateReservationInput carries the validated request body.
type CreateReservationInput struct {
	ClientID     string `json:"client_id" binding:"required"`
	RoomID       string `json:"room_id" binding:"required"`
	CheckInDate  string `json:"check_in_date" binding:"required"`
	CheckOutDate string `json:"check_out_date" binding:"required"`
	Guests       int    `json:"guests" binding:"required"`
}

// ReservationDetail is a reservation enriched with denormalized client and
// room info for listings. Dates are rendered YYYY-MM-DD.
type ReservationDetail struct {
	ReservationID string     `json:"reservation_id"`
	ClientID      string     `json:"client_id"`
	RoomID        string     `json:"room_id"`
	CheckInDate   string     `json:"check_in_date"`
	CheckOutDate  string     `json:"check_out_date"`
	Guests        int        `json:"guests"`
	Nights        int        `json:"nights"`
	TotalPrice    float64    `json:"total_price"`
	Status        string     `json:"status"`
	HotelName     string     `json:"hotel_name"`
	CreatedBy     string     `json:"created_by"`
	CreatedAt     time.Time  `json:"created_at"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
	ClientName    string     `json:"client_name"`
	RoomNumber    string     `json:"room_number"`
}

// Placeholders for listings whose related records have gone missing.
const (
	unknownClientName = "Unknown client"
	unknownRoomNumber = "Unknown room"
)

// CreateReservation books a room for a client of the worker's hotel.
// The room is claimed with a conditional update, so of two concurrent
// requests for the same room exactly one succeeds.
func (s *BookingService) CreateReservation(hotelName, workerID string, input CreateReservationInput) (*models.Reservation, error) {
	if _, err := s.Clients.ByID(hotelName, input.ClientID); err != nil {
		return nil, err
	}

	room, err := s.Rooms.ByID(hotelName, input.RoomID)
	if err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			return nil, ErrRoomUnavailable
		}
		return nil, err
	}
	if !room.IsAvailable {
		return nil, ErrRoomUnavailable
	}

	checkIn, err := utils.ParseDate(input.CheckInDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	checkOut, err := utils.ParseDate(input.CheckOutDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	if !checkIn.Before(checkOut) {
		return nil, ErrInvalidDateRange
	}

	nights := utils.DaysBetween(checkIn, checkOut)
	totalPrice := float64(nights) * room.PricePerNight

	held, err := s.Rooms.Hold(hotelName, input.RoomID)
	if err != nil {
		return nil, err
	}
	if !held {
		// Someone else claimed the room between the read and the claim.
		return nil, ErrRoomUnavailable
	}

	reservation := &models.Reservation{
		ReservationID: uuid.New().String(),
		ClientID:      input.ClientID,
		RoomID:        input.RoomID,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		Guests:        input.Guests,
		Nights:        nights,
		TotalPrice:    totalPrice,
		Status:        models.ReservationStatusActive,
		HotelName:     hotelName,
		CreatedBy:     workerID,
		CreatedAt:     time.Now(),
	}

	if err := s.Reservations.Create(reservation); err != nil {
		// Give the claim back so the room isn't stranded unavailable.
		if relErr := s.Rooms.Release(hotelName, input.RoomID); relErr != nil {
			log.Printf("failed to release room %s after reservation insert error: %v", input.RoomID, relErr)
		}
		return nil, err
	}

	return reservation, nil
}

// CancelReservation moves an active reservation to its terminal cancelled
// state and frees the room. Cancelling twice is rejected.
func (s *BookingService) CancelReservation(hotelName, reservationID string) error {
	reservation, err := s.Reservations.ByID(hotelName, reservationID)
	if err != nil {
		return err
	}

	if reservation.Status == models.ReservationStatusCancelled {
		return ErrAlreadyCancelled
	}

	if err := s.Reservations.MarkCancelled(reservationID, time.Now()); err != nil {
		return err
	}

	if err := s.Rooms.Release(hotelName, reservation.RoomID); err != nil {
		log.Printf("failed to release room %s for cancelled reservation %s: %v",
			reservation.RoomID, reservationID, err)
	}

	return nil
}

// ListReservations returns the hotel's reservations enriched with client
// name and room number. Missing related records fall back to placeholders,
// never errors.
func (s *BookingService) ListReservations(hotelName string) ([]ReservationDetail, error) {
	reservations, err := s.Reservations.ListByHotel(hotelName)
	if err != nil {
		return nil, err
	}

	details := make([]ReservationDetail, 0, len(reservations))
	for _, r := range reservations {
		detail := ReservationDetail{
			ReservationID: r.ReservationID,
			ClientID:      r.ClientID,
			RoomID:        r.RoomID,
			CheckInDate:   r.CheckInDate.Format(utils.DateFormat),
			CheckOutDate:  r.CheckOutDate.Format(utils.DateFormat),
			Guests:        r.Guests,
			Nights:        r.Nights,
			TotalPrice:    r.TotalPrice,
			Status:        r.Status,
			HotelName:     r.HotelName,
			CreatedBy:     r.CreatedBy,
			CreatedAt:     r.CreatedAt,
			CancelledAt:   r.CancelledAt,
			ClientName:    unknownClientName,
			RoomNumber:    unknownRoomNumber,
		}

		if client, err := s.Clients.ByID(hotelName, r.ClientID); err == nil {
			detail.ClientName = client.Name
		}
		if room, err := s.Rooms.ByID(hotelName, r.RoomID); err == nil {
			detail.RoomNumber = room.RoomNumber
		}

		details = append(details, detail)
	}

	return details, nil
}
