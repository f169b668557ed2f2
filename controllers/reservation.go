package controllers

import (
	"errors"
	"net/http"

	"hotel-reservation-backend/services"
	"hotel-reservation-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	Bookings *services.BookingService
}

func NewReservationController(bookings *services.BookingService) *ReservationController {
	return &ReservationController{Bookings: bookings}
}

// CreateReservation books a room for a client.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	worker, ok := currentWorker(c)
	if !ok {
		return
	}

	var input services.CreateReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	reservation, err := rc.Bookings.CreateReservation(worker.HotelName, worker.WorkerID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrClientNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		case errors.Is(err, services.ErrRoomUnavailable):
			utils.RespondWithError(c, http.StatusNotFound, "Room not available")
		case errors.Is(err, services.ErrInvalidDateFormat):
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format")
		case errors.Is(err, services.ErrInvalidDateRange):
			utils.RespondWithError(c, http.StatusBadRequest, "Check-out date must be after check-in date")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create reservation")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":        "Reservation created successfully",
		"reservation_id": reservation.ReservationID,
		"total_price":    reservation.TotalPrice,
		"nights":         reservation.Nights,
	})
}

// GetReservations lists the hotel's reservations with client and room info.
func (rc *ReservationController) GetReservations(c *gin.Context) {
	worker, ok := currentWorker(c)
	if !ok {
		return
	}

	reservations, err := rc.Bookings.ListReservations(worker.HotelName)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reservations")
		return
	}

	c.JSON(http.StatusOK, reservations)
}

// CancelReservation moves a reservation to cancelled and frees its room.
func (rc *ReservationController) CancelReservation(c *gin.Context) {
	worker, ok := currentWorker(c)
	if !ok {
		return
	}

	reservationID := c.Param("id")

	if err := rc.Bookings.CancelReservation(worker.HotelName, reservationID); err != nil {
		switch {
		case errors.Is(err, services.ErrReservationNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Reservation not found")
		case errors.Is(err, services.ErrAlreadyCancelled):
			utils.RespondWithError(c, http.StatusBadRequest, "Reservation already cancelled")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to cancel reservation")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reservation cancelled successfully"})
}
