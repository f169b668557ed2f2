package controllers

import (
	"net/http"

	"hotel-reservation-backend/services"
	"hotel-reservation-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Clients      services.ClientStore
	Rooms        services.RoomStore
	Reservations services.ReservationStore
}

func NewDashboardController(clients services.ClientStore, rooms services.RoomStore, reservations services.ReservationStore) *DashboardController {
	return &DashboardController{
		Clients:      clients,
		Rooms:        rooms,
		Reservations: reservations,
	}
}

// GetDashboardStats computes fresh counts for the worker's hotel on every
// call; nothing is cached.
func (dc *DashboardController) GetDashboardStats(c *gin.Context) {
	worker, ok := currentWorker(c)
	if !ok {
		return
	}
	hotelName := worker.HotelName

	totalClients, err := dc.Clients.CountByHotel(hotelName)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute stats")
		return
	}
	totalRooms, err := dc.Rooms.CountByHotel(hotelName)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute stats")
		return
	}
	availableRooms, err := dc.Rooms.CountAvailable(hotelName)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute stats")
		return
	}
	activeReservations, err := dc.Reservations.CountActive(hotelName)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute stats")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_clients":       totalClients,
		"total_rooms":         totalRooms,
		"available_rooms":     availableRooms,
		"occupied_rooms":      totalRooms - availableRooms,
		"active_reservations": activeReservations,
	})
}
