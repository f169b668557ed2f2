package controllers

import (
	"net/http"
	"time"

	"hotel-reservation-backend/models"
	"hotel-reservation-backend/services"
	"hotel-reservation-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomController struct {
	Rooms services.RoomStore
}

func NewRoomController(rooms services.RoomStore) *RoomController {
	return &RoomController{Rooms: rooms}
}

type CreateRoomInput struct {
	RoomNumber    string  `json:"room_number" binding:"required"`
	RoomType      string  `json:"room_type" binding:"required"`
	PricePerNight float64 `json:"price_per_night" binding:"required"`
	Capacity      int     `json:"capacity" binding:"required"`
	Description   string  `json:"description"`
}

// CreateRoom adds a room to the worker's hotel; new rooms start available.
func (rc *RoomController) CreateRoom(c *gin.Context) {
	worker, ok := currentWorker(c)
	if !ok {
		return
	}

	var input CreateRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	room := models.Room{
		RoomID:        uuid.New().String(),
		RoomNumber:    input.RoomNumber,
		RoomType:      input.RoomType,
		PricePerNight: input.PricePerNight,
		Capacity:      input.Capacity,
		Description:   input.Description,
		HotelName:     worker.HotelName,
		IsAvailable:   true,
		CreatedAt:     time.Now(),
	}

	if err := rc.Rooms.Create(&room); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create room")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Room created successfully",
		"room_id": room.RoomID,
	})
}

// GetRooms lists all of the hotel's rooms.
func (rc *RoomController) GetRooms(c *gin.Context) {
	worker, ok := currentWorker(c)
	if !ok {
		return
	}

	rooms, err := rc.Rooms.ListByHotel(worker.HotelName)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve rooms")
		return
	}

	c.JSON(http.StatusOK, rooms)
}

// GetAvailableRooms lists only rooms open for booking.
func (rc *RoomController) GetAvailableRooms(c *gin.Context) {
	worker, ok := currentWorker(c)
	if !ok {
		return
	}

	rooms, err := rc.Rooms.ListAvailable(worker.HotelName)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve rooms")
		return
	}

	c.JSON(http.StatusOK, rooms)
}
