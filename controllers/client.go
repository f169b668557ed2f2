package controllers

import (
	"errors"
	"net/http"
	"time"

	"hotel-reservation-backend/models"
	"hotel-reservation-backend/services"
	"hotel-reservation-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClientController struct {
	Clients services.ClientStore
}

func NewClientController(clients services.ClientStore) *ClientController {
	return &ClientController{Clients: clients}
}

type CreateClientInput struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone" binding:"required"`
	Identification string `json:"identification" binding:"required"`
}

// CreateClient registers a client contact for the worker's hotel.
func (cc *ClientController) CreateClient(c *gin.Context) {
	worker, ok := currentWorker(c)
	if !ok {
		return
	}

	var input CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Client emails are unique across all hotels.
	if _, err := cc.Clients.ByEmail(input.Email); err == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Client already exists")
		return
	} else if !errors.Is(err, services.ErrClientNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	client := models.Client{
		ClientID:       uuid.New().String(),
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		Identification: input.Identification,
		HotelName:      worker.HotelName,
		CreatedBy:      worker.WorkerID,
		CreatedAt:      time.Now(),
	}

	if err := cc.Clients.Create(&client); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create client")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Client registered successfully",
		"client_id": client.ClientID,
	})
}

// GetClients lists the hotel's clients.
func (cc *ClientController) GetClients(c *gin.Context) {
	worker, ok := currentWorker(c)
	if !ok {
		return
	}

	clients, err := cc.Clients.ListByHotel(worker.HotelName)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}

	c.JSON(http.StatusOK, clients)
}
