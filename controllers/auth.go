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

type AuthController struct {
	Workers services.WorkerStore
	Rooms   services.RoomStore
}

func NewAuthController(workers services.WorkerStore, rooms services.RoomStore) *AuthController {
	return &AuthController{Workers: workers, Rooms: rooms}
}

type RegisterInput struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	HotelName string `json:"hotel_name" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a worker account and seeds the hotel's default rooms.
func (ac *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Check if worker already exists
	if _, err := ac.Workers.ByEmail(input.Email); err == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Worker already exists")
		return
	} else if !errors.Is(err, services.ErrWorkerNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	worker := models.Worker{
		WorkerID:  uuid.New().String(),
		Email:     input.Email,
		Password:  hashed,
		Name:      input.Name,
		Phone:     input.Phone,
		HotelName: input.HotelName,
		CreatedAt: time.Now(),
	}

	if err := ac.Workers.Create(&worker); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create worker")
		return
	}

	// Every new hotel starts with the default room inventory.
	if err := services.SeedDefaultRooms(ac.Rooms, worker.HotelName); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create default rooms")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Worker registered successfully",
		"worker_id": worker.WorkerID,
	})
}

// Login checks credentials and issues a 7-day session token.
func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	worker, err := ac.Workers.ByEmail(input.Email)
	if err != nil {
		if errors.Is(err, services.ErrWorkerNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, worker.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(worker.WorkerID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"worker": gin.H{
			"worker_id":  worker.WorkerID,
			"name":       worker.Name,
			"email":      worker.Email,
			"hotel_name": worker.HotelName,
		},
	})
}

// Profile returns the authenticated worker.
func (ac *AuthController) Profile(c *gin.Context) {
	worker, ok := currentWorker(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"worker_id":  worker.WorkerID,
		"name":       worker.Name,
		"email":      worker.Email,
		"hotel_name": worker.HotelName,
	})
}
