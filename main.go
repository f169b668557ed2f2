package main

import (
	"fmt"
	"log"
	"os"

	"hotel-reservation-backend/config"
	"hotel-reservation-backend/controllers"
	"hotel-reservation-backend/models"
	"hotel-reservation-backend/routes"
	"hotel-reservation-backend/services"
	"hotel-reservation-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Println("JWT_SECRET not set, generating an ephemeral secret; tokens won't survive restarts")
		os.Setenv("JWT_SECRET", utils.GenerateJWTSecret())
	}

	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Worker{},
		&models.Client{},
		&models.Room{},
		&models.Reservation{},
	)
}

func main() {
	workerService := services.NewWorkerService(config.DB)
	clientService := services.NewClientService(config.DB)
	roomService := services.NewRoomService(config.DB)
	reservationService := services.NewReservationService(config.DB)

	bookingService := services.NewBookingService(clientService, roomService, reservationService)
	occupancyService := services.NewOccupancyService(workerService, roomService, reservationService)
	occupancyService.StartScheduler()

	authController := controllers.NewAuthController(workerService, roomService)
	clientController := controllers.NewClientController(clientService)
	roomController := controllers.NewRoomController(roomService)
	reservationController := controllers.NewReservationController(bookingService)
	dashboardController := controllers.NewDashboardController(clientService, roomService, reservationService)

	r := routes.SetupRouter(
		authController,
		clientController,
		roomController,
		reservationController,
		dashboardController,
		workerService,
	)
	printRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
