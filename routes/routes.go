package routes

import (
	"hotel-reservation-backend/config"
	"hotel-reservation-backend/controllers"
	"hotel-reservation-backend/services"
	"hotel-reservation-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(
	authController *controllers.AuthController,
	clientController *controllers.ClientController,
	roomController *controllers.RoomController,
	reservationController *controllers.ReservationController,
	dashboardController *controllers.DashboardController,
	workers services.WorkerStore,
) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	r.Use(config.PerformanceLogger())

	api := r.Group("/api")

	api.GET("/health", controllers.HealthCheck)

	workersGroup := api.Group("/workers")
	{
		workersGroup.POST("/register", authController.Register)
		workersGroup.POST("/login", authController.Login)

		workersGroup.GET("/profile", utils.AuthMiddleware(workers), authController.Profile)
	}

	authed := api.Group("")
	authed.Use(utils.AuthMiddleware(workers))
	{
		clients := authed.Group("/clients")
		{
			clients.POST("", clientController.CreateClient)
			clients.GET("", clientController.GetClients)
		}

		rooms := authed.Group("/rooms")
		{
			rooms.POST("", roomController.CreateRoom)
			rooms.GET("", roomController.GetRooms)
			rooms.GET("/available", roomController.GetAvailableRooms)
		}

		reservations := authed.Group("/reservations")
		{
			reservations.POST("", reservationController.CreateReservation)
			reservations.GET("", reservationController.GetReservations)
			reservations.DELETE("/:id", reservationController.CancelReservation)
		}

		authed.GET("/dashboard/stats", dashboardController.GetDashboardStats)
	}

	return r
}
