package controllers

import (
	"net/http"

	"hotel-reservation-backend/models"
	"hotel-reservation-backend/utils"

	"github.com/gin-gonic/gin"
)

// currentWorker pulls the authenticated worker AuthMiddleware stored on the
// context. A miss means the route was wired without the middleware.
func currentWorker(c *gin.Context) (*models.Worker, bool) {
	value, exists := c.Get(utils.ContextWorkerKey)
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Worker not found in context")
		return nil, false
	}
	worker, ok := value.(*models.Worker)
	if !ok {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid worker in context")
		return nil, false
	}
	return worker, true
}
