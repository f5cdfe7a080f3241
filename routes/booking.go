package routes

import (
	"scheduler/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers the reservation list and create endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	booking := r.Group("/booking")
	{
		booking.GET("/list/:date", hb.ListReservationsHandler)
		booking.POST("", hb.CreateReservationHandler)
	}
}
