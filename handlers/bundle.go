// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the endpoint handlers passed to routes.RegisterRoutes.
type HandlerBundle struct {
	// Booking endpoints
	ListReservationsHandler  gin.HandlerFunc
	CreateReservationHandler gin.HandlerFunc

	HealthHandler gin.HandlerFunc
}
