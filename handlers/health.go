package handlers

import (
	"net/http"

	"scheduler/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves GET /api/health. The endpoint always answers 200 while the
// process is up; dependency state is reported alongside for operators.
func HealthHandler(monitor *utils.HealthMonitor) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := gin.H{"status": "ok", "message": "Scheduler booking API is running"}
		if monitor != nil {
			body["checks"] = monitor.Status()
		}
		c.JSON(http.StatusOK, body)
	}
}
