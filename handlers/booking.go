package handlers

import (
	"errors"
	"net/http"

	"scheduler/models"
	"scheduler/services/booking"
	"scheduler/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(service booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		Service: service,
		Logger:  logger,
	}
}

// ListReservations handles GET /booking/list/:date.
func (h *BookingHandler) ListReservations(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	date := c.Param("date")

	result, err := h.Service.ListReservations(c.Request.Context(), date)
	if err != nil {
		h.writeError(c, logger, err, zap.String("date", date))
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateReservation handles POST /booking.
func (h *BookingHandler) CreateReservation(c *gin.Context) {
	logger := getLogger(c, h.Logger)

	var req models.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, logger, http.StatusBadRequest, utils.ErrorResponse{
			Error:   "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	created, err := h.Service.CreateReservation(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, logger, err, zap.String("date", req.Date), zap.String("start_time", req.StartTime))
		return
	}

	logger.Info("reservation created",
		zap.String("date", created.Date),
		zap.String("start_time", created.StartTime),
	)
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Reservation created successfully",
		"reservation": created,
	})
}

func (h *BookingHandler) writeError(c *gin.Context, logger *zap.Logger, err error, fields ...zap.Field) {
	var be *booking.Error
	if !errors.As(err, &be) {
		be = &booking.Error{Kind: booking.KindInternal, Message: "Internal server error", Err: err}
	}

	status := http.StatusInternalServerError
	switch be.Kind {
	case booking.KindValidation:
		status = http.StatusBadRequest
	case booking.KindConflict:
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		logger.Error("booking request failed", append(fields, zap.Error(err))...)
		c.JSON(status, utils.ErrorResponse{Error: be.Message})
		return
	}
	utils.JSONError(c, logger.With(fields...), status, utils.ErrorResponse{
		Error:   be.Message,
		Missing: be.Missing,
	})
}
