// File: services/booking/service.go
package booking

import (
	"context"

	reservationRepo "scheduler/database/repository/reservation"
	"scheduler/models"

	"go.uber.org/zap"
)

// BookingService lists and creates reservations on the global hourly timeline.
type BookingService interface {
	ListReservations(ctx context.Context, date string) (models.ReservationMap, error)
	CreateReservation(ctx context.Context, req models.CreateReservationRequest) (*models.Reservation, error)
}

// ListCache stores list results keyed by target date and generation. Invalidate must
// change the generation of every date it names, so entries written under an older
// generation are never served again. Implementations must be safe for concurrent use.
type ListCache interface {
	Generation(ctx context.Context, date string) (string, error)
	Get(ctx context.Context, date, gen string) (models.ReservationMap, bool, error)
	Set(ctx context.Context, date, gen string, m models.ReservationMap) error
	Invalidate(ctx context.Context, dates ...string) error
	InvalidateAll(ctx context.Context) error
}

// DefaultBookingService implements BookingService. Cache is optional.
type DefaultBookingService struct {
	Repo   reservationRepo.ReservationRepository
	Cache  ListCache
	Logger *zap.Logger
}

func NewBookingService(repo reservationRepo.ReservationRepository, cache ListCache, logger *zap.Logger) *DefaultBookingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultBookingService{
		Repo:   repo,
		Cache:  cache,
		Logger: logger,
	}
}
