package booking

import (
	"context"
	"errors"
	"time"

	reservationRepo "scheduler/database/repository/reservation"
	"scheduler/models"

	"go.uber.org/zap"
)

// CreateReservation validates req, checks the slot is free and stores it.
// The pre-check gives a clean conflict for the sequential case; the unique
// index turns a concurrent duplicate insert into the same conflict.
func (s *DefaultBookingService) CreateReservation(ctx context.Context, req models.CreateReservationRequest) (*models.Reservation, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	existing, err := s.Repo.FindExact(ctx, req.Date, req.StartTime)
	if err != nil {
		return nil, newInternalError(err)
	}
	if existing != nil {
		return nil, newConflictError(nil)
	}

	reservation := &models.Reservation{
		Date:      req.Date,
		StartTime: req.StartTime,
		Title:     req.Title,
		Content:   req.Content,
	}
	if err := s.Repo.Insert(ctx, reservation); err != nil {
		if errors.Is(err, reservationRepo.ErrDuplicateSlot) {
			s.Logger.Info("concurrent create lost the slot race",
				zap.String("date", req.Date),
				zap.String("startTime", req.StartTime),
			)
			return nil, newConflictError(err)
		}
		return nil, newInternalError(err)
	}

	s.invalidate(ctx, reservation.Date)
	return reservation, nil
}

func (s *DefaultBookingService) invalidate(ctx context.Context, date string) {
	if s.Cache == nil {
		return
	}
	var err error
	if day, perr := time.Parse(dateLayout, date); perr == nil {
		err = s.Cache.Invalidate(ctx, affectedTargets(day)...)
	} else {
		// Eight digits that are not a calendar day still sort into some lexical window.
		err = s.Cache.InvalidateAll(ctx)
	}
	if err != nil {
		s.Logger.Warn("list cache invalidation failed", zap.String("date", date), zap.Error(err))
	}
}
