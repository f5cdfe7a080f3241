package booking

import (
	"context"

	"scheduler/models"

	"go.uber.org/zap"
)

// ListReservations returns every reservation within seven days either side of date,
// grouped as date -> startTime -> {title, content}.
func (s *DefaultBookingService) ListReservations(ctx context.Context, date string) (models.ReservationMap, error) {
	target, err := parseTargetDate(date)
	if err != nil {
		return nil, err
	}

	// The generation is read before the store so a create that lands in between
	// leaves this snapshot under a stale stamp.
	var gen string
	useCache := s.Cache != nil
	if useCache {
		if gen, err = s.Cache.Generation(ctx, date); err != nil {
			s.Logger.Warn("list cache generation read failed", zap.String("date", date), zap.Error(err))
			useCache = false
		}
	}
	if useCache {
		cached, ok, err := s.Cache.Get(ctx, date, gen)
		if err != nil {
			s.Logger.Warn("list cache read failed", zap.String("date", date), zap.Error(err))
		} else if ok {
			return cached, nil
		}
	}

	low, high := listWindow(target)
	reservations, err := s.Repo.FindInRange(ctx, low, high)
	if err != nil {
		return nil, newInternalError(err)
	}

	result := s.fold(reservations)

	if useCache {
		if err := s.Cache.Set(ctx, date, gen, result); err != nil {
			s.Logger.Warn("list cache write failed", zap.String("date", date), zap.Error(err))
		}
	}
	return result, nil
}

// fold groups reservations by date and start time. The unique slot index means
// duplicates should not exist; if one does, the later record wins and it is logged.
func (s *DefaultBookingService) fold(reservations []models.Reservation) models.ReservationMap {
	result := models.ReservationMap{}
	for _, r := range reservations {
		day, ok := result[r.Date]
		if !ok {
			day = map[string]models.SlotDetail{}
			result[r.Date] = day
		}
		if _, dup := day[r.StartTime]; dup {
			s.Logger.Warn("duplicate reservation for slot",
				zap.String("date", r.Date),
				zap.String("startTime", r.StartTime),
			)
		}
		day[r.StartTime] = models.SlotDetail{Title: r.Title, Content: r.Content}
	}
	return result
}
