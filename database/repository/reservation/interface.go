// File: database/repository/reservation/interface.go
package reservationRepo

import (
	"context"
	"errors"

	"scheduler/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateSlot is returned by Insert when the (date, startTime) unique index rejects the write.
var ErrDuplicateSlot = errors.New("reservation already exists for this slot")

type ReservationRepository interface {
	FindInRange(ctx context.Context, dateLow, dateHigh string) ([]models.Reservation, error)
	FindExact(ctx context.Context, date, startTime string) (*models.Reservation, error)
	Insert(ctx context.Context, r *models.Reservation) error
	EnsureIndexes(ctx context.Context) error
}

type mongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo constructs a ReservationRepository over the "reservations" collection.
func NewMongoReservationRepo(db *mongo.Database) ReservationRepository {
	return &mongoReservationRepo{
		coll: db.Collection("reservations"),
	}
}
