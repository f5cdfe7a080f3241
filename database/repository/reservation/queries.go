// File: database/repository/reservation/queries.go
package reservationRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"scheduler/models"
)

// FindInRange returns every reservation with dateLow <= date <= dateHigh.
// yyyyMMdd strings sort lexically in calendar order, so a string range is exact.
func (r *mongoReservationRepo) FindInRange(ctx context.Context, dateLow, dateHigh string) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"date": bson.M{
			"$gte": dateLow,
			"$lte": dateHigh,
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "startTime", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}
	defer cursor.Close(ctx)

	reservations := []models.Reservation{}
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("error decoding reservations: %w", err)
	}
	return reservations, nil
}

// FindExact returns the reservation holding the slot, or nil when the slot is free.
func (r *mongoReservationRepo) FindExact(ctx context.Context, date, startTime string) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"date": date, "startTime": startTime}
	var res models.Reservation
	err := r.coll.FindOne(ctx, filter).Decode(&res)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up slot %s/%s: %w", date, startTime, err)
	}
	return &res, nil
}
