package models

import "time"

// Reservation is one booked hour on the global timeline.
type Reservation struct {
	ID        string    `bson:"_id,omitempty" json:"-"`
	Date      string    `bson:"date" json:"date"`            // yyyyMMdd
	StartTime string    `bson:"startTime" json:"start_time"` // hour, 1 or 2 digits, stored verbatim
	Title     string    `bson:"title" json:"title"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"createdAt,omitempty" json:"-"`
}

// CreateReservationRequest is the POST /booking body.
type CreateReservationRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	Title     string `json:"title"`
	Content   string `json:"content"`
}

// SlotDetail is the per-slot payload returned by the list endpoint.
type SlotDetail struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ReservationMap groups reservations as date -> startTime -> detail.
type ReservationMap map[string]map[string]SlotDetail
