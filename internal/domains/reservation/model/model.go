package model

import (
	"time"

	"daawat/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID = "id"
)

// Reservation is a booking submission. Rows are create-only: the site never
// updates or deletes them, confirmation happens off-system. ReservationTime
// is one of the fixed bookable slots.
type Reservation struct {
	ID              string    `db:"id"`
	CustomerName    string    `db:"customer_name"`
	CustomerEmail   string    `db:"customer_email"`
	CustomerPhone   string    `db:"customer_phone"`
	PartySize       int       `db:"party_size"`
	ReservationDate time.Time `db:"reservation_date"`
	ReservationTime string    `db:"reservation_time"`
	SpecialRequests string    `db:"special_requests"`
	model.Metadata
}
