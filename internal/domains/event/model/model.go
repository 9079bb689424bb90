package model

import (
	"time"

	"daawat/shared/model"
)

const (
	TableName  = "events"
	EntityName = "event"

	FieldID        = "id"
	FieldEventDate = "event_date"
	FieldIsActive  = "is_active"
)

// Event is a ticketed dining event. PricePerPerson is in whole rupees.
type Event struct {
	ID             string    `db:"id"`
	Title          string    `db:"title"`
	TitleHi        string    `db:"title_hi"`
	Description    string    `db:"description"`
	DescriptionHi  string    `db:"description_hi"`
	EventDate      time.Time `db:"event_date"`
	PricePerPerson int       `db:"price_per_person"`
	MaxCapacity    int       `db:"max_capacity"`
	IsActive       bool      `db:"is_active"`
	model.Metadata
}
