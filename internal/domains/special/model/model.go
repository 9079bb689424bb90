package model

import (
	"daawat/shared/model"
)

const (
	TableName  = "chef_specials"
	EntityName = "chef_special"

	FieldID        = "id"
	FieldDayOfWeek = "day_of_week"
	FieldIsActive  = "is_active"
)

// ChefSpecial is the dish highlighted for one day of the week. day_of_week
// is numbered 0=Sunday through 6=Saturday; at most one active row exists per
// day (partial unique index in the schema).
type ChefSpecial struct {
	ID            string `db:"id"`
	DishName      string `db:"dish_name"`
	DishNameHi    string `db:"dish_name_hi"`
	Description   string `db:"description"`
	DescriptionHi string `db:"description_hi"`
	Price         int    `db:"price"`
	ImageURL      string `db:"image_url"`
	DayOfWeek     int    `db:"day_of_week"`
	IsActive      bool   `db:"is_active"`
	model.Metadata
}
