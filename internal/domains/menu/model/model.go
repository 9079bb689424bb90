package model

import (
	"daawat/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "menu_items"
	EntityName = "menu_item"

	FieldID          = "id"
	FieldCategory    = "category"
	FieldIsAvailable = "is_available"
	FieldIsVeg       = "is_veg"
)

// Menu categories. CategoryAll is not stored; it is the filter passthrough
// accepted by the list endpoint.
const (
	CategoryAll        = "all"
	CategoryAppetizer  = "appetizer"
	CategoryMainCourse = "main_course"
	CategoryBreads     = "breads"
	CategoryDessert    = "dessert"
	CategoryBeverages  = "beverages"
)

// MenuItem is one dish row. The _hi columns hold the Hindi translations and
// may be empty; display fallback happens at the DTO boundary. Price is in
// whole rupees.
type MenuItem struct {
	ID            string         `db:"id"`
	Name          string         `db:"name"`
	NameHi        string         `db:"name_hi"`
	Description   string         `db:"description"`
	DescriptionHi string         `db:"description_hi"`
	Category      string         `db:"category"`
	Price         int            `db:"price"`
	ImageURL      string         `db:"image_url"`
	SpicyLevel    int            `db:"spicy_level"`
	IsVeg         bool           `db:"is_veg"`
	IsVegan       bool           `db:"is_vegan"`
	Allergens     pq.StringArray `db:"allergens"`
	Calories      int            `db:"calories"`
	IsAvailable   bool           `db:"is_available"`
	model.Metadata
}
