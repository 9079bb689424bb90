package model

import (
	"daawat/shared/model"
)

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID         = "id"
	FieldIsFeatured = "is_featured"
	FieldCreatedAt  = "created_at"
)

// Review source platforms.
const (
	PlatformGoogle  = "google"
	PlatformZomato  = "zomato"
	PlatformWebsite = "website"
)

// Review is a customer testimonial imported from an external platform or
// submitted on the website. Rating is a 1-5 integer.
type Review struct {
	ID           string `db:"id"`
	CustomerName string `db:"customer_name"`
	Rating       int    `db:"rating"`
	Comment      string `db:"comment"`
	Platform     string `db:"platform"`
	IsFeatured   bool   `db:"is_featured"`
	model.Metadata
}
