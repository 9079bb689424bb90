package model

import (
	"database/sql"

	"daawat/shared/model"
)

const (
	TableName  = "gallery_photos"
	EntityName = "gallery_photo"

	FieldID         = "id"
	FieldIsFeatured = "is_featured"
	FieldCreatedAt  = "created_at"
)

// GalleryPhoto is a customer photo. InstagramHandle is optional; captions
// are not translated.
type GalleryPhoto struct {
	ID              string         `db:"id"`
	ImageURL        string         `db:"image_url"`
	Caption         string         `db:"caption"`
	CustomerName    string         `db:"customer_name"`
	InstagramHandle sql.NullString `db:"instagram_handle"`
	IsFeatured      bool           `db:"is_featured"`
	model.Metadata
}
