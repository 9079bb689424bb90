package model

import (
	"time"

	"daawat/shared/model"
)

const (
	TableName  = "blog_posts"
	EntityName = "blog_post"

	FieldID          = "id"
	FieldPublishedAt = "published_at"
)

// BlogPost is a long-form story shown on the homepage, newest first.
type BlogPost struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	TitleHi     string    `db:"title_hi"`
	Content     string    `db:"content"`
	ContentHi   string    `db:"content_hi"`
	Author      string    `db:"author"`
	ImageURL    string    `db:"image_url"`
	PublishedAt time.Time `db:"published_at"`
	model.Metadata
}
