package dto

import (
	"daawat/internal/domains/blog/model"
	"daawat/shared/constant"
	"daawat/shared/i18n"
)

type BlogPostResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Author      string `json:"author"`
	ImageURL    string `json:"image_url"`
	PublishedAt string `json:"published_at"`
}

func (r *BlogPostResponse) FromModel(mod model.BlogPost, lang i18n.Language) {
	r.ID = mod.ID
	r.Title = i18n.Resolve(lang, mod.Title, mod.TitleHi)
	r.Content = i18n.Resolve(lang, mod.Content, mod.ContentHi)
	r.Author = mod.Author
	r.ImageURL = mod.ImageURL
	r.PublishedAt = mod.PublishedAt.Format(constant.DateOnlyFormat)
}

type GetBlogPostsResponse struct {
	Posts []BlogPostResponse `json:"posts"`
	Total int                `json:"total"`
}

func (r *GetBlogPostsResponse) FromModels(models []model.BlogPost, lang i18n.Language) {
	r.Total = len(models)

	r.Posts = make([]BlogPostResponse, len(models))
	for i, mod := range models {
		r.Posts[i].FromModel(mod, lang)
	}
}
