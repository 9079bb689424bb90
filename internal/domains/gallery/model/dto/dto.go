package dto

import (
	"daawat/internal/domains/gallery/model"
)

type GalleryPhotoResponse struct {
	ID              string `json:"id"`
	ImageURL        string `json:"image_url"`
	Caption         string `json:"caption"`
	CustomerName    string `json:"customer_name"`
	InstagramHandle string `json:"instagram_handle,omitempty"`
}

func (r *GalleryPhotoResponse) FromModel(mod model.GalleryPhoto) {
	r.ID = mod.ID
	r.ImageURL = mod.ImageURL
	r.Caption = mod.Caption
	r.CustomerName = mod.CustomerName
	r.InstagramHandle = mod.InstagramHandle.String
}

type GetGalleryResponse struct {
	Photos []GalleryPhotoResponse `json:"photos"`
	Total  int                    `json:"total"`
}

func (r *GetGalleryResponse) FromModels(models []model.GalleryPhoto) {
	r.Total = len(models)

	r.Photos = make([]GalleryPhotoResponse, len(models))
	for i, mod := range models {
		r.Photos[i].FromModel(mod)
	}
}
