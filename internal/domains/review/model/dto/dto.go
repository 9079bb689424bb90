package dto

import (
	"fmt"

	"daawat/internal/domains/review/model"
	gDto "daawat/shared/dto"
)

type ReviewResponse struct {
	ID           string `json:"id"`
	CustomerName string `json:"customer_name"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	Platform     string `json:"platform"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(mod model.Review) {
	r.ID = mod.ID
	r.CustomerName = mod.CustomerName
	r.Rating = mod.Rating
	r.Comment = mod.Comment
	r.Platform = mod.Platform
	r.Metadata.FromModel(mod.Metadata)
}

// GetReviewsResponse carries the featured testimonials plus their mean
// rating. AverageRating describes the fetched set only, not the full review
// population, so it is formatted for display rather than exposed as a number.
type GetReviewsResponse struct {
	Reviews       []ReviewResponse `json:"reviews"`
	AverageRating string           `json:"average_rating"`
	Total         int              `json:"total"`
}

func (r *GetReviewsResponse) FromModels(models []model.Review) {
	r.Total = len(models)
	r.AverageRating = AverageRating(models)

	r.Reviews = make([]ReviewResponse, len(models))
	for i, mod := range models {
		r.Reviews[i].FromModel(mod)
	}
}

// AverageRating renders the arithmetic mean of the given reviews' ratings to
// one decimal place, "0.0" when the set is empty.
func AverageRating(models []model.Review) string {
	if len(models) == 0 {
		return "0.0"
	}

	sum := 0
	for _, mod := range models {
		sum += mod.Rating
	}

	return fmt.Sprintf("%.1f", float64(sum)/float64(len(models)))
}
