package dto

import (
	"daawat/internal/domains/menu/model"
	"daawat/shared/i18n"
)

// MenuItemResponse is a single dish localized to the request language.
type MenuItemResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       int      `json:"price"`
	ImageURL    string   `json:"image_url"`
	SpicyLevel  int      `json:"spicy_level"`
	IsVeg       bool     `json:"is_veg"`
	IsVegan     bool     `json:"is_vegan"`
	Allergens   []string `json:"allergens"`
	Calories    int      `json:"calories"`
}

func (r *MenuItemResponse) FromModel(mod model.MenuItem, lang i18n.Language) {
	r.ID = mod.ID
	r.Name = i18n.Resolve(lang, mod.Name, mod.NameHi)
	r.Description = i18n.Resolve(lang, mod.Description, mod.DescriptionHi)
	r.Category = mod.Category
	r.Price = mod.Price
	r.ImageURL = mod.ImageURL
	r.SpicyLevel = mod.SpicyLevel
	r.IsVeg = mod.IsVeg
	r.IsVegan = mod.IsVegan
	r.Allergens = mod.Allergens
	r.Calories = mod.Calories
}

type GetMenuResponse struct {
	Items []MenuItemResponse `json:"items"`
	Total int                `json:"total"`
}

func (r *GetMenuResponse) FromModels(models []model.MenuItem, lang i18n.Language) {
	r.Total = len(models)

	r.Items = make([]MenuItemResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod, lang)
	}
}
