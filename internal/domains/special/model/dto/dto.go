package dto

import (
	"daawat/internal/domains/special/model"
	"daawat/shared/i18n"
)

type ChefSpecialResponse struct {
	ID          string `json:"id"`
	DishName    string `json:"dish_name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	ImageURL    string `json:"image_url"`
	DayOfWeek   int    `json:"day_of_week"`
	DayName     string `json:"day_name"`
}

var dayNames = [7][2]string{
	{"Sunday", "रविवार"},
	{"Monday", "सोमवार"},
	{"Tuesday", "मंगलवार"},
	{"Wednesday", "बुधवार"},
	{"Thursday", "गुरुवार"},
	{"Friday", "शुक्रवार"},
	{"Saturday", "शनिवार"},
}

func (r *ChefSpecialResponse) FromModel(mod model.ChefSpecial, lang i18n.Language) {
	r.ID = mod.ID
	r.DishName = i18n.Resolve(lang, mod.DishName, mod.DishNameHi)
	r.Description = i18n.Resolve(lang, mod.Description, mod.DescriptionHi)
	r.Price = mod.Price
	r.ImageURL = mod.ImageURL
	r.DayOfWeek = mod.DayOfWeek

	if mod.DayOfWeek >= 0 && mod.DayOfWeek < len(dayNames) {
		names := dayNames[mod.DayOfWeek]
		r.DayName = i18n.T(lang, names[0], names[1])
	}
}
