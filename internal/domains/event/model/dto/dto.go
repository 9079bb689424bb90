package dto

import (
	"daawat/internal/domains/event/model"
	"daawat/shared/constant"
	"daawat/shared/i18n"
)

type EventResponse struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	EventDate      string `json:"event_date"`
	PricePerPerson int    `json:"price_per_person"`
	MaxCapacity    int    `json:"max_capacity"`
}

func (r *EventResponse) FromModel(mod model.Event, lang i18n.Language) {
	r.ID = mod.ID
	r.Title = i18n.Resolve(lang, mod.Title, mod.TitleHi)
	r.Description = i18n.Resolve(lang, mod.Description, mod.DescriptionHi)
	r.EventDate = mod.EventDate.Format(constant.DateOnlyFormat)
	r.PricePerPerson = mod.PricePerPerson
	r.MaxCapacity = mod.MaxCapacity
}

type GetEventsResponse struct {
	Events []EventResponse `json:"events"`
	Total  int             `json:"total"`
}

func (r *GetEventsResponse) FromModels(models []model.Event, lang i18n.Language) {
	r.Total = len(models)

	r.Events = make([]EventResponse, len(models))
	for i, mod := range models {
		r.Events[i].FromModel(mod, lang)
	}
}
