package dto

import (
	"fmt"

	"daawat/internal/domains/reservation/model"
	"daawat/shared/constant"
	"daawat/shared/timezone"

	"github.com/google/uuid"
)

// CreateReservationRequest is the booking form payload. Field rules mirror
// the form: everything but special requests is required, party size is 1-10
// and the time must be one of the bookable slots.
type CreateReservationRequest struct {
	CustomerName    string `json:"customer_name"    validate:"required,max=120"`
	CustomerEmail   string `json:"customer_email"   validate:"required,email"`
	CustomerPhone   string `json:"customer_phone"   validate:"required,min=7,max=20"`
	PartySize       int    `json:"party_size"       validate:"required,gte=1,lte=10"`
	ReservationDate string `json:"reservation_date" validate:"required,datetime=2006-01-02"`
	ReservationTime string `json:"reservation_time" validate:"required,timeslot"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=500"`
}

func (r *CreateReservationRequest) ToModel() (model.Reservation, error) {
	date, err := timezone.Parse(constant.DateOnlyFormat, r.ReservationDate)
	if err != nil {
		return model.Reservation{}, fmt.Errorf("failed to parse reservation date: %w", err)
	}

	res := model.Reservation{
		ID:              uuid.NewString(),
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		PartySize:       r.PartySize,
		ReservationDate: date,
		ReservationTime: r.ReservationTime,
		SpecialRequests: r.SpecialRequests,
	}

	now := timezone.Now()
	res.CreatedAt = now
	res.ModifiedAt = now

	return res, nil
}

// CreateReservationResponse confirms acceptance only. The row identifier is
// internal; the guest is contacted on the details they submitted.
type CreateReservationResponse struct {
	Message string `json:"message"`
}

// ReservationCreatedEvent is the payload published for back-office
// confirmation after a successful insert.
type ReservationCreatedEvent struct {
	ID              string `json:"id"`
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	PartySize       int    `json:"party_size"`
	ReservationDate string `json:"reservation_date"`
	ReservationTime string `json:"reservation_time"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

func (e *ReservationCreatedEvent) FromModel(mod model.Reservation) {
	e.ID = mod.ID
	e.CustomerName = mod.CustomerName
	e.CustomerEmail = mod.CustomerEmail
	e.CustomerPhone = mod.CustomerPhone
	e.PartySize = mod.PartySize
	e.ReservationDate = mod.ReservationDate.Format(constant.DateOnlyFormat)
	e.ReservationTime = mod.ReservationTime
	e.SpecialRequests = mod.SpecialRequests
}
