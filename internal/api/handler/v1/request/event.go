package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
	StartsAt    string `json:"starts_at" binding:"required" format:"RFC3339"`
	EndsAt      string `json:"ends_at" binding:"required" format:"RFC3339"`
}

func (req *CreateEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Description, validation.Length(0, 500)),
		validation.Field(&req.Location, validation.Length(0, 100)),
		validation.Field(&req.StartsAt, validation.Required),
		validation.Field(&req.EndsAt, validation.Required),
	)
}

type UpdateEventStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (req *UpdateEventStatusRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required,
			validation.In("scheduled", "active", "completed", "cancelled")),
	)
}

type DeclareWinnerRequest struct {
	ParticipantID uint `json:"participant_id" binding:"required"`
}

func (req *DeclareWinnerRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ParticipantID, validation.Required, validation.Min(uint(1))),
	)
}
