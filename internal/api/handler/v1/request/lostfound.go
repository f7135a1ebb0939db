package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type ReportItemRequest struct {
	Type        string `json:"type" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Category    string `json:"category"`
}

func (req *ReportItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Type, validation.Required, validation.In("lost", "found")),
		validation.Field(&req.Title, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Description, validation.Length(0, 500)),
		validation.Field(&req.Location, validation.Length(0, 100)),
		validation.Field(&req.Category, validation.Length(0, 50)),
	)
}

type UpdateItemStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (req *UpdateItemStatusRequest) Validate() error {
	// Admins only decide the moderation outcome; closing goes through the
	// reporter-only endpoint.
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required, validation.In("OPEN", "REJECTED")),
	)
}
