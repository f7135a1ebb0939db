package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type SubmitFeedbackRequest struct {
	EventID uint   `json:"event_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func (req *SubmitFeedbackRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.Rating, validation.Required, validation.Min(1), validation.Max(5)),
		validation.Field(&req.Comment, validation.Length(0, 500)),
	)
}

type ScanRequest struct {
	Code string `json:"code" binding:"required"`
}

func (req *ScanRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Code, validation.Required, validation.Length(1, 100)),
	)
}
