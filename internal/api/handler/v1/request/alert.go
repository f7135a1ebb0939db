package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type SendAlertRequest struct {
	Title       string `json:"title" binding:"required"`
	Message     string `json:"message" binding:"required"`
	IsEmergency bool   `json:"is_emergency"`
	Targets     string `json:"targets"`
}

func (req *SendAlertRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Message, validation.Required, validation.Length(1, 1000)),
		validation.Field(&req.Targets, validation.In("participants", "admins", "all")),
	)
}

type BroadcastRequest struct {
	Title   string `json:"title" binding:"required"`
	Message string `json:"message" binding:"required"`
	Targets string `json:"targets" binding:"required"`
}

func (req *BroadcastRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Message, validation.Required, validation.Length(1, 1000)),
		validation.Field(&req.Targets, validation.Required,
			validation.In("participants", "admins", "all")),
	)
}

type PushTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

func (req *PushTokenRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Token, validation.Required, validation.Length(1, 200)),
	)
}
