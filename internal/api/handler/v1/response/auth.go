package response

import "github.com/nst-sdc/nst-events-sub001/internal/domain"

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}
