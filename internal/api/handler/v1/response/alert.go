package response

import "github.com/nst-sdc/nst-events-sub001/internal/domain"

type AlertCreatedResponse struct {
	Alert    domain.Alert `json:"alert"`
	Notified int          `json:"notified"`
}

type BroadcastResponse struct {
	Notified int `json:"notified"`
}
