package response

import "github.com/nst-sdc/nst-events-sub001/internal/domain"

type ParticipantStatusResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Approved  bool   `json:"approved"`
	CheckedIn bool   `json:"checked_in"`
	XP        int    `json:"xp"`
	Level     int    `json:"level"`
}

func NewParticipantStatus(p domain.Participant) ParticipantStatusResponse {
	return ParticipantStatusResponse{
		ID:        p.ID,
		Name:      p.Name,
		Approved:  p.Approved,
		CheckedIn: p.CheckedIn,
		XP:        p.XP,
		Level:     p.Level,
	}
}

type QRResponse struct {
	Code string `json:"code"`
}

type CheckInResponse struct {
	Participant ParticipantStatusResponse `json:"participant"`
	Award       domain.XPResult           `json:"award"`
}
