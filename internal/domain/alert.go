package domain

import "time"

// AlertTarget selects the push audience for a broadcast.
type AlertTarget string

const (
	TargetParticipants AlertTarget = "participants"
	TargetAdmins       AlertTarget = "admins"
	TargetAll          AlertTarget = "all"
)

func (t AlertTarget) Valid() bool {
	switch t {
	case TargetParticipants, TargetAdmins, TargetAll:
		return true
	}
	return false
}

// Alert is an append-only announcement. Rows are never updated or deleted.
type Alert struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	SenderRole  Role      `json:"sender_role"`
	IsEmergency bool      `json:"is_emergency"`
	CreatedAt   time.Time `json:"created_at"`
}
