package domain

import "time"

type User struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	PushToken string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Participant struct {
	User
	Approved    bool   `json:"approved"`
	CheckedIn   bool   `json:"checked_in"`
	XP          int    `json:"xp"`
	Level       int    `json:"level"`
	CheckInCode string `json:"-"` // opaque payload encoded into the participant's QR
}

type Volunteer struct {
	User
	EventID *uint  `json:"event_id"`
	Event   *Event `json:"event,omitempty"`
}

type Admin struct {
	User
}
