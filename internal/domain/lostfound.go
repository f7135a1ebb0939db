package domain

import "time"

type LostFoundType string

const (
	ItemLost  LostFoundType = "lost"
	ItemFound LostFoundType = "found"
)

func (t LostFoundType) Valid() bool {
	return t == ItemLost || t == ItemFound
}

type LostFoundStatus string

const (
	ItemPending  LostFoundStatus = "PENDING"
	ItemOpen     LostFoundStatus = "OPEN"
	ItemClosed   LostFoundStatus = "CLOSED"
	ItemRejected LostFoundStatus = "REJECTED"
)

type LostFoundItem struct {
	ID          uint            `json:"id"`
	Type        LostFoundType   `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	Category    string          `json:"category"`
	Status      LostFoundStatus `json:"status"`
	ReportedBy  uint            `json:"reported_by"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CanModerateTo covers the admin decision on a reported item. Only pending
// items can be opened or rejected; closing is a separate, reporter-only path.
func (i *LostFoundItem) CanModerateTo(next LostFoundStatus) bool {
	if i.Status != ItemPending {
		return false
	}
	return next == ItemOpen || next == ItemRejected
}

// CanClose reports whether the item is in a closable state. Pending items
// cannot be closed directly.
func (i *LostFoundItem) CanClose() bool {
	return i.Status == ItemOpen
}

// IsApproved is a derived projection for clients: anything past moderation
// that was not rejected.
func (i *LostFoundItem) IsApproved() bool {
	return i.Status != ItemPending && i.Status != ItemRejected
}
