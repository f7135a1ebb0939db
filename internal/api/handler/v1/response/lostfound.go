package response

import (
	"time"

	"github.com/nst-sdc/nst-events-sub001/internal/domain"
)

// LostFoundItemResponse augments the stored item with the derived
// is_approved projection clients key off.
type LostFoundItemResponse struct {
	ID          uint      `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	IsApproved  bool      `json:"is_approved"`
	ReportedBy  uint      `json:"reported_by"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewLostFoundItem(item domain.LostFoundItem) LostFoundItemResponse {
	return LostFoundItemResponse{
		ID:          item.ID,
		Type:        string(item.Type),
		Title:       item.Title,
		Description: item.Description,
		Location:    item.Location,
		Category:    item.Category,
		Status:      string(item.Status),
		IsApproved:  item.IsApproved(),
		ReportedBy:  item.ReportedBy,
		CreatedAt:   item.CreatedAt,
	}
}

func NewLostFoundItems(items []domain.LostFoundItem) []LostFoundItemResponse {
	out := make([]LostFoundItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, NewLostFoundItem(item))
	}

	return out
}
