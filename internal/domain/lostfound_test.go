package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLostFoundItem_CanModerateTo(t *testing.T) {
	pending := LostFoundItem{Status: ItemPending}

	assert.True(t, pending.CanModerateTo(ItemOpen))
	assert.True(t, pending.CanModerateTo(ItemRejected))
	assert.False(t, pending.CanModerateTo(ItemClosed))

	open := LostFoundItem{Status: ItemOpen}
	assert.False(t, open.CanModerateTo(ItemRejected))
	assert.False(t, open.CanModerateTo(ItemOpen))
}

func TestLostFoundItem_CanClose(t *testing.T) {
	assert.True(t, (&LostFoundItem{Status: ItemOpen}).CanClose())
	assert.False(t, (&LostFoundItem{Status: ItemPending}).CanClose())
	assert.False(t, (&LostFoundItem{Status: ItemClosed}).CanClose())
	assert.False(t, (&LostFoundItem{Status: ItemRejected}).CanClose())
}

func TestLostFoundItem_IsApproved(t *testing.T) {
	tests := []struct {
		status LostFoundStatus
		want   bool
	}{
		{ItemPending, false},
		{ItemRejected, false},
		{ItemOpen, true},
		{ItemClosed, true},
	}

	for _, tt := range tests {
		item := LostFoundItem{Status: tt.status}

		assert.Equal(t, tt.want, item.IsApproved(), "status=%s", tt.status)
	}
}
