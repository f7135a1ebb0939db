package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from EventStatus
		to   EventStatus
		want bool
	}{
		{EventScheduled, EventActive, true},
		{EventScheduled, EventCancelled, true},
		{EventScheduled, EventCompleted, false},
		{EventActive, EventCompleted, true},
		{EventActive, EventCancelled, true},
		{EventActive, EventScheduled, false},
		{EventCompleted, EventActive, false},
		{EventCompleted, EventCancelled, false},
		{EventCancelled, EventActive, false},
		{EventCancelled, EventScheduled, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}
