package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateLevel(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{50, 1},
		{99, 1},
		{100, 2},
		{199, 2},
		{200, 3},
		{250, 3},
		{1000, 11},
		{-5, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CalculateLevel(tt.xp), "xp=%d", tt.xp)
	}
}
