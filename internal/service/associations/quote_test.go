package associations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteAmount(t *testing.T) {
	tests := []struct {
		name            string
		hourlyRate      float64
		durationMinutes int
		want            float64
	}{
		{"full hour", 1500.00, 60, 1500.00},
		{"half hour", 1500.00, 30, 750.00},
		{"ninety minutes", 20.00, 90, 30.00},
		{"rounds to two decimals", 100.00, 50, 83.33},
		{"zero duration", 1500.00, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, quoteAmount(tt.hourlyRate, tt.durationMinutes), 0.0001)
		})
	}
}
