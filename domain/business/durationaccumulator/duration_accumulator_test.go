package durationaccumulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDurationAccumulator(t *testing.T) {
	da := NewDurationAccumulator()
	for _, duration := range []float64{10, 20, 30} {
		da.UpdateAccumulator(duration)
	}

	assert.Equal(t, 3, da.Counter)
	assert.InDelta(t, 60.0, da.TotalDuration, 1e-9)
	assert.InDelta(t, 20.0, da.GetAverageDuration(), 1e-9)
}

func TestAverageWithoutDataPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewDurationAccumulator().GetAverageDuration()
	})
}
