package tripcounter

import (
	"bikeshare/domain/entities/trip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(values ...string) trip.Values {
	var result trip.Values
	for _, value := range values {
		result = append(result, trip.TextValue(value))
	}
	return result
}

func numbers(values ...float64) trip.Values {
	var result trip.Values
	for _, value := range values {
		result = append(result, trip.NumberValue(value))
	}
	return result
}

func TestModeOfYears(t *testing.T) {
	tc := NewTripCounterWithValues(numbers(1990, 1985, 1990, 2000))

	mode, ok := tc.Mode()
	require.True(t, ok)
	assert.Equal(t, 1990.0, mode.Number)

	lowest, highest, ok := tc.Bounds()
	require.True(t, ok)
	assert.Equal(t, 1985.0, lowest.Number)
	assert.Equal(t, 2000.0, highest.Number)
}

func TestModeTieIsBrokenByAscendingOrder(t *testing.T) {
	tc := NewTripCounterWithValues(texts("Sunday", "Monday", "Sunday", "Monday", "Friday"))
	mode, ok := tc.Mode()
	require.True(t, ok)
	assert.Equal(t, "Monday", mode.Text)

	// 9 < 10 numerically even though "10" < "9" lexicographically
	hours := NewTripCounterWithValues(numbers(10, 9, 10, 9))
	mode, ok = hours.Mode()
	require.True(t, ok)
	assert.Equal(t, 9.0, mode.Number)
}

func TestFrequenciesOrderedByDescendingCount(t *testing.T) {
	tc := NewTripCounterWithValues(texts("Customer", "Subscriber", "Subscriber", "Dependent", "Subscriber", "Customer"))

	frequencies := tc.Frequencies()
	require.Len(t, frequencies, 3)
	assert.Equal(t, "Subscriber", frequencies[0].Value.Text)
	assert.Equal(t, 3, frequencies[0].Counter)
	assert.Equal(t, "Customer", frequencies[1].Value.Text)
	assert.Equal(t, 2, frequencies[1].Counter)
	assert.Equal(t, "Dependent", frequencies[2].Value.Text)
	assert.Equal(t, 1, frequencies[2].Counter)
	for idx := 1; idx < len(frequencies); idx++ {
		assert.GreaterOrEqual(t, frequencies[idx-1].Counter, frequencies[idx].Counter)
	}
}

func TestEmptyCounter(t *testing.T) {
	tc := NewTripCounter()

	_, ok := tc.Mode()
	assert.False(t, ok)
	_, _, ok = tc.Bounds()
	assert.False(t, ok)
	assert.Empty(t, tc.Frequencies())
}
