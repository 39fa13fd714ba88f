package tripcounter

import (
	"bikeshare/domain/entities/trip"
	"sort"
)

// Frequency amount of trips that share a value
// + Value: the shared value, e.g. a station name or a month number
// + Counter: amount of trips with Value
type Frequency struct {
	Value   trip.Value `json:"value"`
	Counter int        `json:"counter"`
}

// TripCounter struct that counts the amount of trips for each value of a column.
// Ties are always broken by the natural ascending order of the values: numeric values are
// compared as numbers, the rest lexicographically
type TripCounter struct {
	frequencies map[string]*Frequency
}

func NewTripCounter() *TripCounter {
	return &TripCounter{
		frequencies: make(map[string]*Frequency),
	}
}

// NewTripCounterWithValues returns a TripCounter updated with every value
func NewTripCounterWithValues(values trip.Values) *TripCounter {
	tc := NewTripCounter()
	for idx := range values {
		tc.UpdateCounter(values[idx])
	}
	return tc
}

func (tc *TripCounter) UpdateCounter(value trip.Value) {
	frequency, ok := tc.frequencies[value.Text]
	if !ok {
		frequency = &Frequency{Value: value}
		tc.frequencies[value.Text] = frequency
	}
	frequency.Counter += 1
}

// Frequencies returns the frequency table ordered by descending count
func (tc *TripCounter) Frequencies() []Frequency {
	frequencies := make([]Frequency, 0, len(tc.frequencies))
	for _, frequency := range tc.frequencies {
		frequencies = append(frequencies, *frequency)
	}

	sort.Slice(frequencies, func(i, j int) bool {
		if frequencies[i].Counter != frequencies[j].Counter {
			return frequencies[i].Counter > frequencies[j].Counter
		}
		return Less(frequencies[i].Value, frequencies[j].Value)
	})
	return frequencies
}

// Mode returns the most frequent value. False is returned if nothing was counted
func (tc *TripCounter) Mode() (trip.Value, bool) {
	frequencies := tc.Frequencies()
	if len(frequencies) == 0 {
		return trip.Value{}, false
	}
	return frequencies[0].Value, true
}

// Bounds returns the lowest and the highest counted values. False is returned if nothing was counted
func (tc *TripCounter) Bounds() (trip.Value, trip.Value, bool) {
	if len(tc.frequencies) == 0 {
		return trip.Value{}, trip.Value{}, false
	}

	var lowest, highest trip.Value
	first := true
	for _, frequency := range tc.frequencies {
		if first || Less(frequency.Value, lowest) {
			lowest = frequency.Value
		}
		if first || Less(highest, frequency.Value) {
			highest = frequency.Value
		}
		first = false
	}
	return lowest, highest, true
}

// Less reports whether value1 goes before value2 in natural ascending order
func Less(value1 trip.Value, value2 trip.Value) bool {
	if value1.Numeric && value2.Numeric {
		return value1.Number < value2.Number
	}
	return value1.Text < value2.Text
}
