package reporters

import (
	"bikeshare/domain/business/distanceaccumulator"
	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/entities/trip"
	"fmt"

	"github.com/go-gota/gota/series"
)

const (
	durationReporterType = "duration-reporter"
	tripDistance         = "trip distance"
)

// DurationReporter reports total and mean trip duration. If the table has the coordinates of the
// stations it also reports total and mean trip distance
type DurationReporter struct{}

func NewDurationReporter() *DurationReporter {
	return &DurationReporter{}
}

func (dr *DurationReporter) GetType() string {
	return durationReporterType
}

func (dr *DurationReporter) GetTitle() string {
	return "Calculating Trip Duration..."
}

func (dr *DurationReporter) Report(table *trip.Table) []string {
	return describeAll(
		[]trip.Column{
			table.Column(trip.DurationColumn),
			tripDistances(table),
		},
		[]trip.Statistic{
			{
				Description: "Trip Duration",
				Compute: func(values trip.Values) []string {
					accumulator := durationaccumulator.NewDurationAccumulator()
					for _, duration := range values.Numbers() {
						accumulator.UpdateAccumulator(duration)
					}
					return []string{
						fmt.Sprintf("Total Travel Time: %.2f seconds", accumulator.TotalDuration),
						fmt.Sprintf("Mean Travel Time: %.2f seconds", accumulator.GetAverageDuration()),
					}
				},
			},
			{
				Description: "Trip Distance",
				Compute: func(values trip.Values) []string {
					accumulator := distanceaccumulator.NewDistanceAccumulator()
					for _, distance := range values.Numbers() {
						accumulator.UpdateAccumulator(distance)
					}
					return []string{
						fmt.Sprintf("Total Travel Distance: %.2f km", accumulator.TotalDistance),
						fmt.Sprintf("Mean Travel Distance: %.2f km", accumulator.GetAverageDistance()),
					}
				},
			},
		},
	)
}

// tripDistances returns a column with the distance in kilometers between the start and the end station of each trip
func tripDistances(table *trip.Table) trip.Column {
	return table.Combine(
		tripDistance,
		[]string{
			trip.StartLatitudeColumn,
			trip.StartLongitudeColumn,
			trip.EndLatitudeColumn,
			trip.EndLongitudeColumn,
		},
		func(row []series.Element) trip.Value {
			return trip.NumberValue(distanceaccumulator.CalculateDistance(
				row[0].Float(),
				row[1].Float(),
				row[2].Float(),
				row[3].Float(),
			))
		},
	)
}
