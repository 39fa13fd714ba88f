package reporters

import (
	"bikeshare/domain/entities/trip"

	"github.com/go-gota/gota/series"
)

const (
	stationReporterType = "station-reporter"
	tripCombination     = "trip combination"
	pairSeparator       = " to "
)

// StationReporter reports the most popular start station, end station and trip
type StationReporter struct{}

func NewStationReporter() *StationReporter {
	return &StationReporter{}
}

func (sr *StationReporter) GetType() string {
	return stationReporterType
}

func (sr *StationReporter) GetTitle() string {
	return "Calculating The Most Popular Stations and Trip..."
}

func (sr *StationReporter) Report(table *trip.Table) []string {
	pairStatistic := modeStatistic("Trip combination", "Most Frequent Trip Combination", textOf)
	pairStatistic.AbsentNotice = "Station data not available for trip combinations."

	return describeAll(
		[]trip.Column{
			table.Column(trip.StartStationColumn),
			table.Column(trip.EndStationColumn),
			stationPairs(table),
		},
		[]trip.Statistic{
			modeStatistic("Start Station", "Most Commonly Used Start Station", textOf),
			modeStatistic("End Station", "Most Commonly Used End Station", textOf),
			pairStatistic,
		},
	)
}

// stationPairs returns a column with "<start> to <end>" for each trip
func stationPairs(table *trip.Table) trip.Column {
	return table.Combine(
		tripCombination,
		[]string{trip.StartStationColumn, trip.EndStationColumn},
		func(row []series.Element) trip.Value {
			return trip.TextValue(row[0].String() + pairSeparator + row[1].String())
		},
	)
}
