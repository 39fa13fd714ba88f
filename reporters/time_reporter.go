package reporters

import (
	"bikeshare/domain/entities/trip"
	"fmt"
	"time"
)

const timeReporterType = "time-reporter"

// TimeReporter reports the most frequent times of travel: month, day of week and start hour
type TimeReporter struct{}

func NewTimeReporter() *TimeReporter {
	return &TimeReporter{}
}

func (tr *TimeReporter) GetType() string {
	return timeReporterType
}

func (tr *TimeReporter) GetTitle() string {
	return "Calculating The Most Frequent Times of Travel..."
}

func (tr *TimeReporter) Report(table *trip.Table) []string {
	return describeAll(
		[]trip.Column{
			table.Column(trip.MonthColumn),
			table.Column(trip.DayOfWeekColumn),
			table.Column(trip.HourColumn),
		},
		[]trip.Statistic{
			modeStatistic("Month", "Most Common Month", monthName),
			modeStatistic("Day of week", "Most Common Day of Week", textOf),
			modeStatistic("Start hour", "Most Common Start Hour", func(value trip.Value) string {
				return fmt.Sprintf("%d:00", int(value.Number))
			}),
		},
	)
}

// monthName returns the full name of the month number, e.g. 1 -> January
func monthName(value trip.Value) string {
	return time.Month(int(value.Number)).String()
}
