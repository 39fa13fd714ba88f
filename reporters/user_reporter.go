package reporters

import (
	"bikeshare/domain/business/tripcounter"
	"bikeshare/domain/entities/trip"
	"fmt"
)

const userReporterType = "user-reporter"

// UserReporter reports counts of user types and genders, and birth year statistics
type UserReporter struct{}

func NewUserReporter() *UserReporter {
	return &UserReporter{}
}

func (ur *UserReporter) GetType() string {
	return userReporterType
}

func (ur *UserReporter) GetTitle() string {
	return "Calculating User Stats..."
}

func (ur *UserReporter) Report(table *trip.Table) []string {
	return describeAll(
		[]trip.Column{
			table.Column(trip.UserTypeColumn),
			table.Column(trip.GenderColumn),
			table.Column(trip.BirthYearColumn),
		},
		[]trip.Statistic{
			frequencyStatistic("User Type", "Counts of User Types"),
			frequencyStatistic("Gender", "Counts of Gender"),
			birthYearStatistic(),
		},
	)
}

// birthYearStatistic reports earliest, most recent and most common year of birth as whole numbers
func birthYearStatistic() trip.Statistic {
	return trip.Statistic{
		Description:  "Birth Year",
		AbsentNotice: "Birth Year data not available for this city.",
		EmptyNotice:  "Birth Year data available but all values are missing.",
		Compute: func(values trip.Values) []string {
			counter := tripcounter.NewTripCounterWithValues(values)
			earliest, mostRecent, _ := counter.Bounds()
			mostCommon, _ := counter.Mode()
			return []string{
				fmt.Sprintf("Earliest Year of Birth: %d", int(earliest.Number)),
				fmt.Sprintf("Most Recent Year of Birth: %d", int(mostRecent.Number)),
				fmt.Sprintf("Most Common Year of Birth: %d", int(mostCommon.Number)),
			}
		},
	}
}
