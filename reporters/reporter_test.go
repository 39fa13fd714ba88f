package reporters

import (
	"bikeshare/domain/entities/trip"
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTable(columns ...series.Series) *trip.Table {
	return trip.NewTable(dataframe.New(columns...))
}

func TestNewReportersOrder(t *testing.T) {
	var types []string
	for _, reporter := range NewReporters() {
		types = append(types, reporter.GetType())
	}
	assert.Equal(t, []string{timeReporterType, stationReporterType, durationReporterType, userReporterType}, types)
}

func TestTimeReporter(t *testing.T) {
	table := newTable(
		series.New([]int{1, 6, 6, 1, 3}, series.Int, trip.MonthColumn),
		series.New([]string{"Monday", "Sunday", "Sunday", "Friday", "NaN"}, series.String, trip.DayOfWeekColumn),
		series.New([]int{17, 8, 17, 9, 9}, series.Int, trip.HourColumn),
	)

	lines := NewTimeReporter().Report(table)
	assert.Equal(t, []string{
		"Most Common Month: January",
		"Most Common Day of Week: Sunday",
		"Most Common Start Hour: 9:00",
	}, lines)
}

func TestStationReporter(t *testing.T) {
	table := newTable(
		series.New([]string{"A", "A", "C"}, series.String, trip.StartStationColumn),
		series.New([]string{"B", "B", "D"}, series.String, trip.EndStationColumn),
	)

	lines := NewStationReporter().Report(table)
	assert.Equal(t, []string{
		"Most Commonly Used Start Station: A",
		"Most Commonly Used End Station: B",
		"Most Frequent Trip Combination: A to B",
	}, lines)
}

func TestStationReporterWithoutEndStation(t *testing.T) {
	table := newTable(
		series.New([]string{"A", "C", "C"}, series.String, trip.StartStationColumn),
	)

	lines := NewStationReporter().Report(table)
	assert.Equal(t, []string{
		"Most Commonly Used Start Station: C",
		"End Station data not available.",
		"Station data not available for trip combinations.",
	}, lines)
}

func TestDurationReporter(t *testing.T) {
	table := newTable(
		series.New([]float64{10, 20, 30}, series.Float, trip.DurationColumn),
	)

	lines := NewDurationReporter().Report(table)
	assert.Equal(t, []string{
		"Total Travel Time: 60.00 seconds",
		"Mean Travel Time: 20.00 seconds",
		"Trip Distance data not available.",
	}, lines)
}

func TestDurationReporterWithCoordinates(t *testing.T) {
	table := newTable(
		series.New([]float64{60, 120}, series.Float, trip.DurationColumn),
		series.New([]float64{41.0, 41.0}, series.Float, trip.StartLatitudeColumn),
		series.New([]float64{-87.0, -87.0}, series.Float, trip.StartLongitudeColumn),
		series.New([]float64{41.0, math.NaN()}, series.Float, trip.EndLatitudeColumn),
		series.New([]float64{-87.0, -87.0}, series.Float, trip.EndLongitudeColumn),
	)

	lines := NewDurationReporter().Report(table)
	require.Len(t, lines, 4)
	assert.Equal(t, "Total Travel Distance: 0.00 km", lines[2])
	assert.Equal(t, "Mean Travel Distance: 0.00 km", lines[3])
}

func TestUserReporter(t *testing.T) {
	table := newTable(
		series.New([]string{"Customer", "Subscriber", "Subscriber", "Subscriber"}, series.String, trip.UserTypeColumn),
		series.New([]string{"Female", "Male", "Male", "NaN"}, series.String, trip.GenderColumn),
		series.New([]float64{1990, 1985, 1990, 2000}, series.Float, trip.BirthYearColumn),
	)

	lines := NewUserReporter().Report(table)
	assert.Equal(t, []string{
		"Counts of User Types:",
		"  Subscriber  3",
		"  Customer    1",
		"Counts of Gender:",
		"  Male    2",
		"  Female  1",
		"Earliest Year of Birth: 1985",
		"Most Recent Year of Birth: 2000",
		"Most Common Year of Birth: 1990",
	}, lines)
}

func TestUserReporterBirthYearNotices(t *testing.T) {
	allMissing := newTable(
		series.New([]string{"Subscriber"}, series.String, trip.UserTypeColumn),
		series.New([]float64{math.NaN()}, series.Float, trip.BirthYearColumn),
	)
	lines := NewUserReporter().Report(allMissing)
	assert.Equal(t, "Gender data not available.", lines[2])
	assert.Equal(t, "Birth Year data available but all values are missing.", lines[3])

	absent := newTable(
		series.New([]string{"Subscriber"}, series.String, trip.UserTypeColumn),
	)
	lines = NewUserReporter().Report(absent)
	assert.Equal(t, "Birth Year data not available for this city.", lines[len(lines)-1])
}

func TestReportersOnEmptyTable(t *testing.T) {
	table := newTable(
		series.New([]int{}, series.Int, trip.MonthColumn),
		series.New([]string{}, series.String, trip.DayOfWeekColumn),
		series.New([]int{}, series.Int, trip.HourColumn),
		series.New([]string{}, series.String, trip.StartStationColumn),
		series.New([]string{}, series.String, trip.EndStationColumn),
		series.New([]float64{}, series.Float, trip.DurationColumn),
		series.New([]string{}, series.String, trip.UserTypeColumn),
		series.New([]float64{}, series.Float, trip.BirthYearColumn),
	)

	for _, reporter := range NewReporters() {
		var lines []string
		require.NotPanics(t, func() {
			lines = reporter.Report(table)
		}, reporter.GetType())
		for _, line := range lines {
			assert.True(t,
				strings.HasSuffix(line, "data available but all values are missing.") ||
					strings.HasSuffix(line, "not available.") ||
					strings.HasSuffix(line, "not available for trip combinations."),
				"%s: unexpected line %q", reporter.GetType(), line,
			)
		}
	}
}

func TestRunWritesSection(t *testing.T) {
	table := newTable(
		series.New([]float64{10, 20, 30}, series.Float, trip.DurationColumn),
	)

	var buffer bytes.Buffer
	section, err := Run(&buffer, NewDurationReporter(), table)
	require.NoError(t, err)

	assert.Equal(t, durationReporterType, section.Reporter)
	assert.GreaterOrEqual(t, section.Elapsed.Seconds(), 0.0)

	output := buffer.String()
	assert.True(t, strings.HasPrefix(output, "\nCalculating Trip Duration...\n\nTotal Travel Time: 60.00 seconds\n"))
	assert.Contains(t, output, "\nThis took ")
	assert.True(t, strings.HasSuffix(output, " seconds.\n"+strings.Repeat("-", 40)+"\n"))
	assert.Len(t, Rule(), 40)
}
