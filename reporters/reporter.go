package reporters

import (
	"bikeshare/domain/business/tripcounter"
	"bikeshare/domain/entities/trip"
	"fmt"
	"io"
	"strings"
	"time"
)

const ruleLength = 40

// Reporter computes statistics about a table of trips. Reporters only read the table
type Reporter interface {
	GetType() string
	GetTitle() string
	Report(table *trip.Table) []string
}

// Section the result of running a Reporter
// + Reporter: type of the reporter that produced the section
// + Title: title of the reporter
// + Lines: statistics and notices, in order
// + Elapsed: time it took to compute the statistics
type Section struct {
	Reporter string        `json:"reporter"`
	Title    string        `json:"title"`
	Lines    []string      `json:"lines"`
	Elapsed  time.Duration `json:"elapsed"`
}

// NewReporters returns the reporters in the order they must be run: time, station, duration, user
func NewReporters() []Reporter {
	return []Reporter{
		NewTimeReporter(),
		NewStationReporter(),
		NewDurationReporter(),
		NewUserReporter(),
	}
}

// Rule returns the line printed after each section of the report
func Rule() string {
	return strings.Repeat("-", ruleLength)
}

// Run runs the reporter over the table and writes the section to writer
func Run(writer io.Writer, reporter Reporter, table *trip.Table) (Section, error) {
	startTime := time.Now()
	lines := reporter.Report(table)
	section := Section{
		Reporter: reporter.GetType(),
		Title:    reporter.GetTitle(),
		Lines:    lines,
		Elapsed:  time.Since(startTime),
	}

	return section, WriteSection(writer, section)
}

// WriteSection writes a section with the following format:
//
//	<empty line>
//	Title
//	<empty line>
//	line 1
//	...
//	<empty line>
//	This took X.XX seconds.
//	----------------------------------------
func WriteSection(writer io.Writer, section Section) error {
	var sb strings.Builder
	sb.WriteString("\n" + section.Title + "\n\n")
	for _, line := range section.Lines {
		sb.WriteString(line + "\n")
	}
	sb.WriteString(fmt.Sprintf("\nThis took %.2f seconds.\n", section.Elapsed.Seconds()))
	sb.WriteString(Rule() + "\n")

	_, err := io.WriteString(writer, sb.String())
	return err
}

// describeAll describes each column with its statistic and joins the resulting lines
func describeAll(columns []trip.Column, statistics []trip.Statistic) []string {
	var lines []string
	for idx := range columns {
		lines = append(lines, columns[idx].Describe(statistics[idx])...)
	}
	return lines
}

// modeStatistic reports the most frequent value of a column as "label: value"
func modeStatistic(description string, label string, format func(value trip.Value) string) trip.Statistic {
	return trip.Statistic{
		Description: description,
		Compute: func(values trip.Values) []string {
			mode, _ := tripcounter.NewTripCounterWithValues(values).Mode()
			return []string{fmt.Sprintf("%s: %s", label, format(mode))}
		},
	}
}

// frequencyStatistic reports the frequency table of a column ordered by descending count
func frequencyStatistic(description string, label string) trip.Statistic {
	return trip.Statistic{
		Description: description,
		Compute: func(values trip.Values) []string {
			frequencies := tripcounter.NewTripCounterWithValues(values).Frequencies()
			width := 0
			for _, frequency := range frequencies {
				if len(frequency.Value.Text) > width {
					width = len(frequency.Value.Text)
				}
			}

			lines := []string{label + ":"}
			for _, frequency := range frequencies {
				lines = append(lines, fmt.Sprintf("  %-*s  %d", width, frequency.Value.Text, frequency.Counter))
			}
			return lines
		},
	}
}

func textOf(value trip.Value) string {
	return value.Text
}
