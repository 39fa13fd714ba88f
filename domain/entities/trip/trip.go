package trip

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Columns of the city .csv files
const (
	StartTimeColumn      = "Start Time"
	EndTimeColumn        = "End Time"
	StartStationColumn   = "Start Station"
	EndStationColumn     = "End Station"
	DurationColumn       = "Trip Duration"
	UserTypeColumn       = "User Type"
	GenderColumn         = "Gender"
	BirthYearColumn      = "Birth Year"
	StartLatitudeColumn  = "Start Latitude"
	StartLongitudeColumn = "Start Longitude"
	EndLatitudeColumn    = "End Latitude"
	EndLongitudeColumn   = "End Longitude"
)

// Columns derived from StartTimeColumn after loading a file
const (
	MonthColumn     = "month"
	DayOfWeekColumn = "day_of_week"
	HourColumn      = "hour"
)

// NumericColumns returns the columns that are loaded as floats. Every other column is loaded as a string
func NumericColumns() []string {
	return []string{
		DurationColumn,
		BirthYearColumn,
		StartLatitudeColumn,
		StartLongitudeColumn,
		EndLatitudeColumn,
		EndLongitudeColumn,
	}
}

// Table trips of a city. Once created it is only read
type Table struct {
	frame dataframe.DataFrame
}

func NewTable(frame dataframe.DataFrame) *Table {
	return &Table{frame: frame}
}

// Len returns the amount of trips in the table
func (t *Table) Len() int {
	return t.frame.Nrow()
}

// Has returns true if the table contains a column with the given name
func (t *Table) Has(name string) bool {
	for _, columnName := range t.frame.Names() {
		if columnName == name {
			return true
		}
	}
	return false
}

// Frame returns the underlying dataframe
func (t *Table) Frame() dataframe.DataFrame {
	return t.frame
}

// Column returns the non-missing values of the column. See Column for the possible variants
func (t *Table) Column(name string) Column {
	if !t.Has(name) {
		return absentColumn{name: name}
	}

	s := t.frame.Col(name)
	numeric := s.Type() == series.Float || s.Type() == series.Int
	var values Values
	for idx := 0; idx < s.Len(); idx++ {
		element := s.Elem(idx)
		if element.IsNA() {
			continue
		}
		values = append(values, newValue(element, numeric))
	}

	return newColumn(name, values)
}

// Combine builds a column out of several columns, one value per row. Rows with a missing value
// in any of the columns are skipped. If any column is absent the result is absent too
func (t *Table) Combine(name string, columnNames []string, combine func(row []series.Element) Value) Column {
	columns := make([]series.Series, 0, len(columnNames))
	for _, columnName := range columnNames {
		if !t.Has(columnName) {
			return absentColumn{name: name}
		}
		columns = append(columns, t.frame.Col(columnName))
	}

	var values Values
	row := make([]series.Element, len(columns))
rows:
	for idx := 0; idx < t.Len(); idx++ {
		for colIdx := range columns {
			element := columns[colIdx].Elem(idx)
			if element.IsNA() {
				continue rows
			}
			row[colIdx] = element
		}
		values = append(values, combine(row))
	}

	return newColumn(name, values)
}

func newColumn(name string, values Values) Column {
	if len(values) == 0 {
		return emptyColumn{name: name}
	}
	return availableColumn{name: name, values: values}
}

func newValue(element series.Element, numeric bool) Value {
	if numeric {
		return NumberValue(element.Float())
	}
	return TextValue(element.String())
}
