package trip

import (
	"fmt"
	"strconv"
)

// Value a non-missing cell of a column
// + Text: textual representation of the cell
// + Number: numeric value of the cell, only meaningful when Numeric is true
// + Numeric: true if the cell belongs to a numeric column
type Value struct {
	Text    string
	Number  float64
	Numeric bool
}

func TextValue(text string) Value {
	return Value{Text: text}
}

func NumberValue(number float64) Value {
	return Value{
		Text:    strconv.FormatFloat(number, 'f', -1, 64),
		Number:  number,
		Numeric: true,
	}
}

// Values non-missing values of a column in table order
type Values []Value

// Numbers returns the numeric value of each element
func (v Values) Numbers() []float64 {
	numbers := make([]float64, 0, len(v))
	for idx := range v {
		numbers = append(numbers, v[idx].Number)
	}
	return numbers
}

// Statistic something to report about a column
// + Description: subject used in the notices, e.g. "Start Station"
// + AbsentNotice: replaces the default notice printed when the column does not exist
// + EmptyNotice: replaces the default notice printed when the column has no values
// + Compute: produces the report lines. It is only called with at least one value
type Statistic struct {
	Description  string
	AbsentNotice string
	EmptyNotice  string
	Compute      func(values Values) []string
}

// Column optional column of a Table. There are three variants:
// + available: the column exists and has at least one value, the statistic is computed
// + empty: the column exists but every value is missing (or the table has no rows)
// + absent: the column does not exist in the table
type Column interface {
	Name() string
	Available() bool
	Describe(statistic Statistic) []string
}

type availableColumn struct {
	name   string
	values Values
}

func (c availableColumn) Name() string {
	return c.name
}

func (c availableColumn) Available() bool {
	return true
}

func (c availableColumn) Describe(statistic Statistic) []string {
	return statistic.Compute(c.values)
}

type emptyColumn struct {
	name string
}

func (c emptyColumn) Name() string {
	return c.name
}

func (c emptyColumn) Available() bool {
	return false
}

func (c emptyColumn) Describe(statistic Statistic) []string {
	if statistic.EmptyNotice != "" {
		return []string{statistic.EmptyNotice}
	}
	return []string{fmt.Sprintf("%s data available but all values are missing.", statistic.Description)}
}

type absentColumn struct {
	name string
}

func (c absentColumn) Name() string {
	return c.name
}

func (c absentColumn) Available() bool {
	return false
}

func (c absentColumn) Describe(statistic Statistic) []string {
	if statistic.AbsentNotice != "" {
		return []string{statistic.AbsentNotice}
	}
	return []string{fmt.Sprintf("%s data not available.", statistic.Description)}
}
