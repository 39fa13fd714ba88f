package filter

import (
	"bikeshare/utils"
	"fmt"
	"strings"
)

const (
	// All is the month/day value that disables the filter
	All = "all"

	chicago     = "chicago"
	newYorkCity = "new york city"
	washington  = "washington"
)

var (
	cities = []string{chicago, newYorkCity, washington}
	months = []string{All, "january", "february", "march", "april", "may", "june"}
	days   = []string{All, "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

	cityFiles = map[string]string{
		chicago:     "chicago.csv",
		newYorkCity: "new_york_city.csv",
		washington:  "washington.csv",
	}
)

// Filter struct with the choices made by the user
// + City: one of Cities()
// + Month: one of Months(), "all" disables the month filter
// + Day: one of Days(), "all" disables the day filter
type Filter struct {
	City  string `json:"city"`
	Month string `json:"month"`
	Day   string `json:"day"`
}

// NewFilter returns a Filter with the values lowercased. An error is returned if any value is
// not part of its enumeration
func NewFilter(city string, month string, day string) (Filter, error) {
	f := Filter{
		City:  strings.ToLower(city),
		Month: strings.ToLower(month),
		Day:   strings.ToLower(day),
	}

	if !utils.ContainsString(f.City, cities) {
		return Filter{}, fmt.Errorf("%w: %q", ErrInvalidCity, city)
	}
	if !utils.ContainsString(f.Month, months) {
		return Filter{}, fmt.Errorf("%w: %q", ErrInvalidMonth, month)
	}
	if !utils.ContainsString(f.Day, days) {
		return Filter{}, fmt.Errorf("%w: %q", ErrInvalidDay, day)
	}
	return f, nil
}

// Cities returns the valid city names
func Cities() []string {
	return append([]string(nil), cities...)
}

// Months returns the valid month values, "all" included
func Months() []string {
	return append([]string(nil), months...)
}

// Days returns the valid day values, "all" included
func Days() []string {
	return append([]string(nil), days...)
}

// CityFile returns the name of the .csv file of the given city
func CityFile(city string) (string, bool) {
	fileName, ok := cityFiles[city]
	return fileName, ok
}

// MonthNumber returns the month number of the filter (January=1 ... June=6). Returns 0 when all
// months are selected
func (f Filter) MonthNumber() int {
	for idx := range months {
		if months[idx] == f.Month && f.Month != All {
			return idx
		}
	}
	return 0
}

// DayName returns the day of the filter in title form (e.g. Monday). Returns an empty string
// when all days are selected
func (f Filter) DayName() string {
	if f.Day == All {
		return ""
	}
	return Title(f.Day)
}

// FilterByMonth returns true if the rows must be filtered by month
func (f Filter) FilterByMonth() bool {
	return f.Month != All
}

// FilterByDay returns true if the rows must be filtered by day of week
func (f Filter) FilterByDay() bool {
	return f.Day != All
}

func (f Filter) String() string {
	return fmt.Sprintf("city: %s, month: %s, day: %s", f.City, f.Month, f.Day)
}

// Title upper-cases the first letter of each word, e.g. new york city -> New York City
func Title(s string) string {
	words := strings.Fields(s)
	for idx, word := range words {
		words[idx] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
