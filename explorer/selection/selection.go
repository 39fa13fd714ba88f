package selection

import (
	"bikeshare/domain/entities/filter"
	"bikeshare/reporters"
)

const (
	greeting      = "Hello! Let's explore some US bikeshare data!"
	cityQuestion  = "Would you like to see data for Chicago, New York City, or Washington?"
	monthQuestion = "Which month? All, January, February, March, April, May, or June?"
	dayQuestion   = "Which day of the week? All, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, or Sunday?"
)

// GetFilters asks the user for a city, a month and a day. Each question is repeated until the
// answer is valid
func GetFilters(prompter *Prompter) (filter.Filter, error) {
	if err := prompter.Println(greeting); err != nil {
		return filter.Filter{}, err
	}

	city, err := prompter.Choose(cityQuestion, filter.Cities())
	if err != nil {
		return filter.Filter{}, err
	}

	month, err := prompter.Choose(monthQuestion, filter.Months())
	if err != nil {
		return filter.Filter{}, err
	}

	day, err := prompter.Choose(dayQuestion, filter.Days())
	if err != nil {
		return filter.Filter{}, err
	}

	if err = prompter.Println(reporters.Rule()); err != nil {
		return filter.Filter{}, err
	}

	return filter.NewFilter(city, month, day)
}
