package selection

import (
	"bikeshare/domain/entities/filter"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFilters(t *testing.T) {
	var output bytes.Buffer
	prompter := NewPrompter(strings.NewReader("Chicago\nJune\n  FRIDAY \n"), &output)

	tripFilter, err := GetFilters(prompter)
	require.NoError(t, err)

	assert.Equal(t, filter.Filter{City: "chicago", Month: "june", Day: "friday"}, tripFilter)
	assert.Contains(t, output.String(), greeting)
	assert.Contains(t, output.String(), dayQuestion)
	assert.True(t, strings.HasSuffix(output.String(), strings.Repeat("-", 40)+"\n"))
}

func TestGetFiltersRepromptsUntilValid(t *testing.T) {
	var output bytes.Buffer
	input := "boston\n\nnyc\nnew york city\njuly\nall\nmon\nall\n"
	prompter := NewPrompter(strings.NewReader(input), &output)

	tripFilter, err := GetFilters(prompter)
	require.NoError(t, err)

	assert.Equal(t, filter.Filter{City: "new york city", Month: "all", Day: "all"}, tripFilter)
	assert.Equal(t, 4, strings.Count(output.String(), cityQuestion))
	assert.Equal(t, 2, strings.Count(output.String(), monthQuestion))
	assert.Equal(t, 2, strings.Count(output.String(), dayQuestion))
	assert.Contains(t, output.String(), "Invalid input. Please choose from chicago, new york city, washington.")
	assert.Contains(t, output.String(), "Invalid input. Please choose from all, january, february, march, april, may, june.")
}

func TestGetFiltersEndOfInput(t *testing.T) {
	prompter := NewPrompter(strings.NewReader("washington\nboston"), io.Discard)

	_, err := GetFilters(prompter)
	assert.ErrorIs(t, err, io.EOF)
}

func TestAsk(t *testing.T) {
	var output bytes.Buffer
	prompter := NewPrompter(strings.NewReader("yes\n"), &output)

	answer, err := prompter.Ask("Would you like to restart?")
	require.NoError(t, err)
	assert.Equal(t, "yes", answer)
	assert.Equal(t, "Would you like to restart?\n", output.String())

	_, err = prompter.Ask("again?")
	assert.ErrorIs(t, err, io.EOF)
}
