package reportresponse

import (
	"bikeshare/domain/entities/filter"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReportResponse(t *testing.T) {
	tripFilter, err := filter.NewFilter("new york city", "may", "all")
	require.NoError(t, err)

	response := NewReportResponse(tripFilter, 12, []SectionResponse{
		{Reporter: "duration-reporter", Title: "Calculating Trip Duration...", Lines: []string{"Total Travel Time: 60.00 seconds"}},
	})

	metadata := response.GetMetadata()
	assert.Equal(t, "new york city", metadata.GetCity())
	assert.Equal(t, "report", metadata.Type)
	assert.Equal(t, "explorer", metadata.Sender)
	assert.Equal(t, "city: new york city, month: may, day: all", metadata.Description)
	assert.Equal(t, 12, metadata.Trips)
	assert.Equal(t, "bikeshare.reports.new_york_city", response.GetRoutingKey("bikeshare.reports"))
	assert.Equal(t, "new_york_city", response.GetRoutingKey(""))

	body, err := json.Marshal(response)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"month":"may"`)
	assert.Contains(t, string(body), `"reporter":"duration-reporter"`)
}
