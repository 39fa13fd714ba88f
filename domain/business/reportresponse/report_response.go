package reportresponse

import (
	"bikeshare/domain/entities"
	"bikeshare/domain/entities/filter"
)

const (
	responseType = "report"
	sender       = "explorer"
)

// SectionResponse contains one section of a report
// + Reporter: type of the reporter that produced the section
// + Title: title of the section
// + Lines: statistics and notices of the section
// + ElapsedSeconds: time it took to compute the section
type SectionResponse struct {
	Reporter       string   `json:"reporter"`
	Title          string   `json:"title"`
	Lines          []string `json:"lines"`
	ElapsedSeconds float64  `json:"elapsed_seconds"`
}

// ReportResponse contains the full report generated for a filter
type ReportResponse struct {
	Metadata entities.Metadata `json:"metadata"`
	Filter   filter.Filter     `json:"filter"`
	Sections []SectionResponse `json:"sections"`
}

func NewReportResponse(tripFilter filter.Filter, trips int, sections []SectionResponse) *ReportResponse {
	metadata := entities.NewMetadata(tripFilter.City, responseType, sender, tripFilter.String(), trips)
	return &ReportResponse{
		Metadata: metadata,
		Filter:   tripFilter,
		Sections: sections,
	}
}

func (rr *ReportResponse) GetMetadata() entities.Metadata {
	return rr.Metadata
}

// GetRoutingKey returns the routing key of the report: <prefix>.<city>, spaces in the city are replaced by _
func (rr *ReportResponse) GetRoutingKey(prefix string) string {
	city := rr.Metadata.GetCity()
	key := make([]rune, 0, len(city))
	for _, r := range city {
		if r == ' ' {
			r = '_'
		}
		key = append(key, r)
	}
	if prefix == "" {
		return string(key)
	}
	return prefix + "." + string(key)
}
