package entities

// Metadata describes a report message published by the explorer
// + City: city whose trips were reported
// + Type: kind of message, e.g. "report"
// + Sender: component that built the message
// + Description: human readable summary of the filter applied to the trips
// + Trips: amount of trips left after filtering, the statistics were computed over them
type Metadata struct {
	City        string `json:"city"`
	Type        string `json:"type"`
	Sender      string `json:"sender"`
	Description string `json:"description"`
	Trips       int    `json:"trips"`
}

func NewMetadata(city string, messageType string, sender string, description string, trips int) Metadata {
	return Metadata{
		City:        city,
		Type:        messageType,
		Sender:      sender,
		Description: description,
		Trips:       trips,
	}
}

func (m Metadata) GetCity() string {
	return m.City
}

