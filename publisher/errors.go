package publisher

import "errors"

var (
	ErrConnectingToBroker = errors.New("error connecting to RabbitMQ")
	ErrMarshallingReport  = errors.New("error marshalling report")
	ErrPublishingReport   = errors.New("error publishing report")
)
