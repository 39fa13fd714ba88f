package publisher

import (
	"bikeshare/communication"
	"bikeshare/domain/business/reportresponse"
	"bikeshare/domain/entities/filter"
	"bikeshare/reporters"
	"context"
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	publisherType       = "report-publisher"
	contentTypeJson     = "application/json"
	defaultExchangeType = "topic"
	publishTimeout      = 5 * time.Second
)

// ReportPublisher sends the reports generated by the explorer to other systems
type ReportPublisher interface {
	Publish(ctx context.Context, tripFilter filter.Filter, trips int, sections []reporters.Section) error
	Close() error
}

// NewReportPublisher returns a publisher that sends the reports to RabbitMQ if it is enabled
// in the config, otherwise a publisher that discards them
func NewReportPublisher(publisherConfig communication.PublisherConfig) (ReportPublisher, error) {
	if !publisherConfig.Enabled {
		return NoopPublisher{}, nil
	}

	rabbitMQ, err := communication.NewRabbitMQ(publisherConfig.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConnectingToBroker, err.Error())
	}

	if publisherConfig.Exchange.Type == "" {
		publisherConfig.Exchange.Type = defaultExchangeType
	}

	err = rabbitMQ.DeclareExchanges([]communication.ExchangeDeclarationConfig{publisherConfig.Exchange})
	if err != nil {
		_ = rabbitMQ.KillBadBunny()
		return nil, err
	}

	log.Infof("[component: %s][status: OK] exchange %s declared correctly!", publisherType, publisherConfig.Exchange.Name)
	return NewRabbitPublisher(rabbitMQ, publisherConfig), nil
}

// NoopPublisher discards every report
type NoopPublisher struct{}

func (np NoopPublisher) Publish(_ context.Context, _ filter.Filter, _ int, _ []reporters.Section) error {
	return nil
}

func (np NoopPublisher) Close() error {
	return nil
}

// messagePublisher publishes a message in an exchange. It is satisfied by *communication.RabbitMQ
type messagePublisher interface {
	PublishMessageInExchange(ctx context.Context, exchange string, routingKey string, message []byte, contentType string) error
	KillBadBunny() error
}

// RabbitPublisher publishes each report as JSON in a RabbitMQ exchange. The routing key
// of each message is <routing_key>.<city>
type RabbitPublisher struct {
	rabbitMQ messagePublisher
	config   communication.PublisherConfig
}

func NewRabbitPublisher(rabbitMQ messagePublisher, publisherConfig communication.PublisherConfig) *RabbitPublisher {
	if publisherConfig.PublishingConfig.ContentType == "" {
		publisherConfig.PublishingConfig.ContentType = contentTypeJson
	}
	return &RabbitPublisher{
		rabbitMQ: rabbitMQ,
		config:   publisherConfig,
	}
}

func (rp *RabbitPublisher) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][method: %s][status: ERROR] %s: %s", publisherType, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][method: %s][status: OK] %s", publisherType, method, message)
}

// Publish sends the report to the configured exchange
func (rp *RabbitPublisher) Publish(ctx context.Context, tripFilter filter.Filter, trips int, sections []reporters.Section) error {
	response := BuildReportResponse(tripFilter, trips, sections)
	responseBytes, err := json.Marshal(response)
	if err != nil {
		log.Error(rp.getLogMessage("Publish", "error marshalling report", err))
		return fmt.Errorf("%w: %s", ErrMarshallingReport, err.Error())
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	routingKey := response.GetRoutingKey(rp.config.PublishingConfig.RoutingKey)
	err = rp.rabbitMQ.PublishMessageInExchange(
		ctx,
		rp.config.Exchange.Name,
		routingKey,
		responseBytes,
		rp.config.PublishingConfig.ContentType,
	)
	if err != nil {
		log.Error(rp.getLogMessage("Publish", fmt.Sprintf("error publishing report with routing key %s", routingKey), err))
		return fmt.Errorf("%w: %s", ErrPublishingReport, err.Error())
	}

	log.Debug(rp.getLogMessage("Publish", fmt.Sprintf("report published with routing key %s", routingKey), nil))
	return nil
}

func (rp *RabbitPublisher) Close() error {
	return rp.rabbitMQ.KillBadBunny()
}

// BuildReportResponse converts the sections of a report into the message that is published
func BuildReportResponse(tripFilter filter.Filter, trips int, sections []reporters.Section) *reportresponse.ReportResponse {
	sectionResponses := make([]reportresponse.SectionResponse, 0, len(sections))
	for _, section := range sections {
		sectionResponses = append(sectionResponses, reportresponse.SectionResponse{
			Reporter:       section.Reporter,
			Title:          section.Title,
			Lines:          section.Lines,
			ElapsedSeconds: section.Elapsed.Seconds(),
		})
	}
	return reportresponse.NewReportResponse(tripFilter, trips, sectionResponses)
}
