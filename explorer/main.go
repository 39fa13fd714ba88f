package main

import (
	"bikeshare/dataloader"
	"bikeshare/explorer/config"
	"bikeshare/explorer/selection"
	"bikeshare/explorer/session"
	"bikeshare/publisher"
	"bikeshare/utils"
	"context"
	"os"

	log "github.com/sirupsen/logrus"
)

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetFormatter(customFormatter)
	log.SetLevel(level)
	return nil
}

func main() {
	explorerConfig, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("[explorer] error loading config: %s", err.Error())
	}

	if err = InitLogger(explorerConfig.LogLevel); err != nil {
		log.Fatalf("%s", err)
	}

	reportPublisher, err := publisher.NewReportPublisher(explorerConfig.Publisher)
	if err != nil {
		log.Errorf("[explorer] error creating report publisher, reports will not be published: %s", err.Error())
		reportPublisher = publisher.NoopPublisher{}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signalChannel := utils.GetSignalChannel()
	go func() {
		<-signalChannel
		log.Debug("[explorer] signal received, closing report publisher")
		cancel()
		if err := reportPublisher.Close(); err != nil {
			log.Errorf("[explorer] error closing report publisher: %s", err.Error())
		}
		os.Exit(0)
	}()

	explorerSession := session.NewSession(
		selection.NewPrompter(os.Stdin, os.Stdout),
		dataloader.NewDataLoader(explorerConfig.DataDir),
		reportPublisher,
	)

	if err = explorerSession.Run(ctx); err != nil {
		log.Errorf("[explorer] error running session: %s", err.Error())
	}

	if err = reportPublisher.Close(); err != nil {
		log.Errorf("[explorer] error closing report publisher: %s", err.Error())
	}
	log.Debug("[explorer] Finish main.go")
}
