package session

import (
	"bikeshare/dataloader"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
	"bikeshare/explorer/selection"
	"bikeshare/publisher"
	"bikeshare/reporters"
	"bikeshare/utils"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

const (
	sessionType     = "session"
	restartQuestion = "\nWould you like to restart? Enter yes or no."
	restartAnswer   = "yes"
)

// TripLoader loads the trips that match a filter
type TripLoader interface {
	LoadData(tripFilter filter.Filter) (*trip.Table, error)
	GetDataDir() string
}

// Session runs the explorer loop: select filters, load the trips, report and ask for a restart
type Session struct {
	prompter  *selection.Prompter
	loader    TripLoader
	reporters []reporters.Reporter
	publisher publisher.ReportPublisher
}

func NewSession(prompter *selection.Prompter, loader TripLoader, reportPublisher publisher.ReportPublisher) *Session {
	return &Session{
		prompter:  prompter,
		loader:    loader,
		reporters: reporters.NewReporters(),
		publisher: reportPublisher,
	}
}

func (s *Session) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][method: %s][status: ERROR] %s: %s", sessionType, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][method: %s][status: OK] %s", sessionType, method, message)
}

// Run repeats the explorer loop until the user does not want to restart or the input is closed.
// Errors loading or reporting the data are shown to the user and never stop the loop
func (s *Session) Run(ctx context.Context) error {
	for {
		tripFilter, err := selection.GetFilters(s.prompter)
		if err != nil {
			return ignoreEOF(err)
		}

		err = s.Explore(ctx, tripFilter)
		if err != nil {
			log.Debug(s.getLogMessage("Run", fmt.Sprintf("error exploring %s", tripFilter), err))
			if err = s.prompter.Println(s.errorMessage(tripFilter, err)); err != nil {
				return err
			}
		}

		restart, err := s.AskRestart()
		if err != nil {
			return ignoreEOF(err)
		}
		if !restart {
			return nil
		}
	}
}

// Explore loads the trips that match the filter and writes every report section. Panics are
// returned as ErrUnexpected
func (s *Session) Explore(ctx context.Context, tripFilter filter.Filter) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrUnexpected, r)
		}
	}()

	table, err := s.loader.LoadData(tripFilter)
	if err != nil {
		return err
	}

	sections := make([]reporters.Section, 0, len(s.reporters))
	for _, reporter := range s.reporters {
		section, err := reporters.Run(s.prompter.Writer(), reporter, table)
		if err != nil {
			return err
		}
		sections = append(sections, section)
	}

	err = s.publisher.Publish(ctx, tripFilter, table.Len(), sections)
	if err != nil {
		log.Warn(s.getLogMessage("Explore", "report could not be published", err))
	}

	return nil
}

// AskRestart returns true only if the user answers yes. Case and surrounding whitespace are ignored
func (s *Session) AskRestart() (bool, error) {
	answer, err := s.prompter.Ask(restartQuestion)
	if err != nil {
		return false, err
	}
	return ShouldRestart(answer), nil
}

func ShouldRestart(answer string) bool {
	return utils.NormalizeInput(answer) == restartAnswer
}

func (s *Session) errorMessage(tripFilter filter.Filter, err error) string {
	switch {
	case errors.Is(err, dataloader.ErrDataFileNotFound):
		return fmt.Sprintf(
			"Error: The data file for %s was not found. Please ensure it's in the '%s' directory.",
			filter.Title(tripFilter.City),
			filepath.Base(s.loader.GetDataDir()),
		)
	case errors.Is(err, dataloader.ErrMissingColumn):
		return fmt.Sprintf("Error: A required column was not found in the data or an invalid key was used: %s.", err.Error())
	default:
		return fmt.Sprintf("An unexpected error occurred: %s", err.Error())
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
