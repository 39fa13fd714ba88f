package dataloader

import (
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
	"bikeshare/utils"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	log "github.com/sirupsen/logrus"
)

const (
	loaderType = "data-loader"
	nanValue   = "NaN"
)

var (
	startTimeLayouts = []string{
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04",
		time.RFC3339,
	}
	// cells with any of these values are missing values
	nanValues = []string{"", "NA", "NaN", "nan", "<nil>"}
)

// DataLoader reads the trips of a city from the .csv files in DataDir
type DataLoader struct {
	dataDir string
}

func NewDataLoader(dataDir string) *DataLoader {
	return &DataLoader{
		dataDir: dataDir,
	}
}

func (dl *DataLoader) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][method: %s][status: ERROR] %s: %s", loaderType, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][method: %s][status: OK] %s", loaderType, method, message)
}

// GetDataDir returns the directory where the .csv files are searched
func (dl *DataLoader) GetDataDir() string {
	return dl.dataDir
}

// GetFilePath returns the path to the .csv file of the city
func (dl *DataLoader) GetFilePath(city string) (string, error) {
	fileName, ok := filter.CityFile(city)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCity, city)
	}
	return filepath.Join(dl.dataDir, fileName), nil
}

// LoadData loads the trips of the city of the filter. The flow of this function is:
// 1. Read the .csv file of the city
// 2. Derive month, day of week and hour columns from the start time
// 3. Keep only the rows that match the month and the day of the filter
// The result may be an empty table
func (dl *DataLoader) LoadData(tripFilter filter.Filter) (*trip.Table, error) {
	filePath, err := dl.GetFilePath(tripFilter.City)
	if err != nil {
		return nil, err
	}

	dataFile, err := os.Open(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDataFileNotFound, filePath)
		}
		return nil, fmt.Errorf("%w: %s", ErrReadingData, err.Error())
	}

	defer func(dataFile *os.File) {
		err := dataFile.Close()
		if err != nil {
			log.Error(dl.getLogMessage("LoadData", fmt.Sprintf("error closing %s", filePath), err))
		}
	}(dataFile)

	table, err := ReadTrips(dataFile, tripFilter)
	if err != nil {
		log.Debug(dl.getLogMessage("LoadData", fmt.Sprintf("error loading %s", filePath), err))
		return nil, err
	}

	log.Debug(dl.getLogMessage("LoadData", fmt.Sprintf("%v trips loaded from %s with filter %s", table.Len(), filePath, tripFilter), nil))
	return table, nil
}

// ReadTrips reads trips in .csv format from the reader and applies the filter
func ReadTrips(reader io.Reader, tripFilter filter.Filter) (*trip.Table, error) {
	records, err := csv.NewReader(reader).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrReadingData, err.Error())
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: missing header", ErrReadingData)
	}

	frame := loadFrame(records)
	if frame.Err != nil {
		return nil, fmt.Errorf("%w: %s", ErrReadingData, frame.Err.Error())
	}

	err = checkNumericColumns(frame, records)
	if err != nil {
		return nil, err
	}

	if !trip.NewTable(frame).Has(trip.StartTimeColumn) {
		return nil, fmt.Errorf("%w: '%s'", ErrMissingColumn, trip.StartTimeColumn)
	}

	startTimes, err := parseStartTimes(frame.Col(trip.StartTimeColumn))
	if err != nil {
		return nil, err
	}

	frame = deriveColumns(frame, startTimes)
	if frame.Err != nil {
		return nil, fmt.Errorf("%w: %s", ErrReadingData, frame.Err.Error())
	}

	if !tripFilter.FilterByMonth() && !tripFilter.FilterByDay() {
		return trip.NewTable(frame), nil
	}

	frame = frame.Subset(filterRows(startTimes, tripFilter))
	if frame.Err != nil {
		return nil, fmt.Errorf("%w: %s", ErrReadingData, frame.Err.Error())
	}

	return trip.NewTable(frame), nil
}

// loadFrame builds the frame from the .csv records, header included. Numeric columns are loaded
// as floats, the rest as strings. A file with only the header is an empty frame
func loadFrame(records [][]string) dataframe.DataFrame {
	if len(records) == 1 {
		header := records[0]
		columns := make([]series.Series, 0, len(header))
		for _, name := range header {
			columns = append(columns, series.New([]string{}, columnType(name), name))
		}
		return dataframe.New(columns...)
	}

	columnTypes := make(map[string]series.Type)
	for _, column := range trip.NumericColumns() {
		columnTypes[column] = series.Float
	}

	return dataframe.LoadRecords(
		records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.WithTypes(columnTypes),
		dataframe.NaNValues(nanValues),
	)
}

func columnType(name string) series.Type {
	if utils.ContainsString(name, trip.NumericColumns()) {
		return series.Float
	}
	return series.String
}

// checkNumericColumns returns ErrReadingData if a cell of a numeric column is not a number.
// Only the cells in nanValues may be missing
func checkNumericColumns(frame dataframe.DataFrame, records [][]string) error {
	header, rows := records[0], records[1:]
	table := trip.NewTable(frame)
	for colIdx, name := range header {
		if !utils.ContainsString(name, trip.NumericColumns()) || !table.Has(name) {
			continue
		}

		column := frame.Col(name)
		for rowIdx, row := range rows {
			if utils.ContainsString(row[colIdx], nanValues) {
				continue
			}
			if column.Elem(rowIdx).IsNA() {
				return fmt.Errorf("%w: invalid number %q in column '%s', row %v", ErrReadingData, row[colIdx], name, rowIdx+1)
			}
		}
	}
	return nil
}

// parseStartTimes parses each start time. Missing values are returned as zero times
func parseStartTimes(startTimeSeries series.Series) ([]time.Time, error) {
	startTimes := make([]time.Time, startTimeSeries.Len())
	for idx := range startTimes {
		element := startTimeSeries.Elem(idx)
		if element.IsNA() {
			continue
		}

		startTime, err := parseStartTime(element.String())
		if err != nil {
			return nil, err
		}
		startTimes[idx] = startTime
	}
	return startTimes, nil
}

func parseStartTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range startTimeLayouts {
		startTime, err := time.Parse(layout, value)
		if err == nil {
			return startTime, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidStartTime, value)
}

// deriveColumns adds month, day of week and hour columns to the frame
func deriveColumns(frame dataframe.DataFrame, startTimes []time.Time) dataframe.DataFrame {
	months := make([]string, len(startTimes))
	daysOfWeek := make([]string, len(startTimes))
	hours := make([]string, len(startTimes))

	for idx, startTime := range startTimes {
		if startTime.IsZero() {
			months[idx], daysOfWeek[idx], hours[idx] = nanValue, nanValue, nanValue
			continue
		}
		months[idx] = strconv.Itoa(int(startTime.Month()))
		daysOfWeek[idx] = startTime.Weekday().String()
		hours[idx] = strconv.Itoa(startTime.Hour())
	}

	return frame.
		Mutate(series.New(months, series.Int, trip.MonthColumn)).
		Mutate(series.New(daysOfWeek, series.String, trip.DayOfWeekColumn)).
		Mutate(series.New(hours, series.Int, trip.HourColumn))
}

// filterRows returns the indexes of the rows whose start time matches the month and the day of the filter
func filterRows(startTimes []time.Time, tripFilter filter.Filter) []int {
	indexes := make([]int, 0, len(startTimes))
	for idx, startTime := range startTimes {
		if startTime.IsZero() {
			continue
		}
		if tripFilter.FilterByMonth() && int(startTime.Month()) != tripFilter.MonthNumber() {
			continue
		}
		if tripFilter.FilterByDay() && startTime.Weekday().String() != tripFilter.DayName() {
			continue
		}
		indexes = append(indexes, idx)
	}
	return indexes
}
