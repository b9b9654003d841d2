package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"weather-atlas/models"
)

var weatherHeader = []string{
	"city_id", "city", "lat", "lng", "max_temp",
	"humidity", "cloudiness", "wind_speed", "country", "date",
}

var hotelHeader = append(append([]string{}, weatherHeader...), "hotel_name")

// CSVWriter writes weather records to a CSV file with an auto-increment
// city_id column as the leftmost field. It is safe for concurrent use.
type CSVWriter struct {
	mu     sync.Mutex
	file   *os.File
	writer *csv.Writer
	nextID int
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the weather header row. Intermediate directories are created
// automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	return newCSVWriter(path, weatherHeader)
}

// NewHotelCSVWriter is NewCSVWriter with the hotel_name column appended.
func NewHotelCSVWriter(path string) (*CSVWriter, error) {
	return newCSVWriter(path, hotelHeader)
}

func newCSVWriter(path string, header []string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &CSVWriter{file: f, writer: w}, nil
}

// Write appends the records, assigning each a sequential city_id.
func (c *CSVWriter) Write(records []*models.CityWeatherRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, r := range records {
		if err := c.writer.Write(weatherRow(c.nextID, r)); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
		c.nextID++
	}

	c.writer.Flush()
	return c.writer.Error()
}

// WriteHotels appends hotel records, assigning each a sequential city_id.
func (c *CSVWriter) WriteHotels(records []*models.HotelRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, r := range records {
		row := append(weatherRow(c.nextID, &r.CityWeatherRecord), r.HotelName)
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
		c.nextID++
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}

func weatherRow(id int, r *models.CityWeatherRecord) []string {
	return []string{
		strconv.Itoa(id),
		r.City,
		formatFloat(r.Lat),
		formatFloat(r.Lng),
		formatFloat(r.MaxTemp),
		strconv.Itoa(r.Humidity),
		strconv.Itoa(r.Cloudiness),
		formatFloat(r.WindSpeed),
		r.Country,
		strconv.FormatInt(r.Date, 10),
	}
}

// formatFloat uses the shortest representation that round-trips exactly.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ReadCSV loads weather records back from a file written by CSVWriter,
// keyed by the city_id column.
func ReadCSV(path string) ([]*models.CityWeatherRecord, error) {
	rows, err := readRows(path, len(weatherHeader))
	if err != nil {
		return nil, err
	}

	records := make([]*models.CityWeatherRecord, 0, len(rows))
	for _, row := range rows {
		r, err := parseWeatherRow(row)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

// ReadHotelCSV loads hotel records from a file written with WriteHotels.
func ReadHotelCSV(path string) ([]*models.HotelRecord, error) {
	rows, err := readRows(path, len(hotelHeader))
	if err != nil {
		return nil, err
	}

	records := make([]*models.HotelRecord, 0, len(rows))
	for _, row := range rows {
		r, err := parseWeatherRow(row[:len(weatherHeader)])
		if err != nil {
			return nil, err
		}
		records = append(records, &models.HotelRecord{
			CityWeatherRecord: *r,
			HotelName:         row[len(weatherHeader)],
		})
	}
	return records, nil
}

func readRows(path string, wantCols int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %q: %w", path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("csv: read header: %w", err)
	}
	if len(header) != wantCols {
		return nil, fmt.Errorf("csv: expected %d columns, got %d", wantCols, len(header))
	}

	var rows [][]string
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: read row: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseWeatherRow(row []string) (*models.CityWeatherRecord, error) {
	lat, err := strconv.ParseFloat(row[2], 64)
	if err != nil {
		return nil, fmt.Errorf("csv: row %s: bad lat: %w", row[0], err)
	}
	lng, err := strconv.ParseFloat(row[3], 64)
	if err != nil {
		return nil, fmt.Errorf("csv: row %s: bad lng: %w", row[0], err)
	}
	maxTemp, err := strconv.ParseFloat(row[4], 64)
	if err != nil {
		return nil, fmt.Errorf("csv: row %s: bad max_temp: %w", row[0], err)
	}
	humidity, err := strconv.Atoi(row[5])
	if err != nil {
		return nil, fmt.Errorf("csv: row %s: bad humidity: %w", row[0], err)
	}
	cloudiness, err := strconv.Atoi(row[6])
	if err != nil {
		return nil, fmt.Errorf("csv: row %s: bad cloudiness: %w", row[0], err)
	}
	windSpeed, err := strconv.ParseFloat(row[7], 64)
	if err != nil {
		return nil, fmt.Errorf("csv: row %s: bad wind_speed: %w", row[0], err)
	}
	date, err := strconv.ParseInt(row[9], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("csv: row %s: bad date: %w", row[0], err)
	}

	return &models.CityWeatherRecord{
		City:       row[1],
		Lat:        lat,
		Lng:        lng,
		MaxTemp:    maxTemp,
		Humidity:   humidity,
		Cloudiness: cloudiness,
		WindSpeed:  windSpeed,
		Country:    row[8],
		Date:       date,
	}, nil
}
