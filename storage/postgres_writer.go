package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"weather-atlas/models"
	"weather-atlas/utils"
)

// PostgresWriter persists collected weather records to PostgreSQL.
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter opens a connection to PostgreSQL, runs schema
// migrations, and returns a ready-to-use PostgresWriter. The initial
// ping is retried to allow the database container to come up.
func NewPostgresWriter(dsn string, logger *utils.Logger) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	retry := &utils.RetryConfig{MaxAttempts: 5, BaseDelay: 2 * time.Second, Logger: logger}
	if err := retry.Do("postgres ping", db.Ping); err != nil {
		return nil, err
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS city_weather (
			id         SERIAL PRIMARY KEY,
			city       TEXT          NOT NULL,
			lat        DOUBLE PRECISION NOT NULL,
			lng        DOUBLE PRECISION NOT NULL,
			max_temp   DOUBLE PRECISION NOT NULL,
			humidity   INTEGER       NOT NULL,
			cloudiness INTEGER       NOT NULL,
			wind_speed DOUBLE PRECISION NOT NULL,
			country    VARCHAR(2)    NOT NULL DEFAULT '',
			date       BIGINT        NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_city_weather_lat     ON city_weather(lat);
		CREATE INDEX IF NOT EXISTS idx_city_weather_country ON city_weather(country);
	`)
	return err
}

// Clear deletes all existing records from the table.
func (pw *PostgresWriter) Clear() error {
	_, err := pw.db.Exec("DELETE FROM city_weather")
	if err != nil {
		return fmt.Errorf("postgres: clear: %w", err)
	}
	return nil
}

// Write batch-inserts all records, clearing old data first.
func (pw *PostgresWriter) Write(records []*models.CityWeatherRecord) error {
	if len(records) == 0 {
		return nil
	}

	if err := pw.Clear(); err != nil {
		return err
	}

	const batchSize = 50
	for i := 0; i < len(records); i += batchSize {
		end := i + batchSize
		if end > len(records) {
			end = len(records)
		}
		if err := pw.insertBatch(records[i:end]); err != nil {
			return err
		}
	}
	return nil
}

func (pw *PostgresWriter) insertBatch(batch []*models.CityWeatherRecord) error {
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*9)

	for idx, r := range batch {
		base := idx * 9
		valueStrings = append(valueStrings,
			fmt.Sprintf("($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d)",
				base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9))
		valueArgs = append(valueArgs,
			r.City, r.Lat, r.Lng, r.MaxTemp, r.Humidity, r.Cloudiness, r.WindSpeed, r.Country, r.Date)
	}

	query := fmt.Sprintf(`
		INSERT INTO city_weather (city, lat, lng, max_temp, humidity, cloudiness, wind_speed, country, date)
		VALUES %s
	`, strings.Join(valueStrings, ","))

	_, err := pw.db.Exec(query, valueArgs...)
	return err
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}

// FetchAll retrieves all stored records in insertion order.
func (pw *PostgresWriter) FetchAll() ([]*models.CityWeatherRecord, error) {
	rows, err := pw.db.Query(`
		SELECT city, lat, lng, max_temp, humidity, cloudiness, wind_speed, country, date
		FROM city_weather
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch all: %w", err)
	}
	defer rows.Close()

	var records []*models.CityWeatherRecord
	for rows.Next() {
		r := &models.CityWeatherRecord{}
		if err := rows.Scan(
			&r.City, &r.Lat, &r.Lng, &r.MaxTemp, &r.Humidity,
			&r.Cloudiness, &r.WindSpeed, &r.Country, &r.Date,
		); err != nil {
			return nil, fmt.Errorf("postgres: scan row: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
