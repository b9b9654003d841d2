package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"weather-atlas/clients/openweather"
	"weather-atlas/config"
	"weather-atlas/geo"
	"weather-atlas/models"
	"weather-atlas/plots"
	"weather-atlas/services"
	"weather-atlas/storage"
	"weather-atlas/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("=== City Weather Survey starting ===")
	logger.Info("Config — sample size: %d | rate limit: %dms | output: %s",
		cfg.SampleSize, cfg.RateLimitMs, cfg.WeatherCSVPath)

	cityIndex, err := geo.LoadCityIndex(cfg.CitiesPath)
	if err != nil {
		logger.Error("Failed to load city dataset: %v", err)
		os.Exit(1)
	}
	logger.Info("City dataset loaded: %d cities", cityIndex.Size())

	sampler := geo.NewSampler(time.Now().UnixNano())
	cities := geo.UniqueCities(sampler, cityIndex, cfg.SampleSize)
	logger.Info("Sampled %d coordinates → %d unique cities", cfg.SampleSize, len(cities))

	weatherClient, err := openweather.New("", cfg.OpenWeatherAPIKey,
		time.Duration(cfg.RateLimitMs)*time.Millisecond)
	if err != nil {
		logger.Error("Failed to create weather client: %v", err)
		os.Exit(1)
	}

	fetcher := services.NewFetcher(weatherClient, logger)
	records, err := fetcher.FetchAll(context.Background(), cities)
	if err != nil {
		logger.Error("Weather fetch aborted: %v", err)
	}

	if len(records) == 0 {
		logger.Error("No weather records were collected. Exiting.")
		os.Exit(1)
	}

	csvWriter, err := storage.NewCSVWriter(cfg.WeatherCSVPath)
	if err != nil {
		logger.Error("Failed to create CSV writer: %v", err)
		os.Exit(1)
	}
	if err := csvWriter.Write(records); err != nil {
		logger.Error("CSV write failed: %v", err)
	} else {
		logger.Info("Weather records saved to %s", cfg.WeatherCSVPath)
	}
	if err := csvWriter.Close(); err != nil {
		logger.Error("CSV close failed: %v", err)
	}

	if cfg.PGEnabled {
		pgWriter, err := storage.NewPostgresWriter(cfg.DSN(), logger)
		if err != nil {
			logger.Error("Failed to connect to PostgreSQL: %v", err)
			logger.Error("Check PG_ENABLED/POSTGRES_* settings or start the database")
		} else {
			defer pgWriter.Close()
			if err := pgWriter.Write(records); err != nil {
				logger.Error("PostgreSQL write failed: %v", err)
			} else {
				logger.Info("Records stored in PostgreSQL (table: city_weather)")
			}
			if dbRecords, err := pgWriter.FetchAll(); err == nil {
				records = dbRecords
			} else {
				logger.Error("Failed to fetch records from DB: %v", err)
			}
		}
	}

	north, south := services.SplitByHemisphere(records)
	logger.Info("Hemisphere split: %d northern / %d southern", len(north), len(south))

	groups := map[string][]*models.CityWeatherRecord{"northern": north, "southern": south}
	for hemi, group := range groups {
		for _, v := range services.Variables {
			res, err := services.Fit(group, v)
			if err != nil {
				if errors.Is(err, services.ErrTooFewPoints) {
					logger.Warn("Skipping %s %s regression: %v", hemi, v, err)
					continue
				}
				logger.Error("Regression %s/%s failed: %v", hemi, v, err)
				continue
			}
			path, err := plots.RegressionPlot(group, v, hemi, res, cfg.PlotsDir)
			if err != nil {
				logger.Error("Plot %s/%s failed: %v", hemi, v, err)
				continue
			}
			logger.Info("%s %s: %s  R² = %.4f → %s",
				hemi, v, services.Equation(res), res.R2, path)
		}
	}

	summary := services.NewSummaryService(logger)
	summary.Print(summary.Generate(records))

	fmt.Printf("  Done. Weather CSV → %s | Plots → %s\n\n", cfg.WeatherCSVPath, cfg.PlotsDir)
}
