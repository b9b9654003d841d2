package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"weather-atlas/clients/geoapify"
	"weather-atlas/config"
	"weather-atlas/render"
	"weather-atlas/services"
	"weather-atlas/storage"
	"weather-atlas/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("=== Hotel Map starting ===")
	logger.Info("Config — input: %s | radius: %dm | map: %s",
		cfg.WeatherCSVPath, cfg.HotelRadiusM, cfg.MapHTMLPath)

	records, err := storage.ReadCSV(cfg.WeatherCSVPath)
	if err != nil {
		logger.Error("Failed to read weather CSV: %v", err)
		logger.Error("Run the weather survey first to produce %s", cfg.WeatherCSVPath)
		os.Exit(1)
	}
	logger.Info("Loaded %d weather records", len(records))

	criteria, err := config.LoadCriteria(cfg.CriteriaPath)
	if err != nil {
		logger.Error("Failed to load filter criteria: %v", err)
		os.Exit(1)
	}

	filter := services.NewFilter(criteria, logger)
	filtered := filter.Apply(records)
	if len(filtered) == 0 {
		logger.Error("No cities match the weather criteria. Exiting.")
		os.Exit(1)
	}

	placesClient, err := geoapify.New("", cfg.GeoapifyAPIKey, cfg.HotelRadiusM,
		time.Duration(cfg.RateLimitMs)*time.Millisecond)
	if err != nil {
		logger.Error("Failed to create places client: %v", err)
		os.Exit(1)
	}

	finder := services.NewHotelFinder(placesClient, logger)
	hotels, err := finder.FindAll(context.Background(), filtered)
	if err != nil {
		logger.Error("Hotel search aborted: %v", err)
	}
	if len(hotels) == 0 {
		logger.Error("No hotel records were produced. Exiting.")
		os.Exit(1)
	}

	csvWriter, err := storage.NewHotelCSVWriter(cfg.HotelCSVPath)
	if err != nil {
		logger.Error("Failed to create hotel CSV writer: %v", err)
		os.Exit(1)
	}
	if err := csvWriter.WriteHotels(hotels); err != nil {
		logger.Error("Hotel CSV write failed: %v", err)
	} else {
		logger.Info("Hotel records saved to %s", cfg.HotelCSVPath)
	}
	if err := csvWriter.Close(); err != nil {
		logger.Error("Hotel CSV close failed: %v", err)
	}

	if err := render.HotelMap(hotels, cfg.MapHTMLPath); err != nil {
		logger.Error("Map render failed: %v", err)
		os.Exit(1)
	}
	logger.Info("Interactive map written to %s", cfg.MapHTMLPath)

	if cfg.MapSnapshot {
		if err := render.Snapshot(context.Background(), cfg.MapHTMLPath, cfg.MapPNGPath, logger); err != nil {
			logger.Error("Map snapshot failed: %v", err)
		} else {
			logger.Info("Map snapshot written to %s", cfg.MapPNGPath)
		}
	}

	fmt.Printf("  Done. Hotel CSV → %s | Map → %s\n\n", cfg.HotelCSVPath, cfg.MapHTMLPath)
}
