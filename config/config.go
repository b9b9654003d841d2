package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	OpenWeatherAPIKey string
	GeoapifyAPIKey    string

	SampleSize   int
	RateLimitMs  int
	HotelRadiusM int

	CitiesPath     string
	CriteriaPath   string
	WeatherCSVPath string
	HotelCSVPath   string
	PlotsDir       string
	MapHTMLPath    string
	MapPNGPath     string
	MapSnapshot    bool

	PGEnabled        bool
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		OpenWeatherAPIKey: getEnv("OPENWEATHER_API_KEY", ""),
		GeoapifyAPIKey:    getEnv("GEOAPIFY_API_KEY", ""),

		SampleSize:   getEnvInt("SAMPLE_SIZE", 1500),
		RateLimitMs:  getEnvInt("RATE_LIMIT_MS", 1000),
		HotelRadiusM: getEnvInt("HOTEL_RADIUS_M", 10000),

		CitiesPath:     getEnv("CITIES_PATH", "./data/cities.csv"),
		CriteriaPath:   getEnv("CRITERIA_PATH", "./criteria.yaml"),
		WeatherCSVPath: getEnv("WEATHER_CSV_PATH", "./output/city_weather.csv"),
		HotelCSVPath:   getEnv("HOTEL_CSV_PATH", "./output/hotels.csv"),
		PlotsDir:       getEnv("PLOTS_DIR", "./output/plots"),
		MapHTMLPath:    getEnv("MAP_HTML_PATH", "./output/hotel_map.html"),
		MapPNGPath:     getEnv("MAP_PNG_PATH", "./output/hotel_map.png"),
		MapSnapshot:    getEnvBool("MAP_SNAPSHOT", false),

		PGEnabled:        getEnvBool("PG_ENABLED", false),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "weather"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "weather123"),
		PostgresDB:       getEnv("POSTGRES_DB", "weather_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
