package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	PGURL         string
	Port          string
	RulesFile     string
	AnalyticsURL  string
	ClickHouseDSN string
	LogLevel      string
	LogFormat     string
}

// Load reads configuration from the environment. A local .env file is
// applied first when present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	pgURL := os.Getenv("PG_URL")
	if pgURL == "" {
		return nil, fmt.Errorf("PG_URL environment variable is required")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return &Config{
		PGURL:         pgURL,
		Port:          port,
		RulesFile:     os.Getenv("RULES_FILE"),
		AnalyticsURL:  os.Getenv("ANALYTICS_URL"),
		ClickHouseDSN: os.Getenv("CLICKHOUSE_DSN"),
		LogLevel:      logLevel,
		LogFormat:     os.Getenv("LOG_FORMAT"),
	}, nil
}

// ConfigureLogging applies the configured level and format to the global
// logger. Unknown levels fall back to info rather than failing startup.
func (c *Config) ConfigureLogging() {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		level = log.InfoLevel
		log.Warnf("unknown LOG_LEVEL %q, using info", c.LogLevel)
	}
	log.SetLevel(level)

	if c.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	}
}
