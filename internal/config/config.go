package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the runtime settings of the catalog service.
type Config struct {
	Port           string
	DatabaseURL    string
	RabbitMQURL    string
	EventsQueue    string
	RequestTimeout time.Duration
	StaticDir      string
	LogMode        string
	LogFile        string
	SeedDemo       bool
	SeedPassword   string
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	return FromViper(viper.New())
}

// FromViper applies defaults to v and builds a Config from it.
func FromViper(v *viper.Viper) (Config, error) {
	v.SetDefault("PORT", "5000")
	v.SetDefault("DATABASE_URL", "mongodb://127.0.0.1:27017/handiva")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("EVENTS_QUEUE", "catalog_events")
	v.SetDefault("REQUEST_TIMEOUT", "10s")
	v.SetDefault("STATIC_DIR", "frontend")
	v.SetDefault("LOG_MODE", "development")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("SEED_DEMO", false)
	v.SetDefault("SEED_PASSWORD", "handiva-demo")
	// MONGO_URI is what older deployments export.
	if err := v.BindEnv("DATABASE_URL", "DATABASE_URL", "MONGO_URI"); err != nil {
		return Config{}, err
	}
	v.AutomaticEnv()

	cfg := Config{
		Port:           v.GetString("PORT"),
		DatabaseURL:    v.GetString("DATABASE_URL"),
		RabbitMQURL:    v.GetString("RABBITMQ_URL"),
		EventsQueue:    v.GetString("EVENTS_QUEUE"),
		RequestTimeout: v.GetDuration("REQUEST_TIMEOUT"),
		StaticDir:      v.GetString("STATIC_DIR"),
		LogMode:        v.GetString("LOG_MODE"),
		LogFile:        v.GetString("LOG_FILE"),
		SeedDemo:       v.GetBool("SEED_DEMO"),
		SeedPassword:   v.GetString("SEED_PASSWORD"),
	}
	if cfg.Port == "" {
		return Config{}, errors.New("PORT must not be empty")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL must not be empty")
	}
	if cfg.RequestTimeout <= 0 {
		return Config{}, errors.New("REQUEST_TIMEOUT must be positive")
	}
	return cfg, nil
}
