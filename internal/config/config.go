package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverMongo  = "mongo"
	DriverSQLite = "sqlite"
)

// Config holds all service configuration.
type Config struct {
	Port             string
	LegacySoftErrors bool
	CORSOrigins      []string

	Store  StoreConfig
	Mongo  MongoConfig
	SQLite SQLiteConfig
	Log    LogConfig
}

type StoreConfig struct {
	Driver string
}

type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

type SQLiteConfig struct {
	Path string
}

type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// envBindings maps config keys to the environment variables that override them.
var envBindings = map[string]string{
	"port":                   "PORT",
	"store.driver":           "STORE_DRIVER",
	"mongo.uri":              "MONGO_URL",
	"mongo.database":         "MONGO_DB",
	"mongo.connect_timeout":  "MONGO_CONNECT_TIMEOUT",
	"sqlite.path":            "SQLITE_PATH",
	"log.level":              "LOG_LEVEL",
	"log.file":               "LOG_FILE",
	"api.legacy_soft_errors": "LEGACY_SOFT_ERRORS",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "3000")
	v.SetDefault("store.driver", DriverMongo)
	v.SetDefault("mongo.database", "exercise_tracker")
	v.SetDefault("mongo.connect_timeout", "10s")
	v.SetDefault("sqlite.path", "exercise_tracker.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("api.legacy_soft_errors", false)
	v.SetDefault("cors.allow_origins", []string{"*"})
}

// Load reads .env (if present), configs/config.yml (if present) and the environment.
// Environment variables win over the file, the file wins over defaults.
func Load(configPaths ...string) (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	if len(configPaths) == 0 {
		configPaths = []string{"configs"}
	}
	for _, p := range configPaths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	cfg := &Config{
		Port:             v.GetString("port"),
		LegacySoftErrors: v.GetBool("api.legacy_soft_errors"),
		CORSOrigins:      v.GetStringSlice("cors.allow_origins"),
		Store: StoreConfig{
			Driver: strings.ToLower(strings.TrimSpace(v.GetString("store.driver"))),
		},
		Mongo: MongoConfig{
			URI:            v.GetString("mongo.uri"),
			Database:       v.GetString("mongo.database"),
			ConnectTimeout: v.GetDuration("mongo.connect_timeout"),
		},
		SQLite: SQLiteConfig{
			Path: v.GetString("sqlite.path"),
		},
		Log: LogConfig{
			Level:      v.GetString("log.level"),
			File:       v.GetString("log.file"),
			MaxSizeMB:  v.GetInt("log.max_size_mb"),
			MaxBackups: v.GetInt("log.max_backups"),
			MaxAgeDays: v.GetInt("log.max_age_days"),
		},
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case DriverMongo:
		if c.Mongo.URI == "" {
			return errors.New("mongo.uri (MONGO_URL) is required when store.driver is mongo")
		}
	case DriverSQLite:
		if c.SQLite.Path == "" {
			return errors.New("sqlite.path is required when store.driver is sqlite")
		}
	default:
		return fmt.Errorf("unknown store.driver %q, expected %q or %q", c.Store.Driver, DriverMongo, DriverSQLite)
	}
	return nil
}
