package config

import (
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/qiangxue/go-env"
	"gopkg.in/yaml.v3"
)

const EnvVarsPrefix = "BOOKING_"

const DefaultPath = "./configs/default.yml"

type Config struct {
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR"`
	// LogLevel is a zerolog level name.
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
	// LogFormat is "console" or "json".
	LogFormat   string `yaml:"log_format" env:"LOG_FORMAT"`
	CatalogPath string `yaml:"catalog_path" env:"CATALOG_PATH"`

	// Timezone is the IANA zone treated as local time when formatting dates.
	Timezone  string `yaml:"timezone" env:"TIMEZONE"`
	DateOrder string `yaml:"date_order" env:"DATE_ORDER"`
	DayBasis  string `yaml:"day_basis" env:"DAY_BASIS"`

	ShutdownTimeoutSeconds int `yaml:"shutdown_timeout_seconds" env:"SHUTDOWN_TIMEOUT_SECONDS"`
}

func defaults() Config {
	return Config{
		BindAddr:    ":8080",
		LogLevel:    "info",
		LogFormat:   "console",
		CatalogPath: "./database/restaurants.json",
		Timezone:    "Europe/Moscow",
		DateOrder:   "day_first",
		DayBasis:    "utc",
	}
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.BindAddr, validation.Required),
		validation.Field(&c.CatalogPath, validation.Required),
		validation.Field(&c.LogLevel, validation.In("trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled")),
		validation.Field(&c.LogFormat, validation.In("console", "json")),
		validation.Field(&c.DateOrder, validation.In("day_first", "year_first")),
		validation.Field(&c.DayBasis, validation.In("utc", "local")),
		validation.Field(&c.Timezone, validation.Required, validation.By(checkTimezone)),
		validation.Field(&c.ShutdownTimeoutSeconds, validation.Min(0)),
	)
}

func checkTimezone(value interface{}) error {
	name, _ := value.(string)
	if _, err := time.LoadLocation(name); err != nil {
		return fmt.Errorf("unknown time zone %q", name)
	}
	return nil
}

// Location returns the configured zone. Call after Validate.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func (c *Config) ShutdownTimeout() time.Duration {
	if c.ShutdownTimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// Load reads the YAML file at path, expanding ${ENV_VAR} placeholders, then
// applies BOOKING_-prefixed environment variables on top. A missing file is
// not an error; defaults and the environment are enough to start.
func Load(path string, logf func(format string, args ...interface{})) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	if logf == nil {
		logf = func(string, ...interface{}) {}
	}
	cfg := defaults()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		data = []byte(os.ExpandEnv(string(data)))
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err = env.New(EnvVarsPrefix, logf).Load(&cfg); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
