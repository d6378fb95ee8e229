package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "config/config.yaml"

type Config struct {
	App     AppConfig     `yaml:"app"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Weather WeatherConfig `yaml:"weather"`
	Sentry  SentryConfig  `yaml:"sentry"`
}

type AppConfig struct {
	Name    string `yaml:"name" envconfig:"APP_NAME"`
	Version string `yaml:"version" envconfig:"APP_VERSION"`
	Env     string `yaml:"env" envconfig:"APP_ENV"`
}

// ServerConfig timeouts are in seconds.
type ServerConfig struct {
	Port         string `yaml:"port" envconfig:"SERVER_PORT"`
	ReadTimeout  int    `yaml:"read_timeout" envconfig:"SERVER_READ_TIMEOUT"`
	WriteTimeout int    `yaml:"write_timeout" envconfig:"SERVER_WRITE_TIMEOUT"`
	IdleTimeout  int    `yaml:"idle_timeout" envconfig:"SERVER_IDLE_TIMEOUT"`
}

type LogConfig struct {
	Level  string `yaml:"level" envconfig:"LOG_LEVEL"`
	Format string `yaml:"format" envconfig:"LOG_FORMAT"`
}

// WeatherConfig describes the upstream forecast API.
// Timeout is in seconds, 0 disables it. RateLimit is requests per second, 0 disables it.
type WeatherConfig struct {
	BaseURL    string  `yaml:"base_url" envconfig:"WEATHER_BASE_URL"`
	GridOffset string  `yaml:"grid_offset" envconfig:"WEATHER_GRID_OFFSET"`
	UserAgent  string  `yaml:"user_agent" envconfig:"WEATHER_USER_AGENT"`
	Timeout    int     `yaml:"timeout" envconfig:"WEATHER_TIMEOUT"`
	RateLimit  float64 `yaml:"rate_limit" envconfig:"WEATHER_RATE_LIMIT"`
	Burst      int     `yaml:"burst" envconfig:"WEATHER_BURST"`
}

type SentryConfig struct {
	DSN   string `yaml:"dsn" envconfig:"SENTRY_DSN"`
	Debug bool   `yaml:"debug" envconfig:"SENTRY_DEBUG"`
}

// ConfigProvider loads and validates a Config.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

type FileConfigProvider struct {
	path string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{path: path}
}

// NewConfig loads config/config.yaml, or the file named by CONFIG_PATH, then applies env overrides.
// A .env file in the working directory is read first; variables already set win over it.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	path := defaultConfigPath
	if p := strings.TrimSpace(os.Getenv("CONFIG_PATH")); p != "" {
		path = p
	}
	return NewConfigWithProvider(NewFileConfigProvider(path))
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return nil, err
	}

	if err := provider.Validate(cnf); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cnf, nil
}

// Load layers defaults, then the YAML file, then environment variables.
func (p *FileConfigProvider) Load() (*Config, error) {
	cnf := defaults()

	if err := p.loadFromFile(cnf); err != nil {
		return nil, err
	}

	if err := envconfig.Process("", cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	return cnf, nil
}

// loadFromFile is a no-op when the file does not exist.
func (p *FileConfigProvider) loadFromFile(cnf *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", p.path, err)
	}

	if err := yaml.Unmarshal(yamlData, cnf); err != nil {
		return fmt.Errorf("failed to parse YAML config %s: %w", p.path, err)
	}

	return nil
}

func (p *FileConfigProvider) Validate(cnf *Config) error {
	var errs []error

	if strings.TrimSpace(cnf.App.Name) == "" {
		errs = append(errs, errors.New("app.name is required"))
	}
	if strings.TrimSpace(cnf.Server.Port) == "" {
		errs = append(errs, errors.New("server.port is required"))
	}
	if cnf.Server.ReadTimeout < 0 || cnf.Server.WriteTimeout < 0 || cnf.Server.IdleTimeout < 0 {
		errs = append(errs, errors.New("server timeouts must not be negative"))
	}

	switch strings.ToLower(cnf.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q is not one of debug, info, warn, error", cnf.Log.Level))
	}
	switch strings.ToLower(cnf.Log.Format) {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("log.format %q is not one of json, console", cnf.Log.Format))
	}

	if strings.TrimSpace(cnf.Weather.BaseURL) == "" {
		errs = append(errs, errors.New("weather.base_url is required"))
	}
	if strings.TrimSpace(cnf.Weather.GridOffset) == "" {
		errs = append(errs, errors.New("weather.grid_offset is required"))
	}
	if cnf.Weather.Timeout < 0 {
		errs = append(errs, errors.New("weather.timeout must not be negative"))
	}
	if cnf.Weather.RateLimit < 0 {
		errs = append(errs, errors.New("weather.rate_limit must not be negative"))
	}
	if cnf.Weather.RateLimit > 0 && cnf.Weather.Burst < 1 {
		errs = append(errs, errors.New("weather.burst must be at least 1 when rate_limit is set"))
	}

	return errors.Join(errs...)
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development" || c.App.Env == "dev"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production" || c.App.Env == "prod"
}

func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

func defaults() *Config {
	return &Config{
		App: AppConfig{
			Name:    "weather-charts",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10,
			WriteTimeout: 10,
			IdleTimeout:  120,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Weather: WeatherConfig{
			BaseURL:    "https://api.weather.gov",
			GridOffset: "31,80",
			UserAgent:  "weather-charts/1.0 (https://github.com/weather-charts)",
			Burst:      1,
		},
	}
}
