package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	// Test with default values (without config file)
	provider := NewFileConfigProvider("nonexistent.yaml")
	config, err := NewConfigWithProvider(provider)
	require.NoError(t, err)
	assert.NotNil(t, config)

	assert.Equal(t, "weather-charts", config.App.Name)
	assert.Equal(t, "1.0.0", config.App.Version)
	assert.Equal(t, "development", config.App.Env)
	assert.Equal(t, "8080", config.Server.Port)
	assert.Equal(t, 10, config.Server.ReadTimeout)
	assert.Equal(t, 10, config.Server.WriteTimeout)
	assert.Equal(t, 120, config.Server.IdleTimeout)
	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "https://api.weather.gov", config.Weather.BaseURL)
	assert.Equal(t, "31,80", config.Weather.GridOffset)
	assert.Equal(t, 0, config.Weather.Timeout)
	assert.Zero(t, config.Weather.RateLimit)
	assert.Empty(t, config.Sentry.DSN)
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	t.Setenv("APP_NAME", "test-app")
	t.Setenv("APP_VERSION", "2.0.0")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("WEATHER_GRID_OFFSET", "88,126")
	t.Setenv("WEATHER_RATE_LIMIT", "0.5")

	provider := NewFileConfigProvider("nonexistent.yaml")
	config, err := NewConfigWithProvider(provider)
	require.NoError(t, err)

	assert.Equal(t, "test-app", config.App.Name)
	assert.Equal(t, "2.0.0", config.App.Version)
	assert.Equal(t, "production", config.App.Env)
	assert.Equal(t, "9090", config.Server.Port)
	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "88,126", config.Weather.GridOffset)
	assert.Equal(t, 0.5, config.Weather.RateLimit)
	assert.True(t, config.IsProduction())
	assert.Equal(t, ":9090", config.Addr())
}

func TestConfigFileThenEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
app:
  name: from-file
weather:
  grid_offset: "10,20"
  timeout: 15
`), 0o600))

	t.Setenv("WEATHER_TIMEOUT", "30")

	config, err := NewConfigWithProvider(NewFileConfigProvider(path))
	require.NoError(t, err)

	assert.Equal(t, "from-file", config.App.Name)
	assert.Equal(t, "10,20", config.Weather.GridOffset)
	assert.Equal(t, 30, config.Weather.Timeout)
	// untouched keys keep their defaults
	assert.Equal(t, "https://api.weather.gov", config.Weather.BaseURL)
	assert.Equal(t, "8080", config.Server.Port)
}

func TestNewConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("WEATHER_USER_AGENT=from-dotenv\nAPP_VERSION=3.0.0\n"), 0o600))
	t.Chdir(dir)

	t.Setenv("CONFIG_PATH", "")
	t.Setenv("APP_VERSION", "from-env")
	// registered for cleanup, then cleared so the .env value can fill it
	t.Setenv("WEATHER_USER_AGENT", "")
	require.NoError(t, os.Unsetenv("WEATHER_USER_AGENT"))

	config, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "from-dotenv", config.Weather.UserAgent)
	assert.Equal(t, "from-env", config.App.Version)
	assert.Equal(t, "31,80", config.Weather.GridOffset)
}

func TestNewConfig_WithoutDotEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_PATH", "")

	config, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "weather-charts", config.App.Name)
}

func TestFileConfigProvider_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app: [unterminated"), 0o600))

	_, err := NewFileConfigProvider(path).Load()
	assert.Error(t, err)
}

func TestConfigValidation(t *testing.T) {
	provider := NewFileConfigProvider("config/config.yaml")

	config := defaults()
	assert.NoError(t, provider.Validate(config))

	invalidConfig := defaults()
	invalidConfig.App.Name = ""
	err := provider.Validate(invalidConfig)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "app.name is required")

	invalidConfig = defaults()
	invalidConfig.Weather.GridOffset = ""
	invalidConfig.Log.Format = "xml"
	err = provider.Validate(invalidConfig)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weather.grid_offset is required")
	assert.Contains(t, err.Error(), "log.format")

	invalidConfig = defaults()
	invalidConfig.Weather.RateLimit = 2
	invalidConfig.Weather.Burst = 0
	assert.Error(t, provider.Validate(invalidConfig))
}

func TestConfigHelperMethods(t *testing.T) {
	config := &Config{App: AppConfig{Env: "development"}, Server: ServerConfig{Port: "8081"}}

	assert.True(t, config.IsDevelopment())
	assert.False(t, config.IsProduction())
	assert.Equal(t, ":8081", config.Addr())
}

func TestFileConfigProvider_LoadFromFile(t *testing.T) {
	provider := NewFileConfigProvider("nonexistent.yaml")
	config := &Config{}

	// Test loading from non-existent file (should not error)
	err := provider.loadFromFile(config)
	assert.NoError(t, err)
}

func TestNewConfigWithProvider(t *testing.T) {
	mockProvider := &MockConfigProvider{config: defaults()}
	mockProvider.config.App.Name = "test-app"

	config, err := NewConfigWithProvider(mockProvider)
	require.NoError(t, err)
	assert.Equal(t, "test-app", config.App.Name)

	_, err = NewConfigWithProvider(&MockConfigProvider{err: errors.New("load failed")})
	assert.Error(t, err)
}

func TestConfigFileLoading(t *testing.T) {
	// The checked-in file lives next to this test.
	config, err := NewConfigWithProvider(NewFileConfigProvider("config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "weather-charts", config.App.Name)
	assert.Equal(t, "31,80", config.Weather.GridOffset)
	assert.NotEmpty(t, config.Weather.UserAgent)
}

// MockConfigProvider for testing
type MockConfigProvider struct {
	config *Config
	err    error
}

func (m *MockConfigProvider) Load() (*Config, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.config, nil
}

func (m *MockConfigProvider) Validate(config *Config) error {
	return nil
}
