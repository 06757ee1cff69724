package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigFileEnv names the optional YAML file layered between defaults and
// environment variables.
const ConfigFileEnv = "ECOROUTE_CONFIG"

type Config struct {
	App      *AppConfig      `yaml:"app"`
	AI       *AIConfig       `yaml:"ai"`
	Maps     *MapsConfig     `yaml:"maps"`
	Redis    *RedisConfig    `yaml:"redis"`
	Security *SecurityConfig `yaml:"security"`
}

type AppConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Environment string `yaml:"environment"`
	Port        int    `yaml:"port"`
	Host        string `yaml:"host"`
	Debug       bool   `yaml:"debug"`
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`
	LogOutput   string `yaml:"log_output"`
	Timezone    string `yaml:"timezone"`
}

type SecurityConfig struct {
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
	TrustedProxies     []string `yaml:"trusted_proxies"`
}

// Load builds the configuration with the precedence defaults < YAML file < environment.
// A .env file in the working directory is read first when present.
func Load() (*Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	config := defaultConfig()

	if path := os.Getenv(ConfigFileEnv); path != "" {
		if err := loadFile(path, config); err != nil {
			return nil, err
		}
	}

	config.applyEnvOverrides()

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func defaultConfig() *Config {
	return &Config{
		App: &AppConfig{
			Name:        "EcoRoute",
			Version:     "1.0.0",
			Environment: "development",
			Port:        8080,
			Host:        "0.0.0.0",
			Debug:       true,
			LogLevel:    "info",
			LogFormat:   "text",
			LogOutput:   "stdout",
			Timezone:    "UTC",
		},
		AI:    defaultAIConfig(),
		Maps:  defaultMapsConfig(),
		Redis: defaultRedisConfig(),
		Security: &SecurityConfig{
			CORSAllowedOrigins: []string{"*"},
			TrustedProxies:     []string{},
		},
	}
}

func loadFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("parse config file %q: %w", path, err)
	}
	config.fillDefaults()
	return nil
}

// fillDefaults restores sections a YAML null left unset.
func (c *Config) fillDefaults() {
	defaults := defaultConfig()
	if c.App == nil {
		c.App = defaults.App
	}
	if c.AI == nil {
		c.AI = defaults.AI
	}
	if c.Maps == nil {
		c.Maps = defaults.Maps
	}
	if c.Maps.GoogleMaps == nil {
		c.Maps.GoogleMaps = defaults.Maps.GoogleMaps
	}
	if c.Redis == nil {
		c.Redis = defaults.Redis
	}
	if c.Security == nil {
		c.Security = defaults.Security
	}
}

func (c *Config) applyEnvOverrides() {
	loadAppConfig(c.App)
	loadAIConfig(c.AI)
	loadMapsConfig(c.Maps)
	loadRedisConfig(c.Redis)
	loadSecurityConfig(c.Security)
}

func (c *Config) validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("invalid APP_PORT %d", c.App.Port)
	}
	if c.AI.Temperature < 0 || c.AI.Temperature > 2 {
		return fmt.Errorf("invalid AI_TEMPERATURE %.2f: must be within [0, 2]", c.AI.Temperature)
	}
	if c.AI.RequestTimeout < 0 {
		return fmt.Errorf("invalid AI_REQUEST_TIMEOUT %s", c.AI.RequestTimeout)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (a *AppConfig) Addr() string {
	return fmt.Sprintf("%s:%d", a.Host, a.Port)
}

func loadAppConfig(app *AppConfig) {
	app.Name = getEnv("APP_NAME", app.Name)
	app.Version = getEnv("APP_VERSION", app.Version)
	app.Environment = getEnv("APP_ENV", app.Environment)
	app.Port = getEnvAsInt("APP_PORT", app.Port)
	app.Host = getEnv("APP_HOST", app.Host)
	app.Debug = getEnvAsBool("APP_DEBUG", app.Debug)
	app.LogLevel = getEnv("LOG_LEVEL", app.LogLevel)
	app.LogFormat = getEnv("LOG_FORMAT", app.LogFormat)
	app.LogOutput = getEnv("LOG_OUTPUT", app.LogOutput)
	app.Timezone = getEnv("APP_TIMEZONE", app.Timezone)
}

func loadSecurityConfig(sec *SecurityConfig) {
	sec.CORSAllowedOrigins = getEnvAsSlice("CORS_ALLOWED_ORIGINS", sec.CORSAllowedOrigins)
	sec.TrustedProxies = getEnvAsSlice("TRUSTED_PROXIES", sec.TrustedProxies)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func (a *AppConfig) IsProduction() bool {
	return a.Environment == "production"
}

func (a *AppConfig) IsDevelopment() bool {
	return a.Environment == "development"
}
