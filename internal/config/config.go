// Package config loads fitplan settings from an optional YAML file, an
// optional .env file and the environment, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "config.yaml"

var insecureSecretKeys = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
}

type Database struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
	DSN    string `yaml:"dsn"`
}

type Config struct {
	Port                    string   `yaml:"port"`
	LogMode                 string   `yaml:"logMode"`
	SecretKey               string   `yaml:"secretKey"`
	CookieSecure            bool     `yaml:"cookieSecure"`
	Timezone                string   `yaml:"timezone"`
	DefaultLanguage         string   `yaml:"defaultLanguage"`
	Database                Database `yaml:"database"`
	RedisAddr               string   `yaml:"redisAddr"`
	RedisPassword           string   `yaml:"redisPassword"`
	LoginRateLimitPerMinute int      `yaml:"loginRateLimitPerMinute"`
	PromptPayMobile         string   `yaml:"promptPayMobile"`
}

func Defaults() Config {
	return Config{
		Port:            "8080",
		LogMode:         "development",
		Timezone:        "Asia/Bangkok",
		DefaultLanguage: "en",
		Database: Database{
			Driver: "sqlite",
			Path:   filepath.Join("data", "fitplan.db"),
		},
		LoginRateLimitPerMinute: 5,
		PromptPayMobile:         "0812345678",
	}
}

// Load reads path (DefaultPath when empty; a missing default file is not an
// error), applies environment overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Defaults()

	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDotEnv loads the given files into the process environment without
// overriding variables that are already set. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Port, "PORT", "FITPLAN_PORT")
	setString(&cfg.LogMode, "FITPLAN_LOG_MODE")
	setString(&cfg.SecretKey, "SECRET_KEY", "FITPLAN_SECRET_KEY")
	setString(&cfg.Timezone, "TZ", "FITPLAN_TIMEZONE")
	setString(&cfg.DefaultLanguage, "FITPLAN_DEFAULT_LANGUAGE")
	setString(&cfg.Database.Driver, "FITPLAN_DB_DRIVER")
	setString(&cfg.Database.Path, "DB_PATH", "FITPLAN_DB_PATH")
	setString(&cfg.Database.DSN, "DATABASE_URL", "FITPLAN_DB_DSN")
	setString(&cfg.RedisAddr, "REDIS_ADDR", "FITPLAN_REDIS_ADDR")
	setString(&cfg.RedisPassword, "REDIS_PASSWORD", "FITPLAN_REDIS_PASSWORD")
	setString(&cfg.PromptPayMobile, "FITPLAN_PROMPTPAY_MOBILE")

	if value, ok := lookup("COOKIE_SECURE", "FITPLAN_COOKIE_SECURE"); ok {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("config: invalid cookie secure flag %q", value)
		}
		cfg.CookieSecure = parsed
	}
	if value, ok := lookup("FITPLAN_LOGIN_RATE_LIMIT"); ok {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("config: invalid login rate limit %q", value)
		}
		cfg.LoginRateLimitPerMinute = parsed
	}
	return nil
}

// lookup returns the last non-empty variable among keys, so prefixed names
// win over the generic ones listed before them.
func lookup(keys ...string) (string, bool) {
	value, found := "", false
	for _, key := range keys {
		if raw := strings.TrimSpace(os.Getenv(key)); raw != "" {
			value, found = raw, true
		}
	}
	return value, found
}

func setString(target *string, keys ...string) {
	if value, ok := lookup(keys...); ok {
		*target = value
	}
}

func (cfg Config) Validate() error {
	if err := validateSecretKey(cfg.SecretKey); err != nil {
		return err
	}
	port, err := strconv.Atoi(strings.TrimSpace(cfg.Port))
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("config: invalid port %q", cfg.Port)
	}
	switch cfg.Database.Driver {
	case "sqlite":
		if strings.TrimSpace(cfg.Database.Path) == "" {
			return errors.New("config: database.path is required for sqlite (set in config.yaml or DB_PATH)")
		}
	case "postgres":
		if strings.TrimSpace(cfg.Database.DSN) == "" {
			return errors.New("config: database.dsn is required for postgres (set in config.yaml or DATABASE_URL)")
		}
	default:
		return fmt.Errorf("config: unsupported database driver %q", cfg.Database.Driver)
	}
	if cfg.LoginRateLimitPerMinute < 1 {
		return errors.New("config: loginRateLimitPerMinute must be > 0")
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return fmt.Errorf("config: invalid timezone %q", cfg.Timezone)
	}
	if mobile := cfg.PromptPayMobile; mobile != "" && (len(mobile) != 10 || strings.Trim(mobile, "0123456789") != "") {
		return errors.New("config: promptPayMobile must be 10 digits")
	}
	return nil
}

func (cfg Config) Location() *time.Location {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return time.UTC
	}
	return location
}

func validateSecretKey(secret string) error {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return errors.New("config: secretKey is required (set in config.yaml or SECRET_KEY)")
	}
	if _, insecure := insecureSecretKeys[strings.ToLower(secret)]; insecure {
		return errors.New("config: secretKey uses an insecure placeholder value")
	}
	if len(secret) < 32 {
		return errors.New("config: secretKey must be at least 32 characters")
	}
	return nil
}
