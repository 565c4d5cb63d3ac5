package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/dshills/sheetdiff/internal/changes"
)

// Sentinel errors.
var (
	ErrUnknownKey      = errors.New("unknown config key")
	ErrInvalidFormat   = errors.New("invalid output format")
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrInvalidTimeout  = errors.New("timeoutSeconds must be positive")
)

const envPrefix = "SHEETDIFF"

// Formats accepted by the output layer.
var validFormats = []string{"text", "markdown", "md", "json"}

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Config represents the sheetdiff configuration.
type Config struct {
	ServerURL      string      `json:"serverUrl" mapstructure:"serverUrl"`
	Token          string      `json:"-" mapstructure:"token"`
	Format         string      `json:"format" mapstructure:"format"`
	Filter         string      `json:"filter" mapstructure:"filter"`
	InlineDiff     bool        `json:"inlineDiff" mapstructure:"inlineDiff"`
	TimeoutSeconds int         `json:"timeoutSeconds" mapstructure:"timeoutSeconds"`
	Cache          CacheConfig `json:"cache" mapstructure:"cache"`
	Log            LogConfig   `json:"log" mapstructure:"log"`
	Serve          ServeConfig `json:"serve" mapstructure:"serve"`
}

// CacheConfig controls caching of fetched change payloads.
type CacheConfig struct {
	Enabled    bool   `json:"enabled" mapstructure:"enabled"`
	Dir        string `json:"dir,omitempty" mapstructure:"dir"`
	TTLSeconds int    `json:"ttlSeconds" mapstructure:"ttlSeconds"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level string `json:"level" mapstructure:"level"`
	JSON  bool   `json:"json" mapstructure:"json"`
}

// ServeConfig controls the preview server.
type ServeConfig struct {
	Addr string `json:"addr" mapstructure:"addr"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		ServerURL:      "http://localhost:8080/api",
		Format:         "text",
		Filter:         string(changes.FilterAll),
		TimeoutSeconds: 30,
		Cache: CacheConfig{
			Enabled:    true,
			TTLSeconds: 3600,
		},
		Log:   LogConfig{Level: "warn"},
		Serve: ServeConfig{Addr: "127.0.0.1:2427"},
	}
}

// envBindings maps config keys to their environment variables.
var envBindings = map[string]string{
	"serverUrl":        "SERVER_URL",
	"token":            "TOKEN",
	"format":           "FORMAT",
	"filter":           "FILTER",
	"inlineDiff":       "INLINE_DIFF",
	"timeoutSeconds":   "TIMEOUT_SECONDS",
	"cache.enabled":    "CACHE_ENABLED",
	"cache.dir":        "CACHE_DIR",
	"cache.ttlSeconds": "CACHE_TTL_SECONDS",
	"log.level":        "LOG_LEVEL",
	"log.json":         "LOG_JSON",
	"serve.addr":       "SERVE_ADDR",
}

// ConfigDir returns the platform-appropriate config directory for sheetdiff.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "sheetdiff"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "cannot determine home directory")
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "sheetdiff"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "sheetdiff"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "sheetdiff"), nil
	default:
		return filepath.Join(home, ".config", "sheetdiff"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags; only flags the user set belong in it.
func Load(overrides map[string]any) (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	return LoadFrom(path, overrides)
}

// LoadFrom is Load with an explicit config file path. A missing file is not
// an error.
func LoadFrom(path string, overrides map[string]any) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	for key, env := range envBindings {
		if err := v.BindEnv(key, envPrefix+"_"+env); err != nil {
			return Config{}, errors.Wrapf(err, "binding env for %s", key)
		}
	}

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrap(err, "reading config file")
		}
	} else if !os.IsNotExist(err) {
		return Config{}, errors.Wrap(err, "reading config file")
	}

	for key, val := range overrides {
		v.Set(key, val)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parsing config")
	}
	if err := Validate(cfg); err != nil {
		return Config{}, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("serverUrl", d.ServerURL)
	v.SetDefault("token", "")
	v.SetDefault("format", d.Format)
	v.SetDefault("filter", d.Filter)
	v.SetDefault("inlineDiff", d.InlineDiff)
	v.SetDefault("timeoutSeconds", d.TimeoutSeconds)
	v.SetDefault("cache.enabled", d.Cache.Enabled)
	v.SetDefault("cache.dir", d.Cache.Dir)
	v.SetDefault("cache.ttlSeconds", d.Cache.TTLSeconds)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.json", d.Log.JSON)
	v.SetDefault("serve.addr", d.Serve.Addr)
}

// Validate checks values that have a closed set of options.
func Validate(cfg Config) error {
	if !slices.Contains(validFormats, cfg.Format) {
		return errors.Wrapf(ErrInvalidFormat, "%q", cfg.Format)
	}
	if _, err := changes.ParseFilter(cfg.Filter); err != nil {
		return err
	}
	if !slices.Contains(validLogLevels, cfg.Log.Level) {
		return errors.Wrapf(ErrInvalidLogLevel, "%q", cfg.Log.Level)
	}
	if cfg.TimeoutSeconds <= 0 {
		return errors.Wrapf(ErrInvalidTimeout, "got %d", cfg.TimeoutSeconds)
	}
	return nil
}

// LoadFile reads the config file at path over the defaults. A missing file
// yields the defaults. Environment and flags are not applied.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, errors.Wrap(err, "reading config file")
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parsing config file")
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories. The token is never
// written.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "creating config directory")
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}
	return os.WriteFile(path, data, 0o644)
}

// Keys lists every key SetField accepts.
func Keys() []string {
	keys := make([]string, 0, len(envBindings))
	for k := range envBindings {
		if k != "token" {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}

// SetField sets a single config field by key name.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "serverUrl":
		cfg.ServerURL = value
	case "format":
		cfg.Format = value
	case "filter":
		f, err := changes.ParseFilter(value)
		if err != nil {
			return err
		}
		cfg.Filter = string(f)
	case "inlineDiff":
		return setBool(&cfg.InlineDiff, key, value)
	case "timeoutSeconds":
		return setInt(&cfg.TimeoutSeconds, key, value)
	case "cache.enabled":
		return setBool(&cfg.Cache.Enabled, key, value)
	case "cache.dir":
		cfg.Cache.Dir = value
	case "cache.ttlSeconds":
		return setInt(&cfg.Cache.TTLSeconds, key, value)
	case "log.level":
		cfg.Log.Level = value
	case "log.json":
		return setBool(&cfg.Log.JSON, key, value)
	case "serve.addr":
		cfg.Serve.Addr = value
	default:
		return errors.Wrap(ErrUnknownKey, key)
	}
	return nil
}

func setInt(dst *int, key, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return errors.Wrapf(err, "%s must be an integer", key)
	}
	*dst = n
	return nil
}

func setBool(dst *bool, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return errors.Wrapf(err, "%s must be true or false", key)
	}
	*dst = b
	return nil
}
