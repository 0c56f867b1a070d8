package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/meddict/meddict-tui/internal/dictionary"
)

// Environment variables that override the config file.
const (
	EnvAPIKey      = "MEDDICT_API_KEY"
	EnvBaseURL     = "MEDDICT_BASE_URL"
	EnvTimeoutSecs = "MEDDICT_TIMEOUT_SECS"
	EnvLogPath     = "MEDDICT_LOG_PATH"
	EnvLogLevel    = "MEDDICT_LOG_LEVEL"
)

var ErrMissingAPIKey = errors.New("dictionary API key is not configured (set " + EnvAPIKey + ")")

type Config struct {
	API          APIConfig          `json:"api"`
	Autocomplete AutocompleteConfig `json:"autocomplete"`
	LogPath      string             `json:"logPath"`
	LogLevel     string             `json:"logLevel"`
}

type APIConfig struct {
	BaseURL     string `json:"baseURL"`
	Key         string `json:"key"`
	TimeoutSecs int    `json:"timeoutSecs"`
}

type AutocompleteConfig struct {
	MinChars        int `json:"minChars"`
	SuggestionLimit int `json:"suggestionLimit"`
}

// Timeout returns the per-request timeout.
func (a APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSecs) * time.Second
}

// LoadConfig reads the JSON config at path (or the default location), then
// applies environment overrides. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = getDefaultConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return nil, err
	}

	// .env is optional
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.fillDefaults()

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv(EnvAPIKey)); v != "" {
		c.API.Key = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvBaseURL)); v != "" {
		c.API.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTimeoutSecs)); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvTimeoutSecs, v, err)
		}
		c.API.TimeoutSecs = secs
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvLogPath); ok {
		c.LogPath = strings.TrimSpace(v)
	}
	return nil
}

// fillDefaults restores defaults for zero values left by a partial config file.
func (c *Config) fillDefaults() {
	def := DefaultConfig()
	if c.API.BaseURL == "" {
		c.API.BaseURL = def.API.BaseURL
	}
	c.API.BaseURL = strings.TrimRight(c.API.BaseURL, "/")
	if c.API.TimeoutSecs <= 0 {
		c.API.TimeoutSecs = def.API.TimeoutSecs
	}
	// Autocomplete may be made stricter than the defaults, never looser.
	if c.Autocomplete.MinChars < def.Autocomplete.MinChars {
		c.Autocomplete.MinChars = def.Autocomplete.MinChars
	}
	if c.Autocomplete.SuggestionLimit <= 0 || c.Autocomplete.SuggestionLimit > def.Autocomplete.SuggestionLimit {
		c.Autocomplete.SuggestionLimit = def.Autocomplete.SuggestionLimit
	}
}

// Validate reports configuration the application cannot start without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.API.Key) == "" {
		return ErrMissingAPIKey
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("invalid API base URL %q", c.API.BaseURL)
	}
	if _, err := c.MinLogLevel(); err != nil {
		return err
	}
	return nil
}

// MinLogLevel is the configured threshold for the log file.
func (c *Config) MinLogLevel() (dictionary.LogLevel, error) {
	return dictionary.ParseLogLevel(c.LogLevel)
}

func getDefaultConfigPath() string {
	return filepath.Join(DataDir(), "config.json")
}

// DataDir is where meddict keeps its config and log file.
func DataDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".meddict")
}

func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:     "https://www.dictionaryapi.com",
			TimeoutSecs: 15,
		},
		Autocomplete: AutocompleteConfig{
			MinChars:        3,
			SuggestionLimit: 5,
		},
		LogPath:  filepath.Join(DataDir(), "meddict.log"),
		LogLevel: "info",
	}
}
