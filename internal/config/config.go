// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"github.com/jeranaias/memchat-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete memchat configuration.
type Config struct {
	Server  ServerConfig  `toml:"server" json:"server"`
	UI      UIConfig      `toml:"ui" json:"ui"`
	Logging LoggingConfig `toml:"logging" json:"logging"`
}

// ServerConfig describes the chat backend.
type ServerConfig struct {
	// URL is the backend root, e.g. http://localhost:5001
	URL string `toml:"url" json:"url"`
	// Timeout bounds each request
	Timeout Duration `toml:"timeout" json:"timeout"`
}

// UIConfig contains presentation settings. All of them can change while the
// TUI is running.
type UIConfig struct {
	// Title is shown in the header
	Title string `toml:"title" json:"title"`
	// TimeFormat is a Go time layout for message timestamps
	TimeFormat string `toml:"time_format" json:"time_format"`
	// Markdown renders assistant replies with glamour
	Markdown bool `toml:"markdown" json:"markdown"`
	// Locale is a BCP 47 tag used for number formatting
	Locale string `toml:"locale" json:"locale"`
	// Mouse enables wheel scrolling in the TUI
	Mouse bool `toml:"mouse" json:"mouse"`
}

// LoggingConfig controls the structured log file.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error
	Level string `toml:"level" json:"level"`
	// Format is json or text
	Format string `toml:"format" json:"format"`
	// File overrides the default ~/.memchat/logs/memchat.log
	File string `toml:"file" json:"file"`
}

// Duration is a time.Duration that reads and writes as "30s" in both TOML and JSON.
type Duration struct {
	time.Duration
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			URL:     "http://localhost:5001",
			Timeout: Duration{30 * time.Second},
		},
		UI: UIConfig{
			Title:      "Memory-Enhanced Assistant",
			TimeFormat: "03:04 PM",
			Markdown:   false,
			Locale:     "en",
			Mouse:      true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the memchat configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".memchat"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Resolve returns the file Load would read: explicit if set, otherwise the
// first existing default location, otherwise the default TOML path.
func Resolve(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	tomlPath, err := ConfigPathTOML()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(tomlPath); err == nil {
		return tomlPath, nil
	}
	jsonPath, err := ConfigPathJSON()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(jsonPath); err == nil {
		return jsonPath, nil
	}
	return tomlPath, nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from path, or from the default locations when
// path is empty. A missing default file is not an error; a missing explicit
// file is. Environment overrides are applied last, then the result is
// validated.
func Load(path string) (*Config, error) {
	resolved, err := Resolve(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if _, statErr := os.Stat(resolved); statErr == nil {
		if err := decodeFile(cfg, resolved); err != nil {
			return nil, err
		}
	} else if path != "" {
		return nil, fmt.Errorf("config file %s: %w", path, statErr)
	}

	return finish(cfg)
}

// LoadFromPath loads configuration from a specific file with full validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := decodeFile(cfg, path); err != nil {
		return nil, err
	}
	return finish(cfg)
}

func finish(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func decodeFile(cfg *Config, path string) error {
	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
		return nil
	}
	if err := LoadTOML(cfg, path); err != nil {
		return fmt.Errorf("failed to load TOML config from %s: %w", path, err)
	}
	return nil
}

// LoadTOML decodes a TOML file over cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON decodes a JSON file over cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// fillDefaults fills in any values a file blanked out.
func (c *Config) fillDefaults() {
	defaults := Default()

	if c.Server.URL == "" {
		c.Server.URL = defaults.Server.URL
	}
	if c.Server.Timeout.Duration == 0 {
		c.Server.Timeout = defaults.Server.Timeout
	}
	if c.UI.Title == "" {
		c.UI.Title = defaults.UI.Title
	}
	if c.UI.TimeFormat == "" {
		c.UI.TimeFormat = defaults.UI.TimeFormat
	}
	if c.UI.Locale == "" {
		c.UI.Locale = defaults.UI.Locale
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaults.Logging.Format
	}
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save writes the configuration as TOML to path.
func Save(cfg *Config, path string) error {
	data, err := cfg.TOML()
	if err != nil {
		return err
	}
	if err := util.AtomicWriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// TOML renders the configuration with a short header comment.
func (c *Config) TOML() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("# memchat configuration file\n")
	buf.WriteString("# Environment variables MEMCHAT_* override these values.\n\n")

	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if u, err := url.Parse(c.Server.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, ValidationError{
			Field:   "server.url",
			Message: fmt.Sprintf("must be an absolute http(s) URL, got %q", c.Server.URL),
		})
	}

	if c.Server.Timeout.Duration <= 0 {
		errs = append(errs, ValidationError{
			Field:   "server.timeout",
			Message: "must be positive",
		})
	}

	if _, err := language.Parse(c.UI.Locale); err != nil {
		errs = append(errs, ValidationError{
			Field:   "ui.locale",
			Message: fmt.Sprintf("invalid language tag %q", c.UI.Locale),
		})
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: debug, info, warn, error", c.Logging.Level),
		})
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("invalid format '%s', must be one of: json, text", c.Logging.Format),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - MEMCHAT_SERVER_URL: overrides server.url
//   - MEMCHAT_TIMEOUT: overrides server.timeout (Go duration, e.g. "45s")
//   - MEMCHAT_LOG_LEVEL: overrides logging.level
//   - MEMCHAT_LOG_FILE: overrides logging.file
//   - MEMCHAT_MARKDOWN: "1"/"true" enables markdown rendering
//
// Unparseable values are ignored.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("MEMCHAT_SERVER_URL"); v != "" {
		c.Server.URL = v
	}
	if v := os.Getenv("MEMCHAT_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Server.Timeout = Duration{d}
		}
	}
	if v := os.Getenv("MEMCHAT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("MEMCHAT_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	if v := os.Getenv("MEMCHAT_MARKDOWN"); v != "" {
		c.UI.Markdown = v == "1" || strings.EqualFold(v, "true")
	}
}

// ErrNoConfigFile is returned by Watch when there is nothing to watch.
var ErrNoConfigFile = errors.New("no config file to watch")
