// Package config resolves tada settings from defaults, TOML files,
// TADA_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/Makepad-fr/tada/internal/api"
)

const (
	DefaultTimeout  = 10 * time.Second
	DefaultTheme    = "classic"
	DefaultLogLevel = "info"
)

// ErrNoUserID means no user id was configured; nothing can be fetched.
var ErrNoUserID = errors.New("user id is not set")

// Config is the effective configuration.
type Config struct {
	APIURL   string        `toml:"api_url"`
	UserID   int           `toml:"user_id"`
	Source   string        `toml:"source"` // optional JSON file used instead of the API
	Timeout  time.Duration `toml:"timeout"`
	Theme    string        `toml:"theme"`
	NoColor  bool          `toml:"no_color"`
	LogFile  string        `toml:"log_file"`
	LogLevel string        `toml:"log_level"`

	// File is the config file that was read last, if any.
	File string `toml:"-"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		APIURL:   api.DefaultBaseURL,
		Timeout:  DefaultTimeout,
		Theme:    DefaultTheme,
		LogLevel: DefaultLogLevel,
	}
}

// Validate checks the values a front-end needs before it can start.
// A missing user id is reported as ErrNoUserID so callers can show a hint
// instead of a failure.
func (c Config) Validate() error {
	var errs []error
	if c.UserID < 0 {
		errs = append(errs, fmt.Errorf("user id must be positive, got %d", c.UserID))
	}
	if c.Source == "" {
		u, err := url.Parse(c.APIURL)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("api url: %w", err))
		case u.Scheme != "http" && u.Scheme != "https", u.Host == "":
			errs = append(errs, fmt.Errorf("api url %q: want http(s)://host[/path]", c.APIURL))
		}
	}
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", c.Timeout))
	}
	switch strings.ToLower(c.Theme) {
	case "classic", "neon", "mono":
	default:
		errs = append(errs, fmt.Errorf("unknown theme %q (classic, neon, mono)", c.Theme))
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	if c.UserID == 0 {
		return ErrNoUserID
	}
	return nil
}
