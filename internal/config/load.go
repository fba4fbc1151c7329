package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Load builds the configuration in priority order:
//  1. Defaults
//  2. explicitPath when set, otherwise the user config file followed by
//     the project file (tada.toml or .tada.toml in the working dir)
//  3. Environment variables
//
// Flags are applied afterwards with ApplyFlags.
func Load(explicitPath string) (Config, error) {
	cfg := Defaults()

	if explicitPath != "" {
		p := expandPath(explicitPath)
		if err := loadConfigFile(&cfg, p); err != nil {
			return cfg, fmt.Errorf("loading config file %s: %w", p, err)
		}
	} else {
		for _, p := range []string{findUserConfigFile(), findProjectConfigFile()} {
			if p == "" {
				continue
			}
			if err := loadConfigFile(&cfg, p); err != nil {
				return cfg, fmt.Errorf("loading config file %s: %w", p, err)
			}
		}
	}

	if err := loadFromEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, fmt.Errorf("environment: %w", err)
	}
	finalize(&cfg)
	return cfg, nil
}

func loadConfigFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, 0, len(undec))
		for _, k := range undec {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	cfg.File = path
	return nil
}

// loadFromEnv overrides cfg from TADA_* variables.
func loadFromEnv(cfg *Config, lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	var errs []error
	if v, ok := get("TADA_API_URL"); ok {
		cfg.APIURL = v
	}
	if v, ok := get("TADA_USER_ID"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("TADA_USER_ID: not a number: %q", v))
		} else {
			cfg.UserID = n
		}
	}
	if v, ok := get("TADA_SOURCE"); ok {
		cfg.Source = v
	}
	if v, ok := get("TADA_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("TADA_TIMEOUT: %w", err))
		} else {
			cfg.Timeout = d
		}
	}
	if v, ok := get("TADA_THEME"); ok {
		cfg.Theme = v
	}
	if v, ok := get("TADA_NO_COLOR"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("TADA_NO_COLOR: %w", err))
		} else {
			cfg.NoColor = b
		}
	}
	if _, ok := lookup("NO_COLOR"); ok {
		cfg.NoColor = true
	}
	if v, ok := get("TADA_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := get("TADA_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	return errors.Join(errs...)
}

func finalize(cfg *Config) {
	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.APIURL = strings.TrimRight(strings.TrimSpace(cfg.APIURL), "/")
	if cfg.Source != "" {
		cfg.Source = expandPath(cfg.Source)
	}
	if cfg.LogFile == "" {
		cfg.LogFile = DefaultLogPath()
	} else {
		cfg.LogFile = expandPath(cfg.LogFile)
	}
}
