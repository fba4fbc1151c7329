package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	appDir         = "tada"
	configFileName = "config.toml"
)

var projectConfigFiles = []string{"tada.toml", ".tada.toml"}

// findUserConfigFile returns <user config dir>/tada/config.toml if it exists.
func findUserConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(dir, appDir, configFileName)
	if fileExists(p) {
		return p
	}
	return ""
}

func findProjectConfigFile() string {
	for _, name := range projectConfigFiles {
		if fileExists(name) {
			if abs, err := filepath.Abs(name); err == nil {
				return abs
			}
			return name
		}
	}
	return ""
}

// DefaultLogPath is $XDG_STATE_HOME/tada/tada.log, else ~/.tada/tada.log.
func DefaultLogPath() string {
	if state := os.Getenv("XDG_STATE_HOME"); state != "" {
		return filepath.Join(state, appDir, "tada.log")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "tada.log")
	}
	return filepath.Join(home, ".tada", "tada.log")
}

// expandPath expands environment variables and a leading ~.
func expandPath(p string) string {
	if p == "" {
		return p
	}
	expanded := os.ExpandEnv(p)
	if expanded == "~" || strings.HasPrefix(expanded, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return expanded
		}
		return filepath.Join(home, strings.TrimPrefix(expanded[1:], "/"))
	}
	return expanded
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
