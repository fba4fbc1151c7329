package config

import (
	"github.com/spf13/pflag"
)

// Flag names shared by every command.
const (
	FlagConfig   = "config"
	FlagAPIURL   = "api-url"
	FlagUserID   = "user-id"
	FlagSource   = "source"
	FlagTimeout  = "timeout"
	FlagTheme    = "theme"
	FlagNoColor  = "no-color"
	FlagLogFile  = "log-file"
	FlagLogLevel = "log-level"
)

// RegisterFlags adds the configuration flags to fs. Defaults shown in help
// are the built-in ones; only flags the user actually sets override
// file and environment values.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Defaults()
	fs.String(FlagConfig, "", "config file (default: user config dir, then ./tada.toml)")
	fs.String(FlagAPIURL, d.APIURL, "todos API base URL")
	fs.Int(FlagUserID, 0, "user whose todos are listed")
	fs.String(FlagSource, "", "read todos from a JSON file instead of the API")
	fs.Duration(FlagTimeout, d.Timeout, "request timeout")
	fs.String(FlagTheme, d.Theme, "color theme: classic, neon, mono")
	fs.Bool(FlagNoColor, false, "disable colors")
	fs.String(FlagLogFile, "", "log file (default "+DefaultLogPath()+")")
	fs.String(FlagLogLevel, d.LogLevel, "log level: debug, info, warn, error")
}

// ApplyFlags copies explicitly set flags onto cfg.
func ApplyFlags(cfg *Config, fs *pflag.FlagSet) error {
	var err error
	set := func(name string, apply func() error) {
		if err != nil || !fs.Changed(name) {
			return
		}
		err = apply()
	}

	set(FlagAPIURL, func() (e error) { cfg.APIURL, e = fs.GetString(FlagAPIURL); return })
	set(FlagUserID, func() (e error) { cfg.UserID, e = fs.GetInt(FlagUserID); return })
	set(FlagSource, func() (e error) { cfg.Source, e = fs.GetString(FlagSource); return })
	set(FlagTimeout, func() (e error) { cfg.Timeout, e = fs.GetDuration(FlagTimeout); return })
	set(FlagTheme, func() (e error) { cfg.Theme, e = fs.GetString(FlagTheme); return })
	set(FlagNoColor, func() (e error) { cfg.NoColor, e = fs.GetBool(FlagNoColor); return })
	set(FlagLogFile, func() (e error) { cfg.LogFile, e = fs.GetString(FlagLogFile); return })
	set(FlagLogLevel, func() (e error) { cfg.LogLevel, e = fs.GetString(FlagLogLevel); return })
	if err != nil {
		return err
	}
	finalize(cfg)
	return nil
}
