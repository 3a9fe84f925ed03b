// Package config provides configuration types, defaults, and loading for the
// lineedit demo host.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/lineedit/internal/log"
)

// Keys used in config files, env, and flags.
const (
	KeyClearOnEnter = "input.clear_on_enter"
	KeyPlaceholder  = "input.placeholder"
	KeyPrompt       = "input.prompt"
	KeyWidth        = "input.width"
	KeyCharLimit    = "input.char_limit"
	KeyDebug        = "debug"
	KeyLogFile      = "log_file"
)

// EnvPrefix is the environment prefix, e.g. LINEEDIT_DEBUG=1.
const EnvPrefix = "LINEEDIT"

// Config holds all configuration options for the demo host.
type Config struct {
	Input   InputConfig `mapstructure:"input" yaml:"input"`
	Debug   bool        `mapstructure:"debug" yaml:"debug"`
	LogFile string      `mapstructure:"log_file" yaml:"log_file"`
}

// InputConfig configures each text input.
type InputConfig struct {
	// ClearOnEnter empties the input after a submission.
	ClearOnEnter bool   `mapstructure:"clear_on_enter" yaml:"clear_on_enter"`
	Placeholder  string `mapstructure:"placeholder" yaml:"placeholder"`
	Prompt       string `mapstructure:"prompt" yaml:"prompt"`
	// Width is the input width in cells including the prompt. 0 follows the
	// terminal width.
	Width int `mapstructure:"width" yaml:"width"`
	// CharLimit caps the text length in characters. 0 means unlimited.
	CharLimit int `mapstructure:"char_limit" yaml:"char_limit"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Input: InputConfig{
			ClearOnEnter: true,
			Placeholder:  "type something…",
			Prompt:       "> ",
			Width:        0,
			CharLimit:    0,
		},
		Debug:   false,
		LogFile: "debug.log",
	}
}

// SetDefaults registers Defaults() on v so lookups of absent keys resolve.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault(KeyClearOnEnter, d.Input.ClearOnEnter)
	v.SetDefault(KeyPlaceholder, d.Input.Placeholder)
	v.SetDefault(KeyPrompt, d.Input.Prompt)
	v.SetDefault(KeyWidth, d.Input.Width)
	v.SetDefault(KeyCharLimit, d.Input.CharLimit)
	v.SetDefault(KeyDebug, d.Debug)
	v.SetDefault(KeyLogFile, d.LogFile)
}

// Load resolves a Config from v.
//
// Absent keys take their defaults. Keys holding a value of the wrong type
// also take their defaults and are logged; a bad value in a config file never
// prevents the host from starting.
func Load(v *viper.Viper) Config {
	d := Defaults()
	return Config{
		Input: InputConfig{
			ClearOnEnter: lookupBool(v, KeyClearOnEnter, d.Input.ClearOnEnter),
			Placeholder:  lookupString(v, KeyPlaceholder, d.Input.Placeholder),
			Prompt:       lookupString(v, KeyPrompt, d.Input.Prompt),
			Width:        lookupNonNegInt(v, KeyWidth, d.Input.Width),
			CharLimit:    lookupNonNegInt(v, KeyCharLimit, d.Input.CharLimit),
		},
		Debug:   lookupBool(v, KeyDebug, d.Debug),
		LogFile: lookupString(v, KeyLogFile, d.LogFile),
	}
}

// ReadFile reads the config file at path into v. A missing file is not an
// error unless required is set.
func ReadFile(v *viper.Viper, path string, required bool) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !required {
			log.Debug(log.CatConfig, "Config file not found, using defaults", "path", path)
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	log.Info(log.CatConfig, "Loaded config", "path", path)
	return nil
}

// WriteDefault writes Defaults() as YAML to path, creating parent
// directories as needed.
func WriteDefault(path string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", path)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(Defaults())
	if err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", path)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", path)
	return nil
}

func lookupBool(v *viper.Viper, key string, def bool) bool {
	raw := v.Get(key)
	if raw == nil {
		return def
	}
	b, err := cast.ToBoolE(raw)
	if err != nil {
		log.Warn(log.CatConfig, "Invalid bool, using default", "key", key, "value", raw, "default", def)
		return def
	}
	return b
}

func lookupString(v *viper.Viper, key string, def string) string {
	raw := v.Get(key)
	if raw == nil {
		return def
	}
	s, err := cast.ToStringE(raw)
	if err != nil {
		log.Warn(log.CatConfig, "Invalid string, using default", "key", key, "value", raw, "default", def)
		return def
	}
	return s
}

func lookupNonNegInt(v *viper.Viper, key string, def int) int {
	raw := v.Get(key)
	if raw == nil {
		return def
	}
	n, err := cast.ToIntE(raw)
	if err != nil || n < 0 {
		log.Warn(log.CatConfig, "Invalid non-negative int, using default", "key", key, "value", raw, "default", def)
		return def
	}
	return n
}
