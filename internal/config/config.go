// Package config resolves runtime settings from flags, CAREERFIT_*
// environment variables, an optional YAML config file and a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/abhisek/careerfit/internal/logging"
)

// EnvPrefix namespaces environment overrides, e.g. CAREERFIT_LOG_LEVEL.
const EnvPrefix = "CAREERFIT"

// Config is the resolved application configuration.
type Config struct {
	DB      string    `mapstructure:"db"`
	History bool      `mapstructure:"history"`
	Catalog string    `mapstructure:"catalog"`
	Log     LogConfig `mapstructure:"log"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// Logging converts the log section for the logging package.
func (c *Config) Logging() logging.Config {
	return logging.Config{Level: c.Log.Level, Format: c.Log.Format, File: c.Log.File}
}

// LoadOptions controls where Load looks for settings.
type LoadOptions struct {
	// ConfigFile is an explicit config path. When empty, config.yaml is
	// looked up in the user config directory and a missing file is fine.
	ConfigFile string

	// EnvFile is loaded into the process environment when present.
	// Defaults to ".env".
	EnvFile string

	// Flags, when set, take precedence over every other source.
	Flags *pflag.FlagSet
}

// flagKeys maps config keys to the persistent flags that override them.
var flagKeys = map[string]string{
	"db":         "db",
	"catalog":    "catalog",
	"log.level":  "log-level",
	"log.format": "log-format",
	"log.file":   "log-file",
}

// Load resolves the configuration. Precedence is flag, environment, config
// file, then defaults.
func Load(opts LoadOptions) (*Config, error) {
	if err := loadEnvFile(opts.EnvFile); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", opts.ConfigFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "careerfit"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	if opts.Flags != nil {
		if err := bindFlags(v, opts.Flags); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks enumerated values.
func (c *Config) Validate() error {
	if !slices.Contains(logging.Levels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("log.level must be one of %s, got %q", strings.Join(logging.Levels, ", "), c.Log.Level)
	}
	if !slices.Contains(logging.Formats, c.Log.Format) {
		return fmt.Errorf("log.format must be one of %s, got %q", strings.Join(logging.Formats, ", "), c.Log.Format)
	}
	return nil
}

// setDefaults registers every key so AutomaticEnv can see it on Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("db", "")
	v.SetDefault("history", true)
	v.SetDefault("catalog", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for key, name := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag --%s: %w", name, err)
		}
	}
	// --no-history only ever turns persistence off.
	if f := flags.Lookup("no-history"); f != nil && f.Changed && f.Value.String() == "true" {
		v.Set("history", false)
	}
	return nil
}

func loadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
