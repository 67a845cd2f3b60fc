// Package config resolves runtime settings from flags, INVESTIDATA_*
// environment variables and an optional YAML config file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	// Forensic workstations often lack a zoneinfo database.
	_ "time/tzdata"

	"github.com/spf13/viper"
	"github.com/ukaji3/investidata-go/pkg/investidata"
	"github.com/ukaji3/investidata-go/pkg/investidata/facts"
	"github.com/ukaji3/investidata-go/pkg/investidata/lexicon"
)

// EnvPrefix prefixes every environment override, e.g. INVESTIDATA_TOP_N.
const EnvPrefix = "INVESTIDATA"

// Keys
const (
	KeyTopN        = "top-n"
	KeyLogLevel    = "log-level"
	KeyFoldAccents = "fold-accents"
	KeyTables      = "tables"
	KeyTimezone    = "timezone"
	KeyTopic       = "topic"
)

// Config is the effective runtime configuration.
type Config struct {
	// TopN bounds ranked tables.
	TopN int
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// FoldAccents makes sheet and column matching ignore diacritics.
	FoldAccents bool
	// TablesPath is a YAML keyword table file merged over the defaults.
	TablesPath string
	// Timezone interprets timestamps without a zone, e.g. "America/Bogota".
	Timezone string
	// Topic is the view rendered by default.
	Topic string
}

// New returns a viper instance with defaults and environment binding.
// configPath names a YAML file to read; when empty, ./investidata.yaml
// and the user config directory are searched and a missing file is fine.
func New(configPath string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyTopN, facts.DefaultTopN)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyFoldAccents, false)
	v.SetDefault(KeyTables, "")
	v.SetDefault(KeyTimezone, "")
	v.SetDefault(KeyTopic, "summary")

	if configPath == "" {
		configPath = findConfigFile()
		if configPath == "" {
			slog.Debug("no config file found; using defaults and environment")
			return v, nil
		}
	}
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	slog.Debug("loaded config", "path", v.ConfigFileUsed())
	return v, nil
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	candidates := []string{"investidata.yaml"}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "investidata", "config.yaml"))
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// FromViper reads the effective configuration out of v.
func FromViper(v *viper.Viper) Config {
	return Config{
		TopN:        v.GetInt(KeyTopN),
		LogLevel:    v.GetString(KeyLogLevel),
		FoldAccents: v.GetBool(KeyFoldAccents),
		TablesPath:  v.GetString(KeyTables),
		Timezone:    v.GetString(KeyTimezone),
		Topic:       v.GetString(KeyTopic),
	}
}

// Tables returns the keyword tables: the defaults, or TablesPath merged
// over them.
func (c Config) Tables() (lexicon.Tables, error) {
	if c.TablesPath == "" {
		return lexicon.Default(), nil
	}
	return lexicon.Load(c.TablesPath)
}

// Options builds analysis options from the configuration.
func (c Config) Options() (investidata.Options, error) {
	opts := investidata.DefaultOptions()
	opts.TopN = c.TopN
	opts.FoldAccents = c.FoldAccents

	tables, err := c.Tables()
	if err != nil {
		return opts, err
	}
	opts.Tables = &tables

	if c.Timezone != "" {
		loc, err := time.LoadLocation(c.Timezone)
		if err != nil {
			return opts, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
		}
		opts.Location = loc
	}
	return opts, nil
}
