// Package config reads an optional TOML configuration file controlling
// rendering and trace-log behavior, the way dekarrin/tunaq's world
// data files are unmarshaled with toml.Unmarshal into a plain struct.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the CLI's optional settings. The zero value is not the
// default configuration; start from Default (as Load does) so unset
// fields keep their default values.
type Config struct {
	Color     bool   `toml:"color"`
	TableWrap int    `toml:"table_wrap"`
	TraceLog  string `toml:"trace_log"`
}

// Default is the configuration used when no config file is given.
func Default() Config {
	return Config{
		Color:     true,
		TableWrap: 100,
		TraceLog:  "",
	}
}

// Load reads and unmarshals a TOML config file at path, starting from
// Default so unset keys retain their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
