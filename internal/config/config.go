// Package config defines the top-level CLI grammar. Values come from
// flags, environment variables, and JSON/YAML/TOML config files resolved
// by the main package.
package config

import "github.com/sodam-ime/sodam/internal/cmd"

// LogConfig configures the structured logger and the raw key event trace.
type LogConfig struct {
	Level     string `help:"Log level (trace, debug, info, warn, error)" default:"info" env:"SODAM_LOG_LEVEL"`
	File      string `help:"Also write logs to this file" env:"SODAM_LOG_FILE"`
	EventFile string `help:"Write a raw per-key event trace to this file" env:"SODAM_LOG_EVENT_FILE"`
}

// CLI is the root command structure parsed by Kong.
type CLI struct {
	Config string    `help:"Path to a config file (json, yaml or toml)" env:"SODAM_CONFIG"`
	Log    LogConfig `embed:"" prefix:"log."`

	Replay    cmd.Replay        `cmd:"" help:"Replay a recorded key script and print the resulting text"`
	Demo      cmd.Demo          `cmd:"" help:"Type interactively in the terminal"`
	Listen    cmd.Listen        `cmd:"" help:"Read key events from an input device (Linux only)"`
	ConfigCmd cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration file helpers"`
}
