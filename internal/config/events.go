package config

import "github.com/spf13/pflag"

// EventsConfig holds configuration for the events command.
type EventsConfig struct {
	In          string
	Out         string
	Errors      string
	Wallet      string
	ScamMarkers []string
	PGDSN       string
	LogLevel    string
}

// LoadEvents merges config file, environment variables, and flags into EventsConfig.
func LoadEvents(cfgFile string, flags *pflag.FlagSet) (EventsConfig, error) {
	v, err := newViper(cfgFile, flags)
	if err != nil {
		return EventsConfig{}, err
	}

	v.SetDefault("out", "./data/interpretations.jsonl")
	v.SetDefault("errors", "./data/interpret_errors.jsonl")
	v.SetDefault("log-level", "info")

	return EventsConfig{
		In:          v.GetString("in"),
		Out:         v.GetString("out"),
		Errors:      v.GetString("errors"),
		Wallet:      v.GetString("wallet"),
		ScamMarkers: getStringSlice(v, "scam-markers"),
		PGDSN:       v.GetString("pg-dsn"),
		LogLevel:    v.GetString("log-level"),
	}, nil
}
