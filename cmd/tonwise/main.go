package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	root := &cobra.Command{
		Use:          "tonwise",
		Short:        "TON deep-link and event decoder",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	linkCmd := &cobra.Command{
		Use:   "link <uri> [uri...]",
		Short: "Parse transfer deep links into validated intents",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runLink,
	}

	linkCmd.Flags().String("gateway-map", "", "extra mirror-prefix rewrites (comma-separated prefix=canonical)")
	linkCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(linkCmd)

	eventsCmd := &cobra.Command{
		Use:   "events",
		Short: "Interpret indexer events into display-safe descriptions",
		RunE:  runEvents,
	}

	eventsCmd.Flags().String("in", "", "input raw events JSONL")
	eventsCmd.Flags().String("out", "./data/interpretations.jsonl", "output interpretations JSONL")
	eventsCmd.Flags().String("errors", "./data/interpret_errors.jsonl", "interpret errors JSONL")
	eventsCmd.Flags().String("wallet", "", "reference wallet address for direction")
	eventsCmd.Flags().StringSlice("scam-markers", nil, "scam marker substrings (comma-separated, replaces defaults)")
	eventsCmd.Flags().String("pg-dsn", "", "optional Postgres DSN for the interpretation store")
	eventsCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(eventsCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
