package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tonwise/internal/config"
	"tonwise/internal/deeplink"
)

func runLink(cmd *cobra.Command, args []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadLink(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	parser := deeplink.NewParser(deeplink.Config{GatewayMap: cfg.GatewayMap})

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	var valid, flagged int
	for _, raw := range args {
		result := parser.Parse(raw)
		if result.Valid {
			valid++
		}
		if result.Warning != "" {
			flagged++
			logger.Warn("link anomaly",
				zap.Bool("valid", result.Valid),
				zap.String("warning", result.Warning),
			)
		}
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
	}

	logger.Info("link parse complete",
		zap.Int("total", len(args)),
		zap.Int("valid", valid),
		zap.Int("flagged", flagged),
	)

	return nil
}
