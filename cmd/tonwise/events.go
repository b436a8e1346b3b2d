package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tonwise/internal/config"
	"tonwise/internal/event"
	"tonwise/internal/model"
	"tonwise/internal/storage"
	"tonwise/internal/storage/postgres"
)

const pgBatchSize = 500

func runEvents(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadEvents(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.In == "" {
		return fmt.Errorf("input path is required")
	}
	if cfg.Out == "" {
		return fmt.Errorf("output path is required")
	}
	if cfg.Errors == "" {
		return fmt.Errorf("errors path is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	interpreter := event.NewInterpreter(event.Config{ScamMarkers: cfg.ScamMarkers})

	var sink storage.Storage = storage.NewJsonlStorage(cfg.Out)

	var store *postgres.Store
	if cfg.PGDSN != "" {
		store, err = postgres.NewStore(ctx, cfg.PGDSN)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer store.Close()
	}

	inputFile, err := os.Open(cfg.In)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer inputFile.Close()

	errWriter, err := newJSONLWriter(cfg.Errors)
	if err != nil {
		return err
	}
	defer errWriter.Close()

	logger.Info("interpret start",
		zap.String("in", cfg.In),
		zap.String("out", cfg.Out),
		zap.String("errors", cfg.Errors),
		zap.String("wallet", cfg.Wallet),
		zap.Bool("pg_enabled", store != nil),
	)

	scanner := bufio.NewScanner(inputFile)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	var total, interpreted, flagged, failed int
	pending := make([]model.InterpretationRecord, 0, pgBatchSize)

	flush := func() error {
		if len(pending) == 0 {
			return nil
		}
		if err := sink.PutInterpretationBatch(pending); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		if store != nil {
			if err := store.UpsertInterpretations(ctx, pending); err != nil {
				return fmt.Errorf("store interpretations: %w", err)
			}
		}
		pending = pending[:0]
		return nil
	}

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		total++

		var raw model.RawEvent
		if err := json.Unmarshal(line, &raw); err != nil {
			failed++
			writeInterpretError(errWriter, model.InterpretError{Line: total, Error: err.Error()})
			continue
		}

		interpretation := interpreter.Interpret(raw, cfg.Wallet)
		interpreted++
		if interpretation.IsScamRisk {
			flagged++
		}

		pending = append(pending, model.InterpretationRecord{
			EventID:             raw.EventID,
			Timestamp:           raw.Timestamp,
			EventInterpretation: interpretation,
		})
		if len(pending) >= pgBatchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan input: %w", err)
	}
	if err := flush(); err != nil {
		return err
	}

	logger.Info("interpret complete",
		zap.Int("total", total),
		zap.Int("interpreted", interpreted),
		zap.Int("scam_flagged", flagged),
		zap.Int("failed", failed),
	)

	return nil
}

type jsonlWriter struct {
	file   *os.File
	writer *bufio.Writer
}

func newJSONLWriter(path string) (*jsonlWriter, error) {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create dir: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	return &jsonlWriter{
		file:   file,
		writer: bufio.NewWriter(file),
	}, nil
}

func (w *jsonlWriter) Write(value interface{}) error {
	line, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if _, err := w.writer.Write(line); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if err := w.writer.WriteByte('\n'); err != nil {
		return fmt.Errorf("write newline: %w", err)
	}
	return nil
}

func (w *jsonlWriter) Close() error {
	if w == nil {
		return nil
	}
	if err := w.writer.Flush(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

func writeInterpretError(writer *jsonlWriter, errRecord model.InterpretError) {
	if writer == nil {
		return
	}
	_ = writer.Write(errRecord)
}
