package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tonwise/internal/model"
)

// Store provides Postgres persistence for interpretation records.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// UpsertInterpretations inserts or updates interpretation records keyed by
// event id.
func (s *Store) UpsertInterpretations(ctx context.Context, records []model.InterpretationRecord) error {
	if len(records) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, record := range records {
		batch.Queue(`
			INSERT INTO event_interpretations (
				event_id, event_ts, action, direction, description, is_scam_risk, sender, amount, currency, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
			ON CONFLICT (event_id)
			DO UPDATE SET
				event_ts = EXCLUDED.event_ts,
				action = EXCLUDED.action,
				direction = EXCLUDED.direction,
				description = EXCLUDED.description,
				is_scam_risk = EXCLUDED.is_scam_risk,
				sender = EXCLUDED.sender,
				amount = EXCLUDED.amount,
				currency = EXCLUDED.currency,
				updated_at = now()
		`,
			record.EventID,
			record.Timestamp,
			record.Action,
			string(record.Direction),
			record.Description,
			record.IsScamRisk,
			record.Sender,
			record.Amount.String(),
			record.Currency,
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range records {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}
