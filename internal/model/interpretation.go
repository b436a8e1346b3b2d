package model

import "github.com/shopspring/decimal"

// Direction relates an event to the reference wallet.
type Direction string

const (
	DirectionIn      Direction = "in"
	DirectionOut     Direction = "out"
	DirectionNeutral Direction = "neutral"
)

// EventInterpretation is the display-safe reading of a transaction event.
// Description is always defanged before it reaches a caller.
type EventInterpretation struct {
	Action      string          `json:"action"`
	Direction   Direction       `json:"direction"`
	Description string          `json:"description"`
	IsScamRisk  bool            `json:"is_scam_risk"`
	Sender      string          `json:"sender"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
}

// InterpretationRecord pairs an interpretation with its source event for
// storage sinks.
type InterpretationRecord struct {
	EventID   string `json:"event_id,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"`
	EventInterpretation
}
