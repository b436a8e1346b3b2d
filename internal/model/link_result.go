package model

import "github.com/shopspring/decimal"

// PayloadKind classifies the binary payload carried by a transfer link.
type PayloadKind string

const (
	PayloadContractCall PayloadKind = "contract_call"
	PayloadStateInit    PayloadKind = "state_init"
	PayloadBoth         PayloadKind = "both"
)

// LinkParseResult is the validated interpretation of a transfer deep link.
// Destination is non-empty iff Valid is true. Warning may be set on a valid
// result when a non-fatal anomaly was observed.
type LinkParseResult struct {
	Valid       bool            `json:"valid"`
	Destination string          `json:"destination,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Comment     string          `json:"comment,omitempty"`
	HasPayload  bool            `json:"has_payload"`
	PayloadKind PayloadKind     `json:"payload_kind,omitempty"`
	Warning     string          `json:"warning,omitempty"`
}
