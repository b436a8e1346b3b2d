package event

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"tonwise/internal/model"
	"tonwise/internal/sanitize"
)

const (
	defaultJettonDecimals = 9
	maxJettonDecimals     = 30
)

const scamSuffix = " [scam indicators detected]"

// defaultScamMarkers flag tokens and comments that promise something for
// nothing. Matched case-insensitively as substrings.
var defaultScamMarkers = []string{"claim", "gift", "subs", "free", "voucher", "airdrop"}

// Config configures interpreter behavior.
type Config struct {
	// ScamMarkers overrides the default marker list. Entries are lowercased.
	ScamMarkers []string
}

// Interpreter turns raw indexer events into display-safe interpretations.
type Interpreter struct {
	scamMarkers []string
}

// NewInterpreter builds an event interpreter.
func NewInterpreter(cfg Config) *Interpreter {
	markers := cfg.ScamMarkers
	if len(markers) == 0 {
		markers = defaultScamMarkers
	}
	cleaned := make([]string, 0, len(markers))
	for _, marker := range markers {
		marker = strings.ToLower(strings.TrimSpace(marker))
		if marker == "" {
			continue
		}
		cleaned = append(cleaned, marker)
	}
	return &Interpreter{scamMarkers: cleaned}
}

// Interpret reads the first action of an event relative to the reference
// wallet. It never panics: faults are absorbed into the description of a
// neutral result. Unrecognized or missing action kinds interpret to the
// default result unchanged.
func (i *Interpreter) Interpret(event model.RawEvent, wallet string) (out model.EventInterpretation) {
	out = defaultInterpretation()
	defer func() {
		if r := recover(); r != nil {
			out = defaultInterpretation()
			out.Description = fmt.Sprintf("interpreter fault: %v", r)
		}
	}()

	if len(event.Actions) == 0 {
		return out
	}

	// Only the primary action is reported; multi-action events degrade to
	// their first entry.
	primary := event.Actions[0]
	switch primary.Type {
	case model.ActionTonTransfer:
		if primary.TonTransfer == nil {
			return out
		}
		return i.tonTransfer(primary.TonTransfer, wallet)
	case model.ActionJettonTransfer:
		if primary.JettonTransfer == nil {
			return out
		}
		return i.jettonTransfer(primary.JettonTransfer, wallet)
	case model.ActionContractDeploy:
		if primary.ContractDeploy == nil {
			return out
		}
		return contractDeploy(primary.ContractDeploy)
	case model.ActionSmartContractExec:
		if primary.SmartContractExec == nil {
			return out
		}
		return smartContractExec(primary.SmartContractExec)
	default:
		return out
	}
}

func defaultInterpretation() model.EventInterpretation {
	return model.EventInterpretation{
		Action:      "Transaction",
		Direction:   model.DirectionNeutral,
		Description: "Interaction",
		Sender:      "Unknown",
		Amount:      decimal.Zero,
		Currency:    "TON",
	}
}

func (i *Interpreter) tonTransfer(t *model.TonTransferAction, wallet string) model.EventInterpretation {
	out := defaultInterpretation()
	out.Action = "TON Transfer"
	out.Amount = amountFromUnits(t.Amount, defaultJettonDecimals)
	if t.Sender.Address != "" {
		out.Sender = t.Sender.Address
	}
	out.Direction = transferDirection(t.Sender.Address, wallet)

	text := resolveComment(t.Comment, t.Payload)
	if text == "" {
		out.Description = "Direct Transfer"
		return out
	}
	out.Description = "Msg: " + text
	if i.matchesScamMarker(text) {
		out.IsScamRisk = true
		out.Description += scamSuffix
	}
	return out
}

func (i *Interpreter) jettonTransfer(j *model.JettonTransferAction, wallet string) model.EventInterpretation {
	out := defaultInterpretation()

	symbol := sanitize.Defang(sanitize.StripNonPrintable(j.Jetton.Symbol))
	if symbol == "" {
		symbol = "TOKEN"
	}

	out.Action = symbol + " Transfer"
	out.Currency = symbol
	out.Amount = amountFromUnits(j.Amount, clampJettonDecimals(j.Jetton.Decimals))
	if j.Sender.Address != "" {
		out.Sender = j.Sender.Address
	}
	out.Direction = transferDirection(j.Sender.Address, wallet)
	out.Description = fmt.Sprintf("Volume: %s %s", out.Amount.String(), symbol)
	if i.matchesScamMarker(symbol) {
		out.IsScamRisk = true
		out.Description += scamSuffix
	}
	return out
}

func contractDeploy(d *model.ContractDeployAction) model.EventInterpretation {
	out := defaultInterpretation()
	out.Action = "Contract Deploy"
	out.Description = "Contract deployment"
	if d.Address != "" {
		out.Description = "Contract deployed at " + sanitize.Defang(sanitize.StripNonPrintable(d.Address))
	}
	return out
}

func smartContractExec(e *model.SmartContractExecAction) model.EventInterpretation {
	out := defaultInterpretation()
	name := resolveOpName(e.Operation)
	out.Action = name

	op := sanitize.Defang(sanitize.StripNonPrintable(e.Operation))
	if op != "" {
		out.Description = fmt.Sprintf("%s (op %s)", name, op)
	} else {
		out.Description = name
	}
	if e.Executor.Address != "" {
		out.Sender = e.Executor.Address
	}
	return out
}

// resolveComment prefers the encoded payload; when it decodes to nothing the
// raw comment is treated as already-plain text. Covers indexers that return
// either shape.
func resolveComment(comment, payload string) string {
	if text := sanitize.DecodeComment(payload); text != "" {
		return text
	}
	if comment == "" {
		return ""
	}
	return sanitize.Defang(sanitize.StripNonPrintable(comment))
}

// transferDirection is out only on a case-sensitive exact match against the
// reference wallet.
func transferDirection(sender, wallet string) model.Direction {
	if sender == wallet {
		return model.DirectionOut
	}
	return model.DirectionIn
}

func (i *Interpreter) matchesScamMarker(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range i.scamMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// amountFromUnits converts a smallest-unit amount into whole coins with an
// exact decimal shift. Unparseable amounts stay zero.
func amountFromUnits(raw model.LooseNumber, decimals int32) decimal.Decimal {
	if raw == "" {
		return decimal.Zero
	}
	value, err := decimal.NewFromString(string(raw))
	if err != nil {
		return decimal.Zero
	}
	return value.Shift(-decimals)
}

// clampJettonDecimals bounds the divisor exponent. Absent, negative,
// non-numeric, or out-of-range values fall back to the default rather than
// saturating, so a hostile exponent costs nothing.
func clampJettonDecimals(raw model.LooseNumber) int32 {
	value, err := strconv.ParseInt(string(raw), 10, 32)
	if err != nil || value < 0 || value > maxJettonDecimals {
		return defaultJettonDecimals
	}
	return int32(value)
}
