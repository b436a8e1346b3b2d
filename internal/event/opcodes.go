package event

import (
	"strconv"
	"strings"
)

// fallbackOpName is used for operation codes not present in the table.
const fallbackOpName = "Call Contract"

// opcodeNames maps known contract operation codes to display names.
// Read-only after init.
var opcodeNames = map[uint32]string{
	0x00000000: "Text Comment",
	0x0f8a7ea5: "Jetton Transfer",
	0x178d4519: "Jetton Internal Transfer",
	0x5fcc3d14: "NFT Transfer",
	0x05138d91: "SFX Deposit",
	0xd53276db: "Excesses",
}

// resolveOpName maps a raw operation string to a display name. The raw value
// is untrusted: it may be a hex code, a decimal code, or free text. Anything
// that does not resolve to a known code gets the generic label.
func resolveOpName(operation string) string {
	op := strings.TrimSpace(operation)
	if op == "" {
		return fallbackOpName
	}

	base := 10
	if rest, ok := cutHexPrefix(op); ok {
		op = rest
		base = 16
	}
	code, err := strconv.ParseUint(op, base, 32)
	if err != nil {
		return fallbackOpName
	}
	if name, ok := opcodeNames[uint32(code)]; ok {
		return name
	}
	return fallbackOpName
}

func cutHexPrefix(op string) (string, bool) {
	if rest, ok := strings.CutPrefix(op, "0x"); ok {
		return rest, true
	}
	return strings.CutPrefix(op, "0X")
}
