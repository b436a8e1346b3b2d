package model

import (
	"bytes"
	"encoding/json"
)

// LooseNumber carries a numeric field exactly as the indexer sent it.
// Indexers emit these as JSON numbers, numeric strings, or garbage;
// unmarshaling never fails, and the interpreter decides what parses.
type LooseNumber string

func (n *LooseNumber) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*n = LooseNumber(s)
		return nil
	}
	*n = LooseNumber(bytes.TrimSpace(data))
	return nil
}

func (n LooseNumber) String() string {
	return string(n)
}
