package storage

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"tonwise/internal/model"
)

func TestJsonlStorageAppendsRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "interpretations.jsonl")
	sink := NewJsonlStorage(path)

	first := []model.InterpretationRecord{{
		EventID: "ev1",
		EventInterpretation: model.EventInterpretation{
			Action:    "TON Transfer",
			Direction: model.DirectionIn,
			Sender:    "A",
			Currency:  "TON",
		},
	}}
	second := []model.InterpretationRecord{{
		EventID: "ev2",
		EventInterpretation: model.EventInterpretation{
			Action:    "Contract Deploy",
			Direction: model.DirectionNeutral,
			Sender:    "Unknown",
			Currency:  "TON",
		},
	}}

	if err := sink.PutInterpretationBatch(first); err != nil {
		t.Fatalf("first batch failed: %v", err)
	}
	if err := sink.PutInterpretationBatch(second); err != nil {
		t.Fatalf("second batch failed: %v", err)
	}
	if err := sink.PutInterpretationBatch(nil); err != nil {
		t.Fatalf("empty batch must be a no-op: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer file.Close()

	var ids []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var record model.InterpretationRecord
		if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
			t.Fatalf("line not valid JSON: %v", err)
		}
		ids = append(ids, record.EventID)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scan: %v", err)
	}

	if len(ids) != 2 || ids[0] != "ev1" || ids[1] != "ev2" {
		t.Fatalf("unexpected records: %v", ids)
	}
}
