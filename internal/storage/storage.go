package storage

import "tonwise/internal/model"

// Storage defines a sink for interpretation records.
type Storage interface {
	PutInterpretationBatch(records []model.InterpretationRecord) error
}
