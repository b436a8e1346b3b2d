package model

// InterpretError records an event line that could not be read.
type InterpretError struct {
	Line    int    `json:"line"`
	EventID string `json:"event_id,omitempty"`
	Error   string `json:"error"`
}
