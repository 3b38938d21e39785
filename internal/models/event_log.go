package models

import "time"

// EventLog is a best-effort journal entry for a transaction's lifecycle
// (received, duplicate absorbed, settled, settlement anomaly). It is
// observability only; nothing reads it back on the hot path.
type EventLog struct {
	ID            string    `json:"id"`
	TransactionID string    `json:"transaction_id"`
	Action        string    `json:"action"`
	Detail        string    `json:"detail,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
