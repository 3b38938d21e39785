package models

import "time"

type TransactionStatus string

const (
	TxnProcessing TransactionStatus = "PROCESSING"
	TxnProcessed  TransactionStatus = "PROCESSED"
)

// Transaction is the single durable record of a received webhook. The
// transaction_id is the caller-supplied key; the store enforces its
// uniqueness. Status moves PROCESSING -> PROCESSED once and never back,
// and ProcessedAt is set exactly when that transition happens.
type Transaction struct {
	TransactionID      string            `json:"transaction_id"`
	SourceAccount      string            `json:"source_account"`
	DestinationAccount string            `json:"destination_account"`
	Amount             float64           `json:"amount"`
	Currency           string            `json:"currency"`
	Status             TransactionStatus `json:"status"`
	CreatedAt          time.Time         `json:"created_at"`
	ProcessedAt        *time.Time        `json:"processed_at,omitempty"`
}
