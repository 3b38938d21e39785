package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ecakir/webhook-processor/internal/models"
)

var (
	// ErrDuplicateKey signals that an insert hit the unique constraint on
	// transaction_id. Callers treat it as idempotent success, not failure.
	ErrDuplicateKey = errors.New("duplicate transaction_id")

	// ErrNotFound signals that no record exists for the queried id.
	ErrNotFound = errors.New("transaction not found")
)

type Transactions interface {
	// Insert atomically creates the record. The store's uniqueness
	// constraint is the sole arbiter of "is this new": a second insert for
	// the same transaction_id fails with ErrDuplicateKey and leaves the
	// existing record untouched.
	Insert(ctx context.Context, tx models.Transaction) error

	GetByID(ctx context.Context, transactionID string) (models.Transaction, error)

	// MarkProcessed unconditionally sets status=PROCESSED and processed_at,
	// returning the number of rows modified (0 or 1). A zero count means
	// the record is missing or was already flipped; it is not an error.
	MarkProcessed(ctx context.Context, transactionID string, processedAt time.Time) (int64, error)
}

type EventLogs interface {
	Create(ctx context.Context, l models.EventLog) error
}
