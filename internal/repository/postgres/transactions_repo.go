package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/ecakir/webhook-processor/internal/models"
	"github.com/ecakir/webhook-processor/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type transactionsRepo struct{ pool *pgxpool.Pool }

func (r *transactionsRepo) Insert(ctx context.Context, tx models.Transaction) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO transactions (
		   transaction_id, source_account, destination_account, amount, currency, status, created_at
		 ) VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		tx.TransactionID, tx.SourceAccount, tx.DestinationAccount, tx.Amount, tx.Currency, tx.Status, tx.CreatedAt,
	)
	if isUniqueViolation(err) {
		return repository.ErrDuplicateKey
	}
	return err
}

func (r *transactionsRepo) GetByID(ctx context.Context, transactionID string) (models.Transaction, error) {
	var tx models.Transaction
	err := r.pool.QueryRow(ctx,
		`SELECT transaction_id, source_account, destination_account, amount, currency, status, created_at, processed_at
		   FROM transactions
		  WHERE transaction_id=$1`,
		transactionID,
	).Scan(&tx.TransactionID, &tx.SourceAccount, &tx.DestinationAccount, &tx.Amount, &tx.Currency, &tx.Status, &tx.CreatedAt, &tx.ProcessedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Transaction{}, repository.ErrNotFound
	}
	return tx, err
}

func (r *transactionsRepo) MarkProcessed(ctx context.Context, transactionID string, processedAt time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE transactions SET status=$2, processed_at=$3 WHERE transaction_id=$1`,
		transactionID, models.TxnProcessed, processedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// unique_violation, per Postgres error codes
const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
