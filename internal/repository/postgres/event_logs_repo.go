package postgres

import (
	"context"

	"github.com/ecakir/webhook-processor/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type eventLogsRepo struct{ pool *pgxpool.Pool }

func (r *eventLogsRepo) Create(ctx context.Context, l models.EventLog) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO event_logs(id, transaction_id, action, detail) VALUES($1,$2,$3,$4)`,
		l.ID, l.TransactionID, l.Action, l.Detail,
	)
	return err
}
