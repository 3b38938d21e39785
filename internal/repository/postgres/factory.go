package postgres

import (
	repo "github.com/ecakir/webhook-processor/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	Transactions repo.Transactions
	EventLogs    repo.EventLogs
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Transactions: &transactionsRepo{pool},
		EventLogs:    &eventLogsRepo{pool},
	}
}
