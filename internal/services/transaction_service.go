package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ecakir/webhook-processor/internal/api/validate"
	"github.com/ecakir/webhook-processor/internal/metrics"
	"github.com/ecakir/webhook-processor/internal/models"
	repo "github.com/ecakir/webhook-processor/internal/repository"
	"github.com/ecakir/webhook-processor/internal/worker"
)

// TransactionService implements the intake gate and the settlement path.
// The two share no in-memory state; every coordination point is the store,
// and the unique constraint on transaction_id is the only duplicate guard.
type TransactionService struct {
	trx    repo.Transactions
	events repo.EventLogs
	wp     *worker.Pool
	delay  time.Duration
}

func NewTransactionService(t repo.Transactions, e repo.EventLogs, wp *worker.Pool, delay time.Duration) *TransactionService {
	return &TransactionService{trx: t, events: e, wp: wp, delay: delay}
}

// WebhookRequest is the inbound webhook body.
type WebhookRequest struct {
	TransactionID      string  `json:"transaction_id"`
	SourceAccount      string  `json:"source_account"`
	DestinationAccount string  `json:"destination_account"`
	Amount             float64 `json:"amount"`
	Currency           string  `json:"currency"`
}

func (r WebhookRequest) Validate() error {
	var errs validate.Errs
	for _, e := range []*validate.ErrField{
		validate.Required("transaction_id", r.TransactionID),
		validate.Required("source_account", r.SourceAccount),
		validate.Required("destination_account", r.DestinationAccount),
		validate.Positive("amount", r.Amount),
		validate.ExactLen("currency", r.Currency, 3),
	} {
		if e != nil {
			errs = append(errs, *e)
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Accept validates the webhook, records it exactly once and schedules
// settlement for newly created records. Duplicate deliveries are absorbed:
// no second record, no second worker, same acknowledgment. The bool reports
// whether a record was created.
func (s *TransactionService) Accept(ctx context.Context, req WebhookRequest) (bool, error) {
	if err := req.Validate(); err != nil {
		metrics.WebhooksTotal.WithLabelValues("rejected").Inc()
		return false, err
	}

	tx := models.Transaction{
		TransactionID:      req.TransactionID,
		SourceAccount:      req.SourceAccount,
		DestinationAccount: req.DestinationAccount,
		Amount:             req.Amount,
		Currency:           req.Currency,
		Status:             models.TxnProcessing,
		CreatedAt:          time.Now().UTC(),
	}

	err := s.trx.Insert(ctx, tx)
	if errors.Is(err, repo.ErrDuplicateKey) {
		slog.Info("duplicate webhook absorbed", "transaction_id", tx.TransactionID)
		metrics.WebhooksTotal.WithLabelValues("duplicate").Inc()
		s.logEvent(tx.TransactionID, "duplicate", "webhook redelivered, record unchanged")
		return false, nil
	}
	if err != nil {
		metrics.WebhooksTotal.WithLabelValues("error").Inc()
		return false, err
	}

	slog.Info("transaction recorded", "transaction_id", tx.TransactionID, "amount", tx.Amount, "currency", tx.Currency)
	metrics.WebhooksTotal.WithLabelValues("created").Inc()
	s.logEvent(tx.TransactionID, "received", "webhook accepted for settlement")

	s.dispatch(tx.TransactionID)
	return true, nil
}

// GetByID returns the current record verbatim; the status field may lag an
// in-flight settlement.
func (s *TransactionService) GetByID(ctx context.Context, transactionID string) (models.Transaction, error) {
	return s.trx.GetByID(ctx, transactionID)
}

// dispatch arms the settlement timer. The delay runs on the timer, not on a
// pool slot, so a sleeping settlement never starves another one; only the
// store update occupies a worker.
func (s *TransactionService) dispatch(transactionID string) {
	time.AfterFunc(s.delay, func() {
		s.wp.Submit(func() { s.settle(transactionID) })
	})
}

// settle flips exactly one record to PROCESSED. It is fire-and-forget and
// best-effort: every failure is terminal to this settlement only, logged and
// never retried.
func (s *TransactionService) settle(transactionID string) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("settlement panic", "transaction_id", transactionID, "err", rec)
		}
	}()

	n, err := s.trx.MarkProcessed(context.Background(), transactionID, time.Now().UTC())
	if err != nil {
		slog.Error("settlement update failed", "transaction_id", transactionID, "err", err)
		metrics.SettlementsFailed.Inc()
		return
	}
	if n == 0 {
		// Record missing or already flipped. Non-fatal, no retry.
		slog.Warn("settlement found no record to update", "transaction_id", transactionID)
		metrics.SettlementAnomalies.Inc()
		s.logEvent(transactionID, "settlement_anomaly", "update modified zero records")
		return
	}

	slog.Info("transaction settled", "transaction_id", transactionID)
	metrics.SettlementsTotal.Inc()
	s.logEvent(transactionID, "settled", "status set to PROCESSED")
}

// logEvent writes the lifecycle journal. Best-effort: failures are logged
// and swallowed, they never affect intake or settlement.
func (s *TransactionService) logEvent(transactionID, action, detail string) {
	if s.events == nil {
		return
	}
	err := s.events.Create(context.Background(), models.EventLog{
		TransactionID: transactionID,
		Action:        action,
		Detail:        detail,
	})
	if err != nil {
		slog.Warn("event log write failed", "transaction_id", transactionID, "action", action, "err", err)
	}
}
