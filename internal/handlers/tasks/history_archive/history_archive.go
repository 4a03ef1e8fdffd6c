package history_archive

import (
	"context"
	"time"

	"tracker/internal/entities"
	"tracker/pkg/logger"
)

type Ledger interface {
	Drain(max int) []entities.StatusHistoryEntry
	Requeue(entries []entities.StatusHistoryEntry)
}

type Repository interface {
	InsertBatch(ctx context.Context, entries []entities.StatusHistoryEntry) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// HistoryArchive периодически сливает очередь журнала статусов в Postgres.
// При ошибке записи батч возвращается в очередь и уедет на следующем тике.
type HistoryArchive struct {
	log       logger.Logger
	ledger    Ledger
	repo      Repository
	txManager TxManager
	interval  time.Duration
	batchSize int
}

func NewHistoryArchive(
	log logger.Logger,
	ledger Ledger,
	repo Repository,
	txManager TxManager,
	interval time.Duration,
	batchSize int,
) *HistoryArchive {
	return &HistoryArchive{
		log:       log,
		ledger:    ledger,
		repo:      repo,
		txManager: txManager,
		interval:  interval,
		batchSize: batchSize,
	}
}

func (h *HistoryArchive) TTL() time.Duration {
	return h.interval
}

func (h *HistoryArchive) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, h.interval)
	defer cancel()

	batch := h.ledger.Drain(h.batchSize)
	if len(batch) == 0 {
		return nil
	}

	err := h.txManager.Do(ctxWithTimeout, func(ctx context.Context) error {
		return h.repo.InsertBatch(ctx, batch)
	})
	if err != nil {
		h.ledger.Requeue(batch)
		return err
	}

	h.log.With(
		logger.NewField("archived", len(batch)),
	).Info("history archive")

	return nil
}

func (h *HistoryArchive) Info() string {
	return "history archive"
}
