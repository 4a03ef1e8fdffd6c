package history

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"tracker/internal/entities"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Repository - write-only архив журнала статусов. Источник истины живет
// в памяти, архив нужен для офлайн-аналитики и разбора инцидентов.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// InsertBatch пишет пачку записей журнала одним стейтментом.
// Повторная вставка той же пары (order_id, sequence) игнорируется:
// после сбоя архивации батч может приехать второй раз.
func (r *Repository) InsertBatch(ctx context.Context, entries []entities.StatusHistoryEntry) error {
	if len(entries) == 0 {
		return nil
	}

	builder := qb.
		Insert("status_history").
		Columns("order_id", "sequence", "old_status", "new_status", "actor_id", "occurred_at", "note", "latitude", "longitude")

	for i := range entries {
		model := FromDomain(&entries[i])
		builder = builder.Values(
			model.OrderID,
			model.Sequence,
			model.OldStatus,
			model.NewStatus,
			model.ActorID,
			model.OccurredAt,
			model.Note,
			model.Latitude,
			model.Longitude,
		)
	}

	builder = builder.Suffix("ON CONFLICT (order_id, sequence) DO NOTHING")

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected history repository insert error: %w", err)
	}

	_, err = r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected history repository insert error: %w", err)
	}

	return nil
}
