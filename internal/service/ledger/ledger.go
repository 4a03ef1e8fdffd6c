package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tracker/internal/entities"
)

// Ledger - append-only история переходов статусов по заказам.
// Записи никогда не мутируются и не удаляются, head кешируется как
// NewStatus последней записи. Успешные записи дополнительно попадают
// в очередь архивации (Drain/Requeue), которую разгребает фоновая задача.
type Ledger struct {
	mu      sync.Mutex
	orders  map[string][]entities.StatusHistoryEntry
	pending []entities.StatusHistoryEntry
}

func New() *Ledger {
	return &Ledger{
		orders: make(map[string][]entities.StatusHistoryEntry),
	}
}

type AppendRequest struct {
	OrderID   string
	NewStatus entities.OrderStatusType
	ActorID   string
	Note      *string
	GeoTag    *entities.GeoPoint
}

// Append валидирует переход против таблицы переходов по текущему head
// заказа и дописывает запись со следующим номером. Повторный Append того же
// статуса, что уже в head - no-op, возвращается существующая головная запись
// (защита от replay событий). Нелегальный переход возвращает
// ErrInvalidTransition, не меняя историю.
func (l *Ledger) Append(ctx context.Context, req AppendRequest) (*entities.StatusHistoryEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entries := l.orders[req.OrderID]
	head := headOf(entries)

	if head == req.NewStatus && len(entries) > 0 {
		existing := entries[len(entries)-1]
		return &existing, nil
	}

	// head == NewStatus при пустой истории - это первая запись pending,
	// ее пропускаем мимо таблицы переходов
	if head != req.NewStatus && !entities.IsLegalTransition(head, req.NewStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, head, req.NewStatus)
	}

	entry := l.record(entries, req, head)
	return &entry, nil
}

// Rebase дописывает статус в обход таблицы переходов. Путь для событий
// удаленного источника и ресинхронизации: удаленный источник авторитетен
// для статуса, даже когда локальный head с ним расходится.
func (l *Ledger) Rebase(ctx context.Context, req AppendRequest) (*entities.StatusHistoryEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entries := l.orders[req.OrderID]
	if head := headOf(entries); head == req.NewStatus && len(entries) > 0 {
		existing := entries[len(entries)-1]
		return &existing, nil
	}

	entry := l.record(entries, req, headOf(entries))
	return &entry, nil
}

// HeadStatus - текущий статус заказа, pending если записей еще нет.
func (l *Ledger) HeadStatus(orderID string) entities.OrderStatusType {
	l.mu.Lock()
	defer l.mu.Unlock()

	return headOf(l.orders[orderID])
}

// History возвращает копию истории заказа по возрастанию Sequence.
func (l *Ledger) History(orderID string) []entities.StatusHistoryEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := l.orders[orderID]
	history := make([]entities.StatusHistoryEntry, len(entries))
	copy(history, entries)
	return history
}

// Drain забирает до max записей из очереди архивации.
func (l *Ledger) Drain(max int) []entities.StatusHistoryEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	if max <= 0 || len(l.pending) == 0 {
		return nil
	}
	if max > len(l.pending) {
		max = len(l.pending)
	}

	batch := make([]entities.StatusHistoryEntry, max)
	copy(batch, l.pending[:max])
	l.pending = l.pending[max:]
	return batch
}

// Requeue возвращает неархивированные записи в начало очереди.
func (l *Ledger) Requeue(entries []entities.StatusHistoryEntry) {
	if len(entries) == 0 {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.pending = append(append([]entities.StatusHistoryEntry{}, entries...), l.pending...)
}

func (l *Ledger) record(entries []entities.StatusHistoryEntry, req AppendRequest, head entities.OrderStatusType) entities.StatusHistoryEntry {
	entry := entities.StatusHistoryEntry{
		OrderID:    req.OrderID,
		Sequence:   int64(len(entries)) + 1,
		NewStatus:  req.NewStatus,
		ActorID:    req.ActorID,
		OccurredAt: time.Now().UTC(),
		Note:       req.Note,
		GeoTag:     req.GeoTag,
	}
	if len(entries) > 0 || head != req.NewStatus {
		oldStatus := head
		entry.OldStatus = &oldStatus
	}

	l.orders[req.OrderID] = append(entries, entry)
	l.pending = append(l.pending, entry)
	return entry
}

func validateRequest(req AppendRequest) error {
	if !isValidOrderID(req.OrderID) {
		return ErrInvalidOrderID
	}
	if !req.NewStatus.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, req.NewStatus)
	}
	return nil
}

func headOf(entries []entities.StatusHistoryEntry) entities.OrderStatusType {
	if len(entries) == 0 {
		return entities.DefaultOrderStatus
	}
	return entries[len(entries)-1].NewStatus
}
