package tracking

import (
	"context"
	"fmt"
	"sync"

	"tracker/internal/entities"
	"tracker/internal/service/reconciler"
	"tracker/pkg/logger"
)

type Config struct {
	AssumedSpeedKmh float64
	EventBuffer     int
}

// Manager владеет реконсайлерами по заказам. События разных заказов
// обрабатываются независимыми реконсайлерами (никакого общего мутабельного
// состояния между заказами), события одного заказа - строго последовательно.
type Manager struct {
	cfg      Config
	ledger   reconciler.Ledger
	query    reconciler.QueryGateway
	identity reconciler.IdentityProvider
	log      trackingLogger

	// runCtx живет дольше любого запроса: горутины Run реконсайлеров
	// привязаны к жизненному циклу приложения, а не к HTTP-запросу
	runCtx context.Context

	mu     sync.Mutex
	orders map[string]*trackedOrder
	closed bool
}

type trackedOrder struct {
	rec    *reconciler.Reconciler
	cancel context.CancelFunc
}

func NewManager(
	ctx context.Context,
	cfg Config,
	ledgerService reconciler.Ledger,
	query reconciler.QueryGateway,
	identity reconciler.IdentityProvider,
	log trackingLogger,
) *Manager {
	return &Manager{
		cfg:      cfg,
		ledger:   ledgerService,
		query:    query,
		identity: identity,
		log:      log,
		runCtx:   ctx,
		orders:   make(map[string]*trackedOrder),
	}
}

// Dispatch направляет событие push-канала реконсайлеру его заказа,
// создавая реконсайлер при первом событии.
func (m *Manager) Dispatch(ctx context.Context, ev entities.RealtimeEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ev.OrderID == "" {
		return fmt.Errorf("%w: missing order id", reconciler.ErrMalformedEvent)
	}

	rec, err := m.reconcilerFor(ev.OrderID)
	if err != nil {
		return err
	}
	return rec.Enqueue(ev)
}

// Track возвращает текущий снапшот заказа, начиная отслеживание при
// первом обращении.
func (m *Manager) Track(ctx context.Context, orderID string) (entities.TrackingSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return entities.TrackingSnapshot{}, err
	}

	rec, err := m.reconcilerFor(orderID)
	if err != nil {
		return entities.TrackingSnapshot{}, err
	}
	return rec.Snapshot(), nil
}

// OpenView открывает view model поверх реконсайлера заказа.
func (m *Manager) OpenView(orderID string) (*ViewModel, error) {
	rec, err := m.reconcilerFor(orderID)
	if err != nil {
		return nil, err
	}
	return NewViewModel(rec), nil
}

// ConnectionLost помечает снапшоты всех отслеживаемых заказов как stale.
// Данные при этом не сбрасываются.
func (m *Manager) ConnectionLost() {
	m.broadcast(entities.EventConnectionLost)
}

// ConnectionRestored запускает по одной полной ресинхронизации на заказ.
func (m *Manager) ConnectionRestored() {
	m.broadcast(entities.EventConnectionRestored)
}

// CloseOrder прекращает отслеживание заказа и освобождает его реконсайлер.
func (m *Manager) CloseOrder(orderID string) {
	m.mu.Lock()
	tracked, ok := m.orders[orderID]
	delete(m.orders, orderID)
	m.mu.Unlock()

	if ok {
		tracked.rec.Close()
		tracked.cancel()
	}
}

func (m *Manager) Close() {
	m.mu.Lock()
	m.closed = true
	orders := m.orders
	m.orders = make(map[string]*trackedOrder)
	m.mu.Unlock()

	for _, tracked := range orders {
		tracked.rec.Close()
		tracked.cancel()
	}
}

func (m *Manager) reconcilerFor(orderID string) (*reconciler.Reconciler, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, reconciler.ErrClosed
	}

	if tracked, ok := m.orders[orderID]; ok {
		return tracked.rec, nil
	}

	rec := reconciler.New(reconciler.Config{
		OrderID:         orderID,
		AssumedSpeedKmh: m.cfg.AssumedSpeedKmh,
		EventBuffer:     m.cfg.EventBuffer,
	}, m.ledger, m.query, m.identity, m.log)

	runCtx, cancel := context.WithCancel(m.runCtx)
	m.orders[orderID] = &trackedOrder{rec: rec, cancel: cancel}

	m.log.With(logger.NewField("order", orderID)).Info("tracking started")
	go rec.Run(runCtx)

	return rec, nil
}

func (m *Manager) broadcast(eventType entities.EventType) {
	m.mu.Lock()
	recs := make([]*trackedOrder, 0, len(m.orders))
	orderIDs := make([]string, 0, len(m.orders))
	for orderID, tracked := range m.orders {
		recs = append(recs, tracked)
		orderIDs = append(orderIDs, orderID)
	}
	m.mu.Unlock()

	for i, tracked := range recs {
		err := tracked.rec.Enqueue(entities.RealtimeEvent{
			Type:    eventType,
			OrderID: orderIDs[i],
		})
		if err != nil {
			m.log.With(
				logger.NewField("order", orderIDs[i]),
				logger.NewField("error", err),
			).Warn("connectivity broadcast skipped")
		}
	}
}
