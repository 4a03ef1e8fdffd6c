package reconciler

import (
	"context"
	"errors"
	"sync"
	"time"

	"tracker/internal/entities"
	"tracker/internal/pkg/geo"
	"tracker/internal/service/ledger"
	"tracker/pkg/logger"
	"tracker/pkg/retrier"
	"tracker/pkg/retrier/backoff_adapter"
)

const (
	defaultEventBuffer     = 128
	defaultAssumedSpeedKmh = 30.0

	// политика reconnect/resync: старт 1с, удвоение, потолок 30с, джиттер;
	// ретраим до успеха или отмены контекста
	resyncInitialInterval = 1 * time.Second
	resyncMaxInterval     = 30 * time.Second
	resyncRandomization   = 0.5
	resyncMultiplier      = 2.0

	resyncActorID = "system:resync"
)

type Config struct {
	OrderID         string
	AssumedSpeedKmh float64
	EventBuffer     int

	// Resync позволяет подменить политику ретраев, nil - политика по умолчанию
	Resync retrier.Retrier
}

// Reconciler сливает неупорядоченные, возможно задублированные события
// push-канала с локальным состоянием одного заказа. Все события заказа
// проходят через единственную горутину Run (single-consumer очередь),
// поэтому два перехода статуса одного заказа никогда не валидируются
// конкурентно.
type Reconciler struct {
	orderID  string
	speedKmh float64

	ledger   Ledger
	query    QueryGateway
	identity IdentityProvider
	log      reconcilerLogger
	resync   retrier.Retrier

	events    chan entities.RealtimeEvent
	closed    chan struct{}
	closeOnce sync.Once

	// состояние ниже принадлежит горутине Run
	order          *entities.Order
	latestPos      *entities.PositionSample
	messages       []entities.Message
	maxProgress    float64
	lastSeq        int64
	stale          bool
	unreadOverride *int64

	mu             sync.RWMutex
	snap           entities.TrackingSnapshot
	listeners      map[int64]func(entities.TrackingSnapshot)
	nextListenerID int64
}

func New(cfg Config, ledgerService Ledger, query QueryGateway, identity IdentityProvider, log reconcilerLogger) *Reconciler {
	speed := cfg.AssumedSpeedKmh
	if speed <= 0 {
		speed = defaultAssumedSpeedKmh
	}

	buffer := cfg.EventBuffer
	if buffer <= 0 {
		buffer = defaultEventBuffer
	}

	resync := cfg.Resync
	if resync == nil {
		resync = backoff_adapter.New(retrier.Config{
			InitialInterval: resyncInitialInterval,
			MaxInterval:     resyncMaxInterval,
			MaxElapsedTime:  0,
			Randomization:   resyncRandomization,
			Multiplier:      resyncMultiplier,
		})
	}

	r := &Reconciler{
		orderID:   cfg.OrderID,
		speedKmh:  speed,
		ledger:    ledgerService,
		query:     query,
		identity:  identity,
		resync:    resync,
		events:    make(chan entities.RealtimeEvent, buffer),
		closed:    make(chan struct{}),
		listeners: make(map[int64]func(entities.TrackingSnapshot)),
	}
	r.log = log.With(logger.NewField("order", cfg.OrderID))
	r.snap = entities.TrackingSnapshot{
		Order:     entities.Order{ID: cfg.OrderID, Status: entities.DefaultOrderStatus},
		Stale:     true,
		UpdatedAt: time.Now().UTC(),
	}

	return r
}

// Run - блокирующий цикл обработки событий. Стартует со stale-снапшотом и
// выполняет начальную ресинхронизацию, чтобы получить маршрут и актуальный
// head заказа.
func (r *Reconciler) Run(ctx context.Context) {
	r.stale = true
	r.resynchronize(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.closed:
			return
		case ev := <-r.events:
			r.apply(ctx, ev)
		}
	}
}

// Enqueue ставит событие в очередь заказа. Блокируется при заполненном
// буфере, возвращает ErrClosed после Close.
func (r *Reconciler) Enqueue(ev entities.RealtimeEvent) error {
	select {
	case <-r.closed:
		return ErrClosed
	default:
	}

	select {
	case <-r.closed:
		return ErrClosed
	case r.events <- ev:
		return nil
	}
}

// Snapshot возвращает последний опубликованный снапшот.
func (r *Reconciler) Snapshot() entities.TrackingSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.snap
}

// Subscribe регистрирует подписчика, вызываемого синхронно на каждом
// принятом событии.
func (r *Reconciler) Subscribe(fn func(entities.TrackingSnapshot)) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextListenerID++
	id := r.nextListenerID
	if r.listeners != nil {
		r.listeners[id] = fn
	}
	return id
}

func (r *Reconciler) Unsubscribe(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.listeners, id)
}

// Close останавливает цикл и отписывает всех слушателей. Результаты
// ресинхронизации, прилетевшие после Close, никому не публикуются.
func (r *Reconciler) Close() {
	r.closeOnce.Do(func() {
		close(r.closed)

		r.mu.Lock()
		r.listeners = nil
		r.mu.Unlock()
	})
}

func (r *Reconciler) apply(ctx context.Context, ev entities.RealtimeEvent) {
	switch ev.Type {
	case entities.EventStatusChanged:
		r.applyStatus(ctx, ev)
	case entities.EventPositionPing:
		r.applyPosition(ev)
	case entities.EventMessageInsert, entities.EventMessageUpdate, entities.EventMessageDelete:
		r.applyMessage(ev)
	case entities.EventConnectionLost:
		r.stale = true
		EventsAppliedTotal.WithLabelValues(ev.Type.String()).Inc()
		r.publish()
	case entities.EventConnectionRestored:
		r.resynchronize(ctx)
	default:
		r.discard(ev, discardReasonMalformed, "unknown event type")
	}
}

func (r *Reconciler) applyStatus(ctx context.Context, ev entities.RealtimeEvent) {
	if ev.Status == nil {
		r.discard(ev, discardReasonMalformed, "status event without payload")
		return
	}

	if ev.Sequence > 0 && ev.Sequence <= r.lastSeq {
		r.discard(ev, discardReasonDuplicate, "stale origin sequence")
		return
	}

	head := r.ledger.HeadStatus(r.orderID)
	outOfOrder := ev.Status.OldStatus != nil && *ev.Status.OldStatus != head

	req := ledger.AppendRequest{
		OrderID:   r.orderID,
		NewStatus: ev.Status.NewStatus,
		ActorID:   ev.Status.ActorID,
		Note:      ev.Status.Note,
		GeoTag:    ev.Status.GeoTag,
	}

	entry, err := r.ledger.Append(ctx, req)
	if errors.Is(err, ledger.ErrInvalidTransition) {
		// удаленный источник авторитетен для статуса: локальный head мог
		// устареть, событие не отклоняем, а фиксируем в обход таблицы
		outOfOrder = true
		entry, err = r.ledger.Rebase(ctx, req)
	}
	if err != nil {
		// sequence не сжигаем: at-least-once доставка повторит событие,
		// и повтор не должен отсеяться как дубликат
		r.log.With(logger.NewField("error", err)).Error("apply status event")
		EventsDiscardedTotal.WithLabelValues(discardReasonLedger).Inc()
		return
	}

	if ev.Sequence > 0 {
		r.lastSeq = ev.Sequence
	}

	if outOfOrder {
		StatusOutOfOrderTotal.Inc()
		r.log.With(
			logger.NewField("head", head.String()),
			logger.NewField("event_old", ev.Status.OldStatus),
			logger.NewField("event_new", ev.Status.NewStatus.String()),
		).Warn("status event reconciled out of order")
	}

	if r.order != nil {
		r.order.Status = entry.NewStatus
		if ev.Status.ActorID != "" && r.order.DriverID == nil && entry.NewStatus == entities.OrderAssigned {
			actorID := ev.Status.ActorID
			r.order.DriverID = &actorID
		}
	}

	EventsAppliedTotal.WithLabelValues(ev.Type.String()).Inc()
	r.publish()
}

// applyPosition - last-writer-wins по CapturedAt, а не по порядку прибытия.
func (r *Reconciler) applyPosition(ev entities.RealtimeEvent) {
	if ev.Position == nil {
		r.discard(ev, discardReasonMalformed, "position event without payload")
		return
	}

	if r.latestPos != nil && ev.Position.CapturedAt.Before(r.latestPos.CapturedAt) {
		EventsDiscardedTotal.WithLabelValues(discardReasonStalePosition).Inc()
		return
	}

	pos := *ev.Position
	r.latestPos = &pos
	r.advanceProgress(pos.Point)

	EventsAppliedTotal.WithLabelValues(ev.Type.String()).Inc()
	r.publish()
}

func (r *Reconciler) applyMessage(ev entities.RealtimeEvent) {
	if ev.Message == nil || ev.Message.ID == "" {
		r.discard(ev, discardReasonMalformed, "message event without id")
		return
	}

	idx := -1
	for i := range r.messages {
		if r.messages[i].ID == ev.Message.ID {
			idx = i
			break
		}
	}

	var delta int64
	switch ev.Type {
	case entities.EventMessageInsert:
		// дедупликация по id, replay того же insert - no-op
		if idx < 0 {
			r.messages = append(r.messages, *ev.Message)
			delta = r.unreadWeight(ev.Message)
		}
	case entities.EventMessageUpdate:
		if idx >= 0 {
			delta = r.unreadWeight(ev.Message) - r.unreadWeight(&r.messages[idx])
			r.messages[idx] = *ev.Message
		} else {
			r.messages = append(r.messages, *ev.Message)
			delta = r.unreadWeight(ev.Message)
		}
	case entities.EventMessageDelete:
		if idx >= 0 {
			delta = -r.unreadWeight(&r.messages[idx])
			r.messages = append(r.messages[:idx], r.messages[idx+1:]...)
		}
	}

	r.adjustUnread(delta)
	EventsAppliedTotal.WithLabelValues(ev.Type.String()).Inc()
	r.publish()
}

func (r *Reconciler) unreadWeight(msg *entities.Message) int64 {
	if msg.ReceiverID == r.identity.CurrentUserID() && !msg.Read {
		return 1
	}
	return 0
}

// adjustUnread двигает авторитетный счетчик ресинхронизации на локальную
// дельту треда. Без базы (ресинхронизация еще не прошла) счетчик
// пересчитывается из треда в unreadCount.
func (r *Reconciler) adjustUnread(delta int64) {
	if r.unreadOverride == nil {
		return
	}

	next := *r.unreadOverride + delta
	if next < 0 {
		next = 0
	}
	r.unreadOverride = &next
}

// resynchronize - один полный pull авторитетного состояния с ретраями.
// Stale-флаг снимается только после успешного pull целиком.
func (r *Reconciler) resynchronize(ctx context.Context) {
	rctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-r.closed:
			cancel()
		case <-rctx.Done():
		}
	}()

	err := r.resync.ExecuteWithContext(rctx, func(ctx context.Context) error {
		order, err := r.query.GetOrder(ctx, r.orderID)
		if err != nil {
			return err
		}

		pos, err := r.query.GetLatestPosition(ctx, r.orderID)
		if err != nil {
			return err
		}

		unread, err := r.query.GetUnreadCount(ctx, r.orderID, r.identity.CurrentUserID())
		if err != nil {
			return err
		}

		if _, err := r.ledger.Rebase(ctx, ledger.AppendRequest{
			OrderID:   r.orderID,
			NewStatus: order.Status,
			ActorID:   resyncActorID,
		}); err != nil {
			return err
		}

		r.order = order
		if pos != nil && (r.latestPos == nil || !pos.CapturedAt.Before(r.latestPos.CapturedAt)) {
			r.latestPos = pos
			r.advanceProgress(pos.Point)
		}
		r.unreadOverride = &unread
		r.stale = false
		return nil
	})
	if err != nil {
		// фоновые ошибки наружу не пробрасываем, снапшот остается stale
		ResyncTotal.WithLabelValues("failed").Inc()
		r.log.With(logger.NewField("error", err)).Warn("resynchronization failed")
		r.publish()
		return
	}

	ResyncTotal.WithLabelValues("ok").Inc()
	r.log.Info("resynchronization completed")
	r.publish()
}

func (r *Reconciler) advanceProgress(point entities.GeoPoint) {
	if r.order == nil {
		return
	}

	percent := geo.ProgressPercent(r.order.Pickup.GeoPoint, point, r.order.Destination.GeoPoint)
	if percent > r.maxProgress {
		r.maxProgress = percent
	}
}

func (r *Reconciler) discard(ev entities.RealtimeEvent, reason, msg string) {
	EventsDiscardedTotal.WithLabelValues(reason).Inc()
	r.log.With(
		logger.NewField("type", ev.Type.String()),
		logger.NewField("sequence", ev.Sequence),
	).Warn(msg)
}

func (r *Reconciler) publish() {
	snap := r.buildSnapshot()

	r.mu.Lock()
	r.snap = snap
	fns := make([]func(entities.TrackingSnapshot), 0, len(r.listeners))
	for _, fn := range r.listeners {
		fns = append(fns, fn)
	}
	r.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

func (r *Reconciler) buildSnapshot() entities.TrackingSnapshot {
	snap := entities.TrackingSnapshot{
		Stale:          r.stale,
		UnreadMessages: r.unreadCount(),
		UpdatedAt:      time.Now().UTC(),
	}

	if r.order != nil {
		snap.Order = *r.order
	} else {
		snap.Order = entities.Order{ID: r.orderID, Status: r.ledger.HeadStatus(r.orderID)}
	}

	if r.latestPos != nil {
		pos := *r.latestPos
		snap.LatestPosition = &pos
	}

	// ETA и прогресс осмысленны только в пути, для прочих статусов
	// отдаем nil вместо протухших чисел
	if snap.Order.Status == entities.OrderInTransit && r.order != nil && r.latestPos != nil {
		if eta, ok := geo.EtaMinutes(&r.latestPos.Point, &r.order.Destination.GeoPoint, r.speedKmh); ok {
			snap.ETAMinutes = &eta
		}
		progress := r.maxProgress
		snap.ProgressPercent = &progress
	}

	return snap
}

func (r *Reconciler) unreadCount() int64 {
	if r.unreadOverride != nil {
		return *r.unreadOverride
	}

	userID := r.identity.CurrentUserID()
	var count int64
	for i := range r.messages {
		if r.messages[i].ReceiverID == userID && !r.messages[i].Read {
			count++
		}
	}
	return count
}
