package tracking_events

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"tracker/internal/service/reconciler"
	"tracker/pkg/logger"
)

type Handler struct {
	trackingService          Service
	connectivity             Connectivity
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, trackingService Service, connectivity Connectivity, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		trackingService:          trackingService,
		connectivity:             connectivity,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

// Setup вызывается на каждую новую сессию consumer group: и при старте,
// и после переподключения. Для отслеживаемых заказов это сигнал к полной
// ресинхронизации.
func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	h.connectivity.ConnectionRestored()
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("tracking.events: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("tracking.events: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event trackingEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("tracking.events handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("event", event.Type),
		logger.NewField("order", event.OrderID),
		logger.NewField("sequence", event.Sequence),
		logger.NewField("offset", message.Offset),
	)

	domainEvent, err := event.toDomain()
	if err != nil {
		// Неполное или неизвестное событие отбрасываем, не ломая поток
		msgLog.With(
			logger.NewField("error", err),
		).Warn("tracking.events handler discarded malformed event")
		sess.MarkMessage(message, "")
		return false
	}

	err = h.trackingService.Dispatch(ctx, domainEvent)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("tracking.events handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, reconciler.ErrMalformedEvent):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("tracking.events handler discarded malformed event")

		case errors.Is(err, reconciler.ErrClosed):
			msgLog.Warn("tracking.events handler: tracking stopped, event skipped")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("tracking.events handler failed to process event")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("tracking.events: processed")

	sess.MarkMessage(message, "")
	return false
}
