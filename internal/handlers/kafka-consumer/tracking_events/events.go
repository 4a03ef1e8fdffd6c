package tracking_events

import (
	"errors"
	"fmt"
	"time"

	"tracker/internal/entities"
)

// trackingEvent - событие push-канала в том виде, в котором его пишет
// бэкенд в топик.
type trackingEvent struct {
	ID         string           `json:"id"`
	Type       string           `json:"type"`
	OrderID    string           `json:"order_id"`
	Sequence   int64            `json:"sequence"`
	OccurredAt time.Time        `json:"occurred_at"`
	Status     *statusPayload   `json:"status,omitempty"`
	Position   *positionPayload `json:"position,omitempty"`
	Message    *messagePayload  `json:"message,omitempty"`
}

type statusPayload struct {
	OldStatus *string     `json:"old_status,omitempty"`
	NewStatus string      `json:"new_status"`
	ActorID   string      `json:"actor_id"`
	Note      *string     `json:"note,omitempty"`
	GeoTag    *geoPayload `json:"geo_tag,omitempty"`
}

type positionPayload struct {
	DriverID   string    `json:"driver_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	CapturedAt time.Time `json:"captured_at"`
}

type messagePayload struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Body       string    `json:"body"`
	SentAt     time.Time `json:"sent_at"`
	Read       bool      `json:"read"`
}

type geoPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (e trackingEvent) toDomain() (entities.RealtimeEvent, error) {
	eventType := entities.EventType(e.Type)

	if e.OrderID == "" {
		return entities.RealtimeEvent{}, errors.New("missing order_id")
	}

	out := entities.RealtimeEvent{
		Type:       eventType,
		OrderID:    e.OrderID,
		Sequence:   e.Sequence,
		OccurredAt: e.OccurredAt,
	}

	switch eventType {
	case entities.EventStatusChanged:
		if e.Status == nil {
			return entities.RealtimeEvent{}, errors.New("status_changed without status payload")
		}
		status, err := e.Status.toDomain()
		if err != nil {
			return entities.RealtimeEvent{}, err
		}
		out.Status = status

	case entities.EventPositionPing:
		if e.Position == nil {
			return entities.RealtimeEvent{}, errors.New("position_ping without position payload")
		}
		out.Position = e.Position.toDomain(e.OrderID)

	case entities.EventMessageInsert, entities.EventMessageUpdate, entities.EventMessageDelete:
		if e.Message == nil {
			return entities.RealtimeEvent{}, fmt.Errorf("%s without message payload", e.Type)
		}
		out.Message = e.Message.toDomain(e.OrderID)

	default:
		return entities.RealtimeEvent{}, fmt.Errorf("unknown event type %q", e.Type)
	}

	return out, nil
}

func (p statusPayload) toDomain() (*entities.StatusChange, error) {
	newStatus := entities.OrderStatusType(p.NewStatus)
	if !newStatus.IsValid() {
		return nil, fmt.Errorf("unknown status %q", p.NewStatus)
	}

	change := entities.StatusChange{
		NewStatus: newStatus,
		ActorID:   p.ActorID,
		Note:      p.Note,
	}

	if p.OldStatus != nil {
		oldStatus := entities.OrderStatusType(*p.OldStatus)
		if !oldStatus.IsValid() {
			return nil, fmt.Errorf("unknown status %q", *p.OldStatus)
		}
		change.OldStatus = &oldStatus
	}

	if p.GeoTag != nil {
		change.GeoTag = &entities.GeoPoint{
			Latitude:  p.GeoTag.Latitude,
			Longitude: p.GeoTag.Longitude,
		}
	}

	return &change, nil
}

func (p positionPayload) toDomain(orderID string) *entities.PositionSample {
	return &entities.PositionSample{
		OrderID:  orderID,
		DriverID: p.DriverID,
		Point: entities.GeoPoint{
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
		},
		CapturedAt: p.CapturedAt,
	}
}

func (p messagePayload) toDomain(orderID string) *entities.Message {
	return &entities.Message{
		ID:         p.ID,
		OrderID:    orderID,
		SenderID:   p.SenderID,
		ReceiverID: p.ReceiverID,
		Body:       p.Body,
		SentAt:     p.SentAt,
		Read:       p.Read,
	}
}
