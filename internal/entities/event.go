package entities

import "time"

type EventType string

const (
	EventStatusChanged      EventType = "status_changed"
	EventPositionPing       EventType = "position_ping"
	EventMessageInsert      EventType = "message_insert"
	EventMessageUpdate      EventType = "message_update"
	EventMessageDelete      EventType = "message_delete"
	EventConnectionLost     EventType = "connection_lost"
	EventConnectionRestored EventType = "connection_restored"
)

func (t EventType) String() string {
	return string(t)
}

// RealtimeEvent - одно событие push-канала по конкретному заказу.
// Sequence - сквозной номер источника в рамках заказа, 0 если источник
// его не проставил (тогда порядок определяется по OccurredAt).
type RealtimeEvent struct {
	Type       EventType
	OrderID    string
	Sequence   int64
	OccurredAt time.Time

	Status   *StatusChange
	Position *PositionSample
	Message  *Message
}

// StatusChange - полезная нагрузка события смены статуса.
// OldStatus - статус, который источник считал текущим на момент события.
type StatusChange struct {
	OldStatus *OrderStatusType
	NewStatus OrderStatusType
	ActorID   string
	Note      *string
	GeoTag    *GeoPoint
}
