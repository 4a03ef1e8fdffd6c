package entities

import "time"

// StatusHistoryEntry - одна неизменяемая запись перехода статуса.
// Sequence строго монотонно растет в рамках заказа, без пропусков.
type StatusHistoryEntry struct {
	OrderID    string
	Sequence   int64
	OldStatus  *OrderStatusType
	NewStatus  OrderStatusType
	ActorID    string
	OccurredAt time.Time
	Note       *string
	GeoTag     *GeoPoint
}
