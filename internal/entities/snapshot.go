package entities

import "time"

// TrackingSnapshot - производное состояние трекинга, не персистится.
// Пересчитывается на каждое принятое событие.
// ETAMinutes и ProgressPercent nil для всех статусов кроме in_transit.
type TrackingSnapshot struct {
	Order           Order
	LatestPosition  *PositionSample
	ETAMinutes      *int64
	ProgressPercent *float64
	UnreadMessages  int64
	Stale           bool
	UpdatedAt       time.Time
}
