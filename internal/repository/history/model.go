package history

import "time"

type StatusHistoryDB struct {
	OrderID    string
	Sequence   int64
	OldStatus  *string
	NewStatus  string
	ActorID    string
	OccurredAt time.Time
	Note       *string
	Latitude   *float64
	Longitude  *float64
}
