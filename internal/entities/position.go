package entities

import "time"

// PositionSample - один пинг местоположения водителя.
// В памяти держится только самый свежий по CapturedAt сэмпл на заказ.
type PositionSample struct {
	OrderID    string
	DriverID   string
	Point      GeoPoint
	CapturedAt time.Time
}
