package entities

import "time"

type Order struct {
	ID          string
	Status      OrderStatusType
	CustomerID  string
	DriverID    *string
	Pickup      Location
	Destination Location
	CreatedAt   time.Time
}

type OrderStatusType string

const (
	OrderPending   OrderStatusType = "pending"
	OrderAccepted  OrderStatusType = "accepted"
	OrderAssigned  OrderStatusType = "assigned"
	OrderPickedUp  OrderStatusType = "picked_up"
	OrderInTransit OrderStatusType = "in_transit"
	OrderDelivered OrderStatusType = "delivered"
	OrderCompleted OrderStatusType = "completed"
	OrderCancelled OrderStatusType = "cancelled"
	OrderFailed    OrderStatusType = "failed"
)

// DefaultOrderStatus - статус заказа до первой записи в истории
const DefaultOrderStatus = OrderPending

func (s OrderStatusType) String() string {
	return string(s)
}

type OrderModify struct {
	ID          *string
	Status      *OrderStatusType
	CustomerID  *string
	DriverID    *string
	Pickup      *Location
	Destination *Location
	CreatedAt   *time.Time
}
