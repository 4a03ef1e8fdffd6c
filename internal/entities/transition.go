package entities

// Линейный happy path жизненного цикла заказа, без пропуска стадий.
// cancelled и failed терминальны и достижимы из любого нетерминального статуса.
var happyPathSuccessor = map[OrderStatusType]OrderStatusType{
	OrderPending:   OrderAccepted,
	OrderAccepted:  OrderAssigned,
	OrderAssigned:  OrderPickedUp,
	OrderPickedUp:  OrderInTransit,
	OrderInTransit: OrderDelivered,
	OrderDelivered: OrderCompleted,
}

func (s OrderStatusType) IsValid() bool {
	switch s {
	case OrderPending, OrderAccepted, OrderAssigned, OrderPickedUp,
		OrderInTransit, OrderDelivered, OrderCompleted, OrderCancelled, OrderFailed:
		return true
	default:
		return false
	}
}

func (s OrderStatusType) IsTerminal() bool {
	switch s {
	case OrderCompleted, OrderCancelled, OrderFailed:
		return true
	default:
		return false
	}
}

// IsLegalTransition сообщает, разрешен ли переход old -> new:
// либо new - непосредственный следующий шаг happy path,
// либо new терминальный отказ (cancelled/failed) из нетерминального статуса.
func IsLegalTransition(old, new OrderStatusType) bool {
	if !old.IsValid() || !new.IsValid() {
		return false
	}

	if old.IsTerminal() {
		return false
	}

	if new == OrderCancelled || new == OrderFailed {
		return true
	}

	return happyPathSuccessor[old] == new
}
