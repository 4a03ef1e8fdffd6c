package query

import (
	"fmt"
	"time"

	"tracker/internal/entities"
)

type locationDTO struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type orderDTO struct {
	ID          string      `json:"id"`
	Status      string      `json:"status"`
	CustomerID  string      `json:"customer_id"`
	DriverID    *string     `json:"driver_id,omitempty"`
	Pickup      locationDTO `json:"pickup"`
	Destination locationDTO `json:"destination"`
	CreatedAt   time.Time   `json:"created_at"`
}

type positionDTO struct {
	OrderID    string    `json:"order_id"`
	DriverID   string    `json:"driver_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	CapturedAt time.Time `json:"captured_at"`
}

type unreadDTO struct {
	Count int64 `json:"count"`
}

func toDomainOrder(dto orderDTO) (*entities.Order, error) {
	status := entities.OrderStatusType(dto.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("unknown order status %q", dto.Status)
	}

	return &entities.Order{
		ID:          dto.ID,
		Status:      status,
		CustomerID:  dto.CustomerID,
		DriverID:    dto.DriverID,
		Pickup:      toDomainLocation(dto.Pickup),
		Destination: toDomainLocation(dto.Destination),
		CreatedAt:   dto.CreatedAt,
	}, nil
}

func toDomainLocation(dto locationDTO) entities.Location {
	return entities.Location{
		Address: dto.Address,
		GeoPoint: entities.GeoPoint{
			Latitude:  dto.Latitude,
			Longitude: dto.Longitude,
		},
	}
}

func toDomainPosition(dto positionDTO) *entities.PositionSample {
	return &entities.PositionSample{
		OrderID:  dto.OrderID,
		DriverID: dto.DriverID,
		Point: entities.GeoPoint{
			Latitude:  dto.Latitude,
			Longitude: dto.Longitude,
		},
		CapturedAt: dto.CapturedAt,
	}
}
