//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_test
package tracking

import (
	"tracker/internal/entities"
	"tracker/pkg/logger"
)

// Source - источник снапшотов для view model (реконсайлер заказа).
type Source interface {
	Snapshot() entities.TrackingSnapshot
	Subscribe(fn func(entities.TrackingSnapshot)) int64
	Unsubscribe(id int64)
}

type trackingLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
