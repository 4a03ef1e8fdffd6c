//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_events_test
package tracking_events

import (
	"context"

	"tracker/internal/entities"
	"tracker/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Dispatch(ctx context.Context, event entities.RealtimeEvent) error
}

type Connectivity interface {
	ConnectionRestored()
}
