//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_get_test
package tracking_get

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
	Track(ctx context.Context, orderID string) (entities.TrackingSnapshot, error)
}
