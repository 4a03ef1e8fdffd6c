//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=history_get_test
package history_get

import (
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
	History(orderID string) []entities.StatusHistoryEntry
}
