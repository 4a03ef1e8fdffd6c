//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=status_post_test
package status_post

import (
	"context"

	"tracker/internal/entities"
	"tracker/internal/service/ledger"
	"tracker/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Append(ctx context.Context, req ledger.AppendRequest) (*entities.StatusHistoryEntry, error)
}

type Identity interface {
	CurrentUserID() string
}
