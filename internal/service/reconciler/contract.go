//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=reconciler_test
package reconciler

import (
	"context"

	"tracker/internal/entities"
	"tracker/internal/service/ledger"
	"tracker/pkg/logger"
)

type Ledger interface {
	Append(ctx context.Context, req ledger.AppendRequest) (*entities.StatusHistoryEntry, error)
	Rebase(ctx context.Context, req ledger.AppendRequest) (*entities.StatusHistoryEntry, error)
	HeadStatus(orderID string) entities.OrderStatusType
}

// QueryGateway - request/response API бэкенда, используется только
// при ресинхронизации.
type QueryGateway interface {
	GetOrder(ctx context.Context, orderID string) (*entities.Order, error)
	GetLatestPosition(ctx context.Context, orderID string) (*entities.PositionSample, error)
	GetUnreadCount(ctx context.Context, orderID, userID string) (int64, error)
}

// IdentityProvider - внешняя read-only capability сессии пользователя.
type IdentityProvider interface {
	CurrentUserID() string
	CurrentUserRole() string
}

type reconcilerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
