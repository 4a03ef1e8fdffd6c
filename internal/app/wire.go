//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	queryGateway "tracker/internal/gateway/query"
	"tracker/internal/handlers/kafka-consumer/tracking_events"
	"tracker/internal/handlers/rest/history_get"
	"tracker/internal/handlers/rest/status_post"
	"tracker/internal/handlers/rest/tracking_get"
	"tracker/internal/handlers/tasks/history_archive"
	"tracker/internal/pkg/config"
	"tracker/internal/pkg/identity"

	historyRepo "tracker/internal/repository/history"
	ledgerService "tracker/internal/service/ledger"
	"tracker/internal/service/reconciler"
	trackingService "tracker/internal/service/tracking"

	"tracker/pkg/background"
	"tracker/pkg/logger"
	"tracker/pkg/querier"
	"tracker/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	ArchiveInterval  time.Duration
	ArchiveBatchSize int
)

type Application struct {
	ServiceTracking   ServiceTracking
	ServiceLedger     ServiceLedger
	Dispatcher        Dispatcher
	Identity          status_post.Identity
	BackgroundWorkers *background.Worker
}

type ServiceTracking interface {
	tracking_get.Service
}

type ServiceLedger interface {
	status_post.Service
	history_get.Service
}

// Dispatcher - сторона trackingService.Manager, которую видят
// Kafka-обработчик и контроль связности consumer-а.
type Dispatcher interface {
	tracking_events.Service
	ConnectionLost()
	ConnectionRestored()
	Close()
}

func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideArchiveInterval,
		provideArchiveBatchSize,

		provideHistoryRepository,
		provideLedger,

		provideHTTPClient,
		provideQueryGateway,
		provideIdentityProvider,
		provideTrackingManager,

		provideHistoryArchiveTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceTracking), new(*trackingService.Manager)),
		wire.Bind(new(ServiceLedger), new(*ledgerService.Ledger)),
		wire.Bind(new(Dispatcher), new(*trackingService.Manager)),

		wire.Bind(new(reconciler.Ledger), new(*ledgerService.Ledger)),
		wire.Bind(new(reconciler.QueryGateway), new(*queryGateway.Gateway)),
		wire.Bind(new(reconciler.IdentityProvider), new(*identity.Provider)),

		wire.Bind(new(historyRepo.Querier), new(*querier.Querier)),
		wire.Bind(new(history_archive.Ledger), new(*ledgerService.Ledger)),
		wire.Bind(new(history_archive.Repository), new(*historyRepo.Repository)),
		wire.Bind(new(history_archive.TxManager), new(*tx.Manager)),

		wire.Bind(new(status_post.Identity), new(*identity.Provider)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideHistoryRepository(querier historyRepo.Querier) *historyRepo.Repository {
	return historyRepo.New(querier)
}

func provideLedger() *ledgerService.Ledger {
	return ledgerService.New()
}

func provideHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: cfg.Backend.RequestTimeout}
}

func provideQueryGateway(client *http.Client, cfg *config.Config) *queryGateway.Gateway {
	return queryGateway.New(client, cfg.Backend.BaseURL)
}

func provideIdentityProvider(cfg *config.Config) *identity.Provider {
	return identity.NewProvider(&cfg.Identity)
}

func provideTrackingManager(
	ctx context.Context,
	cfg *config.Config,
	ledger reconciler.Ledger,
	gateway reconciler.QueryGateway,
	identityProvider reconciler.IdentityProvider,
	log logger.Logger,
) *trackingService.Manager {
	return trackingService.NewManager(
		ctx,
		trackingService.Config{
			AssumedSpeedKmh: cfg.Tracking.AssumedSpeedKmh,
			EventBuffer:     cfg.Tracking.EventBuffer,
		},
		ledger,
		gateway,
		identityProvider,
		log,
	)
}

func provideArchiveInterval(cfg *config.Config) ArchiveInterval {
	return ArchiveInterval(cfg.Tasks.HistoryArchiveInterval)
}

func provideArchiveBatchSize(cfg *config.Config) ArchiveBatchSize {
	return ArchiveBatchSize(cfg.Tasks.HistoryArchiveBatchSize)
}

func provideHistoryArchiveTask(
	log logger.Logger,
	ledger history_archive.Ledger,
	repo history_archive.Repository,
	txManager history_archive.TxManager,
	interval ArchiveInterval,
	batchSize ArchiveBatchSize,
) *history_archive.HistoryArchive {
	return history_archive.NewHistoryArchive(log, ledger, repo, txManager, time.Duration(interval), int(batchSize))
}

func provideTaskList(
	historyArchiveTask *history_archive.HistoryArchive,
) []background.Task {
	return []background.Task{
		historyArchiveTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
