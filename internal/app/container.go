// Package app assembles the dispatch service and worker from their parts.
package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"github.com/devkyoshi/easy-bites-sub000/internal/config"
	"github.com/devkyoshi/easy-bites-sub000/internal/gateway/geocode"
	"github.com/devkyoshi/easy-bites-sub000/internal/gateway/notify"
	"github.com/devkyoshi/easy-bites-sub000/internal/http/handlers"
	"github.com/devkyoshi/easy-bites-sub000/internal/http/router"
	"github.com/devkyoshi/easy-bites-sub000/internal/logx"
	"github.com/devkyoshi/easy-bites-sub000/internal/notified"
	"github.com/devkyoshi/easy-bites-sub000/internal/repository"
	"github.com/devkyoshi/easy-bites-sub000/internal/service/courier"
	"github.com/devkyoshi/easy-bites-sub000/internal/service/dispatch"
	"github.com/devkyoshi/easy-bites-sub000/internal/service/fulfillment"
	"github.com/devkyoshi/easy-bites-sub000/internal/service/stats"
)

// notifierCloser releases the notification producer connection, if any.
type notifierCloser func() error

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error)
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(
	fn func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns the dispatch service container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// MustBuildWorker builds and returns the order-events worker container
func (b *ContainerBuilder) MustBuildWorker(ctx context.Context) *dig.Container {
	container, err := b.buildWorker(ctx)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerGateways(container); err != nil {
		return nil, fmt.Errorf("gateways: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

func (b *ContainerBuilder) buildWorker(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerGateways(container); err != nil {
		return nil, fmt.Errorf("gateways: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns the dispatch service container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

// MustBuildWorkerContainer builds and returns the order-events worker container
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuildWorker(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		NewLogger,
		config.Load,
		newMetrics,
	)
}

func registerDb(
	container *dig.Container,
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) error {
	providerDB := func(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
		return dbConnect(ctx, cfg.DB.DSN(), 10, time.Second)
	}
	return provideAll(container, providerDB)
}

func registerGateways(container *dig.Container) error {
	return provideAll(container,
		newGeocoder,
		newNotifier,
		newNotifiedStore,
	)
}

func newNotifiedStore(cfg *config.Config) notified.Store {
	if cfg.Redis.Addr == "" {
		return notified.NewInMemory()
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	return notified.NewRedis(client, cfg.Redis.TTL)
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		repository.NewCourierRepo,
		repository.NewOrderRepo,
		repository.NewDeliveryRepo,
		repository.NewStatsRepo,
		func(repo *repository.CourierRepo, cfg *config.Config) *courier.Service {
			return courier.NewService(repo, cfg.Dispatch.OperationTimeout)
		},
		newDispatchService,
		func(
			deliveries *repository.DeliveryRepo,
			orders *repository.OrderRepo,
			n notify.Notifier,
			cfg *config.Config,
			logger logx.Logger,
		) *fulfillment.Service {
			return fulfillment.NewService(deliveries, orders, n, cfg.Dispatch.OperationTimeout, logger)
		},
		func(
			repo *repository.StatsRepo,
			couriers *repository.CourierRepo,
			cfg *config.Config,
		) *stats.Service {
			return stats.NewService(repo, couriers, cfg.Dispatch.EarningsRate, cfg.Dispatch.OperationTimeout)
		},
	)
}

func newDispatchService(in dispatchIn) *dispatch.Service {
	return dispatch.NewService(
		in.Couriers,
		in.Orders,
		in.Deliveries,
		in.Notified,
		in.Geocoder,
		in.Notifier,
		in.Logger,
		dispatch.Options{
			RadiusKm:         in.Cfg.Dispatch.RadiusKm,
			OperationTimeout: in.Cfg.Dispatch.OperationTimeout,
			AcceptConflicts:  in.AcceptConflicts,
			GeocodeFailures:  in.GeocodeFailures,
		},
	)
}

func newGeocoder(in geocoderIn) (geocode.Geocoder, error) {
	gc := in.Cfg.Geocode
	if gc.APIKey == "" {
		return geocode.Disabled{}, nil
	}
	base, err := geocode.NewGoogle(gc.APIKey, gc.Timeout)
	if err != nil {
		return nil, fmt.Errorf("geocoding client: %w", err)
	}
	return geocode.NewRetrying(base, in.Logger, in.Retries, geocode.RetryConfig{
		MaxAttempts: gc.MaxAttempts,
		BaseDelay:   gc.BaseDelay,
		MaxDelay:    gc.MaxDelay,
	}), nil
}

func newNotifier(in notifierIn) (notify.Notifier, notifierCloser, error) {
	k := in.Cfg.Kafka
	kn, err := notify.NewKafka(k.Brokers, k.CourierTopic, k.CustomerTopic, in.Sent)
	if err != nil {
		return nil, nil, fmt.Errorf("kafka notifier: %w", err)
	}
	if kn == nil {
		return notify.Nop{}, func() error { return nil }, nil
	}
	return kn, kn.Close, nil
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	routerProvider := func(
		base *handlers.Handlers,
		couriers *handlers.CourierHandler,
		disp *handlers.DispatchHandler,
		deliveries *handlers.DeliveryHandler,
		st *handlers.StatsHandler,
		logger logx.Logger,
	) http.Handler {
		return router.New(router.Deps{
			Base:       base,
			Couriers:   couriers,
			Dispatch:   disp,
			Deliveries: deliveries,
			Stats:      st,
			Logger:     logger,
		})
	}
	return provideAll(container,
		handlers.New,
		handlers.NewCourierUsecase,
		handlers.NewCourierHandler,
		handlers.NewDispatchUsecase,
		handlers.NewDispatchHandler,
		handlers.NewFulfillmentUsecase,
		handlers.NewDeliveryHandler,
		handlers.NewStatsUsecase,
		handlers.NewStatsHandler,
		routerProvider,
		serverProvider,
	)
}
