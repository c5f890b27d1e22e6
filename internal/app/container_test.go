package app

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"github.com/devkyoshi/easy-bites-sub000/internal/config"
	"github.com/devkyoshi/easy-bites-sub000/internal/gateway/geocode"
	"github.com/devkyoshi/easy-bites-sub000/internal/gateway/notify"
	"github.com/devkyoshi/easy-bites-sub000/internal/http/handlers"
	"github.com/devkyoshi/easy-bites-sub000/internal/logx"
	"github.com/devkyoshi/easy-bites-sub000/internal/metrics"
	"github.com/devkyoshi/easy-bites-sub000/internal/notified"
	"github.com/devkyoshi/easy-bites-sub000/internal/service/orders"
	"github.com/devkyoshi/easy-bites-sub000/internal/transport/kafka"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:     8080,
		DB:       config.DefaultDB(),
		Kafka:    config.DefaultKafka(),
		Redis:    config.DefaultRedis(),
		Geocode:  config.DefaultGeocode(),
		Dispatch: config.DefaultDispatch(),
	}
}

func setupTestContainer(t *testing.T) *dig.Container {
	t.Helper()

	c := dig.New()

	providers := []struct {
		name     string
		provider any
	}{
		{"context", func() context.Context { return context.Background() }},
		{"logger", func() logx.Logger { return logx.Nop() }},
		{"config", func() *config.Config { return testConfig() }},
		{"pgxpool", func() *pgxpool.Pool { return &pgxpool.Pool{} }},
		{"metrics", newMetrics},
	}

	for _, p := range providers {
		err := c.Provide(p.provider)
		require.NoErrorf(t, err, "provide %s", p.name)
	}

	require.NoError(t, registerGateways(c))
	require.NoError(t, registerService(c))
	require.NoError(t, registerHTTP(c))

	return c
}

func verifyServer(t *testing.T, srv *http.Server) {
	t.Helper()

	require.NotNil(t, srv, "http.Server is nil")
	require.Equal(t, ":8080", srv.Addr)
	require.Greater(t, srv.ReadHeaderTimeout, time.Duration(0))
	require.Greater(t, srv.ReadTimeout, time.Duration(0))
	require.Greater(t, srv.WriteTimeout, time.Duration(0))
	require.Greater(t, srv.IdleTimeout, time.Duration(0))
}

func TestRegisterServiceAndHTTP_ProvidesHttpServerAndHandlers(t *testing.T) {
	t.Parallel()

	c := setupTestContainer(t)

	err := c.Invoke(func(
		srv *http.Server,
		base *handlers.Handlers,
		courierHandler *handlers.CourierHandler,
		dispatchHandler *handlers.DispatchHandler,
		deliveryHandler *handlers.DeliveryHandler,
		statsHandler *handlers.StatsHandler,
	) {
		verifyServer(t, srv)
		require.NotNil(t, base)
		require.NotNil(t, courierHandler)
		require.NotNil(t, dispatchHandler)
		require.NotNil(t, deliveryHandler)
		require.NotNil(t, statsHandler)
	})
	require.NoError(t, err)
}

func TestRegisterWorker_ProvidesProcessor(t *testing.T) {
	t.Parallel()

	c := setupTestContainer(t)
	require.NoError(t, registerWorker(c))

	// Default config carries no brokers, so the consumer provider yields nil.
	err := c.Invoke(func(p *orders.Processor, consumer *kafka.Consumer) {
		require.NotNil(t, p)
		require.Nil(t, consumer)
	})
	require.NoError(t, err)
}

func TestProvideAll_Success(t *testing.T) {
	t.Parallel()

	c := dig.New()

	err := provideAll(c,
		func() context.Context { return context.Background() },
		func() time.Duration { return 3 * time.Second },
	)
	require.NoError(t, err)

	err = c.Invoke(func(ctx context.Context, d time.Duration) {
		require.NotNil(t, ctx)
		require.Equal(t, 3*time.Second, d)
	})
	require.NoError(t, err)
}

func TestProvideAll_InvalidProvider(t *testing.T) {
	t.Parallel()

	c := dig.New()

	type bad struct{}
	err := provideAll(c, bad{})
	require.Error(t, err)
}

func TestRegisterDb_UsesDbConnectAndProvidesPool(t *testing.T) {
	t.Parallel()

	c := dig.New()
	ctx := context.Background()

	cfg := testConfig()

	require.NoError(t, c.Provide(func() context.Context { return ctx }))
	require.NoError(t, c.Provide(func() *config.Config { return cfg }))

	stubPool := &pgxpool.Pool{}

	stubConnect := func(
		gotCtx context.Context,
		dsn string,
		retries int,
		delay time.Duration,
	) (*pgxpool.Pool, error) {
		require.Equal(t, ctx, gotCtx)
		require.Equal(t, cfg.DB.DSN(), dsn)
		require.Equal(t, 10, retries)
		require.Equal(t, time.Second, delay)
		return stubPool, nil
	}

	err := registerDb(c, stubConnect)
	require.NoError(t, err)

	err = c.Invoke(func(pool *pgxpool.Pool) {
		require.Equal(t, stubPool, pool)
	})
	require.NoError(t, err)
}

func TestContainerBuilder_Build_Success(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	builder := NewContainerBuilder().
		WithDBConnect(func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error) {
			return &pgxpool.Pool{}, nil
		})

	c, err := builder.build(ctx)
	require.NoError(t, err)
	require.NotNil(t, c)

	err = c.Invoke(func(logger logx.Logger) {
		require.NotNil(t, logger)
	})
	require.NoError(t, err)
}

func TestNewContainerBuilder_Defaults(t *testing.T) {
	t.Parallel()

	b := NewContainerBuilder()
	require.NotNil(t, b.dbConnect)
	require.NotNil(t, b.logFatalf)
}

func TestNewNotifiedStore(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	require.IsType(t, &notified.InMemory{}, newNotifiedStore(cfg))

	cfg.Redis.Addr = "127.0.0.1:6379"
	require.IsType(t, &notified.Redis{}, newNotifiedStore(cfg))
}

func TestNewGeocoder(t *testing.T) {
	t.Parallel()

	in := geocoderIn{
		Cfg:     testConfig(),
		Logger:  logx.Nop(),
		Retries: registerCounter(metrics.NewGeocodeRetriesTotal()),
	}

	g, err := newGeocoder(in)
	require.NoError(t, err)
	require.IsType(t, geocode.Disabled{}, g)

	in.Cfg.Geocode.APIKey = "test-key"
	g, err = newGeocoder(in)
	require.NoError(t, err)
	require.IsType(t, &geocode.Retrying{}, g)
}

func TestNewNotifier_WithoutBrokersFallsBackToNop(t *testing.T) {
	t.Parallel()

	in := notifierIn{
		Cfg:  testConfig(),
		Sent: registerCounter(metrics.NewNotificationsSentTotal()),
	}

	n, closeFn, err := newNotifier(in)
	require.NoError(t, err)
	require.IsType(t, notify.Nop{}, n)
	require.NotNil(t, closeFn)
	require.NoError(t, closeFn())
}

func TestRegisterCounter_ReusesExistingCollector(t *testing.T) {
	t.Parallel()

	first := registerCounter(metrics.NewAcceptConflictsTotal())
	second := registerCounter(metrics.NewAcceptConflictsTotal())
	require.Same(t, first, second)
}
