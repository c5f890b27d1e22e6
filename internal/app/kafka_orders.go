package app

import (
	"context"
	"time"

	"go.uber.org/dig"

	"github.com/devkyoshi/easy-bites-sub000/internal/config"
	"github.com/devkyoshi/easy-bites-sub000/internal/logx"
	"github.com/devkyoshi/easy-bites-sub000/internal/notified"
	"github.com/devkyoshi/easy-bites-sub000/internal/service/dispatch"
	"github.com/devkyoshi/easy-bites-sub000/internal/service/orders"
	"github.com/devkyoshi/easy-bites-sub000/internal/transport/kafka"
)

// handleTimeout bounds the processing of a single order event so a stuck
// geocoder or notifier cannot stall the whole partition.
const handleTimeout = 10 * time.Second

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		func(svc *dispatch.Service, announced notified.Store) *orders.Processor {
			return orders.NewProcessor(dispatchAdapter{svc: svc}, announced)
		},
		makeOrdersHandler,
		func(cfg *config.Config, h kafka.HandleFunc, logger logx.Logger) (*kafka.Consumer, error) {
			k := cfg.Kafka
			return kafka.NewConsumer(k.Brokers, k.GroupID, k.OrdersTopic, h, logger)
		},
	)
}

// dispatchAdapter narrows the dispatch service to the orders.DispatchPort
// view, which does not care how many couriers were paged.
type dispatchAdapter struct {
	svc *dispatch.Service
}

func (a dispatchAdapter) NotifyNewOrder(ctx context.Context, orderID string) error {
	_, err := a.svc.NotifyNewOrder(ctx, orderID)
	return err
}

func makeOrdersHandler(p *orders.Processor) kafka.HandleFunc {
	return func(ctx context.Context, event orders.Event) error {
		hCtx, cancel := context.WithTimeout(ctx, handleTimeout)
		defer cancel()
		return p.Handle(hCtx, event)
	}
}
