package app

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"github.com/devkyoshi/easy-bites-sub000/internal/config"
	"github.com/devkyoshi/easy-bites-sub000/internal/gateway/geocode"
	"github.com/devkyoshi/easy-bites-sub000/internal/gateway/notify"
	"github.com/devkyoshi/easy-bites-sub000/internal/logx"
	"github.com/devkyoshi/easy-bites-sub000/internal/metrics"
	"github.com/devkyoshi/easy-bites-sub000/internal/notified"
	"github.com/devkyoshi/easy-bites-sub000/internal/repository"
)

type metricsOut struct {
	dig.Out

	AcceptConflicts   prometheus.Counter `name:"accept_conflicts_total"`
	GeocodeRetries    prometheus.Counter `name:"geocode_retries_total"`
	GeocodeFailures   prometheus.Counter `name:"geocode_failures_total"`
	NotificationsSent prometheus.Counter `name:"notifications_sent_total"`
}

func newMetrics() metricsOut {
	return metricsOut{
		AcceptConflicts:   registerCounter(metrics.NewAcceptConflictsTotal()),
		GeocodeRetries:    registerCounter(metrics.NewGeocodeRetriesTotal()),
		GeocodeFailures:   registerCounter(metrics.NewGeocodeFailuresTotal()),
		NotificationsSent: registerCounter(metrics.NewNotificationsSentTotal()),
	}
}

// registerCounter registers c with the default registry so it shows up on
// /metrics. Rebuilding a container reuses the already registered collector.
func registerCounter(c prometheus.Counter) prometheus.Counter {
	if err := prometheus.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector.(prometheus.Counter)
		}
	}
	return c
}

type geocoderIn struct {
	dig.In

	Cfg     *config.Config
	Logger  logx.Logger
	Retries prometheus.Counter `name:"geocode_retries_total"`
}

type notifierIn struct {
	dig.In

	Cfg  *config.Config
	Sent prometheus.Counter `name:"notifications_sent_total"`
}

type dispatchIn struct {
	dig.In

	Couriers   *repository.CourierRepo
	Orders     *repository.OrderRepo
	Deliveries *repository.DeliveryRepo
	Notified   notified.Store
	Geocoder   geocode.Geocoder
	Notifier   notify.Notifier
	Logger     logx.Logger
	Cfg        *config.Config

	AcceptConflicts prometheus.Counter `name:"accept_conflicts_total"`
	GeocodeFailures prometheus.Counter `name:"geocode_failures_total"`
}
