package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewAcceptConflictsTotal returns a Prometheus counter for accept attempts that lost the order to another courier
func NewAcceptConflictsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_accept_conflicts_total",
		Help: "Total number of accept attempts that lost the order to another courier",
	})
}

// NewGeocodeRetriesTotal returns a Prometheus counter for retry attempts performed by the geocoder
func NewGeocodeRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "geocode_retries_total",
		Help: "Total number of retry attempts performed by the geocoder",
	})
}

// NewGeocodeFailuresTotal returns a Prometheus counter for orders skipped because their address could not be geocoded
func NewGeocodeFailuresTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "geocode_failures_total",
		Help: "Total number of orders skipped because their address could not be geocoded",
	})
}

// NewNotificationsSentTotal returns a Prometheus counter for notifications published to Kafka
func NewNotificationsSentTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notifications_sent_total",
		Help: "Total number of notifications published to Kafka",
	})
}
