// Package router assembles the chi HTTP surface of the dispatch service.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/devkyoshi/easy-bites-sub000/internal/http/handlers"
	"github.com/devkyoshi/easy-bites-sub000/internal/http/middleware"
	"github.com/devkyoshi/easy-bites-sub000/internal/logx"
)

// Deps carries the handlers the router mounts.
type Deps struct {
	Base       *handlers.Handlers
	Couriers   *handlers.CourierHandler
	Dispatch   *handlers.DispatchHandler
	Deliveries *handlers.DeliveryHandler
	Stats      *handlers.StatsHandler
	Logger     logx.Logger
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(5 * time.Second))
	r.Use(middleware.Observability(d.Logger))

	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.NotFound(http.HandlerFunc(d.Base.NotFound))

	r.Route("/couriers", func(r chi.Router) {
		r.Get("/", d.Couriers.List)
		r.Post("/", d.Couriers.Create)
		r.Get("/available", d.Couriers.ListAvailable)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", d.Couriers.GetByID)
			r.Put("/", d.Couriers.Update)
			r.Delete("/", d.Couriers.Delete)
			r.Put("/location", d.Couriers.UpdateLocation)
			r.Put("/availability", d.Couriers.UpdateAvailability)

			r.Get("/nearby-orders", d.Dispatch.NearbyOrders)
			r.Get("/deliveries/active", d.Deliveries.Active)
			r.Get("/deliveries/history", d.Deliveries.History)

			r.Get("/stats/weekly", d.Stats.Weekly)
			r.Get("/stats/ratings", d.Stats.Ratings)
			r.Get("/stats/average-rating", d.Stats.AverageRating)
		})
	})

	r.Route("/dispatch", func(r chi.Router) {
		r.Post("/notify", d.Dispatch.Notify)
		r.Post("/accept", d.Dispatch.Accept)
	})

	r.Route("/deliveries", func(r chi.Router) {
		r.Get("/", d.Deliveries.List)
		r.Get("/{id}", d.Deliveries.GetByID)
		r.Post("/{id}/complete", d.Deliveries.Complete)
		r.Post("/{id}/rating", d.Deliveries.Rate)
	})

	return r
}
