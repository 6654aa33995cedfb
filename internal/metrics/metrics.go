// Package metrics defines Prometheus metrics for the booking service.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bookingmx_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookingmx_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookingmx_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	ReservationOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookingmx_reservation_operations_total",
			Help: "Reservation operations by kind and outcome",
		},
		[]string{"op", "outcome"},
	)

	ReservationsByStatus = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "bookingmx_reservations",
			Help: "Stored reservations by status",
		},
		[]string{"status"},
	)

	NearbyQueries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bookingmx_nearby_queries_total",
			Help: "Total nearby-city queries",
		},
	)

	CityCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "bookingmx_cities_total",
			Help: "Cities in the loaded graph",
		},
	)

	RoadCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "bookingmx_roads_total",
			Help: "Undirected roads in the loaded graph",
		},
	)

	EventQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "bookingmx_event_queue_depth",
			Help: "Current reservation event queue depth",
		},
	)

	WSConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "bookingmx_websocket_connections",
			Help: "Active WebSocket connections",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		ReservationOps, ReservationsByStatus,
		NearbyQueries, CityCount, RoadCount,
		EventQueueDepth, WSConnections,
	)
}
