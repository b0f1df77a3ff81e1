package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	BlogsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "blogs_created_total",
			Help: "Total blogs created",
		},
	)
	BlogsDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "blogs_deleted_total",
			Help: "Total blogs deleted",
		},
	)

	Logins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logins_total",
			Help: "Login attempts by outcome",
		},
		[]string{"result"}, // ok|failed
	)
)

var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(BlogsCreated)
	prometheus.MustRegister(BlogsDeleted)
	prometheus.MustRegister(Logins)
}
