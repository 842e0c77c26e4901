package metrics

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	SuccessfulRequests  *prometheus.CounterVec
	BadRequests         *prometheus.CounterVec
	FollowRequests      *prometheus.CounterVec
	UnfollowRequests    *prometheus.CounterVec
	InteractionsCreated *prometheus.CounterVec
}

func InitMetrics() *Metrics {
	m := &Metrics{
		SuccessfulRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "successful_request",
				Help: "Total number of successful (2xx) HTTP requests",
			},
			[]string{"path"},
		),
		BadRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "unsuccessful_request",
				Help: "Total number of unsuccessful (4xx/5xx) HTTP requests",
			},
			[]string{"path"},
		),
		FollowRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "successful_follows",
				Help: "Total number of follow edges created",
			},
			[]string{"path"},
		),
		UnfollowRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "successful_unfollows",
				Help: "Total number of follow edges removed",
			},
			[]string{"path"},
		),
		InteractionsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "interactions_created",
				Help: "Total number of interactions created, by type",
			},
			[]string{"type"},
		),
	}

	prometheus.MustRegister(m.SuccessfulRequests)
	prometheus.MustRegister(m.BadRequests)
	prometheus.MustRegister(m.FollowRequests)
	prometheus.MustRegister(m.UnfollowRequests)
	prometheus.MustRegister(m.InteractionsCreated)

	return m
}
