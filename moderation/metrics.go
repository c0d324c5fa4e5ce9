package moderation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var reportsFiled = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "moderation_reports_filed",
	Help: "Number of reports recorded",
}, []string{"kind"})

var reportsDropped = promauto.NewCounter(prometheus.CounterOpts{
	Name: "moderation_reports_dropped",
	Help: "Number of reports dropped by post or user removal",
})
