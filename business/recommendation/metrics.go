package recommendation

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	StageDegradedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_stage_degraded_total",
			Help: "Count of scoring stages that fell back to neutral scores, by stage.",
		},
		[]string{"stage"},
	)
)

func init() {
	prometheus.MustRegister(StageDegradedTotal)
}
