package pcache

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var cacheStatsGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "pcache_ratio",
	Help: "Lifetime hits/misses of process-level parse cache",
}, []string{"metric"})

// RecordStats exports the cache's lifetime counters under the given name.
// Call periodically; gauges are overwritten, not accumulated.
func RecordStats(name string, p PCache) {
	cacheStatsGauge.WithLabelValues(fmt.Sprintf("%s:hits", name)).Set(float64(p.Cache.Metrics.Hits()))
	cacheStatsGauge.WithLabelValues(fmt.Sprintf("%s:misses", name)).Set(float64(p.Cache.Metrics.Misses()))
	cacheStatsGauge.WithLabelValues(fmt.Sprintf("%s:ratio", name)).Set(p.Cache.Metrics.Ratio())
	cacheStatsGauge.WithLabelValues(fmt.Sprintf("%s:sets_dropped", name)).Set(float64(p.Cache.Metrics.SetsDropped()))
	cacheStatsGauge.WithLabelValues(fmt.Sprintf("%s:sets_rejected", name)).Set(float64(p.Cache.Metrics.SetsRejected()))
	cacheStatsGauge.WithLabelValues(fmt.Sprintf("%s:evictions", name)).Set(float64(p.Cache.Metrics.KeysEvicted()))
}
