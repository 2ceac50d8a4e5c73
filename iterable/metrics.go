package iterable

import "github.com/zoobzio/metricz"

// Metric keys maintained by every Iterable.
const (
	CastAttemptsTotal  = metricz.Key("cast.attempts.total")
	CastSuccessesTotal = metricz.Key("cast.successes.total")
	CastFailuresTotal  = metricz.Key("cast.failures.total")
	CastFallbacksTotal = metricz.Key("cast.fallbacks.total")
)

func registerMetrics(registry *metricz.Registry) {
	registry.Counter(CastAttemptsTotal)
	registry.Counter(CastSuccessesTotal)
	registry.Counter(CastFailuresTotal)
	registry.Counter(CastFallbacksTotal)
}
