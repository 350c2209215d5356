package icontables

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup outcomes recorded in lookupTotal
const (
	resultHit   = "hit"
	resultMatch = "match"
	resultMiss  = "miss"
)

var (
	// lookupTotal counts lookups by cache slot and outcome
	lookupTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fileicons_lookup_total",
		Help: "Total icon lookups by cache slot and result (hit, match, miss)",
	}, []string{"slot", "result"})

	// scanRules tracks how many rules a cache-missing lookup examined
	scanRules = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fileicons_lookup_scanned_rules",
		Help:    "Rules evaluated per uncached lookup",
		Buckets: prometheus.ExponentialBuckets(1, 2, 10), // 1 to 512 rules
	}, []string{"slot"})
)
