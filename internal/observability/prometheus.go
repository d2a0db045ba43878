package observability

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var durationBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0}

// Prometheus exports Metrics through a prometheus registerer.
type Prometheus struct {
	lookups       *prometheus.HistogramVec
	mutations     *prometheus.HistogramVec
	invalidations *prometheus.CounterVec
	invalidated   *prometheus.CounterVec
	httpRequests  *prometheus.HistogramVec
	kafkaEvents   *prometheus.HistogramVec
	cacheHits     prometheus.Counter
	cacheMisses   prometheus.Counter
}

func NewPrometheus(registerer prometheus.Registerer) *Prometheus {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	return &Prometheus{
		lookups: register(registerer, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "admin_lookup_remote_seconds",
			Help:    "Time spent fetching a read from the commerce API, by source",
			Buckets: durationBuckets,
		}, []string{"source"})),
		mutations: register(registerer, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "admin_mutation_duration_seconds",
			Help:    "Duration of admin mutations including invalidation",
			Buckets: durationBuckets,
		}, []string{"command", "ok"})),
		invalidations: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "admin_cache_invalidations_total",
			Help: "Number of invalidation requests by resource",
		}, []string{"resource", "forced"})),
		invalidated: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "admin_cache_invalidated_entries_total",
			Help: "Number of cache entries marked stale",
		}, []string{"resource"})),
		httpRequests: register(registerer, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "admin_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: durationBuckets,
		}, []string{"method", "route", "status"})),
		kafkaEvents: register(registerer, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "admin_kafka_event_duration_seconds",
			Help:    "Time spent applying an invalidation event",
			Buckets: durationBuckets,
		}, []string{"ok"})),
		cacheHits: register(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "admin_cache_hits_total",
			Help: "Reads served from a fresh cache entry",
		})),
		cacheMisses: register(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "admin_cache_misses_total",
			Help: "Reads that went to the commerce API",
		})),
	}
}

// register returns the already registered collector on duplicate registration.
func register[C prometheus.Collector](registerer prometheus.Registerer, c C) C {
	if err := registerer.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := are.ExistingCollector.(C)
			if !ok {
				panic(fmt.Sprintf("collector already registered with unexpected type: %T", are.ExistingCollector))
			}
			return existing
		}
		panic(fmt.Sprintf("register collector: %v", err))
	}
	return c
}

func (p *Prometheus) ObserveLookup(source string, _ float64, remoteMs float64) {
	p.lookups.WithLabelValues(source).Observe(remoteMs / 1000)
}

func (p *Prometheus) ObserveMutation(command string, ok bool, durMs float64) {
	p.mutations.WithLabelValues(command, strconv.FormatBool(ok)).Observe(durMs / 1000)
}

func (p *Prometheus) ObserveInvalidation(resource string, forced bool, matched int) {
	p.invalidations.WithLabelValues(resource, strconv.FormatBool(forced)).Inc()
	p.invalidated.WithLabelValues(resource).Add(float64(matched))
}

func (p *Prometheus) ObserveHTTP(method, route string, status int, durMs float64) {
	p.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Observe(durMs / 1000)
}

func (p *Prometheus) ObserveKafka(processMs float64, ok bool) {
	p.kafkaEvents.WithLabelValues(strconv.FormatBool(ok)).Observe(processMs / 1000)
}

func (p *Prometheus) IncCacheHit()  { p.cacheHits.Inc() }
func (p *Prometheus) IncCacheMiss() { p.cacheMisses.Inc() }
