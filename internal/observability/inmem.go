package observability

import "sync"

type observe struct {
	Kind    string
	Source  string
	Name    string
	Method  string
	Status  int
	OK      bool
	Forced  bool
	Matched int
	Dur     float64
	CacheMs float64
}

// Inmem keeps the last max observations. Used in tests and local runs.
type Inmem struct {
	mu     sync.Mutex
	last   []*observe
	max    int
	totals struct {
		cacheHits, cacheMiss int
	}
}

func NewInmem(max int) *Inmem {
	return &Inmem{
		max: max,
	}
}

func (m *Inmem) push(v *observe) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.max <= 0 {
		m.last = []*observe{}
		return
	}
	m.last = append(m.last, v)
	if len(m.last) > m.max {
		m.last = m.last[1:]
	}
}

func (m *Inmem) ObserveLookup(source string, cacheMs, remoteMs float64) {
	m.push(&observe{Kind: "lookup", Source: source, CacheMs: cacheMs, Dur: remoteMs})
}

func (m *Inmem) ObserveMutation(command string, ok bool, durMs float64) {
	m.push(&observe{Kind: "mutation", Name: command, OK: ok, Dur: durMs})
}

func (m *Inmem) ObserveInvalidation(resource string, forced bool, matched int) {
	m.push(&observe{Kind: "invalidation", Name: resource, Forced: forced, Matched: matched})
}

func (m *Inmem) ObserveHTTP(method, route string, status int, durMs float64) {
	m.push(&observe{Kind: "http", Method: method, Name: route, Status: status, Dur: durMs})
}

func (m *Inmem) ObserveKafka(processMs float64, ok bool) {
	m.push(&observe{Kind: "kafka", Dur: processMs, OK: ok})
}

func (m *Inmem) IncCacheHit() {
	m.mu.Lock()
	m.totals.cacheHits++
	m.mu.Unlock()
}

func (m *Inmem) IncCacheMiss() {
	m.mu.Lock()
	m.totals.cacheMiss++
	m.mu.Unlock()
}

// Count returns how many retained observations have the given kind.
func (m *Inmem) Count(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, o := range m.last {
		if o.Kind == kind {
			n++
		}
	}
	return n
}

func (m *Inmem) CacheTotals() (hits, misses int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.totals.cacheHits, m.totals.cacheMiss
}
