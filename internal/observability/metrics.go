package observability

type Metrics interface {
	ObserveLookup(source string, cacheMs, remoteMs float64)
	ObserveMutation(command string, ok bool, durMs float64)
	ObserveInvalidation(resource string, forced bool, matched int)
	ObserveHTTP(method, route string, status int, durMs float64)
	ObserveKafka(processMs float64, ok bool)
	IncCacheHit()
	IncCacheMiss()
}

type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) ObserveLookup(string, float64, float64) {}
func (Noop) ObserveMutation(string, bool, float64) {}
func (Noop) ObserveInvalidation(string, bool, int) {}
func (Noop) ObserveHTTP(string, string, int, float64) {}
func (Noop) ObserveKafka(float64, bool) {}
func (Noop) IncCacheHit() {}
func (Noop) IncCacheMiss() {}
