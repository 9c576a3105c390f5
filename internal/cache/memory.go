package cache

import (
	"time"

	"github.com/jellydator/ttlcache/v3"
)

type entry struct {
	body       []byte
	capturedAt time.Time
}

// Memory is an in-process Store backed by a TTL cache. Entries expire at
// local midnight; the capture timestamp is re-checked on every read so
// correctness does not depend on the eviction goroutine's timing.
type Memory struct {
	cache *ttlcache.Cache[string, entry]
	now   func() time.Time
}

// MemoryOption configures a Memory store.
type MemoryOption func(*Memory)

// WithClock overrides the time source. Used by tests to simulate day
// rollover.
func WithClock(now func() time.Time) MemoryOption {
	return func(m *Memory) {
		m.now = now
	}
}

// NewMemory creates an in-memory freshness cache.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{
		cache: ttlcache.New[string, entry](
			ttlcache.WithDisableTouchOnHit[string, entry](),
		),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	go m.cache.Start()
	return m
}

func (m *Memory) Get(url string) ([]byte, bool) {
	item := m.cache.Get(url)
	if item == nil {
		return nil, false
	}
	e := item.Value()
	if !sameCalendarDay(e.capturedAt, m.now()) {
		m.cache.Delete(url)
		return nil, false
	}
	return e.body, true
}

func (m *Memory) Put(url string, body []byte) {
	now := m.now()
	m.cache.Set(url, entry{body: body, capturedAt: now}, untilMidnight(now))
}

// Stop terminates the background eviction goroutine.
func (m *Memory) Stop() {
	m.cache.Stop()
}
