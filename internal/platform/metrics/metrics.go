package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// Collector tallies request outcomes in process, broken down by API area
// (employees, leave, payroll, ...). Totals are plain atomics; the area
// table locks only when a new area is seen.
type Collector struct {
	totalRequests   uint64
	clientErrors    uint64
	serverErrors    uint64
	rateLimited     uint64
	totalDurationMs uint64

	mu    sync.RWMutex
	areas map[string]*uint64
}

func New() *Collector {
	return &Collector{areas: make(map[string]*uint64)}
}

func (c *Collector) Record(area string, status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	switch {
	case status == 429:
		atomic.AddUint64(&c.rateLimited, 1)
	case status >= 500:
		atomic.AddUint64(&c.serverErrors, 1)
	case status >= 400:
		atomic.AddUint64(&c.clientErrors, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))

	if area == "" {
		return
	}
	c.mu.RLock()
	counter, ok := c.areas[area]
	c.mu.RUnlock()
	if !ok {
		c.mu.Lock()
		counter, ok = c.areas[area]
		if !ok {
			counter = new(uint64)
			c.areas[area] = counter
		}
		c.mu.Unlock()
	}
	atomic.AddUint64(counter, 1)
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}

	c.mu.RLock()
	byArea := make(map[string]uint64, len(c.areas))
	for area, counter := range c.areas {
		byArea[area] = atomic.LoadUint64(counter)
	}
	c.mu.RUnlock()

	return map[string]any{
		"requestsTotal":    total,
		"clientErrors":     atomic.LoadUint64(&c.clientErrors),
		"serverErrors":     atomic.LoadUint64(&c.serverErrors),
		"rateLimitedTotal": atomic.LoadUint64(&c.rateLimited),
		"avgDurationMs":    avg,
		"requestsByArea":   byArea,
	}
}
