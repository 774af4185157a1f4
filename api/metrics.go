package api

import (
	"sync"
	"time"
)

// RouteMetrics aggregates request metrics for a specific route
type RouteMetrics struct {
	Method      string        `json:"method"`
	Path        string        `json:"path"`
	Count       int64         `json:"count"`
	ErrorCount  int64         `json:"errorCount"`
	TotalTime   time.Duration `json:"totalTime"`
	AvgTime     time.Duration `json:"avgTime"`
	LastRequest time.Time     `json:"lastRequest"`
}

// MetricsCollector collects and aggregates request metrics
type MetricsCollector struct {
	mu           sync.RWMutex
	routeMetrics map[string]*RouteMetrics
}

// NewMetricsCollector returns an empty collector
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{routeMetrics: map[string]*RouteMetrics{}}
}

// Record updates the aggregate for a method/path pair
func (c *MetricsCollector) Record(method, path string, status int, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := method + " " + path
	m, ok := c.routeMetrics[key]
	if !ok {
		m = &RouteMetrics{Method: method, Path: path}
		c.routeMetrics[key] = m
	}
	m.Count++
	if status >= 400 {
		m.ErrorCount++
	}
	m.TotalTime += duration
	m.AvgTime = m.TotalTime / time.Duration(m.Count)
	m.LastRequest = time.Now()
}

// Summary returns a snapshot of all route aggregates
func (c *MetricsCollector) Summary() []RouteMetrics {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]RouteMetrics, 0, len(c.routeMetrics))
	for _, m := range c.routeMetrics {
		out = append(out, *m)
	}
	return out
}

// DefaultMetrics is the process-wide collector used by the middleware
var DefaultMetrics = NewMetricsCollector()
