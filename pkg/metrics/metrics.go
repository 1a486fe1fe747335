package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
)

// Minimal Prometheus-text-format counters and gauges. The decoy keeps its
// instrumentation in-process and only exposes it over HTTP when the operator
// opts into the ops listener.

type Counter struct {
	v    uint64
	name string
	help string
}

func NewCounter(name, help string) *Counter { return &Counter{name: name, help: help} }

func (c *Counter) Inc()          { atomic.AddUint64(&c.v, 1) }
func (c *Counter) Add(n uint64)  { atomic.AddUint64(&c.v, n) }
func (c *Counter) Value() uint64 { return atomic.LoadUint64(&c.v) }

func (c *Counter) expose(w http.ResponseWriter) {
	if c.help != "" {
		fmt.Fprintf(w, "# HELP %s %s\n", c.name, c.help)
	}
	fmt.Fprintf(w, "# TYPE %s counter\n%s %d\n", c.name, c.name, c.Value())
}

type Gauge struct {
	v    int64
	name string
	help string
}

func NewGauge(name, help string) *Gauge { return &Gauge{name: name, help: help} }

func (g *Gauge) Set(n int64)  { atomic.StoreInt64(&g.v, n) }
func (g *Gauge) Add(n int64)  { atomic.AddInt64(&g.v, n) }
func (g *Gauge) Value() int64 { return atomic.LoadInt64(&g.v) }

func (g *Gauge) expose(w http.ResponseWriter) {
	if g.help != "" {
		fmt.Fprintf(w, "# HELP %s %s\n", g.name, g.help)
	}
	fmt.Fprintf(w, "# TYPE %s gauge\n%s %d\n", g.name, g.name, g.Value())
}

// Registry collects counters and gauges and serves them in Prometheus text
// exposition format.
type Registry struct {
	mu       sync.Mutex
	counters []*Counter
	gauges   []*Gauge
}

func NewRegistry() *Registry { return &Registry{} }

func (r *Registry) Register(c *Counter) {
	r.mu.Lock()
	r.counters = append(r.counters, c)
	r.mu.Unlock()
}

func (r *Registry) RegisterGauge(g *Gauge) {
	r.mu.Lock()
	r.gauges = append(r.gauges, g)
	r.mu.Unlock()
}

func (r *Registry) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.counters {
		c.expose(w)
	}
	for _, g := range r.gauges {
		g.expose(w)
	}
}
