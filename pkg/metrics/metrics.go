package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector exposes simulation counters and gauges
type Collector struct {
	ticksTotal      prometheus.Counter
	bodies          prometheus.Gauge
	collisionsTotal *prometheus.CounterVec
	riskScore       prometheus.Gauge
	totalEnergy     prometheus.Gauge
}

// NewCollector registers and returns the simulation metrics
func NewCollector() *Collector {
	c := &Collector{
		ticksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orbitguard_ticks_total",
			Help: "Total simulation ticks advanced",
		}),
		bodies: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orbitguard_bodies",
			Help: "Number of live bodies",
		}),
		collisionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "orbitguard_collisions_total",
			Help: "Total collisions resolved",
		}, []string{"kind"}),
		riskScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orbitguard_risk_score",
			Help: "Latest collision risk score (0-100)",
		}),
		totalEnergy: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orbitguard_total_energy",
			Help: "Total mechanical energy of the live system",
		}),
	}

	prometheus.MustRegister(c.ticksTotal)
	prometheus.MustRegister(c.bodies)
	prometheus.MustRegister(c.collisionsTotal)
	prometheus.MustRegister(c.riskScore)
	prometheus.MustRegister(c.totalEnergy)

	return c
}

// RecordTick updates the per-tick metrics
func (c *Collector) RecordTick(bodies int, energy float64) {
	if c == nil {
		return
	}
	c.ticksTotal.Inc()
	c.bodies.Set(float64(bodies))
	c.totalEnergy.Set(energy)
}

// RecordCollision counts a resolved collision by kind
func (c *Collector) RecordCollision(kind string) {
	if c == nil {
		return
	}
	c.collisionsTotal.WithLabelValues(kind).Inc()
}

// RecordRisk publishes the latest risk score
func (c *Collector) RecordRisk(score float64) {
	if c == nil {
		return
	}
	c.riskScore.Set(score)
}

// Serve exposes /metrics on the given address. Blocks.
func (c *Collector) Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(addr, mux)
}
