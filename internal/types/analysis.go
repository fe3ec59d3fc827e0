package types

import (
	"github.com/orbitlab/orbitguard/pkg/physics"
)

// RiskLevel bands the projected closeness of a body pair
type RiskLevel string

const (
	RiskCritical RiskLevel = "critical" // ratio ≤ 1.2
	RiskHigh     RiskLevel = "high"     // ratio ≤ 2.5
	RiskMedium   RiskLevel = "medium"   // ratio ≤ 4.0
)

// RiskPair is a body pair flagged during a risk projection
type RiskPair struct {
	AID      string    `json:"a_id"`
	BID      string    `json:"b_id"`
	Level    RiskLevel `json:"level"`
	MinRatio float64   `json:"min_ratio"`
}

// RiskReport is the result of a forward risk projection. Score is in
// [0,100]; Pairs holds at most three flagged pairs in discovery order.
type RiskReport struct {
	Score    float64    `json:"score"`
	MinRatio float64    `json:"min_ratio"`
	Pairs    []RiskPair `json:"pairs,omitempty"`
	Steps    int        `json:"steps"`
}

// FirstCollider returns the identifier of the first body of the first
// flagged pair, or "" when nothing was flagged.
func (r *RiskReport) FirstCollider() string {
	if len(r.Pairs) == 0 {
		return ""
	}
	return r.Pairs[0].AID
}

// Maneuver is a velocity perturbation candidate selected by the escape
// planner, with its accumulated safety score.
type Maneuver struct {
	Velocity        physics.Vec2 `json:"velocity"`
	Score           float64      `json:"score"`
	SpeedMultiplier float64      `json:"speed_multiplier"`
	HeadingOffset   float64      `json:"heading_offset"`
}

// DriftStats summarizes one integrator's energy-drift series
type DriftStats struct {
	Mean  float64 `json:"mean"`
	Peak  float64 `json:"peak"`
	Final float64 `json:"final"`
}

// ComparisonResult holds the decimated energy-drift series of the three
// integrators run on clones of the same initial state.
type ComparisonResult struct {
	Euler  []float64 `json:"euler"`
	Verlet []float64 `json:"verlet"`
	RK4    []float64 `json:"rk4"`

	Stats map[string]DriftStats `json:"stats"`
}
