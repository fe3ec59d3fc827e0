package analysis

import (
	"testing"

	"github.com/orbitlab/orbitguard/internal/types"
	"github.com/orbitlab/orbitguard/pkg/physics"
)

// Two light bodies on a head-on course. Gravity between them is
// negligible, so closure is dominated by the initial velocities.
func newConvergingPair() *physics.System {
	s := physics.NewSystem()
	s.Bodies = append(s.Bodies,
		physics.Body{ID: "a", Mass: 1, Radius: 5, Position: physics.Vec2{X: -50}, Velocity: physics.Vec2{X: 2}},
		physics.Body{ID: "b", Mass: 1, Radius: 5, Position: physics.Vec2{X: 50}, Velocity: physics.Vec2{X: -2}},
	)
	return s
}

func TestPredictRiskConvergingPair(t *testing.T) {
	s := newConvergingPair()
	report := PredictRisk(s, 0.5, false)

	if report.Score != 100 {
		t.Errorf("score = %v, want 100 for projected collision", report.Score)
	}
	if report.MinRatio > 1.0 {
		t.Errorf("min ratio = %v, want <= 1", report.MinRatio)
	}
	if report.Steps >= PredictionSteps {
		t.Errorf("projection ran all %d steps, expected early stop", report.Steps)
	}
	if len(report.Pairs) != 1 {
		t.Fatalf("flagged pairs = %d, want 1", len(report.Pairs))
	}
	pair := report.Pairs[0]
	if pair.AID != "a" || pair.BID != "b" {
		t.Errorf("flagged pair = %s/%s, want a/b", pair.AID, pair.BID)
	}
	if pair.Level != types.RiskCritical {
		t.Errorf("pair level = %s, want critical", pair.Level)
	}
}

func TestPredictRiskDistantPair(t *testing.T) {
	s := physics.NewSystem()
	s.Bodies = append(s.Bodies,
		physics.Body{ID: "a", Mass: 1, Radius: 5, Position: physics.Vec2{X: -500}, Velocity: physics.Vec2{X: -1}},
		physics.Body{ID: "b", Mass: 1, Radius: 5, Position: physics.Vec2{X: 500}, Velocity: physics.Vec2{X: 1}},
	)

	report := PredictRisk(s, 0.5, false)

	if report.Score != 0 {
		t.Errorf("score = %v, want 0 for receding pair", report.Score)
	}
	if len(report.Pairs) != 0 {
		t.Errorf("flagged pairs = %v, want none", report.Pairs)
	}
	if report.Steps != PredictionSteps {
		t.Errorf("projection stopped at %d steps without a collision", report.Steps)
	}
}

func TestPredictRiskIgnoresFixedBodies(t *testing.T) {
	s := physics.NewSystem()
	s.Bodies = append(s.Bodies,
		physics.Body{ID: "primary", Mass: 50000, Radius: 30, Fixed: true},
		// Falls straight onto the primary, but fixed pairs are not rated
		physics.Body{ID: "sat", Mass: 10, Radius: 5, Position: physics.Vec2{X: 60}},
	)

	report := PredictRisk(s, 0.5, false)
	if len(report.Pairs) != 0 {
		t.Errorf("pair with a fixed body was flagged: %v", report.Pairs)
	}
}

func TestPredictRiskLeavesLiveStateUntouched(t *testing.T) {
	s := newConvergingPair()
	before := s.Copy()

	PredictRisk(s, 0.5, false)

	for i := range s.Bodies {
		if s.Bodies[i].Position != before.Bodies[i].Position || s.Bodies[i].Velocity != before.Bodies[i].Velocity {
			t.Errorf("body %s mutated by projection", s.Bodies[i].ID)
		}
	}
	if s.Time != before.Time {
		t.Errorf("system time mutated: %v -> %v", before.Time, s.Time)
	}
}

func TestRiskScoreBands(t *testing.T) {
	tests := []struct {
		ratio float64
		want  float64
	}{
		{0.5, 100},
		{1.0, 100},
		{8.0, 0},
		{9.0, 0},
	}
	for _, tt := range tests {
		if got := riskScore(tt.ratio); got != tt.want {
			t.Errorf("riskScore(%v) = %v, want %v", tt.ratio, got, tt.want)
		}
	}

	mid := riskScore(4.5)
	if mid <= 0 || mid >= 100 {
		t.Errorf("riskScore(4.5) = %v, want strictly between 0 and 100", mid)
	}
}

func TestRiskLevelBands(t *testing.T) {
	tests := []struct {
		ratio float64
		want  types.RiskLevel
	}{
		{1.0, types.RiskCritical},
		{1.2, types.RiskCritical},
		{2.0, types.RiskHigh},
		{3.5, types.RiskMedium},
	}
	for _, tt := range tests {
		if got := riskLevel(tt.ratio); got != tt.want {
			t.Errorf("riskLevel(%v) = %s, want %s", tt.ratio, got, tt.want)
		}
	}
}
