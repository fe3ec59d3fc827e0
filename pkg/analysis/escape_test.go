package analysis

import (
	"math"
	"testing"

	"github.com/orbitlab/orbitguard/internal/types"
	"github.com/orbitlab/orbitguard/pkg/physics"
)

func newCentralScenario() *physics.System {
	s := physics.NewSystem()
	r := 200.0
	v := math.Sqrt(s.G * 50000 / r)
	s.Bodies = append(s.Bodies,
		physics.Body{ID: "primary", Mass: 50000, Radius: 30, Fixed: true},
		physics.Body{
			ID: "sat", Mass: 10, Radius: 5,
			Position: physics.Vec2{X: r},
			Velocity: physics.Vec2{Y: v},
		},
	)
	return s
}

// A lone satellite on a circular orbit: the unperturbed candidate keeps
// both maximum clearance and zero radial deviation, so it must win.
func TestPlanEscapeCircularOrbitKeepsCourse(t *testing.T) {
	s := newCentralScenario()

	maneuver, err := PlanEscape(s, "sat", 0.1, false)
	if err != nil {
		t.Fatalf("PlanEscape: %v", err)
	}

	if maneuver.SpeedMultiplier != 1.0 {
		t.Errorf("speed multiplier = %v, want 1.0", maneuver.SpeedMultiplier)
	}
	if maneuver.HeadingOffset != 0 {
		t.Errorf("heading offset = %v, want 0", maneuver.HeadingOffset)
	}
	if maneuver.Score <= 0 {
		t.Errorf("score = %v, want positive", maneuver.Score)
	}

	sat := s.Body("sat")
	if maneuver.Velocity.Distance(sat.Velocity) > 1e-9 {
		t.Errorf("winning velocity %v differs from current %v", maneuver.Velocity, sat.Velocity)
	}
}

func TestPlanEscapeLeavesLiveStateUntouched(t *testing.T) {
	s := newCentralScenario()
	before := s.Copy()

	if _, err := PlanEscape(s, "sat", 0.1, false); err != nil {
		t.Fatalf("PlanEscape: %v", err)
	}

	sat, was := s.Body("sat"), before.Body("sat")
	if sat.Position != was.Position || sat.Velocity != was.Velocity {
		t.Error("live satellite mutated by planning")
	}
}

// Two satellites closer than the collision margin: every candidate is
// disqualified on the first projected step.
func TestPlanEscapeNoSafeManeuver(t *testing.T) {
	s := newCentralScenario()
	blocker := physics.Body{
		ID: "blocker", Mass: 10, Radius: 6,
		Position: physics.Vec2{X: 215},
		Velocity: physics.Vec2{Y: math.Sqrt(s.G * 50000 / 215)},
	}
	s.Bodies = append(s.Bodies, blocker)

	_, err := PlanEscape(s, "sat", 0.1, false)
	if !types.ErrNoSafeManeuver.Is(err) {
		t.Errorf("got %v, want ErrNoSafeManeuver", err)
	}
}

func TestPlanEscapeErrors(t *testing.T) {
	s := newCentralScenario()

	if _, err := PlanEscape(s, "ghost", 0.1, false); !types.ErrInvalidBody.Is(err) {
		t.Errorf("unknown id: got %v, want ErrInvalidBody", err)
	}
	if _, err := PlanEscape(s, "primary", 0.1, false); !types.ErrInvalidBody.Is(err) {
		t.Errorf("fixed body: got %v, want ErrInvalidBody", err)
	}

	hyperbolic := newCentralScenario()
	sat := hyperbolic.Body("sat")
	sat.Velocity = sat.Velocity.Scale(2)
	if _, err := PlanEscape(hyperbolic, "sat", 0.1, false); !types.ErrDegenerateOrbit.Is(err) {
		t.Errorf("escape-speed body: got %v, want ErrDegenerateOrbit", err)
	}

	noPrimary := physics.NewSystem()
	noPrimary.Bodies = append(noPrimary.Bodies,
		physics.Body{ID: "sat", Mass: 10, Radius: 5, Position: physics.Vec2{X: 100}, Velocity: physics.Vec2{Y: 5}},
	)
	if _, err := PlanEscape(noPrimary, "sat", 0.1, false); !types.ErrNoPrimary.Is(err) {
		t.Errorf("no primary: got %v, want ErrNoPrimary", err)
	}
}
