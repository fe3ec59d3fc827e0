package analysis

import (
	"log"
	"math"

	"cosmossdk.io/errors"

	"github.com/orbitlab/orbitguard/internal/types"
	"github.com/orbitlab/orbitguard/pkg/physics"
)

const (
	// escapeSteps is the length of each candidate's ghost run
	escapeSteps = 300

	// collisionMargin widens the disqualifying distance beyond the
	// bodies' combined radii
	collisionMargin = 10.0

	// Candidates faster than this fraction of local escape velocity are
	// discarded to keep the body bound
	escapeSpeedCap = 0.9
)

var (
	speedMultipliers = []float64{0.85, 0.90, 0.95, 1.00, 1.05, 1.10, 1.15}
	headingOffsets   = []float64{-0.3, -0.2, -0.1, 0, 0.1, 0.2, 0.3}
)

// PlanEscape searches a 7×7 grid of velocity perturbations for the
// target body and scores each surviving candidate by forward-simulating
// a clone with RK4 at 2·dt for escapeSteps steps. The score rewards
// clearance from other bodies and penalizes deviation from the current
// orbital radius; a projected collision disqualifies the candidate
// outright. The live system is left unmodified. Returns
// ErrNoSafeManeuver when no candidate survives.
func PlanEscape(s *physics.System, id string, dt float64, drag bool) (*types.Maneuver, error) {
	body := s.Body(id)
	if body == nil || body.Fixed {
		return nil, errors.Wrapf(types.ErrInvalidBody, "escape planning for %q", id)
	}
	primary := s.Primary()
	if primary == nil {
		return nil, errors.Wrap(types.ErrNoPrimary, "escape planning")
	}

	radius := body.Position.Distance(primary.Position)
	vEsc := math.Sqrt(2 * s.G * primary.Mass / radius)
	speed := body.Speed()
	if speed >= vEsc {
		// Already unbound; there is no orbit to keep safe
		return nil, errors.Wrapf(types.ErrDegenerateOrbit, "%q moves at escape speed", id)
	}
	heading := math.Atan2(body.Velocity.Y, body.Velocity.X)

	var best *types.Maneuver
	evaluated := 0

	for _, mult := range speedMultipliers {
		candidateSpeed := speed * mult
		if candidateSpeed > escapeSpeedCap*vEsc {
			continue
		}
		for _, offset := range headingOffsets {
			vel := physics.Vec2{
				X: candidateSpeed * math.Cos(heading+offset),
				Y: candidateSpeed * math.Sin(heading+offset),
			}
			evaluated++

			score, safe := scoreCandidate(s, id, vel, dt, drag, radius)
			if !safe {
				continue
			}
			if best == nil || score > best.Score {
				best = &types.Maneuver{
					Velocity:        vel,
					Score:           score,
					SpeedMultiplier: mult,
					HeadingOffset:   offset,
				}
			}
		}
	}

	if best == nil {
		return nil, errors.Wrapf(types.ErrNoSafeManeuver, "%d candidates evaluated for %q", evaluated, id)
	}

	log.Printf("Escape plan for %s: score=%.2f speed=%.2fx heading=%+.2frad (%d candidates)",
		id, best.Score, best.SpeedMultiplier, best.HeadingOffset, evaluated)
	return best, nil
}

// scoreCandidate ghost-runs one candidate velocity. It returns the
// safety score and false when the run projects a collision.
func scoreCandidate(s *physics.System, id string, vel physics.Vec2, dt float64, drag bool, baseRadius float64) (float64, bool) {
	ghost := s.Copy()

	target := -1
	for i := range ghost.Bodies {
		if ghost.Bodies[i].ID == id {
			target = i
			break
		}
	}
	if target < 0 {
		return 0, false
	}
	ghost.Bodies[target].Velocity = vel

	primary := ghost.Primary()
	minDist := math.Inf(1)
	maxDeviation := 0.0

	for step := 0; step < escapeSteps; step++ {
		physics.RK4Step(ghost, 2*dt, drag)

		t := &ghost.Bodies[target]
		for j := range ghost.Bodies {
			if j == target {
				continue
			}
			o := &ghost.Bodies[j]
			d := t.Position.Distance(o.Position)
			if d < t.Radius+o.Radius+collisionMargin {
				return 0, false
			}
			if d < minDist {
				minDist = d
			}
		}

		deviation := math.Abs(t.Position.Distance(primary.Position) - baseRadius)
		if deviation > maxDeviation {
			maxDeviation = deviation
		}
	}

	return 2*minDist - 0.8*maxDeviation, true
}
