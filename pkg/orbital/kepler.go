package orbital

import (
	"math"

	"cosmossdk.io/errors"

	"github.com/orbitlab/orbitguard/internal/types"
	"github.com/orbitlab/orbitguard/pkg/physics"
)

// Elements holds the Keplerian elements of a body relative to the
// fixed primary. When Bound is false the trajectory is hyperbolic or
// parabolic and only Eccentricity and SpecificEnergy are meaningful.
type Elements struct {
	Bound            bool
	SemiMajorAxis    float64 // a, scene units; a > 0 for bound orbits
	Eccentricity     float64 // e ≥ 0
	EccentricAnomaly float64 // E, radians
	SpecificEnergy   float64 // ε = v²/2 − G·M/r
}

const (
	maxKeplerIterations = 10
	keplerTolerance     = 1e-6
)

// Determine derives the Keplerian elements of the identified non-fixed
// body relative to the system's fixed primary.
//
// The mean anomaly is approximated as atan2(dy,dx), the position angle
// of the body. A true mean anomaly would require the eccentric/true
// anomaly conversion; the approximation is kept deliberately.
func Determine(s *physics.System, id string) (*Elements, error) {
	body := s.Body(id)
	if body == nil || body.Fixed {
		return nil, errors.Wrapf(types.ErrInvalidBody, "orbit analysis of %q", id)
	}
	primary := s.Primary()
	if primary == nil {
		return nil, errors.Wrap(types.ErrNoPrimary, "orbit analysis")
	}

	mu := s.G * primary.Mass
	rel := body.Position.Sub(primary.Position)
	velRel := body.Velocity.Sub(primary.Velocity)
	r := rel.Magnitude()
	v2 := velRel.Dot(velRel)

	eps := v2/2 - mu/r
	if eps >= 0 {
		// Unbound: report e ≥ 1 without further computation
		return &Elements{
			Bound:          false,
			Eccentricity:   1,
			SpecificEnergy: eps,
		}, nil
	}

	a := -mu / (2 * eps)
	h := rel.Cross(velRel)
	e := math.Sqrt(math.Max(0, 1+2*eps*h*h/(mu*mu)))

	meanAnomaly := math.Atan2(rel.Y, rel.X)
	E := solveKepler(e, meanAnomaly)

	return &Elements{
		Bound:            true,
		SemiMajorAxis:    a,
		Eccentricity:     e,
		EccentricAnomaly: E,
		SpecificEnergy:   eps,
	}, nil
}

// solveKepler solves Kepler's equation E − e·sin(E) = M for E by
// Newton-Raphson iteration starting from E₀ = M.
func solveKepler(e, M float64) float64 {
	E := M
	for i := 0; i < maxKeplerIterations; i++ {
		f := E - e*math.Sin(E) - M
		fp := 1 - e*math.Cos(E)
		deltaE := f / fp
		E -= deltaE
		if math.Abs(deltaE) < keplerTolerance {
			break
		}
	}
	return E
}
