package engine

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/orbitlab/orbitguard/pkg/physics"
	"github.com/orbitlab/orbitguard/pkg/utils"
)

const (
	// PrimaryID names the fixed central body of the reference scenario
	PrimaryID = "primary"

	satelliteMass   = 10.0
	satelliteRadius = 6.0

	// New satellites spawn at a random orbital radius in this range
	minOrbitRadius = 120.0
	maxOrbitRadius = 320.0
)

// NewScenario builds the reference scenario: one fixed central body at
// the origin plus the configured number of satellites on circular
// orbits at random radii.
func NewScenario(cfg *utils.Config, rng *rand.Rand) *physics.System {
	sys := physics.NewSystem()
	sys.G = cfg.Physics.G

	sys.Bodies = append(sys.Bodies, physics.Body{
		ID:     PrimaryID,
		Mass:   cfg.Physics.CentralMass,
		Radius: cfg.Physics.CentralRadius,
		Fixed:  true,
	})

	primary := sys.Bodies[0]
	for i := 0; i < cfg.Simulation.Satellites; i++ {
		sys.Bodies = append(sys.Bodies, newSatellite(sys.G, primary, rng, fmt.Sprintf("sat-%d", i+1)))
	}

	return sys
}

// newSatellite places a satellite on a fresh circular orbit around the
// given fixed body: random radius in [minOrbitRadius, maxOrbitRadius],
// random phase, tangential velocity sqrt(G·M/r).
func newSatellite(g float64, primary physics.Body, rng *rand.Rand, id string) physics.Body {
	r := minOrbitRadius + rng.Float64()*(maxOrbitRadius-minOrbitRadius)
	theta := rng.Float64() * 2 * math.Pi
	speed := math.Sqrt(g * primary.Mass / r)

	return physics.Body{
		ID:     id,
		Mass:   satelliteMass,
		Radius: satelliteRadius,
		Position: primary.Position.Add(physics.Vec2{
			X: r * math.Cos(theta),
			Y: r * math.Sin(theta),
		}),
		Velocity: physics.Vec2{
			X: -speed * math.Sin(theta),
			Y: speed * math.Cos(theta),
		},
	}
}
