package physics

// Simulation constants. Distances are in scene units, masses in
// arbitrary mass units matched to G.
const (
	// DefaultG is the gravitational constant used by fresh systems.
	DefaultG = 1.0

	// Softening is added under the square root in force distance
	// calculations to avoid singularities at near-zero separation.
	Softening = 100.0

	// AtmosphereRadius is the distance from a fixed body inside which
	// atmospheric drag applies.
	AtmosphereRadius = 120.0

	// DragCoefficient scales the velocity-proportional drag term.
	DragCoefficient = 0.002

	// TrailLength bounds the per-body trail kept for renderers.
	TrailLength = 100
)

// Body represents a simulated body. Fixed bodies are immovable and
// never receive velocity or position updates.
type Body struct {
	ID       string
	Mass     float64
	Radius   float64
	Fixed    bool
	Position Vec2
	Velocity Vec2

	// Trail holds recent positions for renderer consumption. It is not
	// part of the physics state and is dropped by Copy.
	Trail []Vec2
}

// Speed returns the magnitude of the body's velocity
func (b *Body) Speed() float64 {
	return b.Velocity.Magnitude()
}

// RecordTrail appends the current position to the trail, dropping the
// oldest entry once TrailLength is exceeded.
func (b *Body) RecordTrail() {
	b.Trail = append(b.Trail, b.Position)
	if len(b.Trail) > TrailLength {
		b.Trail = b.Trail[len(b.Trail)-TrailLength:]
	}
}

// System represents the body registry at a simulation time
type System struct {
	Bodies []Body
	Time   float64
	G      float64
}

// NewSystem creates an empty system with the default constants
func NewSystem() *System {
	return &System{
		Bodies: make([]Body, 0),
		G:      DefaultG,
		Time:   0,
	}
}

// Copy creates a deep copy of the system. Trails are not carried over:
// clones exist so analyzers can explore hypothetical futures without
// touching live state, and ghost runs have no renderer.
func (s *System) Copy() *System {
	clone := &System{
		Bodies: make([]Body, len(s.Bodies)),
		Time:   s.Time,
		G:      s.G,
	}
	for i := range s.Bodies {
		clone.Bodies[i] = s.Bodies[i]
		clone.Bodies[i].Trail = nil
	}
	return clone
}

// Body returns a pointer to the body with the given identifier, or nil
// when no such body exists.
func (s *System) Body(id string) *Body {
	for i := range s.Bodies {
		if s.Bodies[i].ID == id {
			return &s.Bodies[i]
		}
	}
	return nil
}

// Primary returns the first fixed body, or nil when the system has none.
func (s *System) Primary() *Body {
	for i := range s.Bodies {
		if s.Bodies[i].Fixed {
			return &s.Bodies[i]
		}
	}
	return nil
}
