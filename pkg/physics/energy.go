package physics

// KineticEnergy calculates the total kinetic energy of the system
func (s *System) KineticEnergy() float64 {
	energy := 0.0
	for i := range s.Bodies {
		v2 := s.Bodies[i].Velocity.Dot(s.Bodies[i].Velocity)
		energy += 0.5 * s.Bodies[i].Mass * v2
	}
	return energy
}

// PotentialEnergy calculates the total gravitational potential energy.
// Distances are computed without softening.
func (s *System) PotentialEnergy() float64 {
	energy := 0.0
	n := len(s.Bodies)

	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			r := s.Bodies[i].Position.Distance(s.Bodies[j].Position)
			if r > 0 {
				energy -= s.G * s.Bodies[i].Mass * s.Bodies[j].Mass / r
			}
		}
	}

	return energy
}

// TotalEnergy returns total mechanical energy, the drift diagnostic.
// Empty systems report 0 and a single body reports kinetic-only energy.
func (s *System) TotalEnergy() float64 {
	return s.KineticEnergy() + s.PotentialEnergy()
}

// AngularMomentum returns the total angular momentum about the origin
// (z-component; the simulation is planar).
func (s *System) AngularMomentum() float64 {
	total := 0.0
	for i := range s.Bodies {
		total += s.Bodies[i].Mass * s.Bodies[i].Position.Cross(s.Bodies[i].Velocity)
	}
	return total
}
