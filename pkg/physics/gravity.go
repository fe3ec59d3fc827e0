package physics

import "math"

// Accelerations computes one acceleration vector per body under
// softened pairwise gravity. When drag is enabled, bodies inside the
// atmosphere of a fixed body additionally feel a velocity-proportional
// drag term. Fixed bodies receive no acceleration. The routine has no
// side effects and can run against any system, live or cloned.
func Accelerations(s *System, drag bool) []Vec2 {
	n := len(s.Bodies)
	acc := make([]Vec2, n)

	for i := 0; i < n; i++ {
		if s.Bodies[i].Fixed {
			continue
		}
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			d := s.Bodies[j].Position.Sub(s.Bodies[i].Position)
			distSq := d.X*d.X + d.Y*d.Y
			dist := math.Sqrt(distSq + Softening)

			// a = G * M_j * d / (|d|² * softened |d|)
			f := s.G * s.Bodies[j].Mass / (distSq * dist)
			acc[i] = acc[i].Add(d.Scale(f))

			if drag && s.Bodies[j].Fixed && dist < AtmosphereRadius {
				acc[i] = acc[i].Sub(s.Bodies[i].Velocity.Scale(DragCoefficient))
			}
		}
	}

	return acc
}
