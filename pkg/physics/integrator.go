package physics

import "fmt"

// Integrator selects the time-stepping scheme
type Integrator int

const (
	// Euler is a semi-implicit single-evaluation scheme. Least
	// accurate, kept as the worst-case baseline.
	Euler Integrator = iota
	// Verlet is the kick-drift-kick velocity Verlet scheme. Symplectic,
	// the default for its long-term energy behavior.
	Verlet
	// RK4 is the classical four-stage Runge-Kutta scheme. Best
	// short-term accuracy, used for prediction and planning.
	RK4
)

// String implements fmt.Stringer
func (k Integrator) String() string {
	switch k {
	case Euler:
		return "euler"
	case Verlet:
		return "verlet"
	case RK4:
		return "rk4"
	}
	return fmt.Sprintf("integrator(%d)", int(k))
}

// ParseIntegrator parses an integrator name as used in configuration
func ParseIntegrator(name string) (Integrator, error) {
	switch name {
	case "euler":
		return Euler, nil
	case "verlet":
		return Verlet, nil
	case "rk4":
		return RK4, nil
	}
	return Euler, fmt.Errorf("unknown integrator %q", name)
}

// Step advances the system by dt using the chosen scheme. All schemes
// mutate non-fixed bodies only and are deterministic for identical
// initial state and dt.
func Step(s *System, k Integrator, dt float64, drag bool) {
	switch k {
	case Verlet:
		VerletStep(s, dt, drag)
	case RK4:
		RK4Step(s, dt, drag)
	default:
		EulerStep(s, dt, drag)
	}
}

// EulerStep performs one semi-implicit Euler step: velocity first from
// the current acceleration, then position from the updated velocity.
func EulerStep(s *System, dt float64, drag bool) {
	acc := Accelerations(s, drag)
	for i := range s.Bodies {
		if s.Bodies[i].Fixed {
			continue
		}
		s.Bodies[i].Velocity = s.Bodies[i].Velocity.Add(acc[i].Scale(dt))
		s.Bodies[i].Position = s.Bodies[i].Position.Add(s.Bodies[i].Velocity.Scale(dt))
	}
	s.Time += dt
}

// VerletStep performs one velocity Verlet step (kick-drift-kick),
// evaluating forces twice.
func VerletStep(s *System, dt float64, drag bool) {
	acc := Accelerations(s, drag)

	// Half kick
	for i := range s.Bodies {
		if s.Bodies[i].Fixed {
			continue
		}
		s.Bodies[i].Velocity = s.Bodies[i].Velocity.Add(acc[i].Scale(dt * 0.5))
	}

	// Drift
	for i := range s.Bodies {
		if s.Bodies[i].Fixed {
			continue
		}
		s.Bodies[i].Position = s.Bodies[i].Position.Add(s.Bodies[i].Velocity.Scale(dt))
	}

	// Second half kick with recomputed forces
	acc = Accelerations(s, drag)
	for i := range s.Bodies {
		if s.Bodies[i].Fixed {
			continue
		}
		s.Bodies[i].Velocity = s.Bodies[i].Velocity.Add(acc[i].Scale(dt * 0.5))
	}

	s.Time += dt
}

// RK4Step performs one classical Runge-Kutta step. Intermediate stages
// are evaluated on cloned systems at fractional steps so that drag,
// which depends on velocity, is sampled consistently.
func RK4Step(s *System, dt float64, drag bool) {
	k1v := Accelerations(s, drag)
	k1x := velocities(s)

	s2 := s.Copy()
	advance(s2, k1x, k1v, dt*0.5)
	k2v := Accelerations(s2, drag)
	k2x := velocities(s2)

	s3 := s.Copy()
	advance(s3, k2x, k2v, dt*0.5)
	k3v := Accelerations(s3, drag)
	k3x := velocities(s3)

	s4 := s.Copy()
	advance(s4, k3x, k3v, dt)
	k4v := Accelerations(s4, drag)
	k4x := velocities(s4)

	sixth := dt / 6.0
	for i := range s.Bodies {
		if s.Bodies[i].Fixed {
			continue
		}
		dx := k1x[i].Add(k2x[i].Scale(2)).Add(k3x[i].Scale(2)).Add(k4x[i])
		dv := k1v[i].Add(k2v[i].Scale(2)).Add(k3v[i].Scale(2)).Add(k4v[i])
		s.Bodies[i].Position = s.Bodies[i].Position.Add(dx.Scale(sixth))
		s.Bodies[i].Velocity = s.Bodies[i].Velocity.Add(dv.Scale(sixth))
	}

	s.Time += dt
}

// velocities snapshots the current body velocities
func velocities(s *System) []Vec2 {
	v := make([]Vec2, len(s.Bodies))
	for i := range s.Bodies {
		v[i] = s.Bodies[i].Velocity
	}
	return v
}

// advance shifts a cloned system by h along the given position and
// velocity derivatives, skipping fixed bodies.
func advance(s *System, dx, dv []Vec2, h float64) {
	for i := range s.Bodies {
		if s.Bodies[i].Fixed {
			continue
		}
		s.Bodies[i].Position = s.Bodies[i].Position.Add(dx[i].Scale(h))
		s.Bodies[i].Velocity = s.Bodies[i].Velocity.Add(dv[i].Scale(h))
	}
}
