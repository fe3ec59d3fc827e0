package types

import "cosmossdk.io/errors"

const codespace = "orbitguard"

var (
	// ErrInvalidBody is returned when an operation references an
	// unknown body identifier. Recovered locally, never fatal.
	ErrInvalidBody = errors.Register(codespace, 2, "unknown body")

	// ErrDegenerateOrbit marks an unbound (hyperbolic or parabolic)
	// trajectory for callers that require a bound orbit.
	ErrDegenerateOrbit = errors.Register(codespace, 3, "orbit is not bound")

	// ErrNoSafeManeuver is returned when the escape planner exhausts
	// every candidate without finding a safe trajectory.
	ErrNoSafeManeuver = errors.Register(codespace, 4, "no safe escape maneuver")

	// ErrAnalysisBusy rejects an analysis request that would overlap an
	// in-flight run of the same analyzer.
	ErrAnalysisBusy = errors.Register(codespace, 5, "analysis already in flight")

	// ErrNoPrimary is returned when an operation requires a fixed
	// central body and the system has none.
	ErrNoPrimary = errors.Register(codespace, 6, "system has no fixed primary")
)
