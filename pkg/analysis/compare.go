package analysis

import (
	"log"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/orbitlab/orbitguard/internal/types"
	"github.com/orbitlab/orbitguard/pkg/physics"
)

const (
	// compareSteps is the length of each comparison run
	compareSteps = 300

	// compareStride decimates the reported drift series
	compareStride = 5
)

// CompareIntegrators runs Euler, RK4 and Verlet independently on
// clones of the given system for compareSteps steps at dt, computing
// energy drift percentages against the shared initial energy. The
// result carries one decimated series per scheme plus summary
// statistics. The live system is read-only to this routine.
func CompareIntegrators(s *physics.System, dt float64, drag bool) *types.ComparisonResult {
	e0 := s.TotalEnergy()

	run := func(k physics.Integrator) []float64 {
		ghost := s.Copy()
		series := make([]float64, 0, compareSteps/compareStride)
		for step := 1; step <= compareSteps; step++ {
			physics.Step(ghost, k, dt, drag)
			if step%compareStride == 0 {
				series = append(series, driftPercent(e0, ghost.TotalEnergy()))
			}
		}
		return series
	}

	result := &types.ComparisonResult{
		Euler:  run(physics.Euler),
		RK4:    run(physics.RK4),
		Verlet: run(physics.Verlet),
	}
	result.Stats = map[string]types.DriftStats{
		physics.Euler.String():  summarize(result.Euler),
		physics.RK4.String():    summarize(result.RK4),
		physics.Verlet.String(): summarize(result.Verlet),
	}

	log.Printf("Integrator comparison over %d steps: euler=%.3f%% verlet=%.3f%% rk4=%.3f%% final drift",
		compareSteps,
		result.Stats["euler"].Final,
		result.Stats["verlet"].Final,
		result.Stats["rk4"].Final)

	return result
}

// driftPercent is the relative energy drift, 0 when the reference
// energy is zero.
func driftPercent(e0, et float64) float64 {
	if e0 == 0 {
		return 0
	}
	return math.Abs(et-e0) / math.Abs(e0) * 100
}

func summarize(series []float64) types.DriftStats {
	if len(series) == 0 {
		return types.DriftStats{}
	}
	return types.DriftStats{
		Mean:  stat.Mean(series, nil),
		Peak:  floats.Max(series),
		Final: series[len(series)-1],
	}
}
