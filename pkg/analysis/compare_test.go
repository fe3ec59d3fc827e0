package analysis

import (
	"math"
	"testing"

	"github.com/orbitlab/orbitguard/pkg/physics"
)

func TestCompareIntegratorsSeries(t *testing.T) {
	s := newCentralScenario()
	result := CompareIntegrators(s, 0.5, false)

	wantLen := compareSteps / compareStride
	for name, series := range map[string][]float64{
		"euler":  result.Euler,
		"verlet": result.Verlet,
		"rk4":    result.RK4,
	} {
		if len(series) != wantLen {
			t.Errorf("%s series length = %d, want %d", name, len(series), wantLen)
		}
		for i, drift := range series {
			if drift < 0 || math.IsNaN(drift) {
				t.Errorf("%s drift[%d] = %v", name, i, drift)
			}
		}
		stats, ok := result.Stats[name]
		if !ok {
			t.Errorf("missing stats for %s", name)
			continue
		}
		if stats.Final != series[len(series)-1] {
			t.Errorf("%s final stat %v does not match series tail %v", name, stats.Final, series[len(series)-1])
		}
		if stats.Peak < stats.Mean {
			t.Errorf("%s peak %v below mean %v", name, stats.Peak, stats.Mean)
		}
	}
}

func TestCompareIntegratorsLeavesLiveStateUntouched(t *testing.T) {
	s := newCentralScenario()
	before := s.Copy()

	CompareIntegrators(s, 0.5, false)

	for i := range s.Bodies {
		if s.Bodies[i].Position != before.Bodies[i].Position || s.Bodies[i].Velocity != before.Bodies[i].Velocity {
			t.Errorf("body %s mutated by comparison", s.Bodies[i].ID)
		}
	}
}

func TestCompareIntegratorsEmptySystem(t *testing.T) {
	s := physics.NewSystem()
	result := CompareIntegrators(s, 0.5, false)

	for name, series := range map[string][]float64{
		"euler":  result.Euler,
		"verlet": result.Verlet,
		"rk4":    result.RK4,
	} {
		for _, drift := range series {
			if drift != 0 {
				t.Errorf("%s drift nonzero for empty system", name)
			}
		}
	}
}
