package analysis

import (
	"math"

	"github.com/orbitlab/orbitguard/internal/types"
	"github.com/orbitlab/orbitguard/pkg/physics"
)

const (
	// PredictionSteps bounds the forward risk projection
	PredictionSteps = 240

	// maxFlaggedPairs caps the reported pair list
	maxFlaggedPairs = 3

	flagRatio     = 4.0
	criticalRatio = 1.2
	highRatio     = 2.5

	// Above this minimum ratio the risk score is zero
	safeRatio = 8.0
)

// PredictRisk runs a ghost projection on a clone of the given system:
// Verlet at 2·dt per step for up to PredictionSteps steps, honoring the
// live drag setting. It tracks, for every non-fixed pair, the ratio of
// separation to combined radii, stops early once a collision is
// projected (ratio ≤ 1), and maps the global minimum ratio to a score
// in [0,100]. The live system is never touched.
func PredictRisk(s *physics.System, dt float64, drag bool) *types.RiskReport {
	ghost := s.Copy()

	type pairKey struct{ a, b string }
	var order []pairKey
	pairMin := make(map[pairKey]float64)

	minRatio := math.Inf(1)
	steps := 0

	for step := 0; step < PredictionSteps; step++ {
		physics.VerletStep(ghost, 2*dt, drag)
		steps++

		n := len(ghost.Bodies)
		for i := 0; i < n; i++ {
			if ghost.Bodies[i].Fixed {
				continue
			}
			for j := i + 1; j < n; j++ {
				if ghost.Bodies[j].Fixed {
					continue
				}
				a, b := &ghost.Bodies[i], &ghost.Bodies[j]
				ratio := a.Position.Distance(b.Position) / (a.Radius + b.Radius)
				if ratio < minRatio {
					minRatio = ratio
				}
				if ratio < flagRatio {
					k := pairKey{a.ID, b.ID}
					if prev, seen := pairMin[k]; !seen {
						order = append(order, k)
						pairMin[k] = ratio
					} else if ratio < prev {
						pairMin[k] = ratio
					}
				}
			}
		}

		if minRatio <= 1.0 {
			break
		}
	}

	report := &types.RiskReport{
		MinRatio: minRatio,
		Steps:    steps,
		Score:    riskScore(minRatio),
	}

	for i, k := range order {
		if i == maxFlaggedPairs {
			break
		}
		report.Pairs = append(report.Pairs, types.RiskPair{
			AID:      k.a,
			BID:      k.b,
			Level:    riskLevel(pairMin[k]),
			MinRatio: pairMin[k],
		})
	}

	return report
}

// riskScore maps the minimum separation ratio to [0,100]
func riskScore(minRatio float64) float64 {
	switch {
	case minRatio <= 1.0:
		return 100
	case minRatio > safeRatio:
		return 0
	default:
		return 100 * (safeRatio - minRatio) / (safeRatio - 1.0)
	}
}

// riskLevel bands a pair's minimum ratio
func riskLevel(ratio float64) types.RiskLevel {
	switch {
	case ratio <= criticalRatio:
		return types.RiskCritical
	case ratio <= highRatio:
		return types.RiskHigh
	default:
		return types.RiskMedium
	}
}
