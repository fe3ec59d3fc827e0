package engine

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"cosmossdk.io/errors"

	"github.com/orbitlab/orbitguard/internal/types"
	"github.com/orbitlab/orbitguard/pkg/analysis"
	"github.com/orbitlab/orbitguard/pkg/metrics"
	"github.com/orbitlab/orbitguard/pkg/orbital"
	"github.com/orbitlab/orbitguard/pkg/physics"
	"github.com/orbitlab/orbitguard/pkg/utils"
)

const (
	// warningCooldown suppresses re-triggering a warning for a body
	// whose previous warning was dismissed within this window
	warningCooldown = 4 * time.Second

	// warningScoreThreshold is the risk score at which an early
	// warning is emitted
	warningScoreThreshold = 60.0
)

// Warning is an early collision warning carrying the flagged body's
// live-state velocity at emission time.
type Warning struct {
	BodyID   string
	Velocity physics.Vec2
	Score    float64
}

// Engine owns the live body registry and drives it one tick at a time.
// All mutation happens on the tick-loop side; analyzers only ever see
// deep clones. At most one risk projection and one escape plan are in
// flight at any time.
type Engine struct {
	mu         sync.Mutex
	sys        *physics.System
	dt         float64
	integrator physics.Integrator
	drag       bool
	paused     bool
	ticks      uint64
	riskEvery  uint64

	selected  string
	dismissed map[string]time.Time
	satSeq    int
	rng       *rand.Rand

	riskFlight   inflight
	escapeFlight inflight
	riskResults  chan *types.RiskReport

	collector *metrics.Collector

	onCollision        func(physics.CollisionEvent)
	onWarning          func(Warning)
	onSelectionCleared func(string)
}

// New builds an engine around the reference scenario described by the
// configuration. collector may be nil.
func New(cfg *utils.Config, collector *metrics.Collector) (*Engine, error) {
	kind, err := physics.ParseIntegrator(cfg.Simulation.Integrator)
	if err != nil {
		return nil, err
	}

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	return &Engine{
		sys:         NewScenario(cfg, rng),
		dt:          cfg.Simulation.Dt,
		integrator:  kind,
		drag:        cfg.Simulation.Drag,
		riskEvery:   uint64(cfg.Analysis.RiskIntervalTicks),
		dismissed:   make(map[string]time.Time),
		satSeq:      cfg.Simulation.Satellites,
		rng:         rng,
		riskResults: make(chan *types.RiskReport, 1),
		collector:   collector,
	}, nil
}

// OnCollision registers the collision event consumer
func (e *Engine) OnCollision(fn func(physics.CollisionEvent)) { e.onCollision = fn }

// OnWarning registers the early-warning consumer
func (e *Engine) OnWarning(fn func(Warning)) { e.onWarning = fn }

// OnSelectionCleared registers the callback fired when the externally
// selected body is removed by a collision.
func (e *Engine) OnSelectionCleared(fn func(string)) { e.onSelectionCleared = fn }

// Tick advances the simulation by one step: integration, collision
// resolution, trail recording, and periodic risk scheduling. It returns
// a snapshot of the updated state plus any collision events. Completed
// background risk reports are folded in at the start of the tick.
func (e *Engine) Tick(dt float64) (*physics.System, []physics.CollisionEvent) {
	e.mu.Lock()

	warning := e.drainRiskLocked()

	e.dt = dt
	physics.Step(e.sys, e.integrator, dt, e.drag)
	events, removed := physics.ResolveCollisions(e.sys)

	cleared := ""
	for _, id := range removed {
		if id == e.selected {
			cleared = id
			e.selected = ""
		}
	}

	for i := range e.sys.Bodies {
		e.sys.Bodies[i].RecordTrail()
	}

	e.ticks++
	e.collector.RecordTick(len(e.sys.Bodies), e.sys.TotalEnergy())
	for _, ev := range events {
		e.collector.RecordCollision(string(ev.Kind))
	}

	var ghost *physics.System
	if e.riskEvery > 0 && e.ticks%e.riskEvery == 0 && !e.paused && e.riskFlight.begin() {
		ghost = e.sys.Copy()
	}
	ghostDt, ghostDrag := e.dt, e.drag

	snapshot := e.sys.Copy()
	e.mu.Unlock()

	if e.onCollision != nil {
		for _, ev := range events {
			e.onCollision(ev)
		}
	}
	if cleared != "" && e.onSelectionCleared != nil {
		e.onSelectionCleared(cleared)
	}
	if warning != nil && e.onWarning != nil {
		e.onWarning(*warning)
	}

	if ghost != nil {
		go func() {
			report := analysis.PredictRisk(ghost, ghostDt, ghostDrag)
			e.riskResults <- report
			e.riskFlight.end()
		}()
	}

	return snapshot, events
}

// drainRiskLocked folds in a completed background risk report, if any,
// and returns the warning to emit once the lock is released.
func (e *Engine) drainRiskLocked() *Warning {
	select {
	case report := <-e.riskResults:
		return e.handleRiskLocked(report)
	default:
		return nil
	}
}

// handleRiskLocked records a risk report and decides whether an early
// warning is due, applying the per-body dismissal cooldown.
func (e *Engine) handleRiskLocked(report *types.RiskReport) *Warning {
	e.collector.RecordRisk(report.Score)

	if report.Score < warningScoreThreshold || e.paused {
		return nil
	}
	id := report.FirstCollider()
	if id == "" {
		return nil
	}
	body := e.sys.Body(id)
	if body == nil {
		return nil
	}
	if dismissedAt, ok := e.dismissed[id]; ok && time.Since(dismissedAt) < warningCooldown {
		return nil
	}
	return &Warning{BodyID: id, Velocity: body.Velocity, Score: report.Score}
}

// DismissWarning records that the warning for a body was dismissed,
// suppressing re-triggers for the cooldown window.
func (e *Engine) DismissWarning(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dismissed[id] = time.Now()
}

// SetIntegrator switches the live time-stepping scheme
func (e *Engine) SetIntegrator(kind physics.Integrator) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.integrator = kind
}

// SetDrag toggles atmospheric drag
func (e *Engine) SetDrag(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.drag = enabled
}

// SetPaused marks the simulation paused. Paused engines skip scheduled
// analyzer runs and suppress warnings; the caller owns the decision to
// stop ticking.
func (e *Engine) SetPaused(paused bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.paused = paused
}

// Select marks a body as externally selected
func (e *Engine) Select(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sys.Body(id) == nil {
		return errors.Wrapf(types.ErrInvalidBody, "select %q", id)
	}
	e.selected = id
	return nil
}

// Selected returns the currently selected body identifier
func (e *Engine) Selected() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.selected
}

// Snapshot returns a deep clone of the live system
func (e *Engine) Snapshot() *physics.System {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sys.Copy()
}

// AddBody spawns a satellite on a fresh circular orbit around the
// named fixed body ("" selects the primary) and returns its identifier.
func (e *Engine) AddBody(nearFixedID string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var anchor *physics.Body
	if nearFixedID == "" {
		anchor = e.sys.Primary()
	} else {
		anchor = e.sys.Body(nearFixedID)
	}
	if anchor == nil || !anchor.Fixed {
		return "", errors.Wrapf(types.ErrInvalidBody, "add body near %q", nearFixedID)
	}

	e.satSeq++
	id := fmt.Sprintf("sat-%d", e.satSeq)
	e.sys.Bodies = append(e.sys.Bodies, newSatellite(e.sys.G, *anchor, e.rng, id))
	return id, nil
}

// RemoveLastBody removes the most recently added non-fixed body and
// returns its identifier.
func (e *Engine) RemoveLastBody() (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := len(e.sys.Bodies) - 1; i >= 0; i-- {
		if e.sys.Bodies[i].Fixed {
			continue
		}
		id := e.sys.Bodies[i].ID
		e.sys.Bodies = append(e.sys.Bodies[:i], e.sys.Bodies[i+1:]...)
		if e.selected == id {
			e.selected = ""
		}
		return id, nil
	}
	return "", errors.Wrap(types.ErrInvalidBody, "no removable body")
}

// AnalyzeOrbit determines the Keplerian elements of a body relative to
// the fixed primary, computed on a clone of live state.
func (e *Engine) AnalyzeOrbit(id string) (*orbital.Elements, error) {
	e.mu.Lock()
	snapshot := e.sys.Copy()
	e.mu.Unlock()

	return orbital.Determine(snapshot, id)
}

// PredictRisk runs an on-demand risk projection. It shares the
// single-flight guard with the periodic schedule and returns
// ErrAnalysisBusy when a projection is already running.
func (e *Engine) PredictRisk() (*types.RiskReport, error) {
	if !e.riskFlight.begin() {
		return nil, errors.Wrap(types.ErrAnalysisBusy, "risk projection")
	}

	e.mu.Lock()
	ghost := e.sys.Copy()
	dt, drag := e.dt, e.drag
	e.mu.Unlock()

	report := analysis.PredictRisk(ghost, dt, drag)
	e.riskFlight.end()

	e.mu.Lock()
	warning := e.handleRiskLocked(report)
	e.mu.Unlock()

	if warning != nil && e.onWarning != nil {
		e.onWarning(*warning)
	}
	return report, nil
}

// PlanEscape searches for a safe velocity perturbation for the given
// body on a clone of live state. At most one plan runs at a time.
func (e *Engine) PlanEscape(id string) (*types.Maneuver, error) {
	if !e.escapeFlight.begin() {
		return nil, errors.Wrap(types.ErrAnalysisBusy, "escape planning")
	}
	defer e.escapeFlight.end()

	e.mu.Lock()
	ghost := e.sys.Copy()
	dt, drag := e.dt, e.drag
	e.mu.Unlock()

	return analysis.PlanEscape(ghost, id, dt, drag)
}

// RunComparison produces the three-integrator energy-drift series from
// a clone of live state.
func (e *Engine) RunComparison() *types.ComparisonResult {
	e.mu.Lock()
	ghost := e.sys.Copy()
	dt, drag := e.dt, e.drag
	e.mu.Unlock()

	return analysis.CompareIntegrators(ghost, dt, drag)
}
