package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/orbitlab/orbitguard/internal/types"
	"github.com/orbitlab/orbitguard/pkg/engine"
	"github.com/orbitlab/orbitguard/pkg/metrics"
	"github.com/orbitlab/orbitguard/pkg/physics"
	"github.com/orbitlab/orbitguard/pkg/utils"
)

const (
	appName = "orbitguard"
	version = "0.3.0"
)

var cfg *utils.Config

func main() {
	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Orbital simulation and collision-risk analysis",
		Long: `Orbitguard runs a 2D gravitational simulation with pluggable
integrators, projects collision risk ahead of the live state, plans
escape maneuvers, and compares integrator energy drift.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = utils.LoadConfig()
			return err
		},
	}

	rootCmd.AddCommand(
		initCmd(),
		runCmd(),
		analyzeCmd(),
		planEscapeCmd(),
		compareCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func newEngine() (*engine.Engine, *metrics.Collector, error) {
	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector()
		go func() {
			if err := collector.Serve(cfg.Metrics.ListenAddr); err != nil {
				log.Printf("metrics listener stopped: %v", err)
			}
		}()
	}

	eng, err := engine.New(cfg, collector)
	if err != nil {
		return nil, nil, err
	}
	return eng, collector, nil
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return utils.SaveConfig(utils.DefaultConfig())
		},
	}
}

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Advance the simulation and report collisions and warnings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ticks, _ := cmd.Flags().GetInt("ticks")
			integrator, _ := cmd.Flags().GetString("integrator")

			if integrator != "" {
				cfg.Simulation.Integrator = integrator
			}
			eng, _, err := newEngine()
			if err != nil {
				return err
			}

			eng.OnCollision(func(ev physics.CollisionEvent) {
				log.Printf("collision (%s): %s and %s", ev.Kind, ev.AID, ev.BID)
			})
			eng.OnWarning(func(w engine.Warning) {
				log.Printf("warning: %s at risk, score %.1f", w.BodyID, w.Score)
			})

			for i := 0; i < ticks; i++ {
				eng.Tick(cfg.Simulation.Dt)
			}

			snapshot := eng.Snapshot()
			fmt.Printf("Ran %d ticks (%s): %d bodies remain, total energy %.4f\n",
				ticks, cfg.Simulation.Integrator, len(snapshot.Bodies), snapshot.TotalEnergy())
			return nil
		},
	}

	cmd.Flags().Int("ticks", 600, "Number of ticks to advance")
	cmd.Flags().String("integrator", "", "Override the configured integrator (euler, verlet, rk4)")

	return cmd
}

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Determine a body's orbital elements",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, _ := cmd.Flags().GetString("body")
			ticks, _ := cmd.Flags().GetInt("ticks")

			eng, _, err := newEngine()
			if err != nil {
				return err
			}
			for i := 0; i < ticks; i++ {
				eng.Tick(cfg.Simulation.Dt)
			}

			elements, err := eng.AnalyzeOrbit(body)
			if err != nil {
				return err
			}

			if !elements.Bound {
				fmt.Printf("Body %s is unbound (specific energy %.4f)\n", body, elements.SpecificEnergy)
				return nil
			}
			fmt.Printf("Body %s: a=%.2f e=%.4f E=%.4f eccentric anomaly=%.4f\n",
				body, elements.SemiMajorAxis, elements.Eccentricity,
				elements.SpecificEnergy, elements.EccentricAnomaly)
			return nil
		},
	}

	cmd.Flags().String("body", "sat-1", "Body identifier")
	cmd.Flags().Int("ticks", 0, "Ticks to advance before analyzing")

	return cmd
}

func planEscapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan-escape",
		Short: "Search for a safe velocity perturbation for a body",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, _ := cmd.Flags().GetString("body")

			eng, _, err := newEngine()
			if err != nil {
				return err
			}

			maneuver, err := eng.PlanEscape(body)
			if err != nil {
				if types.ErrNoSafeManeuver.Is(err) {
					fmt.Printf("No safe maneuver found for %s\n", body)
					return nil
				}
				return err
			}

			fmt.Printf("Maneuver for %s: velocity (%.3f, %.3f), speed x%.2f, heading %+.0f deg, score %.2f\n",
				body, maneuver.Velocity.X, maneuver.Velocity.Y,
				maneuver.SpeedMultiplier, maneuver.HeadingOffset, maneuver.Score)
			return nil
		},
	}

	cmd.Flags().String("body", "sat-1", "Body identifier")

	return cmd
}

func compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Compare energy drift across integrators",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, err := newEngine()
			if err != nil {
				return err
			}

			result := eng.RunComparison()

			fmt.Println("Integrator energy drift (% of initial energy):")
			for _, name := range []string{"euler", "verlet", "rk4"} {
				stats := result.Stats[name]
				fmt.Printf("  %-6s mean=%.4f%% peak=%.4f%% final=%.4f%%\n",
					strings.ToUpper(name), stats.Mean, stats.Peak, stats.Final)
			}
			return nil
		},
	}
}
