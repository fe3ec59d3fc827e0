package utils

import "testing"

func TestDefaultConfigIsValid(t *testing.T) {
	if err := ValidateConfig(DefaultConfig()); err != nil {
		t.Errorf("default config rejected: %v", err)
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero dt", func(c *Config) { c.Simulation.Dt = 0 }},
		{"negative dt", func(c *Config) { c.Simulation.Dt = -0.1 }},
		{"unknown integrator", func(c *Config) { c.Simulation.Integrator = "leapfrog" }},
		{"negative satellites", func(c *Config) { c.Simulation.Satellites = -1 }},
		{"zero G", func(c *Config) { c.Physics.G = 0 }},
		{"zero central mass", func(c *Config) { c.Physics.CentralMass = 0 }},
		{"zero central radius", func(c *Config) { c.Physics.CentralRadius = 0 }},
		{"zero risk interval", func(c *Config) { c.Analysis.RiskIntervalTicks = 0 }},
		{"metrics without address", func(c *Config) {
			c.Metrics.Enabled = true
			c.Metrics.ListenAddr = ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := ValidateConfig(cfg); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidIntegratorNames(t *testing.T) {
	for _, name := range []string{"euler", "verlet", "rk4"} {
		cfg := DefaultConfig()
		cfg.Simulation.Integrator = name
		if err := ValidateConfig(cfg); err != nil {
			t.Errorf("%s rejected: %v", name, err)
		}
	}
}
