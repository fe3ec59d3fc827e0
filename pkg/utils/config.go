package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/orbitlab/orbitguard/pkg/physics"
)

// Config represents the engine configuration
type Config struct {
	Simulation SimulationConfig `yaml:"simulation" mapstructure:"simulation"`
	Physics    PhysicsConfig    `yaml:"physics" mapstructure:"physics"`
	Analysis   AnalysisConfig   `yaml:"analysis" mapstructure:"analysis"`
	Metrics    MetricsConfig    `yaml:"metrics" mapstructure:"metrics"`
}

// SimulationConfig contains the tick-loop parameters
type SimulationConfig struct {
	Dt         float64 `yaml:"dt" mapstructure:"dt"`
	Integrator string  `yaml:"integrator" mapstructure:"integrator"`
	Drag       bool    `yaml:"drag" mapstructure:"drag"`
	Satellites int     `yaml:"satellites" mapstructure:"satellites"`
	Seed       int64   `yaml:"seed" mapstructure:"seed"`
}

// PhysicsConfig contains the scenario's physical parameters
type PhysicsConfig struct {
	G             float64 `yaml:"g" mapstructure:"g"`
	CentralMass   float64 `yaml:"central_mass" mapstructure:"central_mass"`
	CentralRadius float64 `yaml:"central_radius" mapstructure:"central_radius"`
}

// AnalysisConfig contains the analyzer scheduling parameters
type AnalysisConfig struct {
	RiskIntervalTicks int `yaml:"risk_interval_ticks" mapstructure:"risk_interval_ticks"`
}

// MetricsConfig contains the prometheus listener settings
type MetricsConfig struct {
	Enabled    bool   `yaml:"enabled" mapstructure:"enabled"`
	ListenAddr string `yaml:"listen_addr" mapstructure:"listen_addr"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Dt:         0.1,
			Integrator: "verlet",
			Drag:       false,
			Satellites: 6,
			Seed:       0,
		},
		Physics: PhysicsConfig{
			G:             physics.DefaultG,
			CentralMass:   50000,
			CentralRadius: 30,
		},
		Analysis: AnalysisConfig{
			RiskIntervalTicks: 30,
		},
		Metrics: MetricsConfig{
			Enabled:    false,
			ListenAddr: ":9187",
		},
	}
}

// LoadConfig loads configuration from file or returns the default when
// no config file exists.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	homeDir, _ := os.UserHomeDir()
	viper.AddConfigPath(filepath.Join(homeDir, ".orbitguard"))
	viper.AddConfigPath(".")
	viper.AddConfigPath("./configs")

	viper.SetEnvPrefix("ORBITGUARD")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := ValidateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// SaveConfig saves configuration to ~/.orbitguard/config.yaml
func SaveConfig(config *Config) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	configDir := filepath.Join(homeDir, ".orbitguard")
	configFile := filepath.Join(configDir, "config.yaml")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Configuration saved to: %s\n", configFile)
	return nil
}

// ValidateConfig validates the configuration
func ValidateConfig(config *Config) error {
	if config.Simulation.Dt <= 0 {
		return fmt.Errorf("simulation dt must be positive")
	}
	if _, err := physics.ParseIntegrator(config.Simulation.Integrator); err != nil {
		return err
	}
	if config.Simulation.Satellites < 0 {
		return fmt.Errorf("satellite count cannot be negative")
	}
	if config.Physics.G <= 0 {
		return fmt.Errorf("gravitational constant must be positive")
	}
	if config.Physics.CentralMass <= 0 {
		return fmt.Errorf("central mass must be positive")
	}
	if config.Physics.CentralRadius <= 0 {
		return fmt.Errorf("central radius must be positive")
	}
	if config.Analysis.RiskIntervalTicks <= 0 {
		return fmt.Errorf("risk interval must be positive")
	}
	if config.Metrics.Enabled && config.Metrics.ListenAddr == "" {
		return fmt.Errorf("metrics listen address must be set when metrics are enabled")
	}
	return nil
}
