package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/epiforge/episim/internal/epi"
	"github.com/epiforge/episim/internal/metrics"
	"github.com/epiforge/episim/internal/scenario"
)

const (
	DefaultR0         = 3.5
	DefaultPopulation = 1e7
	DefaultGamma      = 1.0
	DefaultDt         = 1e-5
	DefaultHorizon    = 50.0
	DefaultSevere     = 0.1
	DefaultThreshold  = 2.5e-3
	DefaultRate       = 1e-6
	DefaultDelta      = 10.0
)

type Config struct {
	R0         float64 `yaml:"r0"`
	Population float64 `yaml:"population"`
	Gamma      float64 `yaml:"gamma"`
	Rate       float64 `yaml:"rate"`
	Delta      float64 `yaml:"delta"`
	InjectAt   float64 `yaml:"inject_at"`
	Dt         float64 `yaml:"dt"`
	Horizon    float64 `yaml:"horizon"`
	Severe     float64 `yaml:"severe"`
	Threshold  float64 `yaml:"threshold"`
}

func DefaultConfig() *Config {
	return &Config{
		R0:         DefaultR0,
		Population: DefaultPopulation,
		Gamma:      DefaultGamma,
		Rate:       DefaultRate,
		Delta:      DefaultDelta,
		Dt:         DefaultDt,
		Horizon:    DefaultHorizon,
		Severe:     DefaultSevere,
		Threshold:  DefaultThreshold,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Scenario converts the configuration into a runnable scenario.
func (c *Config) Scenario() scenario.Scenario {
	return scenario.Scenario{
		Params:   epi.Params{R0: c.R0, Pop: c.Population, Gamma: c.Gamma},
		Rate:     c.Rate,
		Delta:    c.Delta,
		InjectAt: c.InjectAt,
		Dt:       c.Dt,
		Horizon:  c.Horizon,
		Capacity: metrics.Capacity{Severe: c.Severe, Threshold: c.Threshold},
	}
}
