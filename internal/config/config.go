// Package config loads the run configuration from a YAML file. Command
// line flags override individual values after loading.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level run configuration.
type Config struct {
	Inputs Inputs `yaml:"inputs"`
}

// Inputs names the three input files. Paths may be local or gs:// URIs.
type Inputs struct {
	Transactions string `yaml:"transactions"`
	Orders       string `yaml:"orders"`
	Chargebacks  string `yaml:"chargebacks"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		Inputs: Inputs{
			Transactions: "data/transactions.json",
			Orders:       "data/orders.json",
			Chargebacks:  "data/chargebacks.csv",
		},
	}
}

// Load reads and parses a YAML config file. Values missing from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration names all three inputs.
func (c *Config) Validate() error {
	if c.Inputs.Transactions == "" {
		return fmt.Errorf("config: inputs.transactions is required")
	}
	if c.Inputs.Orders == "" {
		return fmt.Errorf("config: inputs.orders is required")
	}
	if c.Inputs.Chargebacks == "" {
		return fmt.Errorf("config: inputs.chargebacks is required")
	}
	return nil
}
