// Package config loads a simulation's static description — box shape,
// potential parameters, cutoffs, integration settings — from a YAML
// file, the way the surrounding pack's database/annotation configs are
// loaded.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Boundary describes the simulation box. Shape "none" means no periodic
// boundary; "cubic" and "rectangular" populate Sides accordingly.
type Boundary struct {
	Shape string     `yaml:"shape"`
	Sides [3]float64 `yaml:"sides"`
}

// LennardJones describes a homogeneous LJ fluid's parameters, in the
// kernel's canonical nm/kJ-per-mol units.
type LennardJones struct {
	Sigma   float64 `yaml:"sigma"`
	Epsilon float64 `yaml:"epsilon"`
	Cutoff  float64 `yaml:"cutoff"`
}

// Coulomb describes a Coulomb term's optional cutoff; Charges is
// populated per-atom by the caller, not loaded from this file.
type Coulomb struct {
	Enabled bool     `yaml:"enabled"`
	Cutoff  *float64 `yaml:"cutoff"`
}

// Integration describes the velocity-Verlet driving loop's parameters.
type Integration struct {
	TimestepPs    float64 `yaml:"timestep_ps"`
	Steps         int     `yaml:"steps"`
	TemperatureK  float64 `yaml:"temperature_k"`
}

// NeighbourList selects which neighbour-list variant to build: "simple"
// for the dense O(N^2) list, "verlet" for the cell-list variant.
type NeighbourList struct {
	Kind string `yaml:"kind"`
}

// Simulation is the top-level configuration document.
type Simulation struct {
	Boundary      Boundary      `yaml:"boundary"`
	LennardJones  *LennardJones `yaml:"lennard_jones"`
	Coulomb       *Coulomb      `yaml:"coulomb"`
	Integration   Integration   `yaml:"integration"`
	NeighbourList NeighbourList `yaml:"neighbourlist"`
	PositionsFile string        `yaml:"positions_file"`
}

// Load parses a Simulation config from path.
func Load(path string) (*Simulation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var sim Simulation
	if err := yaml.Unmarshal(data, &sim); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return &sim, nil
}
