package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/sarat-asymmetrica/noether/backend/internal/boundaries"
	"github.com/sarat-asymmetrica/noether/backend/internal/config"
	"github.com/sarat-asymmetrica/noether/backend/internal/driver"
	"github.com/sarat-asymmetrica/noether/backend/internal/neighbourlist"
	"github.com/sarat-asymmetrica/noether/backend/internal/topology"
	"github.com/sarat-asymmetrica/noether/backend/internal/trajio"
	"github.com/sarat-asymmetrica/noether/backend/internal/units"
)

// energyCommand builds a topology and driver from a YAML config and
// evaluates the energy of the single frame named by positions_file.
func energyCommand(c *cli.Context, log zerolog.Logger) error {
	sim, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if sim.LennardJones == nil {
		return fmt.Errorf("noetherctl: config has no lennard_jones section")
	}

	atoms, err := trajio.ReadPDB(sim.PositionsFile)
	if err != nil {
		return err
	}
	positions := trajio.Positions(atoms)

	boundary, err := buildBoundary(sim.Boundary)
	if err != nil {
		return err
	}

	top, err := topology.LJFluid(
		"Ar",
		len(positions),
		units.Length(sim.LennardJones.Sigma),
		units.Energy(sim.LennardJones.Epsilon),
		units.Length(sim.LennardJones.Cutoff),
	)
	if err != nil {
		return err
	}

	list := buildList(sim.NeighbourList.Kind, top.Potentials()[0].NeighbourlistParams())

	d, err := driver.New(top, boundary, []neighbourlist.List{list}, log)
	if err != nil {
		return err
	}

	energies, err := d.Run([][]boundaries.Position{positions})
	if err != nil {
		return err
	}

	fmt.Printf("energy: %.6f kJ/mol\n", float64(energies[0]))
	return nil
}

func buildBoundary(b config.Boundary) (boundaries.Boundary, error) {
	switch b.Shape {
	case "", "none":
		return boundaries.Unbounded{}, nil
	case "cubic":
		return boundaries.Cubic(units.Length(b.Sides[0])), nil
	case "rectangular":
		return boundaries.Rectangular(
			units.Length(b.Sides[0]),
			units.Length(b.Sides[1]),
			units.Length(b.Sides[2]),
		), nil
	default:
		return nil, fmt.Errorf("noetherctl: unknown boundary shape %q", b.Shape)
	}
}

func buildList(kind string, params neighbourlist.Params) neighbourlist.List {
	if kind == "verlet" {
		return neighbourlist.NewVerlet(params)
	}
	return neighbourlist.NewSimple(params)
}
