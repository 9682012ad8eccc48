// Command noetherctl drives the energy kernel from the command line:
// "energy" evaluates a configured potential over a single structure,
// "validate" runs the clash detector over it. Initial argparsing and
// app definition go through github.com/urfave/cli/v2, following the
// same &cli.App{}-with-nested-Commands structure the rest of this
// ecosystem's CLIs use.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/sarat-asymmetrica/noether/backend/internal/mderr"
)

func main() {
	run(os.Args)
}

// run is separated from main for testability.
func run(args []string) {
	app := application()
	if err := app.Run(args); err != nil {
		fmt.Fprintln(os.Stderr, mderr.Explain(err))
		os.Exit(1)
	}
}

func application() *cli.App {
	return &cli.App{
		Name:  "noetherctl",
		Usage: "Evaluate and validate molecular structures against a pairwise energy kernel.",

		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug-level logging.",
			},
		},

		Commands: []*cli.Command{
			{
				Name:  "energy",
				Usage: "Evaluate the total energy of a structure against a configured potential.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "config",
						Aliases:  []string{"c"},
						Usage:    "Path to a simulation YAML config.",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					return energyCommand(c, newLogger(c))
				},
			},
			{
				Name:  "validate",
				Usage: "Report steric clashes in a structure.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "pdb",
						Usage:    "Path to a PDB file to validate.",
						Required: true,
					},
					&cli.Float64Flag{
						Name:  "tolerance",
						Value: 0.8,
						Usage: "Fraction of combined van der Waals radii to treat as a clash.",
					},
				},
				Action: func(c *cli.Context) error {
					return validateCommand(c, newLogger(c))
				},
			},
		},
	}
}

func newLogger(c *cli.Context) zerolog.Logger {
	level := zerolog.InfoLevel
	if c.Bool("verbose") {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
