package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/sarat-asymmetrica/noether/backend/internal/boundaries"
	"github.com/sarat-asymmetrica/noether/backend/internal/trajio"
	"github.com/sarat-asymmetrica/noether/backend/internal/validation"
)

// validateCommand reports steric clashes in a single PDB structure.
func validateCommand(c *cli.Context, log zerolog.Logger) error {
	atoms, err := trajio.ReadPDB(c.String("pdb"))
	if err != nil {
		return err
	}

	positions := trajio.Positions(atoms)
	elements := make([]string, len(atoms))
	for i, a := range atoms {
		elements[i] = a.Element
	}

	if !validation.ValidatePositions(positions) {
		return fmt.Errorf("noetherctl: structure contains non-finite coordinates")
	}

	report := validation.DetectClashes(positions, elements, boundaries.Unbounded{}, c.Float64("tolerance"))

	log.Info().Int("num_atoms", report.NumAtoms).Int("num_clashes", len(report.Clashes)).Msg("validation complete")

	for _, clash := range report.Clashes {
		fmt.Printf("clash: atoms %d-%d at %.3f nm (overlap %.3f nm)\n", clash.I, clash.J, float64(clash.Distance), float64(clash.Overlap))
	}
	if len(report.Clashes) == 0 {
		fmt.Println("no clashes found")
	}
	return nil
}
