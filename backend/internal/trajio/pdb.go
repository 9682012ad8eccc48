package trajio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sarat-asymmetrica/noether/backend/internal/boundaries"
	"github.com/sarat-asymmetrica/noether/backend/internal/units"
)

// AngstromToNM is the PDB format's native length unit (angstrom)
// expressed in the kernel's canonical nanometre storage.
const AngstromToNM = 0.1

// Atom is one parsed PDB ATOM/HETATM record, reduced to the fields the
// energy kernel needs: a position and an element symbol to key off for
// force-field parameter lookup.
type Atom struct {
	Serial  int
	Name    string
	Element string
	Residue string
	ChainID string
	SeqNum  int
	Position boundaries.Position
}

// ReadPDB parses every ATOM and HETATM record in a PDB file into
// Atom, honouring the format's fixed-column layout (columns are
// 1-indexed in the PDB format, 0-indexed below): serial 7-11, name 13-16,
// residue name 18-20, chain 22, residue seq 23-26, x/y/z 31-38/39-46/47-54
// in angstrom, converted here to the kernel's nanometre storage.
func ReadPDB(path string) ([]Atom, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var atoms []Atom
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if len(line) < 6 {
			continue
		}
		recordType := strings.TrimSpace(line[0:6])
		if recordType != "ATOM" && recordType != "HETATM" {
			continue
		}

		atom, err := parseAtomLine(line)
		if err != nil {
			return nil, fmt.Errorf("trajio: line %d: %w", lineNo, err)
		}
		atoms = append(atoms, atom)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return atoms, nil
}

func parseAtomLine(line string) (Atom, error) {
	if len(line) < 54 {
		return Atom{}, fmt.Errorf("atom record too short: %d columns", len(line))
	}

	field := func(start, end int) string {
		if end > len(line) {
			end = len(line)
		}
		return strings.TrimSpace(line[start:end])
	}

	serial, err := strconv.Atoi(field(6, 11))
	if err != nil {
		return Atom{}, fmt.Errorf("parsing serial: %w", err)
	}
	name := field(12, 16)
	residue := field(17, 20)
	chain := field(21, 22)
	seqNum, err := strconv.Atoi(field(22, 26))
	if err != nil {
		return Atom{}, fmt.Errorf("parsing residue sequence number: %w", err)
	}

	x, err := strconv.ParseFloat(field(30, 38), 64)
	if err != nil {
		return Atom{}, fmt.Errorf("parsing x: %w", err)
	}
	y, err := strconv.ParseFloat(field(38, 46), 64)
	if err != nil {
		return Atom{}, fmt.Errorf("parsing y: %w", err)
	}
	z, err := strconv.ParseFloat(field(46, 54), 64)
	if err != nil {
		return Atom{}, fmt.Errorf("parsing z: %w", err)
	}

	element := ""
	if len(line) > 76 {
		element = field(76, 78)
	}
	if element == "" {
		element = elementFromName(name)
	}

	return Atom{
		Serial:  serial,
		Name:    name,
		Element: element,
		Residue: residue,
		ChainID: chain,
		SeqNum:  seqNum,
		Position: boundaries.Position{
			X: units.Length(x * AngstromToNM),
			Y: units.Length(y * AngstromToNM),
			Z: units.Length(z * AngstromToNM),
		},
	}, nil
}

// elementFromName guesses an element symbol from a PDB atom name when
// the dedicated element column (77-78) isn't populated, the common case
// for older PDB files. It takes the first non-digit character, which
// is correct for the overwhelming majority of organic force-field atom
// names (C, N, O, S, H variants like HA, HB1, CA, CB, ...).
func elementFromName(name string) string {
	for _, r := range name {
		if r < '0' || r > '9' {
			return string(r)
		}
	}
	return ""
}

// Positions extracts just the position column from a parsed atom list,
// the shape Driver.Run and Driver.RunWithForces consume.
func Positions(atoms []Atom) []boundaries.Position {
	out := make([]boundaries.Position, len(atoms))
	for i, a := range atoms {
		out[i] = a.Position
	}
	return out
}
