// Package trajio implements file-format adapters that turn on-disk
// trajectory and tabular data into the boundaries.Position and
// units.Length values the rest of the kernel operates on.
package trajio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadColumn reads one whitespace-delimited column out of an xvg-style
// tabular file, skipping Grace's "@" (metadata) and "#" (comment)
// header lines. column is zero-indexed. No numeric interpretation is
// performed here — callers that need floats call strconv themselves, or
// use ReadColumnFloats below.
func ReadColumn(path string, column int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch line[0] {
		case '@', '#':
			continue
		}

		fields := strings.Fields(line)
		if column >= len(fields) {
			return nil, fmt.Errorf("trajio: line %d has too few columns for index %d", lineNo, column)
		}
		out = append(out, fields[column])
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadColumnFloats is ReadColumn plus a strconv.ParseFloat pass; most
// callers want this rather than raw strings.
func ReadColumnFloats(path string, column int) ([]float64, error) {
	raw, err := ReadColumn(path, column)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(raw))
	for i, s := range raw {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("trajio: parsing column %d row %d: %w", column, i, err)
		}
		out[i] = v
	}
	return out, nil
}
