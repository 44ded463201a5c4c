package lattice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedCell is returned when coordinate text cannot be parsed.
var ErrMalformedCell = errors.New("malformed cell")

// ParseCell parses "x,y" (surrounding parentheses and spaces allowed).
func ParseCell(s string) (Cell, error) {
	t := strings.TrimSpace(s)
	t = strings.TrimPrefix(t, "(")
	t = strings.TrimSuffix(t, ")")
	parts := strings.Split(t, ",")
	if len(parts) != 2 {
		return Cell{}, fmt.Errorf("%w: %q", ErrMalformedCell, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q: %v", ErrMalformedCell, s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q: %v", ErrMalformedCell, s, err)
	}
	return Cell{X: x, Y: y}, nil
}

// ParseCells parses a semicolon separated list such as "0,0;0,1;-1,0".
// Empty entries are skipped; duplicates are kept.
func ParseCells(s string) ([]Cell, error) {
	var out []Cell
	for _, part := range strings.Split(s, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, err := ParseCell(part)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// FormatCells renders cells in the form accepted by ParseCells.
func FormatCells(cells []Cell) string {
	var b strings.Builder
	for i, c := range cells {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Itoa(c.X))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(c.Y))
	}
	return b.String()
}
