// Package parser implements bitmap grid parsing, active-pixel adjacency
// validation, and grouping of horizontally contiguous pixels.
package parser

import (
	"errors"
	"fmt"
	"sort"
)

// Common errors returned by the parser. The root blockart package re-exports
// these so callers can match them with errors.Is at either level.
var (
	// ErrInvalidBitmap is returned when a bitmap is empty, non-rectangular,
	// contains characters other than '0' and '1', or does not carry exactly
	// one or two active pixels.
	ErrInvalidBitmap = errors.New("invalid bitmap")

	// ErrInvalidAdjacency is returned when two active pixels touch
	// vertically or diagonally.
	ErrInvalidAdjacency = errors.New("invalid adjacency")
)

// Coord identifies one active bitmap cell, 0-indexed from the top-left.
type Coord struct {
	Row int
	Col int
}

// Group is one raised block: a run of horizontally contiguous active pixels
// in a single row. Cols is strictly increasing.
type Group struct {
	Row  int
	Cols []int
}

// Parse validates the raw bitmap rows and extracts the coordinates of active
// ('1') pixels in row-major order.
//
// Parse fails with ErrInvalidBitmap if rows is empty, if the first row has
// zero length, if any row's length differs from the first row's, if any cell
// is outside {'0','1'}, or if the number of active pixels is not 1 or 2.
func Parse(rows []string) (width, height int, coords []Coord, err error) {
	if len(rows) == 0 {
		return 0, 0, nil, fmt.Errorf("%w: bitmap cannot be empty", ErrInvalidBitmap)
	}

	width = len(rows[0])
	if width == 0 {
		return 0, 0, nil, fmt.Errorf("%w: bitmap rows may not be empty", ErrInvalidBitmap)
	}
	height = len(rows)

	for r, row := range rows {
		if len(row) != width {
			return 0, 0, nil, fmt.Errorf("%w: row %d has width %d, want %d",
				ErrInvalidBitmap, r, len(row), width)
		}
		for c := 0; c < len(row); c++ {
			switch row[c] {
			case '0':
			case '1':
				coords = append(coords, Coord{Row: r, Col: c})
			default:
				return 0, 0, nil, fmt.Errorf("%w: row %d contains %q, rows may only contain '0' and '1'",
					ErrInvalidBitmap, r, row[c])
			}
		}
	}

	if len(coords) == 0 || len(coords) > 2 {
		return 0, 0, nil, fmt.Errorf("%w: bitmap must contain one or two '1' pixels, found %d",
			ErrInvalidBitmap, len(coords))
	}

	return width, height, coords, nil
}

// CheckAdjacency verifies that two active pixels, if present, only touch
// horizontally. A single pixel always passes. Vertically or diagonally
// adjacent pairs fail with ErrInvalidAdjacency; horizontally adjacent pairs
// and pairs that do not touch at all pass.
func CheckAdjacency(coords []Coord) error {
	if len(coords) < 2 {
		return nil
	}
	a, b := coords[0], coords[1]
	dRow := abs(a.Row - b.Row)
	dCol := abs(a.Col - b.Col)
	if dRow == 1 && dCol <= 1 {
		return fmt.Errorf("%w: pixels may only touch horizontally: (%d,%d) and (%d,%d)",
			ErrInvalidAdjacency, a.Row, a.Col, b.Row, b.Col)
	}
	return nil
}

// ParseAndValidate combines Parse and CheckAdjacency. This is the entry point
// the renderer and validator use; callers that need the intermediate
// coordinates without the adjacency gate can call Parse directly.
func ParseAndValidate(rows []string) (width, height int, coords []Coord, err error) {
	width, height, coords, err = Parse(rows)
	if err != nil {
		return 0, 0, nil, err
	}
	if err := CheckAdjacency(coords); err != nil {
		return 0, 0, nil, err
	}
	return width, height, coords, nil
}

// BuildGroups merges horizontally adjacent coordinates into a single group
// and returns the groups together with the smallest row among the inputs,
// which the assembler uses as its vertical alignment anchor.
//
// BuildGroups assumes coords has already passed CheckAdjacency: a vertically
// adjacent pair handed in here would be kept as two separate groups rather
// than rejected, so the adjacency gate must run first.
func BuildGroups(coords []Coord) (groups []Group, minRow int) {
	sorted := make([]Coord, len(coords))
	copy(sorted, coords)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Row != sorted[j].Row {
			return sorted[i].Row < sorted[j].Row
		}
		return sorted[i].Col < sorted[j].Col
	})

	if len(sorted) == 1 {
		g := Group{Row: sorted[0].Row, Cols: []int{sorted[0].Col}}
		return []Group{g}, sorted[0].Row
	}

	a, b := sorted[0], sorted[1]
	minRow = a.Row
	if a.Row == b.Row && b.Col-a.Col == 1 {
		return []Group{{Row: a.Row, Cols: []int{a.Col, b.Col}}}, minRow
	}
	return []Group{
		{Row: a.Row, Cols: []int{a.Col}},
		{Row: b.Row, Cols: []int{b.Col}},
	}, minRow
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
