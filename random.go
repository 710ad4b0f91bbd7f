package blockart

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/bbsfont/blockart/internal/parser"
)

// RandomBitmap returns a width x height bitmap with one active pixel always
// present and a second one with probability secondPixelProb. The second
// pixel is chosen uniformly among the cells that pass the adjacency rule
// relative to the first: horizontally adjacent or not touching at all, never
// vertically or diagonally adjacent.
//
// The random source is injected so callers can seed it for repeatable
// output; a nil rng falls back to a time-seeded source. secondPixelProb is
// clamped to [0, 1].
func RandomBitmap(rng *rand.Rand, width, height int, secondPixelProb float64) ([]string, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("bitmap dimensions must be positive, got %dx%d", width, height)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if secondPixelProb < 0 {
		secondPixelProb = 0
	} else if secondPixelProb > 1 {
		secondPixelProb = 1
	}

	first := parser.Coord{
		Row: rng.Intn(height),
		Col: rng.Intn(width),
	}
	coords := []parser.Coord{first}

	if rng.Float64() < secondPixelProb {
		var candidates []parser.Coord
		for r := 0; r < height; r++ {
			for c := 0; c < width; c++ {
				cand := parser.Coord{Row: r, Col: c}
				if cand == first {
					continue
				}
				if parser.CheckAdjacency([]parser.Coord{first, cand}) != nil {
					continue
				}
				candidates = append(candidates, cand)
			}
		}
		// Tiny grids (1x1, or a 2-cell column) leave no legal second
		// cell; the single pixel stands alone then.
		if len(candidates) > 0 {
			coords = append(coords, candidates[rng.Intn(len(candidates))])
		}
	}

	grid := make([]string, height)
	for r := 0; r < height; r++ {
		cells := make([]byte, width)
		for i := range cells {
			cells[i] = '0'
		}
		for _, coord := range coords {
			if coord.Row == r {
				cells[coord.Col] = '1'
			}
		}
		grid[r] = string(cells)
	}
	return grid, nil
}
