// Package renderer turns grouped active pixels into the fixed four-line
// pseudo-3D block rendering and validates candidate renderings against it.
package renderer

import (
	"strings"
	"time"

	"github.com/bbsfont/blockart/internal/debug"
	"github.com/bbsfont/blockart/internal/parser"
)

// columnStep is the horizontal advance, in canvas characters, per bitmap
// column in the fixed perspective slant.
const columnStep = 2

// makeShapes returns the top and bottom edge shapes for a group of count
// horizontally contiguous pixels. The top edge is one '/' followed by a run
// of 2*count+1 '\' characters; the bottom edge is one '\' followed by the
// same run of '/' characters.
func makeShapes(count int) (top, bottom string) {
	run := 2*count + 1
	return "/" + strings.Repeat(`\`, run), `\` + strings.Repeat("/", run)
}

// computePlacements positions each group's shapes on the canvas. Groups at
// deeper rows shift one character right per row below the anchor, and each
// bitmap column advances the origin by columnStep characters.
func computePlacements(groups []parser.Group, minRow, topOffset, bottomOffset int) []placement {
	placements := make([]placement, 0, len(groups))
	for _, g := range groups {
		firstCol := g.Cols[0]
		top, bottom := makeShapes(len(g.Cols))
		bottomShift := columnStep*firstCol - 1
		if bottomShift < 0 {
			bottomShift = 0
		}
		placements = append(placements, placement{
			topStart:    topOffset + (g.Row - minRow) + columnStep*firstCol,
			topShape:    top,
			bottomStart: bottomOffset + (g.Row - minRow) + bottomShift,
			bottomShape: bottom,
		})
	}
	return placements
}

// calcArtWidth returns the canvas width required for the art: at least
// 2*width+height, widened to fit the rightmost placed shape.
func calcArtWidth(width, height int, placements []placement) int {
	artWidth := 2*width + height
	for _, pl := range placements {
		if end := pl.topStart + len(pl.topShape); end > artWidth {
			artWidth = end
		}
		if end := pl.bottomStart + len(pl.bottomShape); end > artWidth {
			artWidth = end
		}
	}
	return artWidth
}

// placeShape overwrites dest starting at offset with the shape's characters.
func placeShape(dest []byte, shape string, offset int) {
	copy(dest[offset:], shape)
}

// assemble builds the body and bottom lines for the given groups. The first
// topOffset characters of the top body line (and bottomOffset of the bottom
// one) become spaces, representing the receding face above the topmost block.
func assemble(width, height int, groups []parser.Group, minRow int, sess *debug.Session) (bodyTop, bodyBottom, bottomLine string, artWidth int) {
	topOffset := minRow
	bottomOffset := minRow + 1
	placements := computePlacements(groups, minRow, topOffset, bottomOffset)
	artWidth = calcArtWidth(width, height, placements)

	line2 := make([]byte, artWidth)
	line3 := make([]byte, artWidth)
	for i := range line2 {
		line2[i] = '_'
		line3[i] = '_'
	}
	for i := 0; i < topOffset; i++ {
		line2[i] = ' '
	}
	for i := 0; i < bottomOffset; i++ {
		line3[i] = ' '
	}

	for i, pl := range placements {
		placeShape(line2, pl.topShape, pl.topStart)
		placeShape(line3, pl.bottomShape, pl.bottomStart)
		sess.Emit("assemble", "Placement", debug.PlacementData{
			Row:         groups[i].Row,
			FirstCol:    groups[i].Cols[0],
			PixelCount:  len(groups[i].Cols),
			TopStart:    pl.topStart,
			BottomStart: pl.bottomStart,
			TopShape:    pl.topShape,
			BottomShape: pl.bottomShape,
		})
	}

	bottom := make([]byte, artWidth)
	for i := range bottom {
		if i < height {
			bottom[i] = ' '
		} else {
			bottom[i] = '_'
		}
	}

	return string(line2), string(line3), string(bottom), artWidth
}

// Render runs the full pipeline on the raw bitmap rows and returns the
// assembled art. It fails with parser.ErrInvalidBitmap or
// parser.ErrInvalidAdjacency when the bitmap itself is malformed.
func Render(rows []string, opts *Options) (Art, error) {
	var sess *debug.Session
	if opts != nil {
		sess = opts.Debug
	}

	var startTime time.Time
	if sess != nil {
		startTime = time.Now()
	}
	sess.Emit("render", "Start", debug.RenderStartData{Rows: len(rows)})

	width, height, coords, err := parser.ParseAndValidate(rows)
	if err != nil {
		return Art{}, err
	}
	if sess != nil {
		pairs := make([][2]int, len(coords))
		for i, c := range coords {
			pairs[i] = [2]int{c.Row, c.Col}
		}
		sess.Emit("parse", "Result", debug.ParseData{Width: width, Height: height, Coords: pairs})
	}

	groups, minRow := parser.BuildGroups(coords)
	if sess != nil {
		infos := make([]debug.GroupInfo, len(groups))
		for i, g := range groups {
			infos[i] = debug.GroupInfo{Row: g.Row, Cols: g.Cols}
		}
		sess.Emit("group", "Result", debug.GroupData{Groups: infos, MinRow: minRow})
	}

	bodyTop, bodyBottom, bottomLine, artWidth := assemble(width, height, groups, minRow, sess)

	art := Art{
		TopLine:    strings.Repeat("_", 2*width),
		BodyTop:    bodyTop,
		BodyBottom: bodyBottom,
		BottomLine: bottomLine,
		Width:      artWidth,
	}

	if sess != nil {
		sess.Emit("render", "End", debug.RenderEndData{
			ArtWidth:   artWidth,
			TotalLines: 4,
			ElapsedMs:  time.Since(startTime).Milliseconds(),
		})
	}
	return art, nil
}
