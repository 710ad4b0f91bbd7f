package renderer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bbsfont/blockart/internal/debug"
)

// ErrArtValidation is returned when a candidate art text violates the
// structural contract derived from its bitmap.
var ErrArtValidation = errors.New("art validation failed")

// Validate checks a candidate art text against the layout implied by the
// bitmap rows. It re-renders the bitmap to obtain the reference layout, then
// applies the structural gates in order, failing on the first violation.
//
// Bitmap failures propagate as parser.ErrInvalidBitmap or
// parser.ErrInvalidAdjacency; layout violations return ErrArtValidation.
// Validate deliberately accepts any text satisfying the contract, whether or
// not this package produced it, so it can serve as a test oracle.
func Validate(art string, rows []string, opts *Options) error {
	ref, err := Render(rows, opts)
	if err != nil {
		return err
	}

	var sess *debug.Session
	if opts != nil {
		sess = opts.Debug
	}

	gate := func(name string, ok bool, detail string) error {
		sess.Emit("validate", "Gate", debug.ValidateData{Gate: name, Passed: ok, Detail: detail})
		if ok {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrArtValidation, detail)
	}

	// A single trailing newline terminates the fourth line rather than
	// opening an empty fifth one.
	lines := strings.Split(art, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	if err := gate("line-count", len(lines) == 4,
		fmt.Sprintf("wrong line count: got %d, want 4", len(lines))); err != nil {
		return err
	}

	if err := gate("top-line", lines[0] == ref.TopLine,
		fmt.Sprintf("invalid top line: got %q, want %q", lines[0], ref.TopLine)); err != nil {
		return err
	}

	if err := gate("bottom-line", lines[3] == ref.BottomLine,
		fmt.Sprintf("invalid bottom line: got %q, want %q", lines[3], ref.BottomLine)); err != nil {
		return err
	}

	widthsOK := len(lines[1]) == ref.Width && len(lines[2]) == ref.Width && len(lines[3]) == ref.Width
	if err := gate("line-width", widthsOK,
		fmt.Sprintf("misaligned line width: want %d, got %d/%d/%d",
			ref.Width, len(lines[1]), len(lines[2]), len(lines[3]))); err != nil {
		return err
	}

	// The top line never carries diagonals, so the reference totals come
	// from the three lower lines.
	wantSlash := strings.Count(ref.BodyTop, "/") + strings.Count(ref.BodyBottom, "/") + strings.Count(ref.BottomLine, "/")
	wantBackslash := strings.Count(ref.BodyTop, `\`) + strings.Count(ref.BodyBottom, `\`) + strings.Count(ref.BottomLine, `\`)
	gotSlash := strings.Count(art, "/")
	gotBackslash := strings.Count(art, `\`)
	if err := gate("glyph-count", gotSlash == wantSlash && gotBackslash == wantBackslash,
		fmt.Sprintf("wrong number of slashes: got %d/%d, want %d/%d",
			gotSlash, gotBackslash, wantSlash, wantBackslash)); err != nil {
		return err
	}

	minRun := len(ref.TopLine) // 2*width
	if err := gate("underscore-run", longestRun(art, '_') >= minRun,
		fmt.Sprintf("underscore run shorter than %d", minRun)); err != nil {
		return err
	}

	return nil
}

// longestRun returns the longest consecutive run of ch in s.
func longestRun(s string, ch byte) int {
	longest, curr := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] == ch {
			curr++
			if curr > longest {
				longest = curr
			}
		} else {
			curr = 0
		}
	}
	return longest
}
