// Package blockart renders a tiny bitmap of one or two active pixels as a
// fixed, pseudo-3D ASCII drawing of a raised block, and validates candidate
// drawings against the layout a bitmap implies.
//
// A bitmap is a rectangular grid of '0' and '1' characters, one string per
// row. Horizontally adjacent active pixels merge into a single wider block;
// vertically or diagonally adjacent pairs are rejected.
package blockart

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/bbsfont/blockart/internal/parser"
	"github.com/bbsfont/blockart/internal/renderer"
)

// Render converts the bitmap rows into the four-line pseudo-3D drawing.
// The result is newline-joined with no trailing newline.
//
// Render fails with ErrInvalidBitmap when the rows are empty, ragged,
// contain characters other than '0' and '1', or do not hold exactly one or
// two active pixels, and with ErrInvalidAdjacency when two active pixels
// touch vertically or diagonally.
//
// Example:
//
//	art, err := blockart.Render([]string{"10", "00"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(art)
func Render(rows []string, opts ...Option) (string, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	art, err := renderer.Render(rows, options.toInternal())
	if err != nil {
		return "", err
	}
	return art.String(), nil
}

// ValidateArt checks that art matches the geometric layout implied by the
// bitmap rows. It re-derives the expected rendering and applies the
// structural gates in order: line count, top border, bottom border, body
// line widths, slash and backslash totals, and the minimum underscore run.
//
// Layout violations fail with ErrArtValidation. A malformed bitmap fails
// with ErrInvalidBitmap or ErrInvalidAdjacency before any art check runs.
// Any text satisfying the structural contract is accepted, whether or not
// this package produced it; a single trailing newline, as left by most
// text files, is tolerated.
func ValidateArt(art string, rows []string, opts ...Option) error {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return renderer.Validate(art, rows, options.toInternal())
}

// ReadBitmap reads a plain-text bitmap from r, one row per line, and returns
// the validated rows. Trailing blank lines are ignored so files with a final
// newline round-trip cleanly.
func ReadBitmap(r io.Reader) ([]string, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		rows = append(rows, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read bitmap: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	if _, _, _, err := parser.ParseAndValidate(rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// LoadBitmapFS loads a plain-text bitmap from a filesystem at the specified
// path. Path traversal (e.g. "../") is not allowed.
//
// Example with embed.FS:
//
//	//go:embed testdata/*.txt
//	var fixtures embed.FS
//
//	rows, err := blockart.LoadBitmapFS(fixtures, "testdata/single_input.txt")
func LoadBitmapFS(fsys fs.FS, bitmapPath string) ([]string, error) {
	if fsys == nil {
		return nil, fmt.Errorf("filesystem cannot be nil")
	}

	clean, err := cleanFSPath(bitmapPath)
	if err != nil {
		return nil, err
	}

	file, err := fsys.Open(clean)
	if err != nil {
		return nil, fmt.Errorf("failed to open bitmap file: %w", err)
	}
	defer file.Close()

	rows, err := ReadBitmap(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read bitmap %s: %w", clean, err)
	}
	return rows, nil
}

// cleanFSPath validates and cleans a path for use with fs.FS.
// It ensures the path is valid according to fs.ValidPath rules and
// prevents directory traversal.
func cleanFSPath(p string) (string, error) {
	if p == "" {
		return "", errors.New("path cannot be empty")
	}
	// fs.FS disallows leading slash and uses '/' only
	if strings.HasPrefix(p, "/") {
		return "", errors.New("absolute paths not allowed")
	}
	if strings.ContainsRune(p, '\\') {
		return "", errors.New("backslashes not allowed in fs paths")
	}
	if !fs.ValidPath(p) {
		// rejects ".", ".." segments, empty elements, etc.
		return "", fmt.Errorf("invalid fs path: %s", p)
	}
	clean := path.Clean(p) // purely slash semantics
	if clean == "." || strings.HasPrefix(clean, "../") {
		return "", errors.New("path traversal not allowed")
	}
	return clean, nil
}
