package blockart

import (
	"github.com/bbsfont/blockart/internal/debug"
	"github.com/bbsfont/blockart/internal/parser"
	"github.com/bbsfont/blockart/internal/renderer"
)

// Common errors returned by the blockart package. They are the same values
// the internal packages return, so errors.Is matches at either level.
var (
	// ErrInvalidBitmap is returned when a bitmap is empty, non-rectangular,
	// contains characters other than '0' and '1', or does not carry exactly
	// one or two active pixels.
	ErrInvalidBitmap = parser.ErrInvalidBitmap

	// ErrInvalidAdjacency is returned when two active pixels touch
	// vertically or diagonally. Horizontal contact and fully separated
	// pairs are allowed.
	ErrInvalidAdjacency = parser.ErrInvalidAdjacency

	// ErrArtValidation is returned by ValidateArt when a candidate art text
	// violates the structural contract derived from its bitmap.
	ErrArtValidation = renderer.ErrArtValidation
)

// Option configures rendering and validation behavior.
type Option func(*options)

type options struct {
	debug *debug.Session
}

func defaultOptions() *options {
	return &options{}
}

func (o *options) toInternal() *renderer.Options {
	rendererOpts := &renderer.Options{}
	if o.debug != nil {
		rendererOpts.Debug = o.debug
	}
	return rendererOpts
}

// WithDebug attaches a debug session to the operation so the pipeline emits
// trace events (parse result, grouping, shape placement, validation gates).
//
// The session argument must be a *debug.Session created by the internal
// debug package; anything else is ignored. Sessions are wired up by the
// blockart CLI's --debug flag and are a no-op when debug mode is disabled.
func WithDebug(session interface{}) Option {
	return func(opts *options) {
		if s, ok := session.(*debug.Session); ok {
			opts.debug = s
		}
	}
}
