package renderer

import (
	"strings"

	"github.com/bbsfont/blockart/internal/debug"
)

// Art is the assembled four-line rendering of a bitmap.
type Art struct {
	// TopLine is the flat top face seen from directly above: 2*width underscores.
	TopLine string

	// BodyTop and BodyBottom carry the diagonal edge shapes. Both have
	// length Width.
	BodyTop    string
	BodyBottom string

	// BottomLine is height leading spaces followed by underscores up to Width.
	BottomLine string

	// Width is the final canvas width shared by BodyTop, BodyBottom and
	// BottomLine. Always >= 2*bitmapWidth + bitmapHeight.
	Width int
}

// String returns the four lines joined by newlines.
func (a Art) String() string {
	return strings.Join([]string{a.TopLine, a.BodyTop, a.BodyBottom, a.BottomLine}, "\n")
}

// placement pins one group's edge shapes onto the canvas.
type placement struct {
	topStart    int
	topShape    string
	bottomStart int
	bottomShape string
}

// Options configures rendering behavior.
type Options struct {
	// Debug receives pipeline trace events when non-nil.
	Debug *debug.Session
}
