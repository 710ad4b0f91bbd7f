package debug

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// Sink is the interface for debug output destinations.
type Sink interface {
	Write(event Event) error
	Flush() error
	Close() error
}

// JSONSink writes events in JSON Lines format.
type JSONSink struct {
	w       *bufio.Writer
	encoder *json.Encoder
}

// NewJSONSink creates a new JSON Lines sink writing to w.
func NewJSONSink(w io.Writer) *JSONSink {
	bw := bufio.NewWriter(w)
	return &JSONSink{
		w:       bw,
		encoder: json.NewEncoder(bw),
	}
}

// Write encodes and writes an event as a JSON line.
func (s *JSONSink) Write(event Event) error {
	return s.encoder.Encode(event)
}

// Flush writes any buffered data to the underlying writer.
func (s *JSONSink) Flush() error {
	return s.w.Flush()
}

// Close flushes the buffer.
func (s *JSONSink) Close() error {
	return s.Flush()
}

// PrettySink writes events in human-readable format.
type PrettySink struct {
	w *bufio.Writer
}

// NewPrettySink creates a new pretty-format sink writing to w.
func NewPrettySink(w io.Writer) *PrettySink {
	return &PrettySink{
		w: bufio.NewWriter(w),
	}
}

// Write formats and writes an event in human-readable format.
func (s *PrettySink) Write(event Event) error {
	// Format: [timestamp] [phase/event]
	fmt.Fprintf(s.w, "[%s] [%s/%s] session=%s\n", event.Timestamp, event.Phase, event.Event, event.SessionID)

	// Pretty print data based on type
	switch d := event.Data.(type) {
	case RenderStartData:
		s.writeRenderStart(d)
	case RenderEndData:
		s.writeRenderEnd(d)
	case ParseData:
		s.writeParse(d)
	case GroupData:
		s.writeGroup(d)
	case PlacementData:
		s.writePlacement(d)
	case ValidateData:
		s.writeValidate(d)
	case map[string]interface{}:
		s.writeMap(d)
	case map[string]int64:
		s.writeMapInt64(d)
	default:
		fmt.Fprintf(s.w, "  data: %+v\n", d)
	}

	return nil
}

func (s *PrettySink) writeRenderStart(d RenderStartData) {
	fmt.Fprintf(s.w, "  rows: %d\n", d.Rows)
}

func (s *PrettySink) writeRenderEnd(d RenderEndData) {
	fmt.Fprintf(s.w, "  art_width: %d, total_lines: %d\n", d.ArtWidth, d.TotalLines)
	fmt.Fprintf(s.w, "  elapsed_ms: %d\n", d.ElapsedMs)
}

func (s *PrettySink) writeParse(d ParseData) {
	fmt.Fprintf(s.w, "  width: %d, height: %d\n", d.Width, d.Height)
	fmt.Fprintf(s.w, "  coords: %v\n", d.Coords)
}

func (s *PrettySink) writeGroup(d GroupData) {
	fmt.Fprintf(s.w, "  min_row: %d\n", d.MinRow)
	for _, g := range d.Groups {
		fmt.Fprintf(s.w, "  group: row=%d cols=%v\n", g.Row, g.Cols)
	}
}

func (s *PrettySink) writePlacement(d PlacementData) {
	fmt.Fprintf(s.w, "  group: row=%d, first_col=%d, pixels=%d\n", d.Row, d.FirstCol, d.PixelCount)
	fmt.Fprintf(s.w, "  top: start=%d shape=%q\n", d.TopStart, d.TopShape)
	fmt.Fprintf(s.w, "  bottom: start=%d shape=%q\n", d.BottomStart, d.BottomShape)
}

func (s *PrettySink) writeValidate(d ValidateData) {
	fmt.Fprintf(s.w, "  gate: %s, passed: %v\n", d.Gate, d.Passed)
	if d.Detail != "" {
		fmt.Fprintf(s.w, "  detail: %s\n", d.Detail)
	}
}

func (s *PrettySink) writeMap(d map[string]interface{}) {
	for k, v := range d {
		fmt.Fprintf(s.w, "  %s: %v\n", k, v)
	}
}

func (s *PrettySink) writeMapInt64(d map[string]int64) {
	for k, v := range d {
		fmt.Fprintf(s.w, "  %s: %d\n", k, v)
	}
}

// Flush writes any buffered data to the underlying writer.
func (s *PrettySink) Flush() error {
	return s.w.Flush()
}

// Close flushes the buffer.
func (s *PrettySink) Close() error {
	return s.Flush()
}
