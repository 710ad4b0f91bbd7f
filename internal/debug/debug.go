// Package debug provides tracing for the blockart rendering pipeline.
//
// A Session wraps one render (or validation) pass and emits typed events for
// each pipeline phase to a Sink. Sessions are numbered per process, events
// are numbered per session, and everything is a no-op when the global switch
// is off or the session pointer is nil.
package debug

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"
)

var enabled atomic.Bool

// sessionCounter numbers sessions within the process, so concurrent renders
// stay distinguishable in merged output.
var sessionCounter atomic.Uint64

// SetEnabled flips the global debug switch. Call once at program startup.
func SetEnabled(on bool) {
	enabled.Store(on)
}

// Enabled reports whether debug tracing is active.
func Enabled() bool {
	return enabled.Load()
}

// InitFromEnv enables tracing when BLOCKART_DEBUG=1 is set.
// BLOCKART_DEBUG_PRETTY=1 additionally selects the pretty sink; that part is
// read by the CLI, not here.
func InitFromEnv() {
	if os.Getenv("BLOCKART_DEBUG") == "1" {
		SetEnabled(true)
	}
}

// Session traces a single render operation. A Session is safe to share
// between the phases of one render but not across concurrent renders.
//
// All methods tolerate a nil receiver, so callers can thread a session
// through unconditionally and pay nothing when tracing is off.
type Session struct {
	id        string
	sink      Sink
	seq       atomic.Uint64
	startTime time.Time
}

// NewSession opens a session on sink, emitting its opening event.
// Returns nil when tracing is disabled or sink is nil.
func NewSession(sink Sink) *Session {
	if !Enabled() || sink == nil {
		return nil
	}

	s := &Session{
		id:        fmt.Sprintf("render-%d", sessionCounter.Add(1)),
		sink:      sink,
		startTime: time.Now(),
	}
	s.Emit("session", "Start", nil)
	return s
}

// SessionID returns the identifier for this session, or "" for nil.
func (s *Session) SessionID() string {
	if s == nil {
		return ""
	}
	return s.id
}

// Emit sends one event to the sink. No-op on a nil session.
func (s *Session) Emit(phase, event string, data interface{}) {
	if s == nil {
		return
	}

	evt := Event{
		Timestamp: time.Now().Format(time.RFC3339Nano),
		SessionID: s.id,
		Seq:       s.seq.Add(1),
		Phase:     phase,
		Event:     event,
		Data:      data,
	}

	// Sink errors never interrupt a render.
	//nolint:errcheck
	s.sink.Write(evt)
}

// Close emits the session summary and closes the sink.
func (s *Session) Close() error {
	if s == nil {
		return nil
	}

	s.Emit("session", "End", map[string]int64{
		"elapsed_ms": time.Since(s.startTime).Milliseconds(),
		"events":     int64(s.seq.Load()),
	})
	return s.sink.Close()
}

// Event is the envelope shared by every debug record.
type Event struct {
	Timestamp string      `json:"ts"`
	SessionID string      `json:"session_id"`
	Seq       uint64      `json:"seq"`
	Phase     string      `json:"phase"`
	Event     string      `json:"event"`
	Data      interface{} `json:"data,omitempty"`
}
