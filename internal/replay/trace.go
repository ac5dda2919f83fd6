// Package replay records and reads simulation traces.
//
// A trace is a msgpack stream: one Header followed by any number of
// game.Snapshot values, each encoded as its own msgpack object. Streams can be
// appended to while a run is in progress and read back until EOF.
package replay

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/ithaca/internal/game"
)

// Version is written into every header. Readers reject other versions.
const Version = 1

// ErrVersion is returned when a trace was written by an incompatible version.
var ErrVersion = errors.New("replay: unsupported trace version")

// Header identifies the run a trace belongs to.
type Header struct {
	Version    int     `msgpack:"version"`
	Level      string  `msgpack:"level"`
	Seed       int64   `msgpack:"seed"`
	Difficulty string  `msgpack:"difficulty"`
	Every      int     `msgpack:"every"` // ticks between snapshots
	Driver     string  `msgpack:"driver,omitempty"`
	TimeScale  float64 `msgpack:"time_scale,omitempty"`
}

// Trace is a fully decoded trace.
type Trace struct {
	Header    Header
	Snapshots []game.Snapshot
}

// Writer streams snapshots to an io.Writer.
type Writer struct {
	enc   *msgpack.Encoder
	count int
}

// NewWriter writes h and returns a Writer ready for snapshots.
func NewWriter(w io.Writer, h Header) (*Writer, error) {
	h.Version = Version
	if h.Every <= 0 {
		h.Every = 1
	}
	enc := msgpack.NewEncoder(w)
	if err := enc.Encode(&h); err != nil {
		return nil, fmt.Errorf("replay: writing header: %w", err)
	}
	return &Writer{enc: enc}, nil
}

// Write appends one snapshot.
func (w *Writer) Write(s game.Snapshot) error {
	if err := w.enc.Encode(&s); err != nil {
		return fmt.Errorf("replay: writing tick %d: %w", s.Tick, err)
	}
	w.count++
	return nil
}

// Count returns how many snapshots have been written.
func (w *Writer) Count() int { return w.count }

// ReadTrace decodes a whole trace.
func ReadTrace(r io.Reader) (Trace, error) {
	dec := msgpack.NewDecoder(r)

	var t Trace
	if err := dec.Decode(&t.Header); err != nil {
		if errors.Is(err, io.EOF) {
			return Trace{}, fmt.Errorf("replay: empty trace: %w", err)
		}
		return Trace{}, fmt.Errorf("replay: reading header: %w", err)
	}
	if t.Header.Version != Version {
		return Trace{}, fmt.Errorf("%w: %d", ErrVersion, t.Header.Version)
	}

	for {
		var s game.Snapshot
		err := dec.Decode(&s)
		if errors.Is(err, io.EOF) {
			return t, nil
		}
		if err != nil {
			return Trace{}, fmt.Errorf("replay: reading snapshot %d: %w", len(t.Snapshots), err)
		}
		t.Snapshots = append(t.Snapshots, s)
	}
}

// FirstDivergence compares two snapshot sequences by hash and returns the
// tick of the first mismatch. ok is true when the shared prefix matches and
// both sequences have the same length.
func FirstDivergence(a, b []game.Snapshot) (tick int, ok bool) {
	n := min(len(a), len(b))
	for i := range n {
		if a[i].Tick != b[i].Tick || a[i].Hash() != b[i].Hash() {
			return a[i].Tick, false
		}
	}
	switch {
	case len(a) > n:
		return a[n].Tick, false
	case len(b) > n:
		return b[n].Tick, false
	}
	return 0, true
}
