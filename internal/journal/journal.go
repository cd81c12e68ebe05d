// Package journal keeps the append-only log of recorded observations.
//
// The calculator stays stateless; whoever drives it (TUI or CLI) owns a
// Journal and decides when a snapshot is worth keeping.
package journal

import (
	"time"

	"github.com/jmpark/venuslab/internal/orbital"
	"github.com/jmpark/venuslab/internal/theory"
)

// Entry is one recorded snapshot: the inputs plus everything derived from
// them at the moment of recording.
type Entry struct {
	Recorded    time.Time
	Observer    orbital.OrbitPosition
	Planet      orbital.OrbitPosition
	Observation orbital.Observation
	Verdict     theory.Verdict
}

// Journal is an append-only list of entries. Clear is the only way to
// remove anything.
type Journal struct {
	entries []Entry
}

func New() *Journal {
	return &Journal{}
}

// Record appends an entry, stamping it with the current time if the caller
// left Recorded zero.
func (j *Journal) Record(e Entry) {
	if e.Recorded.IsZero() {
		e.Recorded = time.Now()
	}
	j.entries = append(j.entries, e)
}

// Clear drops every entry.
func (j *Journal) Clear() {
	j.entries = nil
}

// Entries returns a copy of the log so callers cannot mutate history.
func (j *Journal) Entries() []Entry {
	out := make([]Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

func (j *Journal) Len() int {
	return len(j.entries)
}

// Tail returns up to n most recent entries, oldest first.
func (j *Journal) Tail(n int) []Entry {
	if n >= len(j.entries) {
		return j.Entries()
	}
	out := make([]Entry, n)
	copy(out, j.entries[len(j.entries)-n:])
	return out
}
