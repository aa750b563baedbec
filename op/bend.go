package op

import (
	"fmt"

	"elbow/anchor"
	"elbow/connection"
)

// Bend rewrites a connection's anchor sequence. It snapshots the sequence at
// construction and exposes a working copy that a bend session mutates in
// place; Apply pushes the working sequence to the connection, Revert pushes
// the snapshot back. A Bend belongs to exactly one session at a time.
type Bend struct {
	conn    *connection.Connection
	initial []anchor.Anchor
	working []anchor.Anchor
}

// NewBend snapshots the connection's current anchors.
func NewBend(c *connection.Connection) *Bend {
	initial := c.Anchors()
	working := make([]anchor.Anchor, len(initial))
	copy(working, initial)
	return &Bend{conn: c, initial: initial, working: working}
}

// Label implements Op.
func (b *Bend) Label() string { return "bend connection" }

// Connection returns the connection this operation rewrites.
func (b *Bend) Connection() *connection.Connection { return b.conn }

// Apply pushes the working sequence to the connection.
func (b *Bend) Apply() error {
	if err := b.conn.SetAnchors(b.working); err != nil {
		return fmt.Errorf("bend: %w", err)
	}
	return nil
}

// Revert pushes the initial snapshot back to the connection.
func (b *Bend) Revert() error {
	if err := b.conn.SetAnchors(b.initial); err != nil {
		return fmt.Errorf("bend: %w", err)
	}
	return nil
}

// IsNoop compares the working sequence against the snapshot by value: same
// length and pairwise equal anchors. A point that was dragged away and back
// to its exact position reads as unchanged.
func (b *Bend) IsNoop() bool {
	if len(b.working) != len(b.initial) {
		return false
	}
	for i := range b.working {
		if !b.working[i].Equal(b.initial[i]) {
			return false
		}
	}
	return true
}

// Initial returns a copy of the snapshot taken at construction.
func (b *Bend) Initial() []anchor.Anchor {
	out := make([]anchor.Anchor, len(b.initial))
	copy(out, b.initial)
	return out
}

// Working returns a copy of the current working sequence.
func (b *Bend) Working() []anchor.Anchor {
	out := make([]anchor.Anchor, len(b.working))
	copy(out, b.working)
	return out
}

// SetWorking replaces the whole working sequence with a copy of as.
func (b *Bend) SetWorking(as []anchor.Anchor) {
	b.working = make([]anchor.Anchor, len(as))
	copy(b.working, as)
}

// WorkingLen returns the length of the working sequence.
func (b *Bend) WorkingLen() int { return len(b.working) }

// WorkingAnchor returns the working anchor at index i.
func (b *Bend) WorkingAnchor(i int) anchor.Anchor { return b.working[i] }

// SetWorkingAnchor replaces the working anchor at index i.
func (b *Bend) SetWorkingAnchor(i int, a anchor.Anchor) {
	b.working[i] = a
}

// InsertWorkingAnchor inserts a into the working sequence at index i,
// shifting later anchors up.
func (b *Bend) InsertWorkingAnchor(i int, a anchor.Anchor) {
	b.working = append(b.working, anchor.Anchor{})
	copy(b.working[i+1:], b.working[i:])
	b.working[i] = a
}

// RemoveWorkingAnchor removes and returns the working anchor at index i,
// shifting later anchors down.
func (b *Bend) RemoveWorkingAnchor(i int) anchor.Anchor {
	a := b.working[i]
	b.working = append(b.working[:i], b.working[i+1:]...)
	return a
}
