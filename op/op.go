// Package op implements transactional operations: self-contained commands
// that can be applied, reverted, and composed, plus the undo history that
// runs them. Sessions build operations; front ends push them through a
// History so undo and redo fall out of the same objects.
package op

import "fmt"

// Op is a reversible unit of work. Apply and Revert are expected to be
// symmetric: reverting an applied op restores the state it found.
type Op interface {
	// Label is a short human-readable description, used in logs and menus.
	Label() string

	// Apply performs the operation.
	Apply() error

	// Revert undoes a previously applied operation.
	Revert() error

	// IsNoop reports whether applying the operation would change nothing.
	// Noop operations are dropped instead of recorded.
	IsNoop() bool
}

// Forward composes child operations that are applied in order and also
// reverted in order. Use it when children must be undone in the same
// sequence they were done, such as a state change bracketed by its own
// inverse.
type Forward struct {
	label    string
	children []Op
}

// NewForward builds a forward-undo composite. Nil children are skipped.
func NewForward(label string, children ...Op) *Forward {
	f := &Forward{label: label}
	for _, c := range children {
		f.Add(c)
	}
	return f
}

// Add appends a child operation. Nil is ignored.
func (f *Forward) Add(o Op) {
	if o == nil {
		return
	}
	f.children = append(f.children, o)
}

// Label implements Op.
func (f *Forward) Label() string { return f.label }

// Apply runs the children in order, stopping at the first failure.
func (f *Forward) Apply() error {
	for _, c := range f.children {
		if err := c.Apply(); err != nil {
			return fmt.Errorf("%s: %w", c.Label(), err)
		}
	}
	return nil
}

// Revert runs the children's Revert in the same order they were applied.
func (f *Forward) Revert() error {
	for _, c := range f.children {
		if err := c.Revert(); err != nil {
			return fmt.Errorf("%s: %w", c.Label(), err)
		}
	}
	return nil
}

// IsNoop reports whether every child is a noop.
func (f *Forward) IsNoop() bool {
	for _, c := range f.children {
		if !c.IsNoop() {
			return false
		}
	}
	return true
}

// Reverse composes child operations that are applied in order and reverted
// in reverse order, the usual transactional bracket.
type Reverse struct {
	label    string
	children []Op
}

// NewReverse builds a reverse-undo composite. Nil children are skipped.
func NewReverse(label string, children ...Op) *Reverse {
	r := &Reverse{label: label}
	for _, c := range children {
		r.Add(c)
	}
	return r
}

// Add appends a child operation. Nil is ignored.
func (r *Reverse) Add(o Op) {
	if o == nil {
		return
	}
	r.children = append(r.children, o)
}

// Label implements Op.
func (r *Reverse) Label() string { return r.label }

// Apply runs the children in order, stopping at the first failure.
func (r *Reverse) Apply() error {
	for _, c := range r.children {
		if err := c.Apply(); err != nil {
			return fmt.Errorf("%s: %w", c.Label(), err)
		}
	}
	return nil
}

// Revert runs the children's Revert from last to first.
func (r *Reverse) Revert() error {
	for i := len(r.children) - 1; i >= 0; i-- {
		if err := r.children[i].Revert(); err != nil {
			return fmt.Errorf("%s: %w", r.children[i].Label(), err)
		}
	}
	return nil
}

// IsNoop reports whether every child is a noop.
func (r *Reverse) IsNoop() bool {
	for _, c := range r.children {
		if !c.IsNoop() {
			return false
		}
	}
	return true
}
