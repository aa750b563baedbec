package op

// Selector is the selection surface select and deselect operations act on.
// The scene's selection model implements it.
type Selector interface {
	Select(id string)
	Deselect(id string)
}

// Select adds an element to the selection; reverting removes it again.
type Select struct {
	sel Selector
	id  string
}

// NewSelect builds a select operation for the element with the given id.
func NewSelect(sel Selector, id string) *Select {
	return &Select{sel: sel, id: id}
}

// Label implements Op.
func (s *Select) Label() string { return "select " + s.id }

// Apply implements Op.
func (s *Select) Apply() error {
	s.sel.Select(s.id)
	return nil
}

// Revert implements Op.
func (s *Select) Revert() error {
	s.sel.Deselect(s.id)
	return nil
}

// IsNoop implements Op.
func (s *Select) IsNoop() bool { return false }

// Deselect removes an element from the selection; reverting restores it.
type Deselect struct {
	sel Selector
	id  string
}

// NewDeselect builds a deselect operation for the element with the given id.
func NewDeselect(sel Selector, id string) *Deselect {
	return &Deselect{sel: sel, id: id}
}

// Label implements Op.
func (d *Deselect) Label() string { return "deselect " + d.id }

// Apply implements Op.
func (d *Deselect) Apply() error {
	d.sel.Deselect(d.id)
	return nil
}

// Revert implements Op.
func (d *Deselect) Revert() error {
	d.sel.Select(d.id)
	return nil
}

// IsNoop implements Op.
func (d *Deselect) IsNoop() bool { return false }
