package op

// Refreshable is anything whose visual refresh can be suspended while a
// batch of changes goes through and resumed afterwards.
type Refreshable interface {
	RefreshEnabled() bool
	SetRefreshEnabled(bool)
}

// SetRefresh flips a target's refresh flag and remembers the flag it
// replaced, so reverting restores the caller's setting rather than assuming
// one.
type SetRefresh struct {
	target Refreshable
	from   bool
	to     bool
}

// NewSetRefresh prepares a switch from one flag value to another. Both are
// given explicitly because the operation may be built while the flag still
// has a value neither side of the switch, as in a commit bracket
// constructed up front.
func NewSetRefresh(target Refreshable, from, to bool) *SetRefresh {
	return &SetRefresh{target: target, from: from, to: to}
}

// Label implements Op.
func (s *SetRefresh) Label() string {
	if s.to {
		return "enable refresh"
	}
	return "suspend refresh"
}

// Apply implements Op.
func (s *SetRefresh) Apply() error {
	s.target.SetRefreshEnabled(s.to)
	return nil
}

// Revert implements Op.
func (s *SetRefresh) Revert() error {
	s.target.SetRefreshEnabled(s.from)
	return nil
}

// IsNoop reports whether the switch would leave the flag as it is.
func (s *SetRefresh) IsNoop() bool { return s.from == s.to }
