package domain

// State is the navigation snapshot: the stack of active menu levels.
// The last element is the level currently being driven.
type State struct {
	Stack []*Menu

	// Terminated is set once the root level has returned.
	Terminated bool
}

// NewState creates a State with root as the only active level.
func NewState(root *Menu) *State {
	return &State{Stack: []*Menu{root}}
}

// Current returns the active menu, or nil once terminated.
func (s *State) Current() *Menu {
	if s == nil || len(s.Stack) == 0 {
		return nil
	}
	return s.Stack[len(s.Stack)-1]
}

// Depth is the number of active levels.
func (s *State) Depth() int {
	if s == nil {
		return 0
	}
	return len(s.Stack)
}

// Clone copies the stack so the caller can push or pop without aliasing.
func (s *State) Clone() *State {
	next := &State{Terminated: s.Terminated}
	next.Stack = append(make([]*Menu, 0, len(s.Stack)+1), s.Stack...)
	return next
}
