package lexer

// State is the tokenizer's mode plus the stack of enclosing modes, carried
// across lines so multi-line constructs (block comments, template literals)
// resume correctly. It is a value type: Push and Pop return fresh values and
// never mutate a shared stack, and Equal compares structurally — the line
// cache relies on that to decide whether a line needs retokenizing.
type State struct {
	Name  string
	stack []string
}

// Root is the initial tokenizer state.
func Root() State {
	return State{Name: stateRoot}
}

// Equal reports structural equality of state name and stack.
func (s State) Equal(o State) bool {
	if s.Name != o.Name || len(s.stack) != len(o.stack) {
		return false
	}
	for i := range s.stack {
		if s.stack[i] != o.stack[i] {
			return false
		}
	}
	return true
}

// Depth reports the number of enclosing modes.
func (s State) Depth() int {
	return len(s.stack)
}

// Push returns a state in mode name with the current mode saved beneath it.
func (s State) Push(name string) State {
	stack := make([]string, len(s.stack)+1)
	copy(stack, s.stack)
	stack[len(s.stack)] = s.Name
	return State{Name: name, stack: stack}
}

// Pop returns the enclosing state, or the root state when the stack is empty.
func (s State) Pop() State {
	if len(s.stack) == 0 {
		return Root()
	}
	stack := make([]string, len(s.stack)-1)
	copy(stack, s.stack[:len(s.stack)-1])
	return State{Name: s.stack[len(s.stack)-1], stack: stack}
}

func (s State) String() string {
	out := s.Name
	for i := len(s.stack) - 1; i >= 0; i-- {
		out += "<" + s.stack[i]
	}
	return out
}
