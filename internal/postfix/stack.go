package postfix

// sentinel is the stack entry that marks the start of a parenthesized
// scope. It is never an operator and is never emitted.
const sentinel byte = 0

// opStack holds the operators pending emission, partitioned into bracket
// scopes by sentinel entries. Within a scope at most one multiplicative
// operator sits above at most one additive operator, which is what lets
// flushes pop a fixed number of times instead of scanning.
type opStack struct {
	entries  []byte
	capacity int
}

// newOpStack returns an empty stack bounded at the given capacity.
func newOpStack(capacity int) *opStack {
	return &opStack{
		entries:  make([]byte, 0, capacity),
		capacity: capacity,
	}
}

// push appends an operator or sentinel to the top of the stack.
func (s *opStack) push(c byte) error {
	if len(s.entries) >= s.capacity {
		return &OverflowError{Capacity: s.capacity}
	}
	s.entries = append(s.entries, c)
	return nil
}

// popAny removes and returns the top operator. A sentinel on top, or an
// empty stack, acts as a floor: nothing is removed and the zero value is
// returned, so repeated flush pops beyond the available operators are
// safe no-ops.
func (s *opStack) popAny() byte {
	if len(s.entries) == 0 {
		return 0
	}
	top := s.entries[len(s.entries)-1]
	if top == sentinel {
		return 0
	}
	s.entries = s.entries[:len(s.entries)-1]
	return top
}

// popIfMultiplicative removes and returns the top entry only when it is
// * or /; an additive operator or sentinel beneath binds looser and is
// left untouched.
func (s *opStack) popIfMultiplicative() byte {
	if len(s.entries) == 0 {
		return 0
	}
	top := s.entries[len(s.entries)-1]
	if top != '*' && top != '/' {
		return 0
	}
	s.entries = s.entries[:len(s.entries)-1]
	return top
}

// popSentinel removes a sentinel from the top of the stack and reports
// whether one was there. A false return means the close bracket had no
// matching open bracket.
func (s *opStack) popSentinel() bool {
	if len(s.entries) == 0 || s.entries[len(s.entries)-1] != sentinel {
		return false
	}
	s.entries = s.entries[:len(s.entries)-1]
	return true
}

// empty reports whether no entries remain on the stack.
func (s *opStack) empty() bool {
	return len(s.entries) == 0
}
