package postfix

import (
	"fmt"
	"io"
	"strings"
)

// DefaultCapacity is the default bound on pending operators and open
// bracket scopes for a single conversion.
const DefaultCapacity = 64

// Converter turns infix expressions into postfix notation. A Converter
// holds only configuration; all conversion state lives in the call, so a
// single Converter is safe for concurrent use.
type Converter struct {
	capacity int
}

// New returns a Converter whose operator stack is bounded at capacity.
// A capacity of zero or less selects DefaultCapacity.
func New(capacity int) *Converter {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Converter{capacity: capacity}
}

// Convert walks expr left to right exactly once and streams the postfix
// form to w. Operands are emitted as soon as they are read; operators
// wait on a per-call stack until precedence allows them out. On failure
// the output already written to w stays written and a typed error
// (InvalidCharError, UnbalancedBracketsError or OverflowError)
// describes the first problem encountered.
func (cv *Converter) Convert(expr string, w io.Writer) error {
	st := newOpStack(cv.capacity)

	for pos := 0; ; pos++ {
		var c byte
		if pos < len(expr) {
			c = expr[pos]
		}

		switch Classify(c) {
		case Operand:
			if err := emit(w, c); err != nil {
				return err
			}

		case AdditiveOp:
			// An additive operator forces out everything of equal or
			// higher precedence in the current scope: at most one
			// multiplicative entry over at most one additive entry.
			if err := flushScope(st, w); err != nil {
				return err
			}
			if err := st.push(c); err != nil {
				return err
			}

		case MultiplicativeOp:
			// Only an equally tight multiplicative operator folds out;
			// an additive one beneath binds looser and stays.
			if err := emitPopped(w, st.popIfMultiplicative()); err != nil {
				return err
			}
			if err := st.push(c); err != nil {
				return err
			}

		case OpenBracket:
			if err := st.push(sentinel); err != nil {
				return err
			}

		case CloseBracket:
			if err := flushScope(st, w); err != nil {
				return err
			}
			if !st.popSentinel() {
				return &UnbalancedBracketsError{Pos: pos}
			}

		case EndOfInput:
			if err := flushScope(st, w); err != nil {
				return err
			}
			// Anything left now is a sentinel of an unclosed bracket.
			if !st.empty() {
				return &UnbalancedBracketsError{Pos: len(expr)}
			}
			return nil

		default:
			return &InvalidCharError{Char: c, Pos: pos}
		}
	}
}

// ConvertString converts expr and returns the postfix form as a string.
// On failure the partial output produced before the abort is returned
// alongside the error.
func (cv *Converter) ConvertString(expr string) (string, error) {
	var buf strings.Builder
	err := cv.Convert(expr, &buf)
	return buf.String(), err
}

// flushScope drains the pending operators of the current bracket scope:
// two guarded pops cover the scope's maximum depth, and pops that hit
// the scope floor emit nothing.
func flushScope(st *opStack, w io.Writer) error {
	if err := emitPopped(w, st.popAny()); err != nil {
		return err
	}
	return emitPopped(w, st.popAny())
}

// emit writes one operand or operator byte to the output stream.
func emit(w io.Writer, c byte) error {
	if _, err := w.Write([]byte{c}); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// emitPopped writes a popped stack entry, suppressing the zero value a
// pop returns when it was absorbed by the scope floor.
func emitPopped(w io.Writer, c byte) error {
	if c == sentinel {
		return nil
	}
	return emit(w, c)
}
