package postfix

import "fmt"

// InvalidCharError reports a byte outside the recognized operand,
// operator and bracket alphabet. Pos is the zero-based offset of the
// offending byte in the input expression.
type InvalidCharError struct {
	Char byte
	Pos  int
}

// Error implements the error interface.
func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", e.Char, e.Pos)
}

// UnbalancedBracketsError reports an unmatched bracket: either a close
// bracket with no open scope, or an open bracket still unclosed at the
// end of the expression. Pos is the offset of the unmatched close
// bracket, or the expression length for a trailing unclosed scope.
type UnbalancedBracketsError struct {
	Pos int
}

// Error implements the error interface.
func (e *UnbalancedBracketsError) Error() string {
	return fmt.Sprintf("unbalanced brackets at position %d", e.Pos)
}

// OverflowError reports that the pending operators and open bracket
// scopes exceeded the configured stack capacity.
type OverflowError struct {
	Capacity int
}

// Error implements the error interface.
func (e *OverflowError) Error() string {
	return fmt.Sprintf("operator stack overflow: capacity %d exceeded", e.Capacity)
}
