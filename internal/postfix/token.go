// Package postfix converts infix arithmetic expressions into postfix
// (reverse-Polish) notation. Operands are single lowercase letters,
// operators are the binary + - * /, and round brackets group
// subexpressions.
package postfix

// Category classifies a single byte of an input expression.
type Category int

const (
	// EndOfInput marks the end of the expression (NUL or exhausted input).
	EndOfInput Category = iota
	// Operand is a single lowercase letter a-z.
	Operand
	// AdditiveOp is a low-priority operator, + or -.
	AdditiveOp
	// MultiplicativeOp is a high-priority operator, * or /.
	MultiplicativeOp
	// OpenBracket is the opening round bracket.
	OpenBracket
	// CloseBracket is the closing round bracket.
	CloseBracket
	// Invalid covers every byte outside the expression alphabet.
	Invalid
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case EndOfInput:
		return "end-of-input"
	case Operand:
		return "operand"
	case AdditiveOp:
		return "additive operator"
	case MultiplicativeOp:
		return "multiplicative operator"
	case OpenBracket:
		return "open bracket"
	case CloseBracket:
		return "close bracket"
	default:
		return "invalid"
	}
}

// Classify maps one input byte to its Category. The categories are
// mutually exclusive and exhaustive over all byte values; Invalid is
// returned for anything outside the expression alphabet.
func Classify(c byte) Category {
	switch {
	case c == 0:
		return EndOfInput
	case c >= 'a' && c <= 'z':
		return Operand
	case c == '+' || c == '-':
		return AdditiveOp
	case c == '*' || c == '/':
		return MultiplicativeOp
	case c == '(':
		return OpenBracket
	case c == ')':
		return CloseBracket
	default:
		return Invalid
	}
}
