package postfix

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		c    byte
		want Category
	}{
		{0, EndOfInput},
		{'a', Operand},
		{'m', Operand},
		{'z', Operand},
		{'+', AdditiveOp},
		{'-', AdditiveOp},
		{'*', MultiplicativeOp},
		{'/', MultiplicativeOp},
		{'(', OpenBracket},
		{')', CloseBracket},
		{'A', Invalid},
		{'Z', Invalid},
		{'0', Invalid},
		{'9', Invalid},
		{'$', Invalid},
		{' ', Invalid},
		{'`', Invalid}, // one below 'a'
		{'{', Invalid}, // one above 'z'
		{127, Invalid},
		{200, Invalid},
	}
	for _, tt := range tests {
		if got := Classify(tt.c); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

// Every byte value must land in exactly one category, and the category
// populations must match the fixed alphabet sizes.
func TestClassifyExhaustive(t *testing.T) {
	counts := make(map[Category]int)
	for c := 0; c < 256; c++ {
		counts[Classify(byte(c))]++
	}

	want := map[Category]int{
		EndOfInput:       1,
		Operand:          26,
		AdditiveOp:       2,
		MultiplicativeOp: 2,
		OpenBracket:      1,
		CloseBracket:     1,
		Invalid:          223,
	}
	for cat, n := range want {
		if counts[cat] != n {
			t.Errorf("category %v: got %d bytes, want %d", cat, counts[cat], n)
		}
	}
}
