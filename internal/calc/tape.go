package calc

import "strings"

// Tape accumulates pressed tokens into a human-readable expression such as
// "2 + 3 × 4" or "9 sqrt". Surfaces feed it the same events they feed the
// engine and read it back when an evaluation completes.
type Tape struct {
	tokens     []string
	numberOpen bool
}

// Digit appends d to the number token being typed, opening one if needed.
func (t *Tape) Digit(d int) {
	if d < 0 || d > 9 {
		return
	}
	t.appendToNumber(string(rune('0' + d)))
}

// Point appends a decimal point to the number token being typed.
func (t *Tape) Point() {
	t.appendToNumber(".")
}

// Op records an operator glyph and closes the current number token.
func (t *Tape) Op(op Operator) {
	if op == OpNone {
		return
	}
	t.tokens = append(t.tokens, op.Glyph())
	t.numberOpen = false
}

// Unary records a unary function by name and closes the current number token.
func (t *Tape) Unary(f Unary) {
	t.tokens = append(t.tokens, f.Name())
	t.numberOpen = false
}

// Reset discards all recorded tokens.
func (t *Tape) Reset() {
	t.tokens = nil
	t.numberOpen = false
}

// String returns the recorded expression with tokens joined by spaces.
func (t *Tape) String() string {
	return strings.Join(t.tokens, " ")
}

func (t *Tape) appendToNumber(s string) {
	if t.numberOpen {
		t.tokens[len(t.tokens)-1] += s
		return
	}
	t.tokens = append(t.tokens, s)
	t.numberOpen = true
}
