// Package calc implements the calculator core: the single-accumulator
// arithmetic state machine and the display-string formatter. It has no
// knowledge of any input surface; surfaces feed it discrete events and
// read back the rendered display text.
package calc

// Operator identifies a pending binary operation. The zero value OpNone
// means no operation is pending.
type Operator int

const (
	OpNone Operator = iota
	OpDivide
	OpMultiply
	OpAdd
	OpSubtract
)

// Glyph returns the display symbol for the operator, or "" for OpNone.
func (op Operator) Glyph() string {
	switch op {
	case OpDivide:
		return "÷"
	case OpMultiply:
		return "×"
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	}
	return ""
}

// ParseOperator maps a button glyph to its operator. The ASCII aliases
// "/" and "*" are accepted alongside the keypad glyphs. ok is false for
// anything else, including the empty string.
func ParseOperator(glyph string) (Operator, bool) {
	switch glyph {
	case "÷", "/":
		return OpDivide, true
	case "×", "*":
		return OpMultiply, true
	case "+":
		return OpAdd, true
	case "-":
		return OpSubtract, true
	}
	return OpNone, false
}

// apply evaluates a <op> b. OpNone yields b, which is what starts an
// accumulator chain: the first operand becomes the running result.
func (op Operator) apply(a, b float64) float64 {
	switch op {
	case OpDivide:
		return a / b
	case OpMultiply:
		return a * b
	case OpAdd:
		return a + b
	case OpSubtract:
		return a - b
	}
	return b
}
