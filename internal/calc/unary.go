package calc

import "math"

// Unary identifies a single-operand function applied to the value
// currently on the display.
type Unary int

const (
	UnaryFactorial Unary = iota
	UnarySquareRoot
	UnaryCubeRoot
	UnaryNegate
	UnaryPercent
	UnarySquare
	UnaryCube
	UnarySin
	UnaryCos
	UnaryTan
)

// Name returns the word form of the function, used in event payloads and
// recorded expressions.
func (f Unary) Name() string {
	switch f {
	case UnaryFactorial:
		return "factorial"
	case UnarySquareRoot:
		return "sqrt"
	case UnaryCubeRoot:
		return "cbrt"
	case UnaryNegate:
		return "negate"
	case UnaryPercent:
		return "percent"
	case UnarySquare:
		return "square"
	case UnaryCube:
		return "cube"
	case UnarySin:
		return "sin"
	case UnaryCos:
		return "cos"
	case UnaryTan:
		return "tan"
	}
	return ""
}

// ParseUnary maps a button label to its function. Both the keypad glyphs
// ("x!", "√x", "+/-", ...) and the word forms from Name are accepted.
func ParseUnary(label string) (Unary, bool) {
	switch label {
	case "x!", "factorial":
		return UnaryFactorial, true
	case "√x", "sqrt":
		return UnarySquareRoot, true
	case "∛x", "cbrt":
		return UnaryCubeRoot, true
	case "+/-", "negate":
		return UnaryNegate, true
	case "%", "percent":
		return UnaryPercent, true
	case "x²", "square":
		return UnarySquare, true
	case "x³", "cube":
		return UnaryCube, true
	case "sin":
		return UnarySin, true
	case "cos":
		return UnaryCos, true
	case "tan":
		return UnaryTan, true
	}
	return 0, false
}

// apply computes f(x). Factorial extends to non-integer input through the
// Gamma identity x! = Γ(x+1); trigonometric functions take radians.
// Results may be NaN or ±Inf, which the engine surfaces as error tokens.
func (f Unary) apply(x float64) float64 {
	switch f {
	case UnaryFactorial:
		return math.Gamma(x + 1)
	case UnarySquareRoot:
		return math.Sqrt(x)
	case UnaryCubeRoot:
		return math.Cbrt(x)
	case UnaryNegate:
		return -x
	case UnaryPercent:
		return x / 100
	case UnarySquare:
		return x * x
	case UnaryCube:
		return x * x * x
	case UnarySin:
		return math.Sin(x)
	case UnaryCos:
		return math.Cos(x)
	case UnaryTan:
		return math.Tan(x)
	}
	return x
}
