package calc

import "math"

// Display receives the engine's rendered text after every handled event.
// Implementations must not call back into the engine from Render.
type Display interface {
	Render(text string)
}

// DivideByZeroToken is the display text shown when a division by zero is
// evaluated.
const DivideByZeroToken = "Divide by 0"

// displayMode tracks what kind of token the display currently shows. The
// display text is derived from engine state, never read back as state.
type displayMode int

const (
	modeNumber   displayMode = iota // a number the user is typing
	modeResult                      // a just-computed chain result
	modeOperator                    // a pending operator glyph
	modeError                       // an error token (divide by zero, Inf, NaN)
)

// Engine is the single-accumulator arithmetic state machine. It consumes
// digit, decimal-point, operator, unary-function and clear events, evaluates
// chains strictly left to right with no operator precedence, and renders the
// display text through Format after every event.
//
// The engine is not safe for concurrent use; callers must deliver one event
// at a time.
type Engine struct {
	display Display

	accumulated float64  // result of the chain completed so far
	current     float64  // the number being typed / operated on
	pending     Operator // operator awaiting its right-hand operand
	inFraction  bool     // between a "." press and the next operator/clear
	fracDigits  uint     // digits typed after the point; 0 unless inFraction

	mode displayMode
	text string
}

// New returns an engine in its initial state showing "0". display may be
// nil, in which case the rendered text is only available through Text.
func New(display Display) *Engine {
	e := &Engine{display: display}
	e.render("0")
	return e
}

// Text returns the currently rendered display text.
func (e *Engine) Text() string {
	return e.text
}

// Erred reports whether the display currently shows an error token.
func (e *Engine) Erred() bool {
	return e.mode == modeError
}

// Digit feeds a 0-9 digit press. Digits outside that range are ignored.
func (e *Engine) Digit(d int) {
	if d < 0 || d > 9 {
		return
	}

	switch e.mode {
	case modeOperator, modeResult:
		// start of a fresh number
		e.startNumber(d)
		return
	case modeError:
		// leaving the error state abandons the interrupted chain
		e.accumulated = 0
		e.pending = OpNone
		e.startNumber(d)
		return
	}

	// suppress leading zeros
	if !e.inFraction && e.current == 0 && d == 0 {
		return
	}

	if e.inFraction {
		e.fracDigits++
		frac := float64(d) / math.Pow(10, float64(e.fracDigits))
		if e.current < 0 {
			e.current -= frac
		} else {
			e.current += frac
		}
	} else {
		e.current = e.current*10 + float64(d)
	}
	e.renderNumber()
}

func (e *Engine) startNumber(d int) {
	e.current = float64(d)
	e.inFraction = false
	e.fracDigits = 0
	e.renderNumber()
}

// Point starts decimal-fraction entry. It is ignored while already entering
// a fraction, while an operator glyph is showing, and while an error token
// is showing. Pressed on a just-computed result it starts a new "0." entry.
func (e *Engine) Point() {
	if e.inFraction {
		return
	}

	switch e.mode {
	case modeNumber:
		e.inFraction = true
		e.fracDigits = 0
		e.renderNumber()
	case modeResult:
		e.current = 0
		e.inFraction = true
		e.fracDigits = 0
		e.renderNumber()
	}
}

// Op evaluates any pending operation and stores op as the new pending
// operator, rendering its glyph. OpNone is ignored; use Equals for "=".
func (e *Engine) Op(op Operator) {
	if op == OpNone {
		return
	}
	e.evaluate(op)
}

// Equals evaluates any pending operation, renders the chain result, and
// restarts the chain from it.
func (e *Engine) Equals() {
	e.evaluate(OpNone)
}

func (e *Engine) evaluate(op Operator) {
	if e.mode == modeError {
		return
	}

	e.inFraction = false
	e.fracDigits = 0

	if e.pending == OpDivide && e.current == 0 {
		e.accumulated = 0
		e.pending = OpNone
		e.mode = modeError
		e.render(DivideByZeroToken)
		return
	}

	e.accumulated = e.pending.apply(e.accumulated, e.current)
	e.pending = op

	if op != OpNone {
		e.mode = modeOperator
		e.render(op.Glyph())
		return
	}

	// equals: show the result and start a fresh chain from it
	e.current = e.accumulated
	e.accumulated = 0
	e.renderNumber()
	if e.mode == modeNumber {
		e.mode = modeResult
	}
}

// Unary applies f to the current value and renders the result. It is
// ignored while an operator glyph or an error token is showing.
func (e *Engine) Unary(f Unary) {
	if e.mode != modeNumber && e.mode != modeResult {
		return
	}
	e.inFraction = false
	e.fracDigits = 0
	e.current = f.apply(e.current)
	e.renderNumber()
}

// Clear resets the engine to its initial state and renders "0". Clearing
// twice is the same as clearing once.
func (e *Engine) Clear() {
	e.accumulated = 0
	e.current = 0
	e.pending = OpNone
	e.inFraction = false
	e.fracDigits = 0
	e.mode = modeNumber
	e.render("0")
}

// Press dispatches a raw button label: digit characters, ".", "=", "C", and
// the operator and unary-function labels understood by ParseOperator and
// ParseUnary. Labels that match nothing are silently ignored.
func (e *Engine) Press(label string) {
	if len(label) == 1 && label[0] >= '0' && label[0] <= '9' {
		e.Digit(int(label[0] - '0'))
		return
	}

	switch label {
	case ".":
		e.Point()
	case "=":
		e.Equals()
	case "C", "c":
		e.Clear()
	default:
		if op, ok := ParseOperator(label); ok {
			e.Op(op)
			return
		}
		if f, ok := ParseUnary(label); ok {
			e.Unary(f)
		}
	}
}

// renderNumber renders the current value. A non-finite current value flips
// the engine into error mode so that the next digit press starts over.
func (e *Engine) renderNumber() {
	if math.IsNaN(e.current) || math.IsInf(e.current, 0) {
		e.mode = modeError
	} else {
		e.mode = modeNumber
	}
	e.render(Format(e.current, e.inFraction, e.fracDigits))
}

func (e *Engine) render(text string) {
	e.text = text
	if e.display != nil {
		e.display.Render(text)
	}
}
