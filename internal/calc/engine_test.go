package calc

import "testing"

// press feeds each rune of s to the engine as a button label. Works for
// digits, ".", "=", "C" and single-rune operator glyphs.
func press(e *Engine, s string) {
	for _, r := range s {
		e.Press(string(r))
	}
}

// renderLog records everything the engine renders.
type renderLog struct {
	texts []string
}

func (d *renderLog) Render(text string) {
	d.texts = append(d.texts, text)
}

func TestEngineStartsAtZero(t *testing.T) {
	d := &renderLog{}
	e := New(d)

	if got := e.Text(); got != "0" {
		t.Fatalf("initial display = %q, want %q", got, "0")
	}
	if len(d.texts) != 1 || d.texts[0] != "0" {
		t.Fatalf("expected a single initial render of %q, got %v", "0", d.texts)
	}
}

func TestEngineIntegerEntry(t *testing.T) {
	e := New(nil)
	press(e, "12345")

	if got := e.Text(); got != "12345" {
		t.Fatalf("display = %q, want %q", got, "12345")
	}
}

func TestEngineSuppressesLeadingZeros(t *testing.T) {
	d := &renderLog{}
	e := New(d)

	e.Digit(0)
	e.Digit(0)
	if got := e.Text(); got != "0" {
		t.Fatalf("display = %q, want %q", got, "0")
	}
	if len(d.texts) != 1 {
		t.Fatalf("suppressed zeros must not re-render, got %v", d.texts)
	}

	e.Digit(5)
	if got := e.Text(); got != "5" {
		t.Fatalf("display = %q, want %q", got, "5")
	}
}

func TestEngineFractionEntryKeepsTrailingZeros(t *testing.T) {
	e := New(nil)
	press(e, "2.55")
	if got := e.Text(); got != "2.55" {
		t.Fatalf("display = %q, want %q", got, "2.55")
	}

	e.Digit(0)
	if got := e.Text(); got != "2.550" {
		t.Fatalf("display = %q, want %q", got, "2.550")
	}
}

func TestEnginePointAloneShowsTrailingPoint(t *testing.T) {
	e := New(nil)
	press(e, "2.")
	if got := e.Text(); got != "2." {
		t.Fatalf("display = %q, want %q", got, "2.")
	}
}

func TestEngineRepeatedPointIgnored(t *testing.T) {
	e := New(nil)
	press(e, "2..5")
	if got := e.Text(); got != "2.5" {
		t.Fatalf("display = %q, want %q", got, "2.5")
	}
}

func TestEnginePointWhileOperatorShownIgnored(t *testing.T) {
	e := New(nil)
	press(e, "2+")
	e.Point()
	if got := e.Text(); got != "+" {
		t.Fatalf("display = %q, want %q", got, "+")
	}

	e.Digit(3)
	if got := e.Text(); got != "3" {
		t.Fatalf("display = %q, want %q", got, "3")
	}
}

func TestEngineAddThenFreshEntry(t *testing.T) {
	e := New(nil)
	press(e, "3+4=")
	if got := e.Text(); got != "7" {
		t.Fatalf("display = %q, want %q", got, "7")
	}

	// the accumulator is reset: the next digit starts a new number
	e.Digit(1)
	if got := e.Text(); got != "1" {
		t.Fatalf("display after result = %q, want %q", got, "1")
	}
}

func TestEngineChainsEvaluateLeftToRight(t *testing.T) {
	e := New(nil)
	press(e, "2+3×4=")
	if got := e.Text(); got != "20" {
		t.Fatalf("display = %q, want %q (no operator precedence)", got, "20")
	}
}

func TestEngineOperatorGlyphShownWhilePending(t *testing.T) {
	e := New(nil)
	press(e, "8÷")
	if got := e.Text(); got != "÷" {
		t.Fatalf("display = %q, want %q", got, "÷")
	}

	press(e, "2=")
	if got := e.Text(); got != "4" {
		t.Fatalf("display = %q, want %q", got, "4")
	}
}

func TestEngineEqualsWithoutOperandRepeatsCurrent(t *testing.T) {
	// "2 + =" evaluates the pending add against the untouched current
	// value, matching the keypad behavior this engine reimplements.
	e := New(nil)
	press(e, "2+=")
	if got := e.Text(); got != "4" {
		t.Fatalf("display = %q, want %q", got, "4")
	}
}

func TestEngineDivideByZero(t *testing.T) {
	e := New(nil)
	press(e, "5÷0=")
	if got := e.Text(); got != DivideByZeroToken {
		t.Fatalf("display = %q, want %q", got, DivideByZeroToken)
	}
	if !e.Erred() {
		t.Fatal("expected engine to report an error state")
	}

	// operators, point and unary functions are inert while erred
	e.Op(OpAdd)
	e.Point()
	e.Unary(UnaryNegate)
	if got := e.Text(); got != DivideByZeroToken {
		t.Fatalf("display after ignored events = %q, want %q", got, DivideByZeroToken)
	}

	// the next digit starts a fresh entry
	e.Digit(9)
	if got := e.Text(); got != "9" {
		t.Fatalf("display = %q, want %q", got, "9")
	}
	if e.Erred() {
		t.Fatal("digit entry should clear the error state")
	}

	press(e, "=")
	if got := e.Text(); got != "9" {
		t.Fatalf("display = %q, want %q (abandoned chain must not resume)", got, "9")
	}
}

func TestEngineNonFiniteResultThenRecovery(t *testing.T) {
	e := New(nil)
	press(e, "1")
	e.Unary(UnaryNegate)
	e.Unary(UnarySquareRoot)

	if got := e.Text(); got != "NaN" {
		t.Fatalf("display = %q, want %q", got, "NaN")
	}
	if !e.Erred() {
		t.Fatal("expected engine to report an error state")
	}

	e.Digit(7)
	if got := e.Text(); got != "7" {
		t.Fatalf("display = %q, want %q", got, "7")
	}
}

func TestEngineClearIsIdempotent(t *testing.T) {
	e := New(nil)
	press(e, "12.5+7")

	e.Clear()
	if got := e.Text(); got != "0" {
		t.Fatalf("display = %q, want %q", got, "0")
	}

	e.Clear()
	if got := e.Text(); got != "0" {
		t.Fatalf("display after second clear = %q, want %q", got, "0")
	}

	press(e, "7=")
	if got := e.Text(); got != "7" {
		t.Fatalf("display = %q, want %q (clear must drop the pending chain)", got, "7")
	}
}

func TestEngineNegateIsSelfInverse(t *testing.T) {
	e := New(nil)
	press(e, "5")

	e.Unary(UnaryNegate)
	if got := e.Text(); got != "-5" {
		t.Fatalf("display = %q, want %q", got, "-5")
	}

	e.Unary(UnaryNegate)
	if got := e.Text(); got != "5" {
		t.Fatalf("display = %q, want %q", got, "5")
	}
}

func TestEngineNegativeFractionEntry(t *testing.T) {
	e := New(nil)
	press(e, "2")
	e.Unary(UnaryNegate)
	press(e, ".5")

	if got := e.Text(); got != "-2.5" {
		t.Fatalf("display = %q, want %q", got, "-2.5")
	}
}

func TestEngineUnaryFunctions(t *testing.T) {
	tests := []struct {
		name  string
		entry string
		f     Unary
		want  string
	}{
		{name: "factorial", entry: "5", f: UnaryFactorial, want: "120"},
		{name: "square root", entry: "9", f: UnarySquareRoot, want: "3"},
		{name: "cube root", entry: "27", f: UnaryCubeRoot, want: "3"},
		{name: "percent", entry: "50", f: UnaryPercent, want: "0.5"},
		{name: "square", entry: "12", f: UnarySquare, want: "144"},
		{name: "cube", entry: "3", f: UnaryCube, want: "27"},
		{name: "sin", entry: "0", f: UnarySin, want: "0"},
		{name: "cos", entry: "0", f: UnaryCos, want: "1"},
		{name: "tan", entry: "0", f: UnaryTan, want: "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := New(nil)
			press(e, tc.entry)
			e.Unary(tc.f)
			if got := e.Text(); got != tc.want {
				t.Fatalf("display = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEngineUnaryWhileOperatorShownIgnored(t *testing.T) {
	e := New(nil)
	press(e, "9+")
	e.Unary(UnarySquareRoot)
	if got := e.Text(); got != "+" {
		t.Fatalf("display = %q, want %q", got, "+")
	}

	press(e, "1=")
	if got := e.Text(); got != "10" {
		t.Fatalf("display = %q, want %q", got, "10")
	}
}

func TestEngineUnaryAppliesToResult(t *testing.T) {
	e := New(nil)
	press(e, "4+5=")
	e.Unary(UnarySquareRoot)
	if got := e.Text(); got != "3" {
		t.Fatalf("display = %q, want %q", got, "3")
	}
}

func TestEnginePointAfterResultStartsFreshFraction(t *testing.T) {
	e := New(nil)
	press(e, "3+4=.5")
	if got := e.Text(); got != "0.5" {
		t.Fatalf("display = %q, want %q", got, "0.5")
	}
}

func TestEnginePressDispatch(t *testing.T) {
	e := New(nil)

	for _, label := range []string{"2", "*", "3", "="} {
		e.Press(label)
	}
	if got := e.Text(); got != "6" {
		t.Fatalf("display = %q, want %q", got, "6")
	}

	e.Press("sqrt")
	if got := e.Text(); got != "2.4494897" {
		t.Fatalf("display = %q, want %q", got, "2.4494897")
	}

	e.Press("C")
	if got := e.Text(); got != "0" {
		t.Fatalf("display = %q, want %q", got, "0")
	}
}

func TestEnginePressIgnoresUnknownLabels(t *testing.T) {
	e := New(nil)
	press(e, "42")

	for _, label := range []string{"#", "off", "", "±"} {
		e.Press(label)
	}
	if got := e.Text(); got != "42" {
		t.Fatalf("display = %q, want %q", got, "42")
	}
}
