package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
	"github.com/cwbudde/go-lox/internal/report"
	"github.com/cwbudde/go-lox/internal/resolver"
)

// run executes src through the full scan -> parse -> resolve ->
// evaluate pipeline and returns everything printed to stdout plus the
// reporter that accumulated any diagnostics.
func run(t *testing.T, src string) (string, *report.Reporter) {
	t.Helper()
	var errBuf, outBuf bytes.Buffer
	r := report.New(&errBuf)

	l := lexer.New(src)
	p := parser.New(l, r)
	program := p.Parse()
	for _, scanErr := range l.Errors() {
		r.ScanError(scanErr.Pos, scanErr.Message)
	}
	if r.HadCompileError() {
		return outBuf.String(), r
	}

	locals := resolver.New(r).Resolve(program)
	if r.HadCompileError() {
		return outBuf.String(), r
	}

	in := New(r, &outBuf)
	in.Interpret(program, locals)
	return outBuf.String(), r
}

func TestScenarioArithmeticPrecedence(t *testing.T) {
	out, r := run(t, `print 1 + 2 * 3;`)
	if r.HadCompileError() || r.HadRuntimeError() {
		t.Fatalf("unexpected error")
	}
	if strings.TrimSpace(out) != "7" {
		t.Fatalf("got %q, want %q", out, "7")
	}
}

func TestScenarioBlockShadowing(t *testing.T) {
	out, r := run(t, `var a = 1; { var a = 2; print a; } print a;`)
	if r.HadCompileError() || r.HadRuntimeError() {
		t.Fatalf("unexpected error")
	}
	if strings.TrimSpace(out) != "2\n1" {
		t.Fatalf("got %q, want %q", out, "2\\n1")
	}
}

func TestScenarioClosureCounter(t *testing.T) {
	src := `fun make(){ var i = 0; fun tick(){ i = i + 1; return i; } return tick; }
	var t = make(); print t(); print t(); print t();`
	out, r := run(t, src)
	if r.HadCompileError() || r.HadRuntimeError() {
		t.Fatalf("unexpected error")
	}
	if strings.TrimSpace(out) != "1\n2\n3" {
		t.Fatalf("got %q, want %q", out, "1\\n2\\n3")
	}
}

func TestScenarioFieldAndThis(t *testing.T) {
	src := `class A { greet() { print "hi " + this.name; } }
	var a = A(); a.name = "Lox"; a.greet();`
	out, r := run(t, src)
	if r.HadCompileError() || r.HadRuntimeError() {
		t.Fatalf("unexpected error")
	}
	if strings.TrimSpace(out) != "hi Lox" {
		t.Fatalf("got %q, want %q", out, "hi Lox")
	}
}

func TestScenarioSuperDispatch(t *testing.T) {
	src := `class A { f() { print "A"; } } class B < A { f() { super.f(); print "B"; } } B().f();`
	out, r := run(t, src)
	if r.HadCompileError() || r.HadRuntimeError() {
		t.Fatalf("unexpected error")
	}
	if strings.TrimSpace(out) != "A\nB" {
		t.Fatalf("got %q, want %q", out, "A\\nB")
	}
}

func TestScenarioNoImplicitStringNumberEquality(t *testing.T) {
	out, r := run(t, `print "0" == 0;`)
	if r.HadCompileError() || r.HadRuntimeError() {
		t.Fatalf("unexpected error")
	}
	if strings.TrimSpace(out) != "false" {
		t.Fatalf("got %q, want %q", out, "false")
	}
}

func TestScenarioNegativeZero(t *testing.T) {
	out, r := run(t, `print -0;`)
	if r.HadCompileError() || r.HadRuntimeError() {
		t.Fatalf("unexpected error")
	}
	if strings.TrimSpace(out) != "-0" {
		t.Fatalf("got %q, want %q", out, "-0")
	}
}

func TestFailureUseInOwnInitializer(t *testing.T) {
	_, r := run(t, `{ var a = a; }`)
	if !r.HadCompileError() {
		t.Fatalf("expected a resolve error")
	}
}

func TestFailureTopLevelReturn(t *testing.T) {
	_, r := run(t, `return 1;`)
	if !r.HadCompileError() {
		t.Fatalf("expected a resolve error")
	}
}

func TestFailureUnterminatedString(t *testing.T) {
	_, r := run(t, `"unterminated`)
	if !r.HadCompileError() {
		t.Fatalf("expected a scan error")
	}

	found := false
	for _, d := range r.Diagnostics() {
		if d.Kind == report.Scan && d.Message == "Unterminated string" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a reported scan error with the lexer's own message, got %+v", r.Diagnostics())
	}
}

func TestFailureNilPropertyAccess(t *testing.T) {
	_, r := run(t, `print nil.x;`)
	if !r.HadRuntimeError() {
		t.Fatalf("expected a runtime error")
	}
}

func TestFailureDivideByZero(t *testing.T) {
	_, r := run(t, `print 1 / 0;`)
	if !r.HadRuntimeError() {
		t.Fatalf("expected a runtime error")
	}
}

func TestRuntimeErrorHaltsRemainingTopLevelStatements(t *testing.T) {
	src := `print "before";
	print 1 / 0;
	print "after";`
	out, r := run(t, src)
	if !r.HadRuntimeError() {
		t.Fatalf("expected a runtime error")
	}
	if strings.TrimSpace(out) != "before" {
		t.Fatalf("expected only the pre-error statement to print, got %q", out)
	}
}

func TestEnvironmentRestoredAfterNormalBlockExit(t *testing.T) {
	src := `var a = "outer";
	{
		var a = "inner";
	}
	print a;`
	out, r := run(t, src)
	if r.HadCompileError() || r.HadRuntimeError() {
		t.Fatalf("unexpected error")
	}
	if strings.TrimSpace(out) != "outer" {
		t.Fatalf("expected the outer binding to survive the block's normal exit, got %q", out)
	}
}

func TestArityMismatchIsRuntimeError(t *testing.T) {
	_, r := run(t, `fun f(a, b) { return a + b; } f(1);`)
	if !r.HadRuntimeError() {
		t.Fatalf("expected a runtime error for arity mismatch")
	}
}

func TestCallingNonCallableIsRuntimeError(t *testing.T) {
	_, r := run(t, `var x = 1; x();`)
	if !r.HadRuntimeError() {
		t.Fatalf("expected a runtime error")
	}
}
