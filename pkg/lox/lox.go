// Package lox is the embeddable facade for the interpreter: it wires
// the scan -> parse -> resolve -> evaluate pipeline together and
// exposes the file-mode and REPL-mode entry points cmd/lox builds on.
package lox

import (
	"io"
	"os"

	"github.com/cwbudde/go-lox/internal/builtins"
	"github.com/cwbudde/go-lox/internal/interp"
	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
	"github.com/cwbudde/go-lox/internal/report"
	"github.com/cwbudde/go-lox/internal/resolver"
)

// Exit codes, matching the conventions of sysexits.h: EX_DATAERR (65)
// for a malformed program, EX_SOFTWARE (70) for a runtime failure.
const (
	ExitSuccess  = 0
	ExitUsage    = 64
	ExitData     = 65
	ExitSoftware = 70
)

// Lox is a reusable interpreter session: one globals environment and
// one Reporter shared across any number of Run calls, so a REPL can
// keep variables and functions defined across lines while still
// reporting each line's errors in isolation.
type Lox struct {
	reporter *report.Reporter
	interp   *interp.Interpreter
	stdout   io.Writer
}

// Option configures a Lox session at construction time.
type Option func(*options)

type options struct {
	stdout io.Writer
	stderr io.Writer
	color  bool
}

// WithStdout redirects a script's `print` output. Defaults to os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(o *options) { o.stdout = w }
}

// WithStderr redirects diagnostic output. Defaults to os.Stderr.
func WithStderr(w io.Writer) Option {
	return func(o *options) { o.stderr = w }
}

// WithColor enables ANSI-colored diagnostics. Callers typically gate
// this on a TTY check before enabling it.
func WithColor(enabled bool) Option {
	return func(o *options) { o.color = enabled }
}

// New creates a Lox session with a fresh globals environment and
// registers every built-in into it.
func New(opts ...Option) *Lox {
	o := &options{stdout: os.Stdout, stderr: os.Stderr}
	for _, opt := range opts {
		opt(o)
	}

	reporter := report.New(o.stderr, report.WithColor(o.color))
	in := interp.New(reporter, o.stdout)
	builtins.RegisterAll(in.Globals())

	return &Lox{reporter: reporter, interp: in, stdout: o.stdout}
}

// Reporter exposes the session's diagnostic accumulator, e.g. so a
// REPL can check HadCompileError/HadRuntimeError between lines.
func (lx *Lox) Reporter() *report.Reporter {
	return lx.reporter
}

// Run scans, parses, resolves, and evaluates src as a complete
// program. Each stage short-circuits on its own compile error so a
// parse failure never reaches the resolver, and a resolve failure
// never reaches the evaluator (spec.md §7). Run does not clear prior
// diagnostics or the runtime-error flag; callers that want per-line
// isolation (the REPL) call Reporter().Reset() between calls.
func (lx *Lox) Run(src string) {
	l := lexer.New(src)
	p := parser.New(l, lx.reporter)
	program := p.Parse()
	for _, scanErr := range l.Errors() {
		lx.reporter.ScanError(scanErr.Pos, scanErr.Message)
	}
	if lx.reporter.HadCompileError() {
		return
	}

	locals := resolver.New(lx.reporter).Resolve(program)
	if lx.reporter.HadCompileError() {
		return
	}

	lx.interp.Interpret(program, locals)
}

// RunFile reads path and runs it as a single program, returning the
// process exit code spec.md §6 assigns: 0 on success, 65 on a compile
// error (scan, parse, or resolve), 70 on a runtime error.
func RunFile(path string, opts ...Option) (int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return ExitUsage, err
	}

	lx := New(opts...)
	lx.Run(string(content))

	switch {
	case lx.reporter.HadRuntimeError():
		return ExitSoftware, nil
	case lx.reporter.HadCompileError():
		return ExitData, nil
	default:
		return ExitSuccess, nil
	}
}
