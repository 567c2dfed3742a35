// Package report formats and accumulates Lox diagnostics: scan, parse,
// resolve, and runtime errors. A Reporter instance is threaded through
// the scanner, parser, resolver, and interpreter instead of the
// module-scoped error flags the reference interpreter uses, so a
// Reporter (and therefore the pipeline built on it) is instantiable
// and testable in isolation.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/cwbudde/go-lox/pkg/token"
)

// Kind distinguishes the four diagnostic categories the pipeline can
// raise.
type Kind int

const (
	Scan Kind = iota
	Parse
	Resolve
	Runtime
)

// Diagnostic is a single reported problem.
type Diagnostic struct {
	Kind    Kind
	Pos     token.Position
	Where   string // e.g. " at end" or " at 'foo'"; empty for scan/resolve
	Message string
}

// Reporter accumulates diagnostics produced across a single run of the
// pipeline and writes them to an output stream as they arrive.
type Reporter struct {
	out         io.Writer
	color       bool
	diagnostics []Diagnostic
	hadRuntime  bool
}

// Option configures a Reporter at construction time.
type Option func(*Reporter)

// WithColor enables ANSI-colored error output. Callers typically gate
// this on a TTY check (see cmd/lox) rather than enabling it
// unconditionally.
func WithColor(enabled bool) Option {
	return func(r *Reporter) { r.color = enabled }
}

// New creates a Reporter that writes formatted diagnostics to out.
func New(out io.Writer, opts ...Option) *Reporter {
	r := &Reporter{out: out}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reset clears accumulated diagnostics, and with them the compile-error
// state. The REPL calls this at the start of every line; the "had runtime
// error" flag is deliberately NOT cleared by Reset (see HadRuntimeError).
func (r *Reporter) Reset() {
	r.diagnostics = nil
}

// ScanError reports a scan-stage diagnostic (malformed lexeme).
func (r *Reporter) ScanError(pos token.Position, message string) {
	r.report(Diagnostic{Kind: Scan, Pos: pos, Message: message})
}

// ParseError reports a parse-stage diagnostic. where is " at end" when
// the offending token is EOF, " at 'LEXEME'" otherwise.
func (r *Reporter) ParseError(pos token.Position, where, message string) {
	r.report(Diagnostic{Kind: Parse, Pos: pos, Where: where, Message: message})
}

// ResolveError reports a static semantic violation found by the resolver.
func (r *Reporter) ResolveError(pos token.Position, message string) {
	r.report(Diagnostic{Kind: Resolve, Pos: pos, Message: message})
}

// RuntimeError reports an evaluator-detected error. Unlike the other
// three kinds, a runtime error always terminates the current run, and
// it sets a flag that Reset does not clear.
func (r *Reporter) RuntimeError(pos token.Position, message string) {
	r.hadRuntime = true
	r.report(Diagnostic{Kind: Runtime, Pos: pos, Message: message})
}

func (r *Reporter) report(d Diagnostic) {
	r.diagnostics = append(r.diagnostics, d)
	fmt.Fprintln(r.out, r.format(d))
}

func (r *Reporter) format(d Diagnostic) string {
	var line string
	switch d.Kind {
	case Runtime:
		line = fmt.Sprintf("[%s] Runtime error: %s", d.Pos, d.Message)
	default:
		line = fmt.Sprintf("[%s] Error%s: %s", d.Pos, d.Where, d.Message)
	}
	if !r.color {
		return line
	}
	if d.Kind == Runtime {
		return color.RedString(line)
	}
	return color.YellowString(line)
}

// Diagnostics returns every diagnostic reported since the last Reset.
func (r *Reporter) Diagnostics() []Diagnostic {
	return r.diagnostics
}

// HadCompileError reports whether a scan, parse, or resolve error has
// been reported since the last Reset.
func (r *Reporter) HadCompileError() bool {
	for _, d := range r.diagnostics {
		if d.Kind != Runtime {
			return true
		}
	}
	return false
}

// HadRuntimeError reports whether a runtime error has ever been
// reported, across Reset calls — the REPL never clears this flag,
// matching the reference interpreter's behavior.
func (r *Reporter) HadRuntimeError() bool {
	return r.hadRuntime
}

// Source renders the offending line of src with a right-aligned line
// number gutter and a caret under the reported column, the same shape
// the teacher's CompilerError.Format produces. It is not called
// automatically by report/ParseError/etc.; callers that want the
// fuller, multi-line presentation call it explicitly. Nothing in the
// pipeline or in cmd/lox calls it.
func Source(src string, pos token.Position) string {
	lines := strings.Split(src, "\n")
	if pos.Line < 1 || pos.Line > len(lines) {
		return ""
	}
	gutter := fmt.Sprintf("%4d | ", pos.Line)
	var b strings.Builder
	b.WriteString(gutter)
	b.WriteString(lines[pos.Line-1])
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", len(gutter)+pos.Column-1))
	b.WriteString("^")
	return b.String()
}
