// Package errors implements the diagnostic sink shared by the lexer, parser,
// and interpreter. Rather than process-global flags, the Reporter is an
// explicit collaborator passed into each stage, matching how the rest of
// the pipeline avoids hidden state.
package errors

import (
	"fmt"
	"io"

	"github.com/akashmaji946/loxgo/lexer"
)

// Reporter collects diagnostics and tracks whether a run is allowed to
// continue to the next pipeline stage. HadError gates the evaluator (a
// parse with any error must not be interpreted); HadRuntimeError is read by
// the CLI to pick an exit code.
type Reporter struct {
	Out             io.Writer
	HadError        bool
	HadRuntimeError bool
}

// New creates a Reporter that writes diagnostics to w.
func New(w io.Writer) *Reporter {
	return &Reporter{Out: w}
}

// Reset clears the error flags so a REPL can keep accepting input after a
// bad line without carrying stale error state into the next one.
func (r *Reporter) Reset() {
	r.HadError = false
	r.HadRuntimeError = false
}

// Error reports a diagnostic with no specific token context, used by the
// lexer.
func (r *Reporter) Error(line int, message string) {
	r.report(line, "", message)
}

// TokenError reports a diagnostic anchored to a specific token, used by the
// parser. EOF tokens are rendered as "at end"; all others as "at '<lexeme>'".
func (r *Reporter) TokenError(tok lexer.Token, message string) {
	if tok.Type == lexer.EOF {
		r.report(tok.Line, " at end", message)
	} else {
		r.report(tok.Line, fmt.Sprintf(" at '%s'", tok.Lexeme), message)
	}
}

func (r *Reporter) report(line int, where, message string) {
	fmt.Fprintf(r.Out, "[line %d] Error%s: %s\n", line, where, message)
	r.HadError = true
}

// RuntimeError reports an error raised during evaluation. Format matches
// spec.md §6: the message on its own line, followed by the source line.
func (r *Reporter) RuntimeError(line int, message string) {
	fmt.Fprintf(r.Out, "%s\n[line %d]\n", message, line)
	r.HadRuntimeError = true
}
