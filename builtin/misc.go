/*
File    : psl/builtin/misc.go

EVAL and EXIT: the two built-ins that reach back into the evaluator
(EVAL) or out to the host process (EXIT) rather than operating purely on
their arguments. IMPORT is handled directly by the evaluator rather than
as a Registry entry, since its argument is a bare string literal naming
a file rather than an evaluated expression list (see psl/eval).
*/
package builtin

import (
	"github.com/pslstudio/psl/value"
)

func init() {
	register("EVAL", 1, evalFn)
	register("EXIT", 0, exitFn)
}

// evalFn lexes and parses its string argument as a single expression,
// then evaluates it in the calling environment, per spec.md §4.3.
func evalFn(call *Call) (value.Value, error) {
	if len(call.Args) != 1 {
		return nil, argError("EVAL", 1, len(call.Args))
	}
	s, ok := call.Args[0].(*value.String)
	if !ok {
		return nil, typeError("EVAL", "a string", call.Args[0])
	}
	return call.Runtime.EvalSource(s.Value, call.Env)
}

// exitFn signals program termination with status 0, per spec.md §6. It
// does not call os.Exit itself: that would skip whatever output the
// calling environment has already buffered via DISPLAY/DISPLAYINLINE,
// since that buffer is only flushed to the real writer after the whole
// program (or REPL line) finishes. Returning an *ExitSignal lets it
// propagate up through eval like any other error, so eval.Evaluator.Run
// flushes the buffer first; only the host (cmd/psl, replshell) that
// receives the unwrapped signal actually calls os.Exit.
func exitFn(call *Call) (value.Value, error) {
	return nil, &ExitSignal{Code: 0}
}
